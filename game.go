package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	log "github.com/sirupsen/logrus"

	"github.com/milk9111/tilemaze/config"
	"github.com/milk9111/tilemaze/levels"
	"github.com/milk9111/tilemaze/session"
)

type Game struct {
	cfg     config.Config
	session *session.Session

	input    *Input
	renderer *Renderer
	pauseUI  *ebitenui.UI
	paused   bool
	fade     *fade

	watcher *levels.Watcher

	// configPath and levelsOverride remember the flags the game started
	// with, so a reload resolves files the same way startup did.
	configPath     string
	levelsOverride string
}

func NewGame(cfg config.Config, sess *session.Session) *Game {
	g := &Game{
		cfg:      cfg,
		session:  sess,
		input:    NewInput(),
		renderer: NewRenderer(cfg),
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.drainWatcher()

	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	// the world freezes while fading between levels
	if g.fade != nil {
		g.fade.update()
		if g.fade.done {
			g.fade = nil
		}
		return nil
	}

	if g.input.RestartPressed {
		g.session.Restart()
	}
	if g.input.NextPressed {
		next := (g.session.Index() + 1) % g.session.Count()
		g.switchLevel(next)
		return nil
	}
	if g.input.PrevPressed {
		prev := (g.session.Index() + g.session.Count() - 1) % g.session.Count()
		g.switchLevel(prev)
		return nil
	}

	if g.input.MovePressed {
		g.session.TryMove(g.input.Move)
	}

	if g.session.Tick() == session.TickReachedGoal {
		g.fade = newFade(fadeDuration, func() {
			g.session.Advance()
			g.resizeWindow()
		})
	}
	return nil
}

func (g *Game) switchLevel(index int) {
	g.fade = newFade(fadeDuration, func() {
		if err := g.session.SwitchTo(index); err != nil {
			log.WithError(err).Warn("switch level")
			return
		}
		g.resizeWindow()
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawLevel(screen, g.session.Level())
	g.renderer.DrawPlayer(screen, g.session.Player())

	hud := fmt.Sprintf("%d/%d %s", g.session.Index()+1, g.session.Count(), g.session.LevelName())
	if g.cfg.ShowFPS {
		hud = fmt.Sprintf("%s    FPS: %.2f", hud, ebiten.ActualFPS())
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.fade != nil {
		g.renderer.DrawFade(screen, g.fade.alpha)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	lvl := g.session.Level()
	return lvl.PixelWidth(), lvl.PixelHeight()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) windowSize() (int, int) {
	lvl := g.session.Level()
	return int(lvl.PixelWidth()) * g.cfg.WindowScale, int(lvl.PixelHeight()) * g.cfg.WindowScale
}

func (g *Game) resizeWindow() {
	w, h := g.windowSize()
	ebiten.SetWindowSize(w, h)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.WithField("file", path).Info("changed on disk, reloading")
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.WithError(err).Warn("level watcher")
		default:
			return
		}
	}
}

// reload re-reads the config and level files and rebuilds the session,
// keeping the player on the same level index when it still exists.
func (g *Game) reload() {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		log.WithError(err).Error("reload config")
		return
	}
	if g.levelsOverride != "" {
		cfg.Levels.Path = g.levelsOverride
	}

	set, err := buildSet(cfg)
	if err != nil {
		log.WithError(err).Error("reload levels")
		return
	}
	index := g.session.Index()
	sess, err := session.New(set)
	if err != nil {
		log.WithError(err).Error("reload levels")
		return
	}
	if index < set.Len() {
		_ = sess.SwitchTo(index)
	}
	g.cfg = cfg
	g.session = sess
	g.renderer = NewRenderer(cfg)
	g.resizeWindow()
}
