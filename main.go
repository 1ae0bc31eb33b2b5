package main

import (
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/milk9111/tilemaze/config"
	"github.com/milk9111/tilemaze/levels"
	"github.com/milk9111/tilemaze/session"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the config file")
	levelsPath := flag.String("levels", "", "path to a levels file (overrides the config)")
	watch := flag.Bool("watch", false, "reload the config and levels files when they change on disk")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if *levelsPath != "" {
		cfg.Levels.Path = *levelsPath
	}

	set, err := buildSet(cfg)
	if err != nil {
		log.WithError(err).Fatal("build level set")
	}
	if n := set.Fallbacks(); n > 0 {
		log.Warnf("%d of %d levels failed to parse", n, set.Len())
	}
	log.WithField("levels", set.Len()).Info("level set ready")

	sess, err := session.New(set)
	if err != nil {
		log.WithError(err).Fatal("start session")
	}

	game := NewGame(cfg, sess)
	game.configPath = *configPath
	game.levelsOverride = *levelsPath

	if *watch {
		w, err := levels.NewWatcher(cfg.Levels.Path, *configPath)
		if err != nil {
			log.WithError(err).Warn("file watching disabled")
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := game.windowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// buildSet loads the levels file and appends the scripted levels from the
// config. A broken script skips that one entry instead of failing the set.
func buildSet(cfg config.Config) (*levels.Set, error) {
	set, err := levels.Load(cfg.Levels.Path, cfg.TileSize)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Levels.Path, err)
	}
	for _, gen := range cfg.Levels.Generated {
		entry, err := levels.Generate(levels.FS, gen.Script, gen.Name, gen.Width, gen.Height, gen.Seed, cfg.TileSize)
		if err != nil {
			log.WithError(err).Warnf("skipping generated level %s", gen.Script)
			continue
		}
		set.Append(entry)
	}
	return set, nil
}
