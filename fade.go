package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// fadeDuration is in tween seconds; with fadeStep per tick a full fade
	// takes duration/step frames.
	fadeDuration = 0.6
	fadeStep     = 0.02
)

// fade runs a fade-to-black and back, invoking midpoint while the screen is
// fully covered.
type fade struct {
	out      *gween.Tween
	in       *gween.Tween
	midpoint func()

	alpha float32
	done  bool
}

func newFade(duration float32, midpoint func()) *fade {
	return &fade{
		out:      gween.New(0, 1, duration/2, ease.InQuad),
		in:       gween.New(1, 0, duration/2, ease.OutQuad),
		midpoint: midpoint,
	}
}

func (f *fade) update() {
	if f.done {
		return
	}

	if f.out != nil {
		curr, finished := f.out.Update(fadeStep)
		f.alpha = curr
		if finished {
			f.out = nil
			if f.midpoint != nil {
				f.midpoint()
			}
		}
		return
	}

	curr, finished := f.in.Update(fadeStep)
	f.alpha = curr
	if finished {
		f.done = true
	}
}
