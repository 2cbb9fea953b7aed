package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/spacewar/internal/application/session"
	"github.com/younwookim/spacewar/internal/application/state"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
)

// ErrIncomplete is returned when a replay runs out of frames before the
// session ends
var ErrIncomplete = errors.New("replay ended before game over")

// Run plays data through a fresh session without rendering and returns
// how the session ended. The session uses data's seed, so with the same
// config the result matches the recorded one.
func Run(cfg *config.GameConfig, data ReplayData) (session.Result, error) {
	r := NewReplayer(data)

	s := session.New(cfg)
	s.SetAutoRestart(false)
	s.StartWithSeed(r.Seed())

	for s.State() == state.StatePlaying {
		input, ok := r.GetInput()
		if !ok {
			snap := s.Snapshot()
			res := session.Result{Score: snap.Score, Missed: snap.Missed, Frames: snap.Frame, Seed: r.Seed()}
			return res, fmt.Errorf("%w after %d of %d frames", ErrIncomplete, r.CurrentFrame(), r.TotalFrames())
		}
		s.Tick(input)
	}

	return s.Result(), nil
}
