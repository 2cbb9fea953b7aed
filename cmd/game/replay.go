package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/younwookim/spacewar/internal/application/replay"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
)

// runReplay plays a recorded session headless and writes the outcome to out.
// It fails when the outcome differs from the one stored in the file.
func runReplay(cfg *config.GameConfig, path string, out io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	result, err := replay.Run(cfg, *data)
	if err != nil && !errors.Is(err, replay.ErrIncomplete) {
		return err
	}

	reason := string(result.Reason)
	if reason == "" {
		reason = "incomplete"
	}
	_, _ = fmt.Fprintf(out, "seed=%d frames=%d score=%d missed=%d reason=%q\n",
		data.Seed, result.Frames, result.Score, result.Missed, reason)

	if err != nil {
		return err
	}
	if data.Reason != "" && (data.Reason != string(result.Reason) || data.Score != result.Score) {
		return fmt.Errorf("replay diverged: recorded %q score %d, got %q score %d",
			data.Reason, data.Score, result.Reason, result.Score)
	}
	return nil
}
