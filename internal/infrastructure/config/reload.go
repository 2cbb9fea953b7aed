package config

import (
	"log"
	"path/filepath"
)

// Reloads loads a fresh config through l each time w reports a change to
// FileName and delivers the valid ones. Invalid edits are logged and
// skipped. The channel closes when w is closed.
func (l *Loader) Reloads(w *Watcher) <-chan *GameConfig {
	out := make(chan *GameConfig, 1)

	go func() {
		defer close(out)
		errs := w.Errors
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(name) != FileName {
					continue
				}
				cfg, err := l.LoadGame()
				if err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				select {
				case out <- cfg:
				default:
					// Drop the stale pending config in favor of the new one
					select {
					case <-out:
					default:
					}
					out <- cfg
				}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()

	return out
}
