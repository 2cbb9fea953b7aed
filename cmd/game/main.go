package main

import (
	"flag"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/spacewar/internal/application/game"
	"github.com/younwookim/spacewar/internal/application/scene"
	"github.com/younwookim/spacewar/internal/application/scene/playing"
	"github.com/younwookim/spacewar/internal/application/scene/title"
	"github.com/younwookim/spacewar/internal/infrastructure/config"
	"github.com/younwookim/spacewar/internal/infrastructure/sfx"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load configs from this directory instead of the built-in ones")
	watchFlag := flag.Bool("watch", false, "Reload configs on change (requires -config)")
	recordFlag := flag.String("record", "", "Record each session's input to a file in this directory (e.g., -record replays)")
	replayFlag := flag.String("replay", "", "Play a recorded file without a window and print the result")
	muteFlag := flag.Bool("mute", false, "Disable sound effects")
	dumpFlag := flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *dumpFlag {
		if err := dumpConfig(cfg, os.Stdout); err != nil {
			log.Fatalf("Failed to dump config: %v", err)
		}
		return
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, *replayFlag, os.Stdout); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	opts := playing.Options{RecordDir: *recordFlag}
	if *recordFlag != "" {
		if err := os.MkdirAll(*recordFlag, 0o755); err != nil {
			log.Fatalf("Failed to create record directory: %v", err)
		}
	}

	if *watchFlag {
		if *configDir == "" {
			log.Fatalf("-watch requires -config")
		}
		watcher, err := config.NewWatcher(*configDir)
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = watcher.Close() }()
		opts.Configs = loader.Reloads(watcher)
		log.Printf("Watching %s for config changes", *configDir)
	}

	if cfg.Feedback.Sound.Enabled && !*muteFlag {
		opts.Sounds = sfx.NewBank(audio.NewContext(sfx.SampleRate), cfg.Feedback.Sound.Volume)
	}

	d := cfg.Display
	start := title.New(d.CanvasWidth, d.CanvasHeight, func() scene.Scene {
		return playing.New(cfg, opts)
	})

	if err := game.New(start, d).Run(); err != nil {
		log.Fatal(err)
	}
}

// dumpConfig writes cfg as YAML, ready to be edited and passed back with -config
func dumpConfig(cfg *config.GameConfig, out io.Writer) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// newLoader reads from dir when given, otherwise from the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
