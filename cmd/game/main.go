package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/game"
	"github.com/younwookim/slotmenu/internal/application/replay"
	"github.com/younwookim/slotmenu/internal/application/state"
	"github.com/younwookim/slotmenu/internal/application/states"
	"github.com/younwookim/slotmenu/internal/application/system"
	"github.com/younwookim/slotmenu/internal/infrastructure/config"
	"github.com/younwookim/slotmenu/internal/infrastructure/savestore"
)

func defaultSaveDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "saves"
	}
	return filepath.Join(dir, "slotmenu", "saves")
}

func main() {
	// Parse command line flags
	savesFlag := flag.String("saves", defaultSaveDir(), "Directory holding save slots and settings")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record menus.json)")
	replayFlag := flag.String("replay", "", "Drive the menus from a recorded input file")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadUI()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store := savestore.New(*savesFlag)

	var input states.Input = system.NewInputSystem()
	var recorder *replay.Recorder
	switch {
	case *replayFlag != "":
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		log.Printf("Replaying %d frames from %s", len(data.Frames), *replayFlag)
		input = replay.NewReplayer(*data)
	case *recordFlag != "":
		recorder = replay.NewRecorder(input)
		input = recorder
		log.Printf("Recording input to: %s", *recordFlag)
	}

	registry, sess, err := states.NewRegistry(states.Deps{
		Config: cfg,
		Store:  store,
		Input:  input,
		Window: states.EbitenWindow{},
	})
	if err != nil {
		log.Fatalf("Failed to build states: %v", err)
	}

	display := cfg.Display
	g, err := game.New(registry, state.Boot, display.ScreenWidth, display.ScreenHeight)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	g.SetDT(1.0 / float64(display.Framerate))
	g.SetOverlay(states.FPSOverlay(sess))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, recorder.FrameCount())
		}
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
