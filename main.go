package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/pixelquest/assets"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/leveldata"
	"github.com/automoto/pixelquest/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene   Scene
	watcher *cfg.Watcher
}

func (g *Game) Update() error {
	g.pollTuning()
	return g.scene.Update()
}

// pollTuning applies tuning file changes between ticks without blocking.
func (g *Game) pollTuning() {
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
			if err := cfg.LoadTuning(path); err != nil {
				log.Printf("Warning: Could not reload tuning: %v", err)
				continue
			}
			log.Printf("Reloaded tuning from %s", path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Warning: Tuning watcher error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func loadLevels(dir string) ([]leveldata.Level, error) {
	if dir == "" {
		return assets.LoadLevels()
	}
	return leveldata.LoadAll(os.DirFS(dir), ".")
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding tuning values")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	levelsDir := flag.String("levels", "", "Directory of TMX levels (defaults to the embedded levels)")
	flag.Parse()

	if *tuningPath != "" {
		if err := cfg.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	levels, err := loadLevels(*levelsDir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	scene, err := scenes.NewPlatformerScene(levels)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	g := &Game{scene: scene}

	if *watch && *tuningPath != "" {
		watcher, err := cfg.NewWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer watcher.Close()
			g.watcher = watcher
		}
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Pixel Quest")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
