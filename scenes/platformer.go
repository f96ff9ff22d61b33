package scenes

import (
	"fmt"
	"log"

	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/game"
	"github.com/automoto/pixelquest/leveldata"
	"github.com/automoto/pixelquest/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlatformerScene plays the levels and draws each tick's snapshot.
type PlatformerScene struct {
	game *game.Game
	hud  game.HUD
}

func NewPlatformerScene(levels []leveldata.Level) (*PlatformerScene, error) {
	g, err := game.New(levels)
	if err != nil {
		return nil, err
	}

	ps := &PlatformerScene{game: g}
	g.OnHUDChanged(func(h game.HUD) { ps.hud = h })
	g.Events().OnLevelCompleted(func(ev systems.LevelCompleted) {
		log.Printf("level %d complete, score %d", ev.Level, ev.Score)
	})
	g.Events().OnGameOver(func(ev systems.GameOver) {
		log.Printf("game over on level %d, score %d", ev.Level, ev.Score)
	})
	g.Events().OnVictory(func(ev systems.Victory) {
		log.Printf("victory, score %d, coins %d", ev.Score, ev.Coins)
	})
	return ps, nil
}

func (ps *PlatformerScene) Update() error {
	if ps.game.Status() != cfg.StatusRunning {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return ps.game.Restart()
		}
		return nil
	}

	if err := ps.game.Update(readInput()); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.Background)

	frame := ps.game.Snapshot()
	drawLevel(screen, frame)
	drawHUD(screen, ps.hud)

	switch {
	case frame.Status == cfg.StatusGameOver:
		drawOverlay(screen, "GAME OVER", fmt.Sprintf("Score %d  -  press Enter to retry", ps.hud.Score))
	case frame.Status == cfg.StatusVictory:
		drawOverlay(screen, "YOU WIN!", fmt.Sprintf("Score %d  Coins %d  -  press Enter to play again", ps.hud.Score, ps.hud.Coins))
	case frame.Paused:
		drawOverlay(screen, "PAUSED", "press Esc to resume")
	}
}
