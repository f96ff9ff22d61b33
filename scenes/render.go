package scenes

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/game"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	hudBarWidth   = 100
	hudBarHeight  = 8
	coinBob       = 3
	glyphWidth    = 7 // basicfont.Face7x13 advance
)

var hudFont = basicfont.Face7x13

func fillRect(screen *ebiten.Image, r gamemath.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawLevel(screen *ebiten.Image, frame game.Frame) {
	for _, p := range frame.Platforms {
		fillRect(screen, p, cfg.Render.Platform)
	}

	if frame.Goal != nil {
		base := cfg.Render.Goal
		glow := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(160 + 95*math.Sin(float64(frame.Goal.Phase)))}
		fillRect(screen, frame.Goal.Rect, glow)
	}

	for _, c := range frame.Coins {
		if c.Collected {
			continue
		}
		r := c.Rect
		r.Y += coinBob * math.Sin(float64(c.Phase))
		fillRect(screen, r, cfg.Render.Coin)
	}

	for _, e := range frame.Enemies {
		if !e.Active {
			continue
		}
		fillRect(screen, e.Rect, enemyColor(e.Type))
	}

	if p := frame.Player; p != nil {
		drawPlayer(screen, p)
	}

	for _, b := range frame.PlayerBullets {
		fillRect(screen, b, cfg.Render.PlayerBullet)
	}
	for _, b := range frame.EnemyBullets {
		fillRect(screen, b, cfg.Render.EnemyBullet)
	}
}

func drawPlayer(screen *ebiten.Image, p *game.PlayerView) {
	clr := cfg.Render.Player
	if p.Invincible {
		clr = cfg.Render.PlayerBlink
	}

	r := p.Rect
	if p.State == cfg.Sliding {
		// Crouch to half height while sliding
		r.Y += r.H / 2
		r.H /= 2
	}
	fillRect(screen, r, clr)

	// Facing marker
	eye := gamemath.Rect{X: r.X + r.W - 8, Y: r.Y + 4, W: 4, H: 4}
	if p.Direction == cfg.DirectionLeft {
		eye.X = r.X + 4
	}
	fillRect(screen, eye, cfg.Render.Text)
}

func enemyColor(t cfg.EnemyType) color.RGBA {
	switch t {
	case cfg.EnemyJumper:
		return cfg.Render.Jumper
	case cfg.EnemyShooter:
		return cfg.Render.Shooter
	default:
		return cfg.Render.Walker
	}
}

func drawHUD(screen *ebiten.Image, hud game.HUD) {
	lines := []string{
		fmt.Sprintf("Score: %d", hud.Score),
		fmt.Sprintf("Coins: %d", hud.Coins),
		fmt.Sprintf("Level: %d", hud.Level),
		fmt.Sprintf("Health: %d/%d", hud.Health, hud.MaxHealth),
	}
	y := hudMargin + hudLineHeight
	for _, line := range lines {
		text.Draw(screen, line, hudFont, hudMargin, y, cfg.Render.Text)
		y += hudLineHeight
	}

	// Stamina bar
	barY := float32(y - hudLineHeight + 6)
	vector.FillRect(screen, hudMargin, barY, hudBarWidth, hudBarHeight, cfg.Render.Overlay, false)
	vector.FillRect(screen, hudMargin, barY, float32(hudBarWidth*hud.Stamina/100), hudBarHeight, cfg.Render.StaminaBar, false)
}

func drawOverlay(screen *ebiten.Image, title, hint string) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Render.Overlay, false)

	drawCentered(screen, title, height/2-10)
	drawCentered(screen, hint, height/2+14)
}

func drawCentered(screen *ebiten.Image, s string, y int) {
	x := (screen.Bounds().Dx() - len(s)*glyphWidth) / 2
	text.Draw(screen, s, hudFont, x, y, cfg.Render.Text)
}
