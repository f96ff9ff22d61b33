package leveldata

import (
	"testing"

	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func validLevel() Level {
	return Level{
		Name:      "test",
		Platforms: []gamemath.Rect{{X: 0, Y: 550, W: 800, H: 50}},
		Enemies:   []EnemySpawn{{X: 100, Y: 500, Type: cfg.EnemyJumper}},
		Goal:      &math.Vec2{X: 700, Y: 470},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *Level)
		want   error
	}{
		{"valid", func(l *Level) {}, nil},
		{"no platforms", func(l *Level) { l.Platforms = nil }, ErrNoPlatforms},
		{"no goal", func(l *Level) { l.Goal = nil }, ErrNoGoal},
		{"negative width", func(l *Level) { l.Platforms[0].W = -1 }, ErrNegativeSize},
		{"unknown enemy", func(l *Level) { l.Enemies[0].Type = "ghost" }, ErrUnknownEnemyType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := validLevel()
			tt.mutate(&level)
			err := level.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateAll(t *testing.T) {
	assert.ErrorIs(t, ValidateAll(nil), ErrNoLevels)

	bad := validLevel()
	bad.Goal = nil
	err := ValidateAll([]Level{validLevel(), bad})
	assert.ErrorIs(t, err, ErrNoGoal)
	assert.Contains(t, err.Error(), "level 2")

	assert.NoError(t, ValidateAll([]Level{validLevel()}))
}
