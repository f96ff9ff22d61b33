package leveldata

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/pixelquest/config"
)

var (
	ErrNoLevels         = errors.New("no levels")
	ErrNoPlatforms      = errors.New("level has no platforms")
	ErrNoGoal           = errors.New("level has no goal")
	ErrNegativeSize     = errors.New("platform has negative size")
	ErrUnknownEnemyType = errors.New("unknown enemy type")
)

// Validate reports the first structural problem with the level.
func (l *Level) Validate() error {
	if len(l.Platforms) == 0 {
		return ErrNoPlatforms
	}
	for i, p := range l.Platforms {
		if p.W < 0 || p.H < 0 {
			return fmt.Errorf("platform %d: %w", i, ErrNegativeSize)
		}
	}
	if l.Goal == nil {
		return ErrNoGoal
	}
	for i, e := range l.Enemies {
		if _, ok := cfg.Enemy.Type(e.Type); !ok {
			return fmt.Errorf("enemy %d %q: %w", i, e.Type, ErrUnknownEnemyType)
		}
	}
	return nil
}

// ValidateAll checks each level in order and names the first invalid one.
func ValidateAll(levels []Level) error {
	if len(levels) == 0 {
		return ErrNoLevels
	}
	for i := range levels {
		if err := levels[i].Validate(); err != nil {
			return fmt.Errorf("level %d (%s): %w", i+1, levels[i].Name, err)
		}
	}
	return nil
}
