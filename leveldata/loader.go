package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// Object group names read from TMX files.
const (
	GroupPlatforms   = "Platforms"
	GroupEnemySpawn  = "EnemySpawn"
	GroupCoins       = "Coins"
	GroupGoal        = "Goal"
	GroupPlayerSpawn = "PlayerSpawn"

	PropertyEnemyType = "enemyType"
)

// LoadLevel parses a TMX file into a validated level. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := Level{
		Name: strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, gamemath.Rect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case GroupEnemySpawn:
			for _, o := range og.Objects {
				enemyType := cfg.EnemyType(o.Properties.GetString(PropertyEnemyType))
				if enemyType == "" {
					enemyType = cfg.EnemyWalker
				}
				level.Enemies = append(level.Enemies, EnemySpawn{
					X:    o.X,
					Y:    o.Y,
					Type: enemyType,
				})
			}
		case GroupCoins:
			for _, o := range og.Objects {
				level.Coins = append(level.Coins, math.Vec2{X: o.X, Y: o.Y})
			}
		case GroupGoal:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Goal = &math.Vec2{X: o.X, Y: o.Y}
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = &math.Vec2{X: o.X, Y: o.Y}
			}
		}
	}

	if err := level.Validate(); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", tmxPath, err)
	}
	return level, nil
}

// LoadAll loads every .tmx file in dir, ordered by file name.
func LoadAll(fsys fs.FS, dir string) ([]Level, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s: %w", dir, ErrNoLevels)
	}
	sort.Strings(matches)

	levels := make([]Level, 0, len(matches))
	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
