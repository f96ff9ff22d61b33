package assets

import (
	"embed"

	"github.com/automoto/pixelquest/leveldata"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevels parses the shipped levels in file name order.
func LoadLevels() ([]leveldata.Level, error) {
	return leveldata.LoadAll(assetFS, levelsDir)
}
