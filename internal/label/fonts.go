package label

import (
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes used on the label.
const (
	titleSize   = 40
	headingSize = 32
	bodySize    = 28
)

// FontSet holds the faces the compositor draws with. It is built once at
// startup and shared read-only across requests.
type FontSet struct {
	Title   font.Face
	Heading font.Face
	Body    font.Face
}

// LoadFonts builds the label faces from arialbd.ttf and arial.ttf in dir,
// substituting the embedded Go fonts for any file that is missing or
// unreadable. It never fails.
func LoadFonts(dir string, logger *zap.Logger) *FontSet {
	return &FontSet{
		Title:   loadFace(filepath.Join(dir, "arialbd.ttf"), titleSize, gobold.TTF, logger),
		Heading: loadFace(filepath.Join(dir, "arialbd.ttf"), headingSize, gobold.TTF, logger),
		Body:    loadFace(filepath.Join(dir, "arial.ttf"), bodySize, goregular.TTF, logger),
	}
}

func loadFace(path string, size float64, fallback []byte, logger *zap.Logger) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("font file unavailable, using built-in face",
			zap.String("path", path), zap.Error(err))
		return builtinFace(fallback, size)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		logger.Warn("font file unreadable, using built-in face",
			zap.String("path", path), zap.Error(err))
		return builtinFace(fallback, size)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

func builtinFace(ttf []byte, size float64) font.Face {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}
