package desktop

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is a TrueType font with one face per requested size.
type Font struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFont reads and parses a TTF/OTF file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("desktop: failed to read font %s: %w", path, err)
	}
	return ParseFont(data)
}

// ParseFont parses raw TTF/OTF data.
func ParseFont(data []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("desktop: failed to parse font: %w", err)
	}
	return &Font{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face returns the face for size, creating it on first use.
func (f *Font) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: f.source,
		Size:   size,
	}
	f.faces[size] = face
	return face
}

// LineHeight returns the vertical distance between baselines at size.
func (f *Font) LineHeight(size float64) float64 {
	m := f.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the width and height of s rendered at size.
func (f *Font) Measure(s string, size float64) (w, h float64) {
	return text.Measure(s, f.Face(size), f.LineHeight(size))
}
