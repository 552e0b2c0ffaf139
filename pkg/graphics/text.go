package graphics

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/go-drift/datetimepicker/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultFontSize is the system body text size in points.
	DefaultFontSize = 17

	// defaultFontName is the family of the bundled fallback font.
	defaultFontName = "Go"
)

// TextStyle describes the font used for measurement.
type TextStyle struct {
	FontFamily string
	FontSize   float64
}

// FontManager resolves font faces for text measurement. It is used where no
// native text metrics are available, such as headless hosts and tests.
type FontManager struct {
	mu          sync.RWMutex
	fonts       map[string]*opentype.Font
	defaultName string
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with the bundled Go font registered
// as the default family.
func NewFontManager() (*FontManager, error) {
	manager := &FontManager{
		fonts:       make(map[string]*opentype.Font),
		defaultName: defaultFontName,
	}
	if err := manager.RegisterFont(defaultFontName, goregular.TTF); err != nil {
		return nil, err
	}
	return manager, nil
}

// DefaultFontManagerErr returns a shared font manager with a bundled font.
// It returns both the manager and any error that occurred during initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager, err := NewFontManager()
		if err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.DriftError{
				Op:   "graphics.DefaultFontManager",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns a shared font manager with a bundled font, or
// nil if the bundled font failed to load.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// RegisterFont registers a new font family from TrueType or OpenType data.
func (m *FontManager) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	m.mu.Lock()
	m.fonts[name] = parsed
	m.mu.Unlock()
	return nil
}

// Face resolves a font face for the given style. Unknown families fall back
// to the default family. The caller owns the face and must Close it.
func (m *FontManager) Face(style TextStyle) (font.Face, error) {
	m.mu.RLock()
	f, ok := m.fonts[style.FontFamily]
	if !ok {
		f, ok = m.fonts[m.defaultName]
	}
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no font registered for family %q", style.FontFamily)
	}

	size := style.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// LineHeight returns the recommended line spacing, in points, of one line of
// text in the given style.
func (m *FontManager) LineHeight(style TextStyle) (float64, error) {
	face, err := m.Face(style)
	if err != nil {
		return 0, err
	}
	defer face.Close()
	return fixedToFloat(face.Metrics().Height), nil
}

// LineHeight measures a line of text at the given size using the default
// font manager.
func LineHeight(size float64) (float64, error) {
	manager, err := DefaultFontManagerErr()
	if err != nil {
		return 0, err
	}
	return manager.LineHeight(TextStyle{FontSize: size})
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
