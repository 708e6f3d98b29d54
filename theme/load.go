package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/text"
)

// ErrInvalidTheme is returned when a theme file cannot be decoded or
// refers to unknown values.
var ErrInvalidTheme = errors.New("theme: invalid theme")

// Format is a theme file encoding.
type Format int

const (
	// FormatYAML selects YAML (.yaml, .yml).
	FormatYAML Format = iota
	// FormatTOML selects TOML (.toml).
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}
	return "unknown"
}

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidTheme, filepath.Ext(path))
}

// file is the on-disk layout shared by both encodings:
//
//	name: ocean
//	base: dark
//	font: Inter-Regular.ttf
//	colors:
//	  HighlightColor: "#00AAFF"
//	metrics:
//	  BorderWidth: 2
type file struct {
	Name    string             `yaml:"name" toml:"name"`
	Base    string             `yaml:"base" toml:"base"`
	Font    string             `yaml:"font" toml:"font"`
	Colors  map[string]string  `yaml:"colors" toml:"colors"`
	Metrics map[string]float64 `yaml:"metrics" toml:"metrics"`
}

// Load reads a theme file. The encoding is chosen by extension; a
// relative font path is resolved against the file's directory.
func Load(path string) (*Theme, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return decode(data, f, filepath.Dir(path))
}

// Decode parses theme data in the given format. A relative font path is
// resolved against the working directory.
func Decode(data []byte, f Format) (*Theme, error) {
	return decode(data, f, ".")
}

func decode(data []byte, f Format, dir string) (*Theme, error) {
	var doc file
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = fmt.Errorf("unknown format %d", int(f))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}

	base, ok := Builtin(doc.Base)
	if !ok {
		return nil, fmt.Errorf("%w: unknown base %q", ErrInvalidTheme, doc.Base)
	}

	colors := make(map[string]paint.Color, len(doc.Colors))
	for k, v := range doc.Colors {
		c, err := paint.ParseHex(v)
		if err != nil {
			return nil, fmt.Errorf("%w: color %s: %w", ErrInvalidTheme, k, err)
		}
		colors[k] = c
	}

	name := doc.Name
	if name == "" {
		name = base.Name()
	}
	t := base.With(name, colors, doc.Metrics)

	if doc.Font != "" {
		fp := doc.Font
		if !filepath.IsAbs(fp) {
			fp = filepath.Join(dir, fp)
		}
		face, err := text.Load(fp)
		if err != nil {
			return nil, fmt.Errorf("%w: font: %w", ErrInvalidTheme, err)
		}
		t.face = face
	}
	return t, nil
}
