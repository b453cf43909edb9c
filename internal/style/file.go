package style

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/oukeidos/withseekbar/internal/apperrors"
	"github.com/oukeidos/withseekbar/internal/logger"
	"github.com/oukeidos/withseekbar/internal/seekbar"
)

// Format is a style file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", apperrors.Unsupported(fmt.Sprintf("Unsupported style file extension %q (use .toml, .yaml or .yml).", filepath.Ext(path)))
}

// LoadFile reads a TOML or YAML style file. A [seekbar] table or mapping, if
// present, is used instead of the top level.
func LoadFile(path string) (Values, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NotFound(err)
		}
		return nil, apperrors.New(apperrors.KindNotFound, "Style file could not be read.", err)
	}
	values, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	logger.Debug("Style file loaded", "path", path, "format", format, "keys", len(values))
	return values, nil
}

// Decode parses raw style data in the given format.
func Decode(data []byte, format Format) (Values, error) {
	raw := map[string]any{}
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, apperrors.Parse(err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, apperrors.Parse(err)
		}
	default:
		return nil, apperrors.Unsupported(fmt.Sprintf("Unsupported style format %q.", format))
	}

	if section, ok := raw["seekbar"].(map[string]any); ok {
		raw = section
	}
	return Values(raw), nil
}

// FromConfig returns the attribute values describing cfg.
func FromConfig(cfg seekbar.Config) Values {
	return Values{
		seekbar.AttrProgress:                cfg.Progress,
		seekbar.AttrMax:                     cfg.Max,
		seekbar.AttrProgressColor:           FormatColor(cfg.ProgressColor),
		seekbar.AttrProgressBackgroundColor: FormatColor(cfg.ProgressBackgroundColor),
		seekbar.AttrThumbColor:              FormatColor(cfg.ThumbColor),
		seekbar.AttrThumbSizeRatio:          float64(cfg.ThumbSizeRatio),
		seekbar.AttrReverseProgress:         cfg.ReverseProgress,
	}
}

// Encode writes cfg under a seekbar section so the result loads back
// through Decode.
func Encode(w io.Writer, cfg seekbar.Config, format Format) error {
	doc := map[string]Values{"seekbar": FromConfig(cfg)}
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return apperrors.Unsupported(fmt.Sprintf("Unsupported style format %q.", format))
}
