package config

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tanema/gween/ease"
)

// ErrInvalidTheme is wrapped by every validation failure in a theme file.
var ErrInvalidTheme = errors.New("invalid theme")

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-out-sine": ease.InOutSine,
	"out-cubic":   ease.OutCubic,
	"out-bounce":  ease.OutBounce,
}

// Theme holds the cosmetic settings that may be loaded from a TOML file.
type Theme struct {
	Background    string `toml:"background"`
	Stroke        string `toml:"stroke"`
	StrokeDivisor int    `toml:"stroke_divisor"`
	Easing        string `toml:"easing"`
	Sound         bool   `toml:"sound"`
	Marker        bool   `toml:"marker"`
}

// DefaultTheme is green lines on a dark grey background.
func DefaultTheme() Theme {
	return Theme{
		Background:    "#212121",
		Stroke:        "#4CAF50",
		StrokeDivisor: StrokeDivisor,
		Easing:        "linear",
		Sound:         true,
		Marker:        true,
	}
}

// LoadTheme reads a theme file on top of the defaults. Keys missing from the
// file keep their default value; unknown keys are rejected.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Theme{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidTheme, strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Validate checks colours, stroke divisor and easing name.
func (t Theme) Validate() error {
	if _, err := ParseHexColor(t.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidTheme, err)
	}
	if _, err := ParseHexColor(t.Stroke); err != nil {
		return fmt.Errorf("%w: stroke: %v", ErrInvalidTheme, err)
	}
	if t.StrokeDivisor <= 0 {
		return fmt.Errorf("%w: stroke_divisor must be positive, got %d", ErrInvalidTheme, t.StrokeDivisor)
	}
	if _, ok := easings[t.Easing]; !ok {
		return fmt.Errorf("%w: unknown easing %q (want one of %s)", ErrInvalidTheme, t.Easing, strings.Join(EasingNames(), ", "))
	}
	return nil
}

// Ease returns the easing function named by the theme, falling back to linear.
func (t Theme) Ease() ease.TweenFunc {
	if fn, ok := easings[t.Easing]; ok {
		return fn
	}
	return ease.Linear
}

func (t Theme) BackgroundColor() color.NRGBA {
	c, _ := ParseHexColor(t.Background)
	return c
}

func (t Theme) StrokeColor() color.NRGBA {
	c, _ := ParseHexColor(t.Stroke)
	return c
}

// EasingNames lists the accepted easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseHexColor parses "#RRGGBB" or "#AARRGGBB" the way Android's
// Color.parseColor does.
func ParseHexColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("color %q: missing '#'", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	a := uint8(0xff)
	if len(hex) == 8 {
		a = uint8(v >> 24)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}, nil
}
