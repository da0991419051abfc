package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/linked-lal/internal/config"
)

// selectTheme asks the user for a theme file. A cancelled dialog returns an
// empty path and no error.
func selectTheme() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Theme"),
		zenity.FileFilters{{
			Name:     "Theme",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func (g *Game) openThemeDialog() error {
	path, err := g.pickTheme()
	if err != nil || path == "" {
		return err
	}
	theme, err := config.LoadTheme(path)
	if err != nil {
		return err
	}
	g.applyTheme(theme)
	g.logger.Info("theme loaded", "path", path)
	return nil
}
