package glosario

import "context"

// Theme is the persisted display theme preference.
type Theme string

// Theme constants.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no preference has been stored.
const DefaultTheme = ThemeLight

// ParseTheme returns the theme named by s.
// Returns EINVALID for anything other than "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", Errorf(EINVALID, "unknown theme %q", s)
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// PreferenceService persists user preferences.
type PreferenceService interface {
	// Theme returns the stored theme, or DefaultTheme if none was stored.
	Theme(ctx context.Context) (Theme, error)

	// SetTheme stores the theme.
	SetTheme(ctx context.Context, theme Theme) error
}
