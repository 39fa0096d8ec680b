package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/glosario"
)

// themeKey is the preferences row holding the display theme.
const themeKey = "theme"

// Compile-time interface verification.
var _ glosario.PreferenceService = (*PreferenceService)(nil)

// PreferenceService implements glosario.PreferenceService using SQLite.
type PreferenceService struct {
	db *DB
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(db *DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// Theme returns the stored theme, or glosario.DefaultTheme if none is stored.
// A stored value that is no longer a known theme also yields the default.
func (s *PreferenceService) Theme(ctx context.Context) (glosario.Theme, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, themeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return glosario.DefaultTheme, nil
	} else if err != nil {
		return "", err
	}

	theme, err := glosario.ParseTheme(value)
	if err != nil {
		return glosario.DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme stores the theme, replacing any previous value.
func (s *PreferenceService) SetTheme(ctx context.Context, theme glosario.Theme) error {
	if _, err := glosario.ParseTheme(string(theme)); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, themeKey, string(theme), time.Now().UTC().Format(time.RFC3339))

	return err
}
