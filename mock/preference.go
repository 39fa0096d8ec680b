package mock

import (
	"context"

	"github.com/fwojciec/glosario"
)

var _ glosario.PreferenceService = (*PreferenceService)(nil)

// PreferenceService is a mock implementation of glosario.PreferenceService.
type PreferenceService struct {
	ThemeFn    func(ctx context.Context) (glosario.Theme, error)
	SetThemeFn func(ctx context.Context, theme glosario.Theme) error
}

func (s *PreferenceService) Theme(ctx context.Context) (glosario.Theme, error) {
	return s.ThemeFn(ctx)
}

func (s *PreferenceService) SetTheme(ctx context.Context, theme glosario.Theme) error {
	return s.SetThemeFn(ctx, theme)
}
