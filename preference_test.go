package glosario_test

import (
	"testing"

	"github.com/fwojciec/glosario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	t.Parallel()

	t.Run("accepts light and dark", func(t *testing.T) {
		t.Parallel()

		light, err := glosario.ParseTheme("light")
		require.NoError(t, err)
		assert.Equal(t, glosario.ThemeLight, light)

		dark, err := glosario.ParseTheme("dark")
		require.NoError(t, err)
		assert.Equal(t, glosario.ThemeDark, dark)
	})

	t.Run("rejects other values", func(t *testing.T) {
		t.Parallel()

		_, err := glosario.ParseTheme("sepia")
		assert.Equal(t, glosario.EINVALID, glosario.ErrorCode(err))
	})
}

func TestTheme_Toggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, glosario.ThemeDark, glosario.ThemeLight.Toggle())
	assert.Equal(t, glosario.ThemeLight, glosario.ThemeDark.Toggle())
}
