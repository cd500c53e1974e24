package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	require.True(t, Loaded(HUD))
	require.True(t, Loaded(HUDSmall))

	large := HUD.Get().Metrics().Height
	small := HUDSmall.Get().Metrics().Height
	assert.Greater(t, large, small)

	width := font.MeasureString(HUD.Get(), "Score: 10  Wave: 3")
	assert.Positive(t, width.Ceil())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFont("broken", []byte("not a font"))
	require.Error(t, err)
	assert.False(t, Loaded("broken"))
}

func TestLoadFontDefaultSize(t *testing.T) {
	require.NoError(t, LoadFont("plain", goregular.TTF))
	require.NoError(t, LoadFontWithSize("big", goregular.TTF, 20))
	assert.Less(t, FontName("plain").Get().Metrics().Height, FontName("big").Get().Metrics().Height)
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
