package preview

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/stretchr/testify/require"
)

func TestClampSize(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultSize, ClampSize(0))
	require.Equal(t, DefaultSize, ClampSize(-3))
	require.Equal(t, MinSize, ClampSize(1))
	require.Equal(t, 48, ClampSize(48))
	require.Equal(t, MaxSize, ClampSize(100000))
}

func TestRender(t *testing.T) {
	t.Parallel()

	square := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="currentColor"><path d="M0 0h24v24H0z"/></svg>`
	data, err := Render(square, 32, "")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 32, img.Bounds().Dy())

	_, _, _, a := img.At(16, 16).RGBA()
	require.NotZero(t, a, "filled square must paint the centre pixel")
}

func TestRenderAnimatedPreset(t *testing.T) {
	t.Parallel()

	data, err := Render(icons.AnimatedPresets[0].Content, 0, "#ff0000")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestRenderInvalid(t *testing.T) {
	t.Parallel()

	_, err := Render("not svg at all", 16, "")
	require.Error(t, err)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"":         DefaultColor,
		"#FF0000":  "#ff0000",
		"00ff00":   "#00ff00",
		"#fff":     "#ffffff",
		" #1e293b": "#1e293b",
	} {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{
		"red",
		"#12345",
		`"/><path d="M0 0h24v24H0z`,
		"#ff0000\" onload=\"x",
	} {
		_, err := ParseColor(in)
		require.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestRenderUsesColor(t *testing.T) {
	t.Parallel()

	square := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="currentColor"><path d="M0 0h24v24H0z"/></svg>`
	data, err := Render(square, 16, "#ff0000")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	c, ok := colorful.MakeColor(img.At(8, 8))
	require.True(t, ok)
	require.Equal(t, "#ff0000", c.Hex())
}

func TestRenderRejectsMarkupInColor(t *testing.T) {
	t.Parallel()

	_, err := Render(icons.AnimatedPresets[0].Content, 16, `"/><path d="M0 0h24v24H0z`)
	require.ErrorIs(t, err, ErrInvalidColor)
}
