package glyph

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColor(t *testing.T) {
	cases := []struct {
		name string
		want Color
	}{
		{"red", Red},
		{"RED", Red},
		{"Green", Green},
		{"blue", Blue},
		{"white", White},
		{"yellow", Yellow},
		{"cyan", Cyan},
		{"MaGeNtA", Magenta},
		{"", White},
		{"dark red", White},
		{"purple", White},
		{" red", White},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ResolveColor(c.name), "%q", c.name)
	}
}

func TestLookupColor(t *testing.T) {
	for _, name := range ColorNames {
		c, ok := LookupColor(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, c.String())
	}
	_, ok := LookupColor("orange")
	assert.False(t, ok)
}

func TestColorRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 0, A: 0xff}, Yellow.RGBA())
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 0xff}, Background.RGBA())
	assert.Equal(t, Background.RGBA(), Color(200).RGBA())
	assert.Equal(t, "background", Background.String())
}
