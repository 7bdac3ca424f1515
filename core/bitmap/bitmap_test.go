package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawClips(t *testing.T) {
	src := New(3, 3)
	Fill(src, 200)
	dst := New(4, 4)
	Draw(dst, src, 2, -1)
	assert.Equal(t, 4, InkCount(dst)) // 2 columns × 2 rows visible
	assert.Equal(t, uint8(200), dst.GrayAt(3, 0).Y)
	assert.Equal(t, uint8(0), dst.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(0), dst.GrayAt(2, 2).Y)
}

func TestCloneAndEqual(t *testing.T) {
	src := New(2, 3)
	src.SetGray(1, 2, color.Gray{Y: 9})
	c := Clone(src)
	assert.True(t, Equal(src, c))
	c.SetGray(0, 0, color.Gray{Y: 1})
	assert.False(t, Equal(src, c))
	assert.False(t, Equal(src, New(3, 2)))
}

func TestEqualIgnoresOrigin(t *testing.T) {
	a := image.NewGray(image.Rect(5, 5, 7, 7))
	a.SetGray(6, 6, color.Gray{Y: 3})
	b := New(2, 2)
	b.SetGray(1, 1, color.Gray{Y: 3})
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(Clone(a), b))
}

func TestDummy(t *testing.T) {
	d := Dummy()
	assert.Equal(t, 1, Width(d))
	assert.Equal(t, 1, Height(d))
	assert.Equal(t, 0, InkCount(d))
	assert.True(t, IsEmpty(New(0, 4)))
	assert.True(t, IsEmpty(nil))
}

func TestThresholdAndGamma(t *testing.T) {
	b := New(3, 1)
	b.Pix = []uint8{10, 127, 128}
	Threshold(b, 128)
	assert.Equal(t, []uint8{0, 0, 255}, b.Pix)
	g := New(3, 1)
	g.Pix = []uint8{0, 64, 255}
	GammaCorrect(g)
	assert.Equal(t, uint8(0), g.Pix[0])
	assert.Greater(t, g.Pix[1], uint8(64))
	assert.Equal(t, uint8(255), g.Pix[2])
}
