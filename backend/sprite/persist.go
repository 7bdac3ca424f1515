package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/fontpack/core"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

func dirName(d int) string   { return fmt.Sprintf("d%02d", d) }
func frameName(i int) string { return fmt.Sprintf("f%04d.bmp", i) }

// Save writes every frame to root/dNN/fNNNN.bmp. Existing frames files are
// overwritten. Empty slots are an error.
func (spr *Sprite) Save(root string) error {
	for d, frames := range spr.Dirs {
		dir := filepath.Join(root, dirName(d))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot create sprite directory")
		}
		for i, img := range frames {
			if img == nil {
				return core.Error(core.EINVALID, "frame %d of direction %d is empty", i, d)
			}
			if err := WriteImage(filepath.Join(dir, frameName(i)), img); err != nil {
				return err
			}
		}
	}
	tracer().Infof("saved %d direction(s) to %s", len(spr.Dirs), root)
	return nil
}

// Load reads a sprite saved with Save. Directions and frames are numbered
// consecutively from 0; the first gap ends a sequence.
func Load(root string) (*Sprite, error) {
	if _, err := os.Stat(filepath.Join(root, dirName(0))); err != nil {
		return nil, core.WrapError(err, core.EMISSING, "no sprite frames in %s", root)
	}
	spr := &Sprite{}
	for d := 0; ; d++ {
		dir := filepath.Join(root, dirName(d))
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			break
		}
		var frames []*image.Gray
		for i := 0; ; i++ {
			path := filepath.Join(dir, frameName(i))
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				break
			}
			img, err := ReadImage(path)
			if err != nil {
				return nil, err
			}
			frames = append(frames, img)
		}
		spr.Dirs = append(spr.Dirs, frames)
	}
	tracer().Debugf("loaded %d direction(s) from %s", len(spr.Dirs), root)
	return spr, nil
}

// WriteImage stores img as an 8-bit BMP, or as PNG if path ends in ".png".
func WriteImage(path string, img *image.Gray) error {
	out, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create image file")
	}
	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = png.Encode(out, img)
	} else {
		err = bmp.Encode(out, img)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write image %s", path)
	}
	return nil
}

// ReadImage loads a BMP or PNG file and converts it to grayscale.
func ReadImage(path string) (*image.Gray, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open image file")
	}
	defer in.Close()
	var src image.Image
	if strings.EqualFold(filepath.Ext(path), ".png") {
		src, err = png.Decode(in)
	} else {
		src, err = bmp.Decode(in)
	}
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode image %s", path)
	}
	if gray, ok := src.(*image.Gray); ok && gray.Bounds().Min == (image.Point{}) {
		return gray, nil
	}
	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	return gray, nil
}
