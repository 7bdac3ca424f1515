/*
Package font is for loading the scalable fonts glyphs are rasterized from.

We stick to the following definitions:

* A "scalable font" is a font file, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scalable font prepared at a certain pixel size.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner. The bitmap fonts
this module produces live in package bmfont.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package font

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'fontpack.faces'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.faces")
}

// ScalableFont is a parsed font file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container, not safe for concurrent use
}

// TypeCase is a scalable font at a pixel size.
type TypeCase struct {
	face xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size uint32
}

// LoadOpenTypeFont reads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses the binary data of a TrueType or OpenType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// DesignUnits returns UnitsPerEm, ascent, descent and line height of the
// font in design units. Descent is negative, following the FreeType
// convention.
func (sf *ScalableFont) DesignUnits() (upem, ascent, descent, height int, err error) {
	var buf sfnt.Buffer
	u := sf.SFNT.UnitsPerEm()
	// asking for metrics at ppem = upem yields design units
	m, err := sf.SFNT.Metrics(&buf, fixed.I(int(u)), xfont.HintingNone)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return int(u), m.Ascent.Round(), -m.Descent.Round(), m.Height.Round(), nil
}

// HasGlyph is true if the font's character map contains r.
func (sf *ScalableFont) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	gid, err := sf.SFNT.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

// PrepareCase creates a typecase at a pixel size (72 DPI). Anti-aliased
// cases are fully hinted, monochrome ones are not.
func (sf *ScalableFont) PrepareCase(pixelsize uint32, hinting xfont.Hinting) (*TypeCase, error) {
	if pixelsize == 0 {
		return nil, fmt.Errorf("pixel size of font %s must not be 0", sf.Fontname)
	}
	options := &opentype.FaceOptions{
		Size:    float64(pixelsize),
		DPI:     72,
		Hinting: hinting,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("prepared %s at %dpx", sf.Fontname, pixelsize)
	return &TypeCase{face: f, size: pixelsize}, nil
}

// Face is the x/image face of this typecase.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// PixelSize is the size this typecase has been prepared for.
func (tc *TypeCase) PixelSize() uint32 {
	return tc.size
}

// Close releases the face.
func (tc *TypeCase) Close() error {
	if tc.face == nil {
		return nil
	}
	err := tc.face.Close()
	tc.face = nil
	return err
}

// --- Fallback fonts --------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadPackagedFont("Go Sans", goregular.TTF)
	})
	return fallbackFont
}

// MonoFallbackFont returns Go Mono, which is always present.
func MonoFallbackFont() *ScalableFont {
	monoFontLoading.Do(func() {
		monoFont = loadPackagedFont("Go Mono", gomono.TTF)
	})
	return monoFont
}

var fallbackFontLoading, monoFontLoading sync.Once

var fallbackFont, monoFont *ScalableFont

func loadPackagedFont(name string, ttf []byte) *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: name,
		Filepath: "internal",
		Binary:   ttf,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load packaged font " + name) // this cannot happen
	}
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches loaded fonts by normalized name, so that faces referenced
// by many glyphs are parsed once.
type Registry struct {
	sync.Mutex
	fonts map[string]*ScalableFont
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]*ScalableFont),
	}
}

// StoreFont pushes a font into the registry under name. An existing entry is
// not overridden.
func (fr *Registry) StoreFont(name string, f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(name)
	if _, ok := fr.fonts[fname]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
		fr.fonts[fname] = f
	}
}

// Font returns a font previously stored under name.
func (fr *Registry) Font(name string) (*ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[NormalizeFontname(name)]
	return f, ok
}

// Names returns the sorted keys of all cached fonts.
func (fr *Registry) Names() []string {
	fr.Lock()
	defer fr.Unlock()
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NormalizeFontname makes font names comparable: trimmed, lower case,
// blanks replaced by '_' and without file extension.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 && !strings.ContainsAny(fname[dot:], "/\\") {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}
