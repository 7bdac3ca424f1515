package recipe

import (
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bmfont"
	"github.com/npillmayer/schuko"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Recipe is the parsed form of a recipe file.
type Recipe struct {
	Faces          []string   `yaml:"faces"`
	FallbackFaces  []string   `yaml:"fallback-faces"` // cell rendering only
	Size           uint32     `yaml:"size"`
	AntiAliasing   *bool      `yaml:"anti-aliasing"`
	Language       string     `yaml:"language"`
	HeightConstant int        `yaml:"height-constant"` // 0: derive from language
	ScriptCategory uint16     `yaml:"script-category"`
	LineSpacing    uint32     `yaml:"line-spacing"` // 0: derive from glyphs
	CapHeight      uint32     `yaml:"cap-height"`
	Offsets        Offsets    `yaml:"offsets"`
	Palettes       [][]string `yaml:"palettes"`
	Glyphs         []Group    `yaml:"glyphs"`
}

// Offsets tune the derived vertical metrics.
type Offsets struct {
	LineSpacing    *int `yaml:"line-spacing"`    // default 1
	CapHeight      int  `yaml:"cap-height"`      //
	DescentPadding *int `yaml:"descent-padding"` // default: automatic
	Origin         int  `yaml:"origin"`
	Descent        int  `yaml:"descent"`
}

// Group selects a set of characters sharing rasterization settings.
type Group struct {
	Range        string `yaml:"range"` // "0x20-0x7E" or "32-126"
	Chars        string `yaml:"chars"`
	Codes        []int  `yaml:"codes"`
	Face         *int   `yaml:"face"`
	Size         uint32 `yaml:"size"`
	AntiAliasing *bool  `yaml:"anti-aliasing"`
	Flag         *uint8 `yaml:"flag"`
	Fg           string `yaml:"fg"`
	Bg           string `yaml:"bg"`
}

// Parse reads a recipe from r. Unknown keys are an error.
func Parse(r io.Reader) (*Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	rc := &Recipe{}
	if err := dec.Decode(rc); err != nil && err != io.EOF {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse recipe")
	}
	return rc, nil
}

// Load reads a recipe file.
func Load(path string) (*Recipe, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open recipe")
	}
	defer in.Close()
	rc, err := Parse(in)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded recipe %s: %d face(s), %d glyph group(s)", path, len(rc.Faces), len(rc.Glyphs))
	return rc, nil
}

// ApplyConfig lets process configuration override recipe values. Key
// 'fallback-faces' holds a comma separated list of face names.
func (rc *Recipe) ApplyConfig(conf schuko.Configuration) {
	if conf == nil {
		return
	}
	if fb := conf.GetString("fallback-faces"); fb != "" {
		rc.FallbackFaces = rc.FallbackFaces[:0]
		for _, name := range strings.Split(fb, ",") {
			if name = strings.TrimSpace(name); name != "" {
				rc.FallbackFaces = append(rc.FallbackFaces, name)
			}
		}
		tracer().Debugf("fallback faces from configuration: %v", rc.FallbackFaces)
	}
}

// HeightConstantFor maps a BCP 47 language tag to the height constant of its
// script. Unknown or empty tags yield the Latin constant.
func HeightConstantFor(lang string) int {
	if lang == "" {
		return bmfont.HeightConstantLatin
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tracer().Infof("warning: cannot parse language %q, assuming Latin script", lang)
		return bmfont.HeightConstantLatin
	}
	script, _ := tag.Script()
	switch script.String() {
	case "Jpan", "Hira", "Kana", "Hrkt":
		return bmfont.HeightConstantJapanese
	case "Hans", "Hant", "Hani":
		return bmfont.HeightConstantChinese
	}
	return bmfont.HeightConstantLatin
}

// Font creates a font configured by the recipe, with one unrasterized glyph
// record per selected character.
func (rc *Recipe) Font() (*bmfont.Font, error) {
	f := bmfont.NewFont()
	f.Faces = append([]string(nil), rc.Faces...)
	f.Size = rc.Size
	f.ScriptCategory = rc.ScriptCategory
	f.LnSpacing = rc.LineSpacing
	f.CapHeight = rc.CapHeight
	f.HeightConstant = rc.HeightConstant
	if f.HeightConstant == 0 {
		f.HeightConstant = HeightConstantFor(rc.Language)
	} else if f.HeightConstant < 0 {
		return nil, core.Error(core.EINVALID, "height constant must be positive, is %d", rc.HeightConstant)
	}
	if rc.Offsets.LineSpacing != nil {
		f.LnSpacingOff = *rc.Offsets.LineSpacing
	}
	f.CapHeightOff = rc.Offsets.CapHeight
	if rc.Offsets.DescentPadding != nil {
		f.DescentPadding = *rc.Offsets.DescentPadding
	}
	f.OriginOffset = rc.Offsets.Origin
	f.DescentOffset = rc.Offsets.Descent
	for i, p := range rc.Palettes {
		pal := make(color.Palette, 0, len(p))
		for _, hex := range p {
			c, err := ParseColor(hex)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "palette %d", i)
			}
			pal = append(pal, c)
		}
		f.Palettes = append(f.Palettes, pal)
	}
	for i, grp := range rc.Glyphs {
		if err := rc.addGroup(f, i, grp); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("recipe creates %d glyph records, height constant %d", f.Count(), f.HeightConstant)
	return f, nil
}

func (rc *Recipe) addGroup(f *bmfont.Font, n int, grp Group) error {
	codes, err := grp.codes()
	if err != nil {
		return core.WrapError(err, core.EINVALID, "glyph group %d", n)
	}
	face := 0
	if grp.Face != nil {
		face = *grp.Face
	}
	if face < 0 || face >= len(rc.Faces) {
		return core.Error(core.EINVALID, "glyph group %d: face index %d out of range [0,%d)",
			n, face, len(rc.Faces))
	}
	size := grp.Size
	if size == 0 {
		size = rc.Size
	}
	if size == 0 {
		return core.Error(core.EINVALID, "glyph group %d: no size given", n)
	}
	aa := true
	if rc.AntiAliasing != nil {
		aa = *rc.AntiAliasing
	}
	if grp.AntiAliasing != nil {
		aa = *grp.AntiAliasing
	}
	for _, code := range codes {
		g, err := f.AddGlyph(code)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "glyph group %d", n)
		}
		g.FaceIdx = face
		g.Size = size
		g.AntiAliasing = aa
		if grp.Flag != nil {
			g.Flag = *grp.Flag
		}
		if grp.Fg != "" {
			if g.FgColor, err = ParseColor(grp.Fg); err != nil {
				return core.WrapError(err, core.EINVALID, "glyph group %d", n)
			}
		}
		if grp.Bg != "" {
			if g.BgColor, err = ParseColor(grp.Bg); err != nil {
				return core.WrapError(err, core.EINVALID, "glyph group %d", n)
			}
		}
	}
	return nil
}
