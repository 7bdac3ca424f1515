package normalize

import (
	"errors"
	"math"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bitmap"
	"github.com/npillmayer/fontpack/core/bmfont"
	"github.com/npillmayer/fontpack/core/raster"
)

// Normalizer rasterizes glyphs with an outline rasterizer.
type Normalizer struct {
	Rasterizer raster.Rasterizer
}

// New creates a normalizer using r.
func New(r raster.Rasterizer) *Normalizer {
	return &Normalizer{Rasterizer: r}
}

// job is a pending glyph together with its rasterization result.
type job struct {
	g       *bmfont.Glyph
	raw     raster.Glyph
	found   bool
	nominal int // nominal pixel height of the face at the glyph's size
}

// Normalize rasterizes all glyphs of f without a bitmap. Glyphs which already
// have one are skipped. Preconditions are checked for all pending glyphs
// before anything is rasterized, and glyph records are only written after
// every rasterization succeeded.
func (n *Normalizer) Normalize(f *bmfont.Font) (*Report, error) {
	report := &Report{}
	pending := f.Pending()
	if len(pending) == 0 {
		tracer().Debugf("no glyphs to render")
		return report, nil
	}
	if err := checkPreconditions(f, pending); err != nil {
		return nil, err
	}
	jobs := make([]*job, len(pending))
	for i, g := range pending {
		jobs[i] = &job{g: g}
	}
	// grouping by face and size saves face reloads
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i].g, jobs[j].g
		if a.FaceIdx != b.FaceIdx {
			return a.FaceIdx < b.FaceIdx
		}
		return a.Size < b.Size
	})
	if err := n.rasterize(f, jobs); err != nil {
		return nil, err
	}
	report.Rendered = len(jobs)
	for _, j := range jobs {
		apply(j, report)
	}
	compose(f, jobs, report)
	deriveLineMetrics(f, report)
	tracer().Infof("rendered %d glyphs: MaxH=%d MaxDescent=%d HeightConstant=%d LnSpacing=%d",
		report.Rendered, report.MaxH, report.MaxDescent, f.HeightConstant, f.LnSpacing)
	return report, nil
}

func checkPreconditions(f *bmfont.Font, pending []*bmfont.Glyph) error {
	if f.HeightConstant <= 0 {
		return core.Error(core.EINVALID, "height constant must be positive, is %d", f.HeightConstant)
	}
	for _, g := range pending {
		if g.FaceIdx < 0 {
			return core.Error(core.EINVALID, "no font face specified for char (%d)", g.Char)
		}
		if g.FaceIdx >= len(f.Faces) {
			return core.Error(core.EINVALID, "face index for char (%d) is too large: %d >= %d",
				g.Char, g.FaceIdx, len(f.Faces))
		}
		if g.Size == 0 {
			return core.Error(core.EINVALID, "the size of char (%d) should not be 0", g.Char)
		}
	}
	return nil
}

// rasterize runs over groups of jobs sharing face and size, holding one
// rasterizer context per group.
func (n *Normalizer) rasterize(f *bmfont.Font, jobs []*job) error {
	for start := 0; start < len(jobs); {
		end := start + 1
		for end < len(jobs) && jobs[end].g.FaceIdx == jobs[start].g.FaceIdx &&
			jobs[end].g.Size == jobs[start].g.Size {
			end++
		}
		group := jobs[start:end]
		face, size := f.Faces[group[0].g.FaceIdx], group[0].g.Size
		err := raster.With(n.Rasterizer, face, size, func(ctx raster.Context) error {
			nominal := ctx.Metrics().PixelHeight(size)
			for _, j := range group {
				j.nominal = nominal
				raw, err := ctx.Rasterize(rune(j.g.Char), j.g.AntiAliasing)
				if errors.Is(err, raster.ErrNotFound) {
					continue
				} else if err != nil {
					return core.WrapError(err, core.EINTERNAL, "rasterizing char (%d) failed", j.g.Char)
				}
				j.raw, j.found = raw, true
			}
			return nil
		})
		if err != nil {
			tracer().Errorf("face %s at %dpx: %v", face, size, err)
			return err
		}
		start = end
	}
	return nil
}

// apply writes a rasterization result into its glyph record.
func apply(j *job, report *Report) {
	g := j.g
	switch {
	case !j.found:
		report.warn(GlyphNotFound, g.Char,
			"no glyph found for char (%d), a dummy (1x1) bitmap will be generated", g.Char)
		g.MakePlaceholder(1)
	case bitmap.IsEmpty(j.raw.Bitmap):
		report.warn(EmptyBitmap, g.Char,
			"empty bitmap generated for char (%d), a dummy (1x1) bitmap will be generated", g.Char)
		g.MakePlaceholder(j.raw.Advance)
	default:
		g.SetReal(j.raw.Bitmap, j.raw.BearingX, j.raw.BearingY, j.raw.Advance)
		tracer().Debugf("char 0x%x: %s", g.Char, g)
	}
}

// compose aligns all real glyphs to the common descent padding and finds the
// canonical height.
func compose(f *bmfont.Font, jobs []*job, report *Report) {
	for _, j := range jobs {
		if j.g.HasBitmap == bmfont.RealBitmap && j.g.Descent() > report.MaxDescent {
			report.MaxDescent = j.g.Descent()
		}
	}
	report.Padding = f.DescentPadding
	if report.Padding == bmfont.AutoPadding {
		report.Padding = report.MaxDescent + f.OriginOffset + f.DescentOffset
	}
	heights := treemap.NewWithIntComparator()
	for _, j := range jobs {
		g := j.g
		if g.HasBitmap != bmfont.RealBitmap {
			continue
		}
		if g.BearX < 0 {
			report.warn(NegativeBearing, g.Char,
				"BearX is negative (%d) for char (%d), set it to 0", g.BearX, g.Char)
			g.BearX = 0
		}
		if g.BearX != 0 || g.Descent() != report.Padding {
			w, h := g.BearX+g.Width(), j.nominal
			if w <= 0 || h <= 0 {
				report.warn(CroppedOut, g.Char,
					"the bitmap of char (%d) is completely cropped out, a dummy (1x1) bitmap will be generated", g.Char)
				g.MakePlaceholder(g.Advance)
				continue
			}
			canvas := bitmap.New(w, h)
			bitmap.Draw(canvas, g.Bitmap, g.BearX, h-g.BearY-report.Padding)
			g.Bitmap = canvas
			g.BearX = 0
			g.BearY = h - report.Padding
			report.Recomposed++
		}
		count := 0
		if c, found := heights.Get(g.Height()); found {
			count = c.(int)
		}
		heights.Put(g.Height(), count+1)
		if g.Height() > report.RawMaxH {
			report.RawMaxH = g.Height()
		}
	}
	mostH, mostCount := 0, 0
	it := heights.Iterator()
	for it.Next() { // ascending heights, first maximum wins
		if c := it.Value().(int); c > mostCount {
			mostH, mostCount = it.Key().(int), c
		}
	}
	report.MaxH = report.RawMaxH
	if report.RawMaxH != mostH {
		// outliers are kept as they are, only the canonical height changes
		report.warn(HeightOutlier, 0, "update MaxH: %d, most frequent height: %d (%d glyphs)",
			report.RawMaxH, mostH, mostCount)
		report.MaxH = mostH
	}
}

// deriveLineMetrics sets line spacing and cap height, if they are unset.
func deriveLineMetrics(f *bmfont.Font, report *Report) {
	hc := f.HeightConstant
	if f.LnSpacing == 0 {
		spacing := int(math.Ceil(float64(report.MaxH)-float64(report.MaxDescent)*10/float64(hc))) +
			f.LnSpacingOff
		if spacing <= 0 {
			report.warn(LineSpacingClamped, 0, "derived line spacing %d is not positive, using 1", spacing)
			spacing = 1
		}
		f.LnSpacing = uint32(spacing)
	}
	actual := hc * int(f.LnSpacing) / 10
	if actual < report.MaxH {
		report.warn(LineOverflow, 0,
			"the maximum height (%d) of newly generated glyphs is larger than actual spacing (%d)",
			report.MaxH, actual)
	}
	if f.CapHeight == 0 {
		f.CapHeight = 1
	}
}
