package normalize

import "fmt"

// WarningKind classifies warnings.
type WarningKind int

const (
	GlyphNotFound      WarningKind = iota // placeholder for a missing glyph
	EmptyBitmap                           // placeholder for an empty image
	NegativeBearing                       // left bearing clamped to 0
	CroppedOut                            // composition produced no canvas
	HeightOutlier                         // most frequent height differs from the maximum
	LineOverflow                          // glyphs are higher than the line spacing
	LineSpacingClamped                    // derived line spacing was not positive
	Substituted                           // cell service used a fallback or a blank
)

var warningNames = map[WarningKind]string{
	GlyphNotFound:      "glyph-not-found",
	EmptyBitmap:        "empty-bitmap",
	NegativeBearing:    "negative-bearing",
	CroppedOut:         "cropped-out",
	HeightOutlier:      "height-outlier",
	LineOverflow:       "line-overflow",
	LineSpacingClamped: "line-spacing-clamped",
	Substituted:        "substituted",
}

func (k WarningKind) String() string {
	if s, ok := warningNames[k]; ok {
		return s
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a non-fatal event during normalization.
type Warning struct {
	Kind WarningKind
	Char uint16 // 0 for font-wide warnings
	Msg  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Msg)
}

// Report summarizes a normalization run.
type Report struct {
	Rendered   int // number of glyphs processed
	Recomposed int // glyphs drawn onto a new canvas
	MaxDescent int
	Padding    int // effective descent padding
	MaxH       int // canonical (most frequent) height
	RawMaxH    int // maximum height
	Warnings   []Warning
}

func (r *Report) warn(kind WarningKind, ch uint16, format string, args ...interface{}) {
	w := Warning{Kind: kind, Char: ch, Msg: fmt.Sprintf(format, args...)}
	tracer().Infof("warning: %s", w.Msg)
	r.Warnings = append(r.Warnings, w)
}

// Count returns the number of warnings of a kind.
func (r *Report) Count(kind WarningKind) (n int) {
	for _, w := range r.Warnings {
		if w.Kind == kind {
			n++
		}
	}
	return
}
