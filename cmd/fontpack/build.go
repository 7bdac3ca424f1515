package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/npillmayer/fontpack/backend/sprite"
	"github.com/npillmayer/fontpack/backend/tbl"
	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bmfont"
	"github.com/npillmayer/fontpack/core/locate/resources"
	"github.com/npillmayer/fontpack/core/raster"
	"github.com/npillmayer/fontpack/core/raster/cellraster"
	"github.com/npillmayer/fontpack/core/raster/sfntraster"
	"github.com/npillmayer/fontpack/engine/normalize"
	"github.com/npillmayer/fontpack/input/recipe"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// AtlasFile is the name of the preview sheet in an asset directory.
const AtlasFile = "atlas.png"

func runBuildCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conf := setup(flags)
	rc, err := recipe.Load(args["recipe"].Value)
	if err != nil {
		fail(err)
	}
	rc.ApplyConfig(conf)
	f, err := rc.Font()
	if err != nil {
		fail(err)
	}
	pterm.Info.Printfln("%d glyphs from %d face(s)", f.Count(), len(f.Faces))
	resolver := resources.NewResolver(conf)
	var report *normalize.Report
	if mustFlagBool(flags["cell"], "cell") {
		report, err = buildCells(f, rc, resolver)
	} else {
		report, err = normalize.New(sfntraster.New(resolver)).Normalize(f)
	}
	if err != nil {
		fail(err)
	}
	if resolver.Registry != nil {
		tracer().Debugf("faces used: %v", resolver.Registry.Names())
	}
	printReport(report)
	outdir := args["outdir"].Value
	spr, t, err := tbl.WriteAsset(outdir, f)
	if err != nil {
		fail(err)
	}
	if cols := mustFlagInt(flags["atlas"], "atlas"); cols > 0 {
		sheet, _ := spr.Atlas(cols)
		if err := sprite.WriteImage(filepath.Join(outdir, AtlasFile), sheet); err != nil {
			fail(err)
		}
	}
	pterm.Success.Printfln("wrote %d entries to %s (line spacing %d, cap height %d)",
		len(t.Entries), outdir, t.Header.LnSpacing, t.Header.CapHeight)
}

// buildCells renders with the first recipe face as primary cell service.
// Without configured fallbacks, the packaged Go fonts are used.
func buildCells(f *bmfont.Font, rc *recipe.Recipe, resolver *resources.Resolver) (*normalize.Report, error) {
	if len(f.Faces) == 0 {
		return nil, core.Error(core.EINVALID, "recipe names no face")
	}
	height := int(f.Size)
	if height == 0 {
		if pending := f.Pending(); len(pending) > 0 {
			height = int(pending[0].Size)
		}
	}
	names := rc.FallbackFaces
	if len(names) == 0 {
		names = []string{resources.GoRegular, resources.GoMono}
	}
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	open := func(name string) (*cellraster.Service, error) {
		sf, err := resolver.ResolveFace(name)
		if err != nil {
			return nil, err
		}
		s, err := cellraster.New(sf, height)
		if err != nil {
			return nil, err
		}
		closers = append(closers, s)
		return s, nil
	}
	primary, err := open(f.Faces[0])
	if err != nil {
		return nil, err
	}
	var fallbacks []raster.CellService
	for _, name := range names {
		s, err := open(name)
		if err != nil {
			pterm.Warning.Printfln("fallback face %s unavailable: %s", name, core.UserMessage(err))
			continue
		}
		fallbacks = append(fallbacks, s)
	}
	return normalize.NormalizeCells(f, raster.NewChain(primary, fallbacks...))
}

func printReport(report *normalize.Report) {
	pterm.Info.Printfln("rendered %d glyphs, %d re-composed, max height %d, descent padding %d",
		report.Rendered, report.Recomposed, report.MaxH, report.Padding)
	if len(report.Warnings) == 0 {
		return
	}
	counts := map[normalize.WarningKind]int{}
	var order []normalize.WarningKind
	for _, w := range report.Warnings {
		if counts[w.Kind] == 0 {
			order = append(order, w.Kind)
		}
		counts[w.Kind]++
	}
	data := pterm.TableData{{"Warning", "Count", "First"}}
	for _, k := range order {
		for _, w := range report.Warnings {
			if w.Kind == k {
				data = append(data, []string{k.String(), fmt.Sprint(counts[k]), w.Msg})
				break
			}
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}
