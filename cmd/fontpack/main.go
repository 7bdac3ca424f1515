/*
Command fontpack builds, renders and inspects bitmap font assets.

	fontpack build  <recipe> <outdir>  [--cell] [--fallbacks a,b] [--fontdirs d1:d2]
	fontpack render <assetdir> <text>  [-o text.bmp]
	fontpack inspect <assetdir>        [--glyphs] [--repl]

An asset directory holds the glyph table font.tbl and the sprite frames
(d00/f0000.bmp, …). Text arguments may contain "\n" for line breaks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'fontpack.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.cli")
}

// tracerKeys lists the trace keys of all packages.
var tracerKeys = []string{
	"fontpack.cli",
	"fontpack.font",
	"fontpack.faces",
	"fontpack.resources",
	"fontpack.raster",
	"fontpack.normalize",
	"fontpack.layout",
	"fontpack.sprite",
	"fontpack.tbl",
	"fontpack.recipe",
}

func main() {
	initDisplay()

	commando.
		SetExecutableName("fontpack").
		SetVersion("v0.1.0").
		SetDescription("Build bitmap fonts (glyph table + sprite frames) from outline fonts.")

	commando.
		Register("build").
		SetDescription("Rasterize the glyphs of a recipe and write table and frames to an asset directory.").
		SetShortDescription("build a font asset").
		AddArgument("recipe", "YAML recipe file", "").
		AddArgument("outdir", "output asset directory", "").
		AddFlag("cell,c", "render full cells with a fallback face chain", commando.Bool, nil).
		AddFlag("fallbacks,F", "comma separated fallback faces for --cell", commando.String, "-").
		AddFlag("fontdirs,D", "directories to search for font files", commando.String, "-").
		AddFlag("atlas,a", "columns of the preview atlas (0: no atlas)", commando.Int, 16).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runBuildCommand)

	commando.
		Register("render").
		SetDescription("Render text with a font asset into a grayscale image.").
		SetShortDescription("render text").
		AddArgument("assetdir", "asset directory", "").
		AddArgument("text", "text to render", "").
		AddFlag("output,o", "output image (.bmp or .png)", commando.String, "text.bmp").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runRenderCommand)

	commando.
		Register("inspect").
		SetDescription("Print the header and glyph table of a font asset.").
		SetShortDescription("inspect an asset").
		AddArgument("assetdir", "asset directory", "").
		AddFlag("glyphs,g", "list all glyph entries", commando.Bool, nil).
		AddFlag("repl,r", "measure lines interactively", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runInspectCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setup configures tracing and returns the process configuration.
func setup(flags map[string]commando.FlagValue) testconfig.Conf {
	level := optString(flags, "trace")
	if level == "" {
		level = "Error"
	}
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range tracerKeys {
		conf["trace."+key] = level
	}
	if dirs := optString(flags, "fontdirs"); dirs != "" {
		conf["fontdirs"] = dirs
	}
	if fb := optString(flags, "fallbacks"); fb != "" {
		conf["fallback-faces"] = fb
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	lv := tracing.TraceLevelFromString(level)
	for _, key := range tracerKeys {
		tracing.Select(key).SetTraceLevel(lv)
	}
	return conf
}

// optString reads a string flag; "-" stands for unset.
func optString(flags map[string]commando.FlagValue, name string) string {
	fv, ok := flags[name]
	if !ok {
		return ""
	}
	s, err := fv.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

// unescape turns the two-character sequence \n into a line break.
func unescape(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Printfln(format, args...)
	os.Exit(1)
}

func fail(err error) {
	tracer().Errorf(err.Error())
	if errors.Is(err, core.ErrMissing) {
		pterm.Info.Println("faces are searched in --fontdirs and the system font folders")
	}
	fatalf("%s", core.UserMessage(err))
}
