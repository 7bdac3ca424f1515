package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontpack/backend/sprite"
	"github.com/npillmayer/fontpack/backend/tbl"
	"github.com/npillmayer/fontpack/core/bmfont"
	"github.com/npillmayer/fontpack/engine/textlayout"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runInspectCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setup(flags)
	f, t, err := tbl.ReadAsset(args["assetdir"].Value)
	if err != nil {
		fail(err)
	}
	h := t.Header
	pterm.DefaultSection.Println("Header")
	pterm.Printfln("signature %q, version %d", h.Signature[:], h.Version)
	pterm.Printfln("script category %d, %d chars", h.ScriptCategory, h.CharCount)
	pterm.Printfln("line spacing %d, cap height %d", h.LnSpacing, h.CapHeight)
	placeholders := 0
	for _, code := range f.Codes() {
		if !f.Glyph(code).Valid {
			placeholders++
		}
	}
	pterm.Printfln("%d placeholder glyph(s)", placeholders)
	if mustFlagBool(flags["glyphs"], "glyphs") {
		printGlyphs(f, t)
	}
	if mustFlagBool(flags["repl"], "repl") {
		if err := repl(f); err != nil {
			fail(err)
		}
	}
}

func printGlyphs(f *bmfont.Font, t *tbl.Table) {
	pterm.DefaultSection.Println("Glyphs")
	data := pterm.TableData{{"Code", "Char", "Advance", "Height", "Flag", "Frame", "Bitmap"}}
	for _, e := range t.Entries {
		g := f.Glyph(e.Code)
		data = append(data, []string{
			fmt.Sprintf("0x%04x", e.Code),
			printable(rune(e.Code)),
			fmt.Sprint(e.Advance),
			fmt.Sprint(e.Height),
			fmt.Sprint(e.Flag),
			fmt.Sprint(e.Frame),
			g.HasBitmap.String(),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func printable(r rune) string {
	if r < 32 || r == 127 {
		return ""
	}
	return string(r)
}

// repl measures every line typed. A line starting with "save <file> " renders
// the rest of the line to an image file.
func repl(f *bmfont.Font) error {
	rl, err := readline.New("fontpack > ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line == "quit" {
			break
		}
		text, out := unescape(line), ""
		if rest, ok := strings.CutPrefix(line, "save "); ok {
			out, text, _ = strings.Cut(rest, " ")
			text = unescape(text)
		}
		w, h, err := textlayout.Extent(f, text)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		pterm.Printfln("%d x %d", w, h)
		if out != "" {
			img, err := textlayout.Render(f, text)
			if err == nil {
				err = sprite.WriteImage(out, img)
			}
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			pterm.Success.Printfln("wrote %s", out)
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}
