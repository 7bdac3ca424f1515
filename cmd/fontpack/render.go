package main

import (
	"github.com/npillmayer/fontpack/backend/sprite"
	"github.com/npillmayer/fontpack/backend/tbl"
	"github.com/npillmayer/fontpack/engine/textlayout"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setup(flags)
	f, _, err := tbl.ReadAsset(args["assetdir"].Value)
	if err != nil {
		fail(err)
	}
	text := unescape(args["text"].Value)
	img, err := textlayout.Render(f, text)
	if err != nil {
		fail(err)
	}
	out := optString(flags, "output")
	if out == "" {
		out = "text.bmp"
	}
	if err := sprite.WriteImage(out, img); err != nil {
		fail(err)
	}
	pterm.Success.Printfln("wrote %s (%dx%d)", out, img.Bounds().Dx(), img.Bounds().Dy())
}
