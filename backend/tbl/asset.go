package tbl

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/fontpack/backend/sprite"
	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bmfont"
)

// TableFile is the name of the table inside an asset directory.
const TableFile = "font.tbl"

// WriteAsset encodes f and stores table and sprite frames in dir.
func WriteAsset(dir string, f *bmfont.Font) (*sprite.Sprite, *Table, error) {
	spr, t, err := Encode(f)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, core.WrapError(err, core.EINTERNAL, "cannot create asset directory")
	}
	out, err := os.Create(filepath.Join(dir, TableFile))
	if err != nil {
		return nil, nil, core.WrapError(err, core.EINTERNAL, "cannot create table file")
	}
	_, err = t.WriteTo(out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = core.WrapError(cerr, core.EINTERNAL, "cannot write table file")
	}
	if err != nil {
		return nil, nil, err
	}
	if err := spr.Save(dir); err != nil {
		return nil, nil, err
	}
	return spr, t, nil
}

// ReadAsset loads table and frames from dir and decodes them.
func ReadAsset(dir string) (*bmfont.Font, *Table, error) {
	in, err := os.Open(filepath.Join(dir, TableFile))
	if err != nil {
		return nil, nil, core.WrapError(err, core.EMISSING, "no glyph table in %s", dir)
	}
	defer in.Close()
	t, err := ReadTable(in)
	if err != nil {
		return nil, nil, err
	}
	spr, err := sprite.Load(dir)
	if err != nil {
		return nil, nil, err
	}
	f, err := Decode(spr, t)
	if err != nil {
		return nil, nil, err
	}
	return f, t, nil
}
