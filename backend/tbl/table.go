package tbl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/fontpack/core"
)

// Signature starts every table.
var Signature = [4]byte{'W', 'o', 'o', '!'}

// Version is the only table version supported.
const Version uint8 = 1

// Sizes of the binary records.
const (
	HeaderSize = 17
	EntrySize  = 12
)

// Header holds the font-wide fields of a table.
type Header struct {
	Signature      [4]byte
	Version        uint8
	ScriptCategory uint16
	CharCount      uint16
	LnSpacing      uint32
	CapHeight      uint32
}

// Entry describes one character.
type Entry struct {
	Code    uint16
	_       [2]byte
	Advance uint8
	Height  uint8
	Flag    uint8
	_       uint8
	Frame   uint16
	_       [2]byte
}

func (e Entry) String() string {
	return fmt.Sprintf("[0x%04x adv=%d h=%d flag=%d frame=%d]", e.Code, e.Advance, e.Height, e.Flag, e.Frame)
}

// Table is the in-memory form of a glyph metrics table.
type Table struct {
	Header  Header
	Entries []Entry
}

// NewTable creates an empty table with a valid signature and version.
func NewTable() *Table {
	return &Table{Header: Header{Signature: Signature, Version: Version}}
}

// WriteTo writes the binary form of t to w. The character count in the
// header is written as stored; it is not derived from the entries.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(t.Entries)*EntrySize))
	if err := binary.Write(buf, binary.LittleEndian, &t.Header); err != nil {
		return 0, core.WrapError(err, core.EINTERNAL, "cannot serialize table header")
	}
	if err := binary.Write(buf, binary.LittleEndian, t.Entries); err != nil {
		return 0, core.WrapError(err, core.EINTERNAL, "cannot serialize table entries")
	}
	return buf.WriteTo(w)
}

// ReadTable reads a table from r. The signature and version have to match,
// and r has to hold as many entries as the header announces.
func ReadTable(r io.Reader) (*Table, error) {
	t := &Table{}
	if err := binary.Read(r, binary.LittleEndian, &t.Header); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read table header")
	}
	if t.Header.Signature != Signature {
		return nil, core.Error(core.EINVALID, "bad table signature %q", t.Header.Signature[:])
	}
	if t.Header.Version != Version {
		return nil, core.Error(core.EINVALID, "unsupported table version %d", t.Header.Version)
	}
	t.Entries = make([]Entry, t.Header.CharCount)
	if err := binary.Read(r, binary.LittleEndian, t.Entries); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, core.WrapError(err, core.EINVALID, "table truncated, expected %d entries",
				t.Header.CharCount)
		}
		return nil, core.WrapError(err, core.EINVALID, "cannot read table entries")
	}
	tracer().Debugf("read table with %d entries", len(t.Entries))
	return t, nil
}
