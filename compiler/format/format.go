// Package format maps Vulkan format codes to buffer data and numeric formats.
//
// Every row says whether the format may be used for vertex input,
// for color export, both or neither. Lookup never allocates and
// is safe for concurrent use.
package format

import (
	"tlog.app/go/errors"

	"github.com/slowlang/pipestate/compiler/api"
	"github.com/slowlang/pipestate/compiler/ir"
)

type (
	Entry struct {
		Format api.Format
		Dfmt   ir.BufDataFormat
		Nfmt   ir.BufNumFormat

		Vertex bool
		Color  bool
	}

	Usage int
)

const (
	UsageNone Usage = iota
	UsageVertex
	UsageColor
	UsageBoth
)

func init() {
	if len(table) != int(api.FormatCount) {
		panic(errors.New("format table has %d rows, want %d", len(table), api.FormatCount))
	}

	for i, e := range table {
		if e.Format != api.Format(i) {
			panic(errors.New("format table row %d is %v", i, e.Format))
		}
	}
}

// Lookup returns the data and numeric format for f.
// It returns (BufDataFormatInvalid, BufNumFormatUnorm) if f is unknown
// or not legal for the requested use.
func Lookup(f api.Format, colorExport bool) (ir.BufDataFormat, ir.BufNumFormat) {
	if uint64(f) >= uint64(len(table)) {
		return ir.BufDataFormatInvalid, ir.BufNumFormatUnorm
	}

	e := &table[f]

	if colorExport && e.Color || !colorExport && e.Vertex {
		return e.Dfmt, e.Nfmt
	}

	return ir.BufDataFormatInvalid, ir.BufNumFormatUnorm
}

func Get(f api.Format) (Entry, bool) {
	if uint64(f) >= uint64(len(table)) {
		return Entry{}, false
	}

	return table[f], true
}

// Entries returns a copy of the table.
func Entries() []Entry {
	r := make([]Entry, len(table))
	copy(r, table[:])

	return r
}

func (e Entry) Usage() Usage {
	switch {
	case e.Vertex && e.Color:
		return UsageBoth
	case e.Vertex:
		return UsageVertex
	case e.Color:
		return UsageColor
	default:
		return UsageNone
	}
}

func (u Usage) String() string {
	switch u {
	case UsageVertex:
		return "vertex"
	case UsageColor:
		return "color"
	case UsageBoth:
		return "both"
	default:
		return "none"
	}
}
