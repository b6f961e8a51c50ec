// Package exampledata bundles a sample viewing activity export so the
// dashboard can be tried without a personal data download.
package exampledata

import (
	"bytes"
	_ "embed"
	"io"
)

// FileName is the name Netflix uses for the export inside CONTENT_INTERACTION.
const FileName = "ViewingActivity.csv"

//go:embed ViewingActivity.csv
var viewingActivity []byte

// Open returns a reader over the bundled export.
func Open() io.Reader {
	return bytes.NewReader(viewingActivity)
}

// Bytes returns a copy of the bundled export.
func Bytes() []byte {
	return bytes.Clone(viewingActivity)
}
