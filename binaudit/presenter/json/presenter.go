package json

import (
	"encoding/json"
	"io"

	"github.com/binaudit/binaudit/binaudit/binary"
	"github.com/binaudit/binaudit/binaudit/report"
)

// Presenter writes the audit result as a single JSON document.
type Presenter struct{}

// NewPresenter is a *Presenter constructor
func NewPresenter() *Presenter {
	return &Presenter{}
}

// document is the top-level JSON shape: the report plus the binary format it
// was filtered against.
type document struct {
	BinaryFormat string        `json:"binaryFormat"`
	Report       report.Report `json:"report"`
}

// Present writes the report to the given writer.
func (p *Presenter) Present(output io.Writer, format binary.Format, r *report.Report) error {
	doc := document{
		BinaryFormat: format.String(),
		Report:       *r,
	}

	enc := json.NewEncoder(output)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}
