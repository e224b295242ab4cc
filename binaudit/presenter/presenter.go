package presenter

import (
	"io"

	"github.com/binaudit/binaudit/binaudit/binary"
	"github.com/binaudit/binaudit/binaudit/presenter/json"
	"github.com/binaudit/binaudit/binaudit/presenter/table"
	"github.com/binaudit/binaudit/binaudit/report"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer, binary.Format, *report.Report) error
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(option Option) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter()
	case TablePresenter:
		return table.NewPresenter()
	default:
		return nil
	}
}
