package presenter

import "strings"

const (
	UnknownPresenter Option = iota
	JSONPresenter
	TablePresenter
)

// Options is the list of presenters selectable from the command line.
var Options = []Option{
	JSONPresenter,
	TablePresenter,
}

// Option is a presenter selection hint.
type Option int

// ParseOption returns the presenter option for a given user string.
func ParseOption(userStr string) Option {
	switch strings.ToLower(userStr) {
	case "json":
		return JSONPresenter
	case "table":
		return TablePresenter
	default:
		return UnknownPresenter
	}
}

func (o Option) String() string {
	switch o {
	case JSONPresenter:
		return "json"
	case TablePresenter:
		return "table"
	default:
		return "UnknownPresenter"
	}
}
