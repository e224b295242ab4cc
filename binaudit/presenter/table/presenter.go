package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/binaudit/binaudit/binaudit/advisory"
	"github.com/binaudit/binaudit/binaudit/binary"
	"github.com/binaudit/binaudit/binaudit/report"
)

// Presenter renders the audit result as a human-readable table.
type Presenter struct{}

// NewPresenter is a *Presenter constructor
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present writes the report to the given writer.
func (p *Presenter) Present(output io.Writer, format binary.Format, r *report.Report) error {
	if r.Vulnerabilities.Count == 0 {
		_, err := io.WriteString(output, "No vulnerabilities found\n")
		return err
	}

	rows := make([][]string, 0, r.Vulnerabilities.Count)
	for _, v := range r.Vulnerabilities.List {
		rows = append(rows, []string{
			v.Package.Name,
			v.Package.Version,
			strings.Join(v.Versions.Patched, ", "),
			v.Advisory.ID,
			colorizeSeverity(v.Advisory.Severity),
		})
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Name", "Installed", "Fixed-In", "Advisory", "Severity"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()

	if len(r.Warnings) > 0 {
		if _, err := io.WriteString(output, "\n"); err != nil {
			return err
		}
		for _, w := range r.Warnings {
			if _, err := fmt.Fprintf(output, "warning: %s: %s\n", w.Package.Name, w.Message); err != nil {
				return err
			}
		}
	}

	return nil
}

func colorizeSeverity(severity advisory.Severity) string {
	switch severity {
	case advisory.SeverityCritical:
		return color.Red.Darken().Sprint(severity)
	case advisory.SeverityHigh:
		return color.Red.Sprint(severity)
	case advisory.SeverityMedium:
		return color.Yellow.Sprint(severity)
	case advisory.SeverityLow:
		return color.Green.Sprint(severity)
	}
	return severity.String()
}
