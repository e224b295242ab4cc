package binaudit

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/binaudit/binaudit/binaudit/binary"
	"github.com/binaudit/binaudit/binaudit/db"
	"github.com/binaudit/binaudit/binaudit/filter"
	"github.com/binaudit/binaudit/binaudit/logger"
	"github.com/binaudit/binaudit/binaudit/matcher"
	"github.com/binaudit/binaudit/binaudit/pkg"
	"github.com/binaudit/binaudit/binaudit/report"
	"github.com/binaudit/binaudit/internal/log"
)

// SetLogger directs all library log output to the given logger.
func SetLogger(logger logger.Logger) {
	log.Log = logger
}

// LoadDatabase loads the advisory database from a directory on the host
// filesystem.
func LoadDatabase(dir string) (*db.Store, error) {
	return db.NewStoreFromDir(afero.NewOsFs(), dir)
}

// Audit runs the full audit over one binary: classify its container format,
// extract the embedded dependency list, match against the advisory provider,
// and filter out advisories that cannot apply to a binary of that format.
func Audit(reader io.ReaderAt, provider matcher.Provider) (binary.Format, report.Report, error) {
	format := binary.Detect(reader)
	log.Infof("binary classified as %s", format)

	packages, err := pkg.FromBinary(reader)
	if err != nil {
		return format, report.Report{}, err
	}
	log.Infof("discovered %d packages", len(packages))

	r := matcher.FindVulnerabilities(provider, packages...)
	filter.ReportByBinaryType(format, &r)

	return format, r, nil
}

// AuditFile is Audit over a file on disk.
func AuditFile(path string, provider matcher.Provider) (binary.Format, report.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return binary.Format{}, report.Report{}, fmt.Errorf("unable to open binary %q: %w", path, err)
	}
	defer f.Close()

	return Audit(f, provider)
}
