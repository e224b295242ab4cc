package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/binaudit/binaudit/binaudit/advisory"
	"github.com/binaudit/binaudit/internal/log"
)

// Store is an in-memory index of advisories loaded from a database directory,
// keyed by the package name each advisory describes.
type Store struct {
	byPackage map[string][]advisory.Advisory
}

// NewStoreFromDir walks a directory tree and loads every ".toml" file as an
// advisory. Individual unreadable or malformed advisories are collected into
// a single error; the remaining advisories still load, so a partially
// corrupt database degrades rather than failing the whole audit.
func NewStoreFromDir(fs afero.Fs, dir string) (*Store, error) {
	store := &Store{
		byPackage: make(map[string][]advisory.Advisory),
	}

	var loadErr *multierror.Error
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".toml") {
			return nil
		}

		f, err := fs.Open(path)
		if err != nil {
			loadErr = multierror.Append(loadErr, fmt.Errorf("unable to open advisory %q: %w", path, err))
			return nil
		}
		defer f.Close()

		adv, err := advisory.Parse(f)
		if err != nil {
			loadErr = multierror.Append(loadErr, fmt.Errorf("unable to load advisory %q: %w", path, err))
			return nil
		}

		store.add(adv)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk advisory database %q: %w", dir, err)
	}

	log.Debugf("loaded %d advisories across %d packages from %q", store.Count(), len(store.byPackage), dir)

	return store, loadErr.ErrorOrNil()
}

func (s *Store) add(adv advisory.Advisory) {
	name := adv.Metadata.Package
	s.byPackage[name] = append(s.byPackage[name], adv)
}

// GetByPackage returns all advisories on record for the given package name.
func (s *Store) GetByPackage(name string) []advisory.Advisory {
	return s.byPackage[name]
}

// Count returns the total number of advisories in the store.
func (s *Store) Count() int {
	var total int
	for _, advisories := range s.byPackage {
		total += len(advisories)
	}
	return total
}

// Packages returns the sorted names of all packages with advisories.
func (s *Store) Packages() []string {
	names := make([]string, 0, len(s.byPackage))
	for name := range s.byPackage {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
