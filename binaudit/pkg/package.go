package pkg

// Package represents a single dependency recorded in an audited binary.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Source  string `json:"source,omitempty"`
	Root    bool   `json:"root,omitempty"`
}

func (p Package) String() string {
	return p.Name + " " + p.Version
}
