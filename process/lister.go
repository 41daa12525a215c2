package process

import (
	ps "github.com/mitchellh/go-ps"
)

// NameLister lists the executable names of running processes
type NameLister interface {
	ProcessNames() ([]string, error)
}

// PsLister lists names with a single cheap process table scan
type PsLister struct{}

// ProcessNames implements NameLister
func (PsLister) ProcessNames() ([]string, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		names = append(names, p.Executable())
	}
	return names, nil
}
