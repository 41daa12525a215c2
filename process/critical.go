package process

import (
	"strings"
)

// CriticalGroup a named set of process name substrings expected to be running
type CriticalGroup struct {
	Name      string
	Processes []string
}

// CriticalSet the configured critical groups. It is built once and only read afterwards.
type CriticalSet struct {
	groups []CriticalGroup
	index  map[string]int
}

// NewCriticalSet creates a CriticalSet. Groups keep their order; a repeated
// group name merges into the first one.
func NewCriticalSet(groups []CriticalGroup) *CriticalSet {
	cs := &CriticalSet{index: make(map[string]int)}
	for _, g := range groups {
		names := make([]string, 0, len(g.Processes))
		for _, p := range g.Processes {
			if p = strings.TrimSpace(p); p != "" {
				names = append(names, p)
			}
		}
		if i, ok := cs.index[g.Name]; ok {
			cs.groups[i].Processes = append(cs.groups[i].Processes, names...)
			continue
		}
		cs.index[g.Name] = len(cs.groups)
		cs.groups = append(cs.groups, CriticalGroup{Name: g.Name, Processes: names})
	}
	return cs
}

// Groups returns the group names in configuration order
func (cs *CriticalSet) Groups() []string {
	names := make([]string, 0, len(cs.groups))
	for _, g := range cs.groups {
		names = append(names, g.Name)
	}
	return names
}

// Expected returns a copy of the process substrings of group
func (cs *CriticalSet) Expected(group string) ([]string, bool) {
	i, ok := cs.index[group]
	if !ok {
		return nil, false
	}
	return append([]string(nil), cs.groups[i].Processes...), true
}

// Match returns the group and entry whose substring occurs in name, case insensitive
func (cs *CriticalSet) Match(name string) (group string, entry string, ok bool) {
	lower := strings.ToLower(name)
	for _, g := range cs.groups {
		for _, p := range g.Processes {
			if strings.Contains(lower, strings.ToLower(p)) {
				return g.Name, p, true
			}
		}
	}
	return "", "", false
}

// ContainsProcess returns true if one of names contains the expected substring
func ContainsProcess(names []string, expected string) bool {
	e := strings.ToLower(expected)
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), e) {
			return true
		}
	}
	return false
}
