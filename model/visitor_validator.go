package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ochinchina/sysctld/platform"
	"github.com/ochinchina/sysctld/signals"
	"github.com/ochinchina/sysctld/types"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type validator struct {
	err      error
	root     *Root
	triggers map[string]bool
}

func (v *validator) Err() error {
	return v.err
}

func (v *validator) Visit(node Node) Visitor {
	switch n := node.(type) {
	case *Root:
		v.root = n
		v.triggers = make(map[string]bool)

	case *Settings:
		if len(n.Platform) > 0 && !platform.Parse(n.Platform).Supported() {
			multierr.AppendInto(&v.err, fmt.Errorf("unsupported platform %q", n.Platform))
		}

		if n.CommandTimeout <= 0 {
			multierr.AppendInto(&v.err, fmt.Errorf("command_timeout must be positive, got %d", n.CommandTimeout))
		}

		if n.HighCPUThreshold < 0 || n.HighCPUThreshold > 100 {
			multierr.AppendInto(&v.err, fmt.Errorf("high_cpu_threshold must be within [0, 100], got %v", n.HighCPUThreshold))
		}

		if n.NetworkCacheTTL < 0 {
			multierr.AppendInto(&v.err, fmt.Errorf("network_cache_ttl must not be negative, got %d", n.NetworkCacheTTL))
		}

		if n.CPUSampleMs < 0 {
			multierr.AppendInto(&v.err, fmt.Errorf("cpu_sample_ms must not be negative, got %d", n.CPUSampleMs))
		}

		if _, err := signals.ToSignal(n.TerminateSignal); err != nil {
			multierr.AppendInto(&v.err, err)
		}

	case *Log:
		if _, err := logrus.ParseLevel(n.Level); err != nil {
			multierr.AppendInto(&v.err, err)
		}

		if n.Format != "text" && n.Format != "json" {
			multierr.AppendInto(&v.err, fmt.Errorf("log format must be text or json, got %q", n.Format))
		}

	case *Monitor:
		if n.Interval < 0 {
			multierr.AppendInto(&v.err, fmt.Errorf("monitor interval must not be negative, got %d", n.Interval))
		}

		for _, g := range n.Groups {
			if v.root.FindCritical(g) == nil {
				multierr.AppendInto(&v.err, fmt.Errorf("monitor group %q is not a critical group", g))
			}
		}

	case *CriticalGroup:
		if len(n.Name) == 0 {
			multierr.AppendInto(&v.err, errors.New("critical group name missing"))
			return v
		}

		if len(n.Processes) == 0 {
			multierr.AppendInto(&v.err, fmt.Errorf("no processes for critical group %q", n.Name))
		}

	case *Command:
		if len(strings.TrimSpace(n.Trigger)) == 0 {
			multierr.AppendInto(&v.err, errors.New("command trigger missing"))
			// nothing to name the remaining errors with
			return v
		}

		trigger := strings.ToLower(n.Trigger)
		if v.triggers[trigger] {
			multierr.AppendInto(&v.err, fmt.Errorf("duplicate command trigger %q", n.Trigger))
		}
		v.triggers[trigger] = true

		verb, err := types.ParseVerb(n.Verb)
		if err != nil {
			multierr.AppendInto(&v.err, fmt.Errorf("command %q: %w", n.Trigger, err))
		} else if verb.NeedsApplication() && len(strings.TrimSpace(n.App)) == 0 {
			multierr.AppendInto(&v.err, fmt.Errorf("missing app for command %q", n.Trigger))
		}
	}

	return v
}

// Validate checks the whole configuration and reports every problem found
func Validate(m *Root) error {
	var v validator
	Walk(&v, m)
	return v.Err()
}
