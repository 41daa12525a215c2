package model

import "github.com/creasty/defaults"

// ApplyDefaults creates the missing sections with their default values.
// Present sections got their defaults from the reader, before the values of
// the file were applied.
func (r *Root) ApplyDefaults() error {
	if r.Settings == nil {
		r.Settings = new(Settings)
		if err := defaults.Set(r.Settings); err != nil {
			return err
		}
	}
	if r.Log == nil {
		r.Log = new(Log)
		if err := defaults.Set(r.Log); err != nil {
			return err
		}
	}
	if r.Monitor == nil {
		r.Monitor = new(Monitor)
		if err := defaults.Set(r.Monitor); err != nil {
			return err
		}
	}
	return nil
}

func (s *Settings) UnmarshalYAML(unmarshal func(interface{}) error) error {
	if err := defaults.Set(s); err != nil {
		return err
	}
	type plain Settings
	return unmarshal((*plain)(s))
}

func (l *Log) UnmarshalYAML(unmarshal func(interface{}) error) error {
	if err := defaults.Set(l); err != nil {
		return err
	}
	type plain Log
	return unmarshal((*plain)(l))
}

func (m *Monitor) UnmarshalYAML(unmarshal func(interface{}) error) error {
	if err := defaults.Set(m); err != nil {
		return err
	}
	type plain Monitor
	return unmarshal((*plain)(m))
}
