package model

// Root the whole sysctld configuration
type Root struct {
	Settings *Settings        `yaml:"sysctld"`
	Log      *Log             `yaml:"log"`
	Monitor  *Monitor         `yaml:"monitor"`
	Critical []*CriticalGroup `yaml:"critical"`
	Commands []*Command       `yaml:"commands"`
}

// Settings the [sysctld] section
type Settings struct {
	// Platform overrides the detected operating system when set
	Platform         string  `ini:"platform" yaml:"platform"`
	ScreenshotPath   string  `ini:"screenshot_path" yaml:"screenshot_path" default:"screenshot.png"`
	CommandTimeout   int     `ini:"command_timeout" yaml:"command_timeout" default:"30"`
	HighCPUThreshold float64 `ini:"high_cpu_threshold" yaml:"high_cpu_threshold" default:"20"`
	TerminateSignal  string  `ini:"terminate_signal" yaml:"terminate_signal" default:"TERM"`
	// NetworkCacheTTL seconds a network report is reused, 0 disables reuse
	NetworkCacheTTL int `ini:"network_cache_ttl" yaml:"network_cache_ttl" default:"5"`
	// CPUSampleMs milliseconds process cpu usage is measured over
	CPUSampleMs int `ini:"cpu_sample_ms" yaml:"cpu_sample_ms" default:"500"`
}

// Log the [log] section
type Log struct {
	File     string `ini:"file" yaml:"file" default:"/dev/stdout,system_control.log"`
	Level    string `ini:"level" yaml:"level" default:"info"`
	Format   string `ini:"format" yaml:"format" default:"text"`
	MaxBytes int64  `ini:"max_bytes" yaml:"max_bytes" default:"52428800"`
	Backups  int    `ini:"backups" yaml:"backups" default:"10"`
}

// Monitor the [monitor] section. Durations are in seconds.
type Monitor struct {
	Interval      int      `ini:"interval" yaml:"interval" default:"120"`
	StopTimeout   int      `ini:"stop_timeout" yaml:"stop_timeout" default:"5"`
	Groups        []string `ini:"groups" yaml:"groups" delim:","`
	MetricsListen string   `ini:"metrics_listen" yaml:"metrics_listen"`
}

// CriticalGroup a [critical.<name>] section
type CriticalGroup struct {
	Name      string   `ini:"-" yaml:"name"`
	Processes []string `ini:"processes" yaml:"processes" delim:","`
}

// Command a [command.<trigger>] section. The declaration order of the
// commands is their matching priority.
type Command struct {
	Trigger string   `ini:"-" yaml:"trigger"`
	Verb    string   `ini:"verb" yaml:"verb"`
	App     string   `ini:"app" yaml:"app"`
	Args    []string `ini:"-" yaml:"args"`
}

// FindCritical returns the critical group with name or nil
func (r *Root) FindCritical(name string) *CriticalGroup {
	for _, g := range r.Critical {
		if g.Name == name {
			return g
		}
	}
	return nil
}
