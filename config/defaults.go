package config

import "github.com/ochinchina/sysctld/model"

// DefaultCommands the built-in trigger table in matching priority order
func DefaultCommands() []*model.Command {
	return []*model.Command{
		{Trigger: "open browser", Verb: "open_application", App: "chrome"},
		{Trigger: "close browser", Verb: "close_application", App: "chrome"},
		{Trigger: "open edge", Verb: "open_application", App: "msedge"},
		{Trigger: "open firefox", Verb: "open_application", App: "firefox"},
		{Trigger: "open notepad", Verb: "open_application", App: "notepad"},
		{Trigger: "open terminal", Verb: "open_application", App: "terminal"},
		{Trigger: "open vscode", Verb: "open_application", App: "code"},
		{Trigger: "system info", Verb: "system_info"},
		{Trigger: "get processes", Verb: "list_processes"},
		{Trigger: "network status", Verb: "network_status"},
		{Trigger: "restart computer", Verb: "restart"},
		{Trigger: "shutdown", Verb: "shutdown"},
		{Trigger: "sleep", Verb: "sleep"},
		{Trigger: "clear memory cache", Verb: "clear_memory_cache"},
		{Trigger: "end high cpu process", Verb: "terminate_high_cpu"},
		{Trigger: "take screenshot", Verb: "screenshot"},
		{Trigger: "show desktop", Verb: "show_desktop"},
		{Trigger: "lock computer", Verb: "lock"},
	}
}

// DefaultCritical the built-in critical process groups
func DefaultCritical() []*model.CriticalGroup {
	return []*model.CriticalGroup{
		{Name: "system", Processes: []string{"systemd", "launchd", "explorer.exe"}},
		{Name: "security", Processes: []string{"antivirus", "firewall", "security"}},
	}
}
