package sysctld

import (
	"fmt"
	"strings"

	"github.com/ochinchina/sysctld/config"
	"github.com/ochinchina/sysctld/model"
	"github.com/ochinchina/sysctld/process"
	"github.com/ochinchina/sysctld/types"
)

// Action a verb together with the application it acts on
type Action struct {
	Verb types.Verb
	App  string
	Args []string
}

func (a Action) String() string {
	if a.App == "" {
		return a.Verb.String()
	}
	if len(a.Args) == 0 {
		return fmt.Sprintf("%s(%s)", a.Verb, a.App)
	}
	return fmt.Sprintf("%s(%s %s)", a.Verb, a.App, strings.Join(a.Args, " "))
}

// Command binds a lower case trigger phrase to an action
type Command struct {
	Trigger string
	Action  Action
}

// DefaultCommands the built-in trigger table in priority order
func DefaultCommands() []Command {
	commands, err := CommandsFromModel(config.DefaultCommands())
	if err != nil {
		panic(err)
	}
	return commands
}

// CommandsFromModel converts the configured commands keeping their order
func CommandsFromModel(commands []*model.Command) ([]Command, error) {
	result := make([]Command, 0, len(commands))
	for _, c := range commands {
		verb, err := types.ParseVerb(c.Verb)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", c.Trigger, err)
		}
		result = append(result, Command{
			Trigger: strings.ToLower(strings.TrimSpace(c.Trigger)),
			Action: Action{
				Verb: verb,
				App:  c.App,
				Args: append([]string(nil), c.Args...),
			},
		})
	}
	return result, nil
}

// CriticalSetFromModel builds the critical set of the configured groups
func CriticalSetFromModel(groups []*model.CriticalGroup) *process.CriticalSet {
	result := make([]process.CriticalGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, process.CriticalGroup{Name: g.Name, Processes: g.Processes})
	}
	return process.NewCriticalSet(result)
}
