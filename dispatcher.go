package sysctld

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ochinchina/sysctld/faults"
	"github.com/ochinchina/sysctld/types"
	log "github.com/sirupsen/logrus"
)

// Performer runs an action, Service is the production implementation
type Performer interface {
	Perform(a Action) types.Result
}

// Dispatcher routes command text to the first trigger it contains
type Dispatcher struct {
	commands  []Command
	performer Performer
	log       log.FieldLogger
	metrics   *Metrics
}

// NewDispatcher creates a dispatcher over commands, whose order is their
// priority. Triggers are matched lower case.
func NewDispatcher(commands []Command, performer Performer, logger log.FieldLogger, metrics *Metrics) *Dispatcher {
	if logger == nil {
		logger = log.StandardLogger()
	}
	cmds := make([]Command, 0, len(commands))
	for _, c := range commands {
		c.Trigger = strings.ToLower(strings.TrimSpace(c.Trigger))
		if c.Trigger == "" {
			continue
		}
		cmds = append(cmds, c)
	}
	return &Dispatcher{commands: cmds, performer: performer, log: logger, metrics: metrics}
}

// Triggers returns every trigger in priority order
func (d *Dispatcher) Triggers() []string {
	triggers := make([]string, 0, len(d.commands))
	for _, c := range d.commands {
		triggers = append(triggers, c.Trigger)
	}
	return triggers
}

// Resolve returns the first command whose trigger occurs in text together
// with every matching command in declaration order
func (d *Dispatcher) Resolve(text string) (Command, []Command, bool) {
	input := strings.ToLower(text)
	var matches []Command
	for _, c := range d.commands {
		if strings.Contains(input, c.Trigger) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return Command{}, nil, false
	}
	return matches[0], matches, true
}

// Execute runs the action of the first matching command. Text matching no
// trigger yields a CommandNotRecognized Result listing the triggers.
func (d *Dispatcher) Execute(text string) types.Result {
	entry := d.log.WithFields(log.Fields{"command": text, "request_id": uuid.New().String()})
	first, matches, ok := d.Resolve(text)
	if !ok {
		entry.Info("command not recognized")
		d.metrics.observeUnrecognized()
		return types.Result{
			Success:           false,
			Message:           "Command not recognized",
			Error:             faults.CommandNotRecognized,
			AvailableCommands: d.Triggers(),
		}
	}
	if len(matches) > 1 {
		shadowed := make([]string, 0, len(matches)-1)
		for _, c := range matches[1:] {
			shadowed = append(shadowed, c.Trigger)
		}
		entry.WithField("shadowed", shadowed).Debug("several triggers matched, the first one wins")
	}
	entry = entry.WithFields(log.Fields{"trigger": first.Trigger, "action": first.Action.String()})
	entry.Info("execute command")
	r := d.performer.Perform(first.Action)
	entry.WithField("success", r.Success).Debug("command finished")
	return r
}
