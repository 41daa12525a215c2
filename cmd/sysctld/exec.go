package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/ochinchina/sysctld"
	"github.com/ochinchina/sysctld/types"
)

// ExecCommand dispatches command text, e.g. "sysctld exec open browser"
type ExecCommand struct {
	Compact bool `long:"compact" description:"print the result on a single line"`
}

// CommandsCommand lists the triggers in matching order
type CommandsCommand struct{}

// ProcessesCommand lists the running processes
type ProcessesCommand struct {
	Status string `short:"s" long:"status" description:"only list processes in this state" choice:"running" choice:"sleeping" choice:"zombie" choice:"stopped" choice:"unknown"`
	Sort   string `long:"sort" description:"sort order" choice:"name" choice:"cpu" default:"name"`
}

var execCommand ExecCommand
var commandsCommand CommandsCommand
var processesCommand ProcessesCommand

func printResult(r types.Result, compact bool) error {
	enc := json.NewEncoder(os.Stdout)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}

// Execute implement Execute() method defined in flags.Commander interface, executes the given command
func (x *ExecCommand) Execute(args []string) error {
	if len(args) == 0 {
		fmt.Println("usage: sysctld exec <command text>")
		return nil
	}
	a, err := newApp()
	if err != nil {
		return err
	}

	r := a.dispatcher.Execute(strings.Join(args, " "))
	err = printResult(r, x.Compact)
	a.Close()
	if err != nil {
		return err
	}
	if !r.Success {
		color.New(color.FgHiRed).Fprintln(os.Stderr, r.Message)
		os.Exit(1)
	}
	return nil
}

// Execute implement Execute() method defined in flags.Commander interface, executes the given command
func (x *CommandsCommand) Execute(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	for _, trigger := range a.dispatcher.Triggers() {
		fmt.Println(trigger)
	}
	return nil
}

// Execute implement Execute() method defined in flags.Commander interface, executes the given command
func (x *ProcessesCommand) Execute(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var filter sysctld.ProcessFilter
	if x.Status != "" {
		status := types.ParseProcessStatus(x.Status)
		filter.Status = &status
	}
	procs := a.service.ListRunningProcesses(filter)
	if x.Sort == "cpu" {
		procs.SortByCPU()
	} else {
		procs.SortByName()
	}
	headerColor.Printf("%8s %6s %6s  %-9s %s\n", "PID", "CPU%", "MEM%", "STATUS", "NAME")
	for _, p := range procs {
		fmt.Printf("%8d %6.1f %6.1f  %s %s\n", p.Pid, p.CPUPercent, p.MemoryPercent,
			statusColor(p.Status).Sprintf("%-9s", p.Status), p.Name)
	}
	return nil
}

var (
	headerColor  = color.New(color.FgHiCyan, color.Bold)
	runningColor = color.New(color.FgHiGreen)
	zombieColor  = color.New(color.FgHiRed)
	plainColor   = color.New(color.Reset)
)

func statusColor(s types.ProcessStatus) *color.Color {
	switch s {
	case types.StatusRunning:
		return runningColor
	case types.StatusZombie, types.StatusStopped:
		return zombieColor
	}
	return plainColor
}

func init() {
	parser.AddCommand("exec",
		"execute a command",
		"match the text against the triggers and run the first matching action",
		&execCommand)
	parser.AddCommand("commands",
		"list the command triggers",
		"list the command triggers in matching priority order",
		&commandsCommand)
	parser.AddCommand("processes",
		"list the running processes",
		"list the processes visible to the current user",
		&processesCommand)
}
