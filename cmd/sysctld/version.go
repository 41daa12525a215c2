package main

import (
	"fmt"
)

// Version is the version of sysctld
const Version = "v0.1"

// VersionCommand is interface to receive version read request
type VersionCommand struct {
}

var versionCommand VersionCommand

// Execute executes the get-version command
func (v VersionCommand) Execute(args []string) error {
	fmt.Println(Version)
	return nil
}

func init() {
	parser.AddCommand("version",
		"show the version of sysctld",
		"display the sysctld version",
		&versionCommand)
}
