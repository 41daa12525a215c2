package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

// Options the global command line options
type Options struct {
	Configuration string   `short:"c" long:"configuration" description:"the configuration file, ini or yaml" default:"sysctld.ini"`
	EnvFile       []string `long:"env-file" description:"load environment variables from the file before reading the configuration"`
}

var options Options
var parser = flags.NewParser(&options, flags.Default & ^flags.PrintErrors)

func main() {
	if _, err := parser.Parse(); err != nil {
		flagsErr, ok := err.(*flags.Error)
		if ok {
			switch flagsErr.Type {
			case flags.ErrHelp:
				fmt.Fprintln(os.Stdout, err)
				os.Exit(0)
			case flags.ErrCommandRequired, flags.ErrUnknownCommand:
				fmt.Fprintln(os.Stderr, err)
				parser.WriteHelp(os.Stderr)
				os.Exit(2)
			default:
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		}
		log.WithError(err).Fatal("sysctld failed")
	}
}
