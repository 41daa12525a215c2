package main

import (
	"fmt"
	"math"
	"time"
)

// LogsCommand prints the system control log file
type LogsCommand struct {
	Offset int64 `long:"offset" description:"start offset, negative counts from the end" default:"-1600"`
	Length int64 `long:"length" description:"bytes to read, 0 reads to the end"`
	Follow bool  `short:"f" long:"follow" description:"keep printing new entries"`
}

var logsCommand LogsCommand

// Execute implement Execute() method defined in flags.Commander interface, executes the given command
func (lc *LogsCommand) Execute(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	length := lc.Length
	if lc.Offset < 0 {
		length = 0
	}
	text, err := a.sink.ReadLog(lc.Offset, length)
	if err != nil {
		return err
	}
	fmt.Print(text)
	if !lc.Follow {
		return nil
	}

	// an offset past the end reports the current size
	_, offset, _, err := a.sink.ReadTailLog(math.MaxInt64, 0)
	if err != nil {
		return err
	}
	for {
		text, next, _, err := a.sink.ReadTailLog(offset, 64*1024)
		if err != nil {
			return err
		}
		fmt.Print(text)
		if next == offset {
			time.Sleep(time.Second)
		}
		offset = next
	}
}

func init() {
	parser.AddCommand("logs",
		"show the log",
		"print the tail of the system control log file",
		&logsCommand)
}
