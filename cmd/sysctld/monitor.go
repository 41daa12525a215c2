package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// MonitorCommand watches the critical processes until interrupted
type MonitorCommand struct {
	Groups        []string `short:"g" long:"group" description:"critical group to monitor, may be repeated"`
	Interval      int      `short:"i" long:"interval" description:"seconds between checks, the configured interval when 0"`
	MetricsListen string   `long:"metrics-listen" description:"serve /metrics and /healthz on this address"`
	Daemon        bool     `short:"d" long:"daemon" description:"run as daemon"`
}

var monitorCommand MonitorCommand

// runMonitor starts monitoring and the optional metrics server. The returned
// function stops both.
func runMonitor(a *app, groups []string, interval int, listen string) (func(), error) {
	if listen == "" {
		listen = a.root.Monitor.MetricsListen
	}
	d := time.Duration(interval) * time.Second
	for _, g := range a.monitorGroups(groups) {
		if err := a.monitor.Start(g, d); err != nil {
			a.monitor.StopAll()
			return nil, err
		}
	}

	ms := newMetricsServer(a)
	if listen != "" {
		if err := ms.start(listen); err != nil {
			a.monitor.StopAll()
			return nil, err
		}
	}
	return func() {
		ms.stop()
		if err := a.monitor.StopAll(); err != nil {
			a.log.WithError(err).Warn("failed to stop monitoring")
		}
	}, nil
}

func (mc *MonitorCommand) run() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	stop, err := runMonitor(a, mc.Groups, mc.Interval, mc.MetricsListen)
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	a.log.WithFields(log.Fields{"signal": sig}).Info("receive a signal to stop monitoring & exit")
	stop()
	return nil
}

// Execute implement Execute() method defined in flags.Commander interface, executes the given command
func (mc *MonitorCommand) Execute(args []string) error {
	if mc.Daemon {
		var err error
		Daemonize(func() { err = mc.run() })
		return err
	}
	return mc.run()
}

func init() {
	parser.AddCommand("monitor",
		"monitor the critical processes",
		"periodically check that the processes of the critical groups are running",
		&monitorCommand)
}
