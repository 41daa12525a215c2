package main

import (
	"time"

	"github.com/ochinchina/sysctld"
	"github.com/ochinchina/sysctld/config"
	"github.com/ochinchina/sysctld/logger"
	"github.com/ochinchina/sysctld/model"
	"github.com/ochinchina/sysctld/monitor"
	"github.com/ochinchina/sysctld/pkg/env"
	"github.com/ochinchina/sysctld/platform"
	"github.com/ochinchina/sysctld/process"
	"github.com/ochinchina/sysctld/signals"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// app the wired system control components
type app struct {
	root       *model.Root
	log        *log.Logger
	sink       logger.Logger
	registry   *prometheus.Registry
	service    *sysctld.Service
	dispatcher *sysctld.Dispatcher
	monitor    *monitor.Monitor
}

func newApp() (*app, error) {
	if err := env.Load(options.EnvFile...); err != nil {
		return nil, errors.Wrap(err, "load env file")
	}
	root, err := config.Load(options.Configuration)
	if err != nil {
		return nil, err
	}
	l, sink, err := logger.Setup(root.Log)
	if err != nil {
		return nil, errors.Wrap(err, "setup logging")
	}

	p := platform.Detect()
	if root.Settings.Platform != "" {
		p = platform.Parse(root.Settings.Platform)
	}
	sig, err := signals.ToSignal(root.Settings.TerminateSignal)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := sysctld.NewMetrics(registry)

	commands, err := sysctld.CommandsFromModel(root.Commands)
	if err != nil {
		return nil, err
	}
	critical := sysctld.CriticalSetFromModel(root.Critical)

	var host process.Host = process.NewSystemHost()
	if root.Settings.NetworkCacheTTL > 0 {
		host = process.NewCachedHost(host, time.Duration(root.Settings.NetworkCacheTTL)*time.Second)
	}

	runner := platform.NewExecRunner(time.Duration(root.Settings.CommandTimeout) * time.Second)
	ops := platform.New(p, runner, l)
	procs := process.NewSystemSource(sig, time.Duration(root.Settings.CPUSampleMs)*time.Millisecond)
	svc := sysctld.NewService(ops, procs, host, critical, l, sysctld.Options{
		ScreenshotPath:   root.Settings.ScreenshotPath,
		HighCPUThreshold: root.Settings.HighCPUThreshold,
		Metrics:          metrics,
	})
	mon := monitor.New(critical, process.PsLister{}, l, monitor.Options{
		Interval:    time.Duration(root.Monitor.Interval) * time.Second,
		StopTimeout: time.Duration(root.Monitor.StopTimeout) * time.Second,
		Registerer:  registry,
	})

	l.WithFields(log.Fields{
		"configuration": options.Configuration,
		"platform":      p.String(),
		"commands":      len(commands),
		"groups":        critical.Groups(),
	}).Debug("system control ready")

	return &app{
		root:       root,
		log:        l,
		sink:       sink,
		registry:   registry,
		service:    svc,
		dispatcher: sysctld.NewDispatcher(commands, svc, l, metrics),
		monitor:    mon,
	}, nil
}

// monitorGroups returns the groups to monitor, the configured ones unless
// groups is given, every critical group when neither names any
func (a *app) monitorGroups(groups []string) []string {
	if len(groups) > 0 {
		return groups
	}
	if len(a.root.Monitor.Groups) > 0 {
		return a.root.Monitor.Groups
	}
	names := make([]string, 0, len(a.root.Critical))
	for _, g := range a.root.Critical {
		names = append(names, g.Name)
	}
	return names
}

func (a *app) Close() {
	if err := a.monitor.StopAll(); err != nil {
		a.log.WithError(err).Warn("failed to stop monitoring")
	}
	a.sink.Close()
}
