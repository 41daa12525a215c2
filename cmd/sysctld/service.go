package main

import (
	"fmt"

	"github.com/kardianos/service"
	log "github.com/sirupsen/logrus"
)

const serviceName = "sysctld"

// ServiceCommand install/uninstall/start/stop/run the sysctld service
type ServiceCommand struct {
}

var serviceCommand ServiceCommand

// program runs the monitor under the OS service manager
type program struct {
	app  *app
	stop func()
}

func (p *program) Start(s service.Service) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	stop, err := runMonitor(a, nil, 0, "")
	if err != nil {
		a.Close()
		return err
	}
	p.app, p.stop = a, stop
	return nil
}

func (p *program) Stop(s service.Service) error {
	if p.stop != nil {
		p.stop()
	}
	if p.app != nil {
		p.app.Close()
	}
	return nil
}

// Execute implement Execute() method defined in flags.Commander interface, executes the given command
func (sc ServiceCommand) Execute(args []string) error {
	if len(args) == 0 {
		showUsage()
		return nil
	}

	serviceArgs := make([]string, 0)
	if options.Configuration != "" {
		serviceArgs = append(serviceArgs, "--configuration="+options.Configuration)
	}
	for _, f := range options.EnvFile {
		serviceArgs = append(serviceArgs, "--env-file="+f)
	}
	serviceArgs = append(serviceArgs, "service", "run")

	svcConfig := &service.Config{
		Name:        serviceName,
		DisplayName: serviceName,
		Description: "System control and critical process monitoring",
		Arguments:   serviceArgs,
	}
	s, err := service.New(&program{}, svcConfig)
	if err != nil {
		log.WithError(err).Error("service init failed")
		return err
	}

	action := args[0]
	var done string
	switch action {
	case "install":
		err, done = s.Install(), "install"
	case "uninstall":
		s.Stop()
		err, done = s.Uninstall(), "uninstall"
	case "start":
		err, done = s.Start(), "start"
	case "stop":
		err, done = s.Stop(), "stop"
	case "run":
		return s.Run()
	default:
		showUsage()
		return nil
	}

	if err != nil {
		log.WithError(err).Errorf("Failed to %s service %s", done, serviceName)
		fmt.Printf("Failed to %s service %s: %v\n", done, serviceName, err)
		return err
	}
	fmt.Printf("Succeed to %s service %s\n", done, serviceName)
	return nil
}

func showUsage() {
	fmt.Println("usage: sysctld service install/uninstall/start/stop/run")
}

func init() {
	parser.AddCommand("service",
		"install/uninstall/start/stop/run service",
		"install/uninstall/start/stop service, run is invoked by the service manager",
		&serviceCommand)
}
