package config

import (
	"os"

	"github.com/ochinchina/sysctld/model"
)

type environmentExpansion struct{}

func (e environmentExpansion) Visit(node model.Node) model.Visitor {
	switch n := node.(type) {
	case *model.Settings:
		n.ScreenshotPath = os.ExpandEnv(n.ScreenshotPath)
	case *model.Log:
		n.File = os.ExpandEnv(n.File)
	case *model.Monitor:
		n.MetricsListen = os.ExpandEnv(n.MetricsListen)
	case *model.Command:
		n.App = os.ExpandEnv(n.App)
		for i, arg := range n.Args {
			n.Args[i] = os.ExpandEnv(arg)
		}
	}
	return e
}

// ExpandEnv replaces ${var} or $var in paths, applications and arguments
func ExpandEnv(m *model.Root) {
	var v environmentExpansion
	model.Walk(&v, m)
}
