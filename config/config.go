package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochinchina/sysctld/model"
	"github.com/ochinchina/sysctld/model/ini"
	"github.com/ochinchina/sysctld/model/yaml"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Reader loads a configuration file into the model
type Reader interface {
	LoadPath(path string) (*model.Root, error)
}

// ReaderFor selects the reader by file extension, ini is the fallback
func ReaderFor(path string) Reader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return &yaml.Reader{}
	default:
		return &ini.Reader{}
	}
}

// Load reads, completes and validates the configuration at path. A missing
// file or an empty path yields the built-in configuration.
func Load(path string) (*model.Root, error) {
	var root *model.Root
	if len(path) == 0 {
		root = new(model.Root)
	} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.WithField("file", path).Info("configuration file not found, using built-in configuration")
		root = new(model.Root)
	} else {
		root, err = ReaderFor(path).LoadPath(path)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "load configuration %s", path)
		}
	}

	if err := Complete(root); err != nil {
		return nil, err
	}
	if err := model.Validate(root); err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid configuration %s", path)
	}
	return root, nil
}

// Complete fills absent sections with their defaults and expands environment
// variables
func Complete(root *model.Root) error {
	if len(root.Commands) == 0 {
		root.Commands = DefaultCommands()
	}
	if len(root.Critical) == 0 {
		root.Critical = DefaultCritical()
	}
	if err := root.ApplyDefaults(); err != nil {
		return err
	}
	ExpandEnv(root)
	return nil
}
