package ini

import (
	"io"
	"strings"

	"github.com/creasty/defaults"
	"github.com/ochinchina/sysctld/model"
	"github.com/ochinchina/sysctld/util"
	"gopkg.in/ini.v1"
)

var loadOptions = ini.LoadOptions{IgnoreInlineComment: true}

type Reader struct{}

func (r *Reader) LoadReader(reader io.Reader) (*model.Root, error) {
	f, err := ini.LoadSources(loadOptions, reader)
	if err != nil {
		return nil, err
	}

	f.BlockMode = false
	return r.loadFile(f)
}

func (r *Reader) LoadPath(path string) (*model.Root, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, err
	}

	f.BlockMode = false
	return r.loadFile(f)
}

func (r *Reader) loadFile(f *ini.File) (*model.Root, error) {
	c := new(model.Root)
	if err := r.parse(f, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Reader) parse(f *ini.File, c *model.Root) error {
	var err error
	if c.Settings, err = parseSection(f, "sysctld", new(model.Settings)); err != nil {
		return err
	}
	if c.Log, err = parseSection(f, "log", new(model.Log)); err != nil {
		return err
	}
	if c.Monitor, err = parseSection(f, "monitor", new(model.Monitor)); err != nil {
		return err
	}
	if err = r.parseCritical(f, c); err != nil {
		return err
	}
	return r.parseCommands(f, c)
}

// parseSection maps the named section onto obj after applying defaults.
// A missing section yields nil so the defaults of the model apply later.
func parseSection[T any](f *ini.File, name string, obj *T) (*T, error) {
	section, err := f.GetSection(name)
	if err != nil {
		return nil, nil
	}
	if err := defaults.Set(obj); err != nil {
		return nil, err
	}
	if err := section.MapTo(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// parse the sections starts with "critical." prefix
func (r *Reader) parseCritical(f *ini.File, c *model.Root) error {
	for _, section := range f.ChildSections("critical") {
		obj := new(model.CriticalGroup)
		if err := section.MapTo(obj); err != nil {
			return err
		}
		obj.Name = section.Name()[len("critical."):]
		obj.Processes = stripEmpty(obj.Processes)
		c.Critical = append(c.Critical, obj)
	}
	return nil
}

// parse the sections starts with "command." prefix, keeping their order
func (r *Reader) parseCommands(f *ini.File, c *model.Root) error {
	for _, section := range f.ChildSections("command") {
		obj := new(model.Command)
		if err := section.MapTo(obj); err != nil {
			return err
		}
		obj.Trigger = section.Name()[len("command."):]
		if section.HasKey("args") {
			obj.Args = util.SplitArgs(section.Key("args").String())
		}
		c.Commands = append(c.Commands, obj)
	}
	return nil
}

func stripEmpty(values []string) []string {
	res := make([]string, 0, len(values))
	for _, s := range values {
		if s = strings.TrimSpace(s); len(s) > 0 {
			res = append(res, s)
		}
	}
	return res
}
