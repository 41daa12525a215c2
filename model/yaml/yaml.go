package yaml

import (
	"bytes"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/ochinchina/sysctld/model"
)

type Reader struct{}

func (r *Reader) LoadReader(reader io.Reader) (*model.Root, error) {
	dec := yaml.NewDecoder(reader)
	var v model.Root
	if err := dec.Decode(&v); err != nil {
		if err == io.EOF {
			return &v, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *Reader) LoadPath(path string) (*model.Root, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return r.LoadReader(bytes.NewReader(d))
}
