package env

import (
	"io"
	"os"
	"sort"

	"github.com/hashicorp/go-envparse"
)

type KeyValue struct {
	Key   string
	Value string
}

type KeyValues []KeyValue

// Read parses dotenv formatted content, sorted by key
func Read(r io.Reader) (KeyValues, error) {
	m, err := envparse.Parse(r)
	if err != nil {
		return nil, err
	}
	kvs := make(KeyValues, 0, len(m))
	for k, v := range m {
		kvs = append(kvs, KeyValue{Key: k, Value: v})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	return kvs, nil
}

func ReadFile(name string) (KeyValues, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Setenv exports every pair into the process environment
func (kvs KeyValues) Setenv() error {
	for _, kv := range kvs {
		if err := os.Setenv(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the files in order and exports them, later files win
func Load(names ...string) error {
	for _, name := range names {
		kvs, err := ReadFile(name)
		if err != nil {
			return err
		}
		if err := kvs.Setenv(); err != nil {
			return err
		}
	}
	return nil
}
