package util

import (
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandPath replaces a leading "~" or "~name" with the home directory of
// the current or the named user
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	first, rest := path, ""
	if i := strings.IndexAny(path, `/\`); i != -1 {
		first, rest = path[:i], path[i+1:]
	}

	var usr *user.User
	var err error
	if first == "~" {
		usr, err = user.Current()
	} else {
		usr, err = user.Lookup(first[1:])
	}
	if err != nil {
		return "", err
	}
	return filepath.Join(usr.HomeDir, rest), nil
}
