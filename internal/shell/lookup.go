package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// LookPath resolves a command name to the executable that should run for
// it. A name containing a slash is taken as a path and only checked for
// being an executable regular file. Anything else is searched for in each
// directory of $PATH in order; an unset PATH searches nothing. The lookup
// is performed fresh on every call.
func LookPath(name string) (string, bool) {
	if strings.Contains(name, "/") {
		if isExecutable(name) {
			return name, true
		}
		return "", false
	}
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		full := filepath.Join(dir, name)
		if isExecutable(full) {
			return full, true
		}
	}
	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
