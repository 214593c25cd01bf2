package shell

import (
	"errors"
	"os"
)

// ErrExit is returned by RunBuiltin when the shell should terminate.
var ErrExit = errors.New("exit")

// IsBuiltin reports whether name must run inside the shell process.
// Builtins are dispatched only for single-stage pipelines; inside a longer
// pipeline the name falls through to normal resolution.
func IsBuiltin(name string) bool {
	return name == "cd" || name == "exit"
}

// RunBuiltin executes a builtin. cd changes the shell's own working
// directory, defaulting to $HOME and then to the filesystem root when HOME
// is unset; its failure is returned for the caller to report. exit ignores
// extra arguments and reports ErrExit.
func RunBuiltin(args []string) error {
	switch args[0] {
	case "exit":
		return ErrExit
	case "cd":
		target := "/"
		if len(args) > 1 {
			target = args[1]
		} else if home := os.Getenv("HOME"); home != "" {
			target = home
		}
		return os.Chdir(target)
	}
	return nil
}
