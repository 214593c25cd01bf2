package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/gYonder/minsh/internal/build"
	"github.com/gYonder/minsh/internal/config"
	"github.com/gYonder/minsh/internal/shell"
)

func main() {
	showVersion := pflag.Bool("version", false, "print version and exit")
	command := pflag.StringP("command", "c", "", "run a single command line and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Println(build.Version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "minsh: %v\n", err)
		cfg = config.Default()
	}

	sh, err := shell.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minsh: %v\n", err)
		os.Exit(1)
	}
	defer sh.Close()

	if *command != "" {
		status, _ := sh.Eval(*command)
		sh.Close()
		os.Exit(status)
	}

	sh.Run()
}
