package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/gYonder/minsh/internal/config"
	"github.com/gYonder/minsh/internal/ui"
)

// Shell is the minsh read-eval-print loop.
type Shell struct {
	Config   *config.Config
	Executor *Executor
	Stderr   io.Writer

	rl          *readline.Instance
	interactive bool
}

// New creates a Shell. When stdin is a terminal, input goes through
// readline with history and interrupt handling; otherwise lines are read
// plainly and no prompt is written.
func New(cfg *config.Config) (*Shell, error) {
	sh := &Shell{
		Config:   cfg,
		Executor: NewExecutor(),
		Stderr:   os.Stderr,
	}
	sh.Executor.ReapBackground = cfg.ReapBackground
	sh.interactive = term.IsTerminal(int(os.Stdin.Fd()))

	if sh.interactive {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:            sh.Prompt(),
			HistoryFile:       cfg.HistoryFile,
			HistoryLimit:      cfg.HistorySize,
			HistorySearchFold: true,
			InterruptPrompt:   "^C",
			EOFPrompt:         "exit",
		})
		if err != nil {
			return nil, err
		}
		sh.rl = rl
	}
	return sh, nil
}

// Close releases the readline terminal, if any.
func (sh *Shell) Close() error {
	if sh.rl != nil {
		return sh.rl.Close()
	}
	return nil
}

// Prompt returns the prompt for the next read. A set PS1 is used verbatim,
// even when empty; otherwise the configured prompt, then "$ ", rendered
// through the UI styles.
func (sh *Shell) Prompt() string {
	if ps1, ok := os.LookupEnv("PS1"); ok {
		return ps1
	}
	p := sh.Config.Prompt
	if p == "" {
		p = "$ "
	}
	return ui.RenderPrompt(p)
}

// Run reads lines until end of input or an exit builtin, evaluating each.
// An interrupted read re-prompts on a fresh line.
func (sh *Shell) Run() {
	reader := bufio.NewReader(os.Stdin)

	for {
		line, err := sh.readLine(reader)
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return // io.EOF or the terminal went away
		}
		if _, done := sh.Eval(line); done {
			return
		}
	}
}

func (sh *Shell) readLine(reader *bufio.Reader) (string, error) {
	if sh.rl != nil {
		sh.rl.SetPrompt(sh.Prompt())
		return sh.rl.Readline()
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// Eval processes one input line: trims it, strips a single trailing & into
// the background flag, parses, dispatches single-command builtins, and
// otherwise hands the pipeline to the executor. It returns the pipeline's
// exit status and whether the shell should terminate. A nonzero foreground
// status is reported on stderr.
func (sh *Shell) Eval(line string) (int, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}

	background := false
	if strings.HasSuffix(line, "&") {
		background = true
		line = strings.TrimSpace(strings.TrimSuffix(line, "&"))
	}

	p := ParseLine(line)
	if len(p.Segments) == 0 {
		return 0, false
	}

	if len(p.Segments) == 1 && IsBuiltin(p.Segments[0].Args[0]) {
		if err := RunBuiltin(p.Segments[0].Args); err != nil {
			if errors.Is(err, ErrExit) {
				return 0, true
			}
			fmt.Fprintln(sh.Stderr, err)
		}
		return 0, false
	}

	status := sh.Executor.Run(p, background)
	if status != 0 {
		fmt.Fprintf(sh.Stderr, "Program terminated with exit code %d.\n", status)
	}
	return status, false
}
