package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Executor spawns pipeline stages as OS processes connected by anonymous
// pipes. Stderr receives the shell's own diagnostics; child stderr is
// inherited from the shell process.
type Executor struct {
	Stderr         io.Writer
	ReapBackground bool
}

// NewExecutor returns an Executor writing diagnostics to the process
// stderr, with background reaping enabled.
func NewExecutor() *Executor {
	return &Executor{Stderr: os.Stderr, ReapBackground: true}
}

var errStageFailed = errors.New("stage failed")

type pipePair struct {
	r, w *os.File
}

// Run executes the pipeline and returns the exit status of its last stage.
// Foreground runs wait for every stage in spawn order; a stage that exited
// normally contributes its exit status, anything else counts as 1.
// Background runs return 0 immediately without waiting.
//
// Every pipe end is closed in the parent once all stages have been
// launched; the descriptors then live only inside the children. Leaving a
// write end open here would keep downstream readers from ever seeing EOF.
func (e *Executor) Run(p *Pipeline, background bool) int {
	n := len(p.Segments)
	if n == 0 {
		return 0
	}

	pipes := make([]pipePair, 0, n-1)
	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			closePipes(pipes)
			fmt.Fprintln(e.Stderr, err)
			return 1
		}
		pipes = append(pipes, pipePair{r, w})
	}

	procs := make([]*exec.Cmd, n)
	statuses := make([]int, n)
	var opened []*os.File

	for i, seg := range p.Segments {
		cmd, files, err := e.stage(seg, i, n, pipes)
		opened = append(opened, files...)
		if err != nil {
			statuses[i] = 1
			continue
		}
		if err := cmd.Start(); err != nil {
			fmt.Fprintf(e.Stderr, "%s: command not found\n", seg.Args[0])
			statuses[i] = 1
			continue
		}
		procs[i] = cmd
	}

	// All children hold their own copies now.
	closePipes(pipes)
	for _, f := range opened {
		f.Close()
	}

	if background {
		if e.ReapBackground {
			for _, cmd := range procs {
				if cmd != nil {
					go func(c *exec.Cmd) { _ = c.Wait() }(cmd)
				}
			}
		}
		return 0
	}

	for i, cmd := range procs {
		if cmd == nil {
			continue
		}
		statuses[i] = waitStatus(cmd)
	}
	return statuses[n-1]
}

// stage wires up a single pipeline stage. File redirections apply only at
// the pipeline edges; on inner stages the pipe wins over whatever the
// parser carried through. Any failure has already been reported on Stderr
// when stage returns an error; the returned files still need closing.
func (e *Executor) stage(seg *Segment, i, n int, pipes []pipePair) (*exec.Cmd, []*os.File, error) {
	var opened []*os.File

	stdin := os.Stdin
	if i == 0 && seg.InputFile != "" {
		f, err := os.Open(seg.InputFile)
		if err != nil {
			fmt.Fprintf(e.Stderr, "%s: command not found\n", seg.InputFile)
			return nil, opened, errStageFailed
		}
		opened = append(opened, f)
		stdin = f
	}
	if i > 0 {
		stdin = pipes[i-1].r
	}

	stdout := os.Stdout
	if i == n-1 && seg.OutputFile != "" {
		flags := os.O_WRONLY | os.O_CREATE
		if seg.AppendOutput {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(seg.OutputFile, flags, 0o666)
		if err != nil {
			fmt.Fprintf(e.Stderr, "%s: command not found\n", seg.OutputFile)
			return nil, opened, errStageFailed
		}
		opened = append(opened, f)
		stdout = f
	}
	if i < n-1 {
		stdout = pipes[i].w
	}

	path, ok := LookPath(seg.Args[0])
	if !ok {
		fmt.Fprintf(e.Stderr, "%s: command not found\n", seg.Args[0])
		return nil, opened, errStageFailed
	}

	return &exec.Cmd{
		Path:   path,
		Args:   seg.Args,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: os.Stderr,
	}, opened, nil
}

// waitStatus reaps one child. Normal termination yields its exit status;
// death by signal or a wait failure counts as 1.
func waitStatus(cmd *exec.Cmd) int {
	err := cmd.Wait()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		return exitErr.ExitCode()
	}
	return 1
}

func closePipes(pipes []pipePair) {
	for _, pp := range pipes {
		pp.r.Close()
		pp.w.Close()
	}
}
