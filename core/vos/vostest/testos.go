// Package vostest runs virtual OS processes in memory for tests.
package vostest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/sysargv/core/vos"
)

// NewDeterministicOS creates an init process that isn't attached to a
// terminal.
func NewDeterministicOS(resolver vos.ProcessResolver) *vos.ProcOS {
	return vos.NewInitProc(resolver, vos.PTY{})
}

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// PTY the process sees, defaults to no terminal.
	PTY vos.PTY

	ExitStatus int
}

// Command returns the Cmd struct to execute the process with the given
// arguments.
func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
	}
}

// Shell splits a shell style command line into arguments and returns a Cmd
// for them.
func Shell(process vos.ProcessFunc, line string) (*Cmd, error) {
	argv, err := shlex.Split(line, true)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", line, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("empty command line")
	}

	return Command(process, argv[0], argv[1:]...), nil
}

// CombinedOutput runs the command and returns its interleaved stdout and
// stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Output runs the command and returns its stdout.
func (c *Cmd) Output() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run starts the comand and waits for it to complete. The exit status is
// stored in ExitStatus.
func (c *Cmd) Run() error {
	if len(c.Argv) == 0 {
		return errors.New("no command")
	}

	deterministicOS := NewDeterministicOS(vos.SingleProcessResolver(c.Process))
	pty := c.PTY
	runner, err := deterministicOS.StartProcess(c.Argv[0], c.Argv, &vos.ProcAttr{
		Files: vos.NewVIOAdapter(c.Stdin, c.Stdout, c.Stderr),
		PTY:   &pty,
	})
	if err != nil {
		return err
	}

	c.ExitStatus = runner.Run()
	return nil
}
