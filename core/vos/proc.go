package vos

import (
	"fmt"
	"os"
	"os/exec"
)

// ErrNotFound is the error resulting if a process couldn't be resolved.
var ErrNotFound = exec.ErrNotFound

// ProcessFunc is a "process" that can be run, it returns the exit status.
type ProcessFunc func(VOS) int

// ProcessResolver looks up a process by path, it returns nil if no process
// was found.
type ProcessResolver func(path string) ProcessFunc

// SingleProcessResolver resolves every path to the same process.
func SingleProcessResolver(process ProcessFunc) ProcessResolver {
	return func(path string) ProcessFunc {
		return process
	}
}

// ProcAttr holds the attributes that will be applied to a new process
// started by StartProcess.
type ProcAttr struct {
	// Files specifies the open files inherited by the new process.
	// If nil, the new process gets null I/O.
	Files VIO
	// PTY overrides the terminal inherited from the parent.
	PTY *PTY
}

// ProcOS is a process running on the virtual OS.
type ProcOS struct {
	VIO

	// Path to the executable that started the process, errors if blank.
	ExecutablePath string
	// Args holds command line arguments, including the command as Args[0].
	ProcArgs []string
	// Exec is the body of the process.
	Exec ProcessFunc

	pty      PTY
	resolver ProcessResolver
}

var _ VOS = (*ProcOS)(nil)

// NewInitProc creates the root process that others are started from.
// Processes started from it are looked up using resolver.
func NewInitProc(resolver ProcessResolver, pty PTY) *ProcOS {
	return &ProcOS{
		VIO:            NewNullIO(),
		ExecutablePath: "/sbin/init",
		ProcArgs:       []string{"/sbin/init"},
		Exec: func(VOS) int {
			return 0
		},
		pty:      pty,
		resolver: resolver,
	}
}

// Executable implements VOS.Executable.
func (p *ProcOS) Executable() (string, error) {
	if p.ExecutablePath == "" {
		return "", os.ErrNotExist
	}

	return p.ExecutablePath, nil
}

// Args implements VOS.Args.
func (p *ProcOS) Args() []string {
	return p.ProcArgs
}

// SetPTY implements VOS.SetPTY.
func (p *ProcOS) SetPTY(pty PTY) {
	p.pty = pty
}

// GetPTY implements VOS.GetPTY.
func (p *ProcOS) GetPTY() PTY {
	return p.pty
}

// StartProcess creates a new process with the program, arguments and
// attributes specified by name, argv and attr. The argv slice will become
// Args() in the new process, so it normally starts with the program name.
//
// The process doesn't execute until Run is called.
func (p *ProcOS) StartProcess(name string, argv []string, attr *ProcAttr) (VOS, error) {
	if attr == nil {
		attr = &ProcAttr{}
	}

	if argv == nil {
		argv = []string{name}
	}

	var proc ProcessFunc
	if p.resolver != nil {
		proc = p.resolver(name)
	}
	if proc == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	out := &ProcOS{
		ExecutablePath: name,
		ProcArgs:       append([]string(nil), argv...),
		Exec:           proc,
		pty:            p.pty,
		resolver:       p.resolver,
	}

	if attr.Files == nil {
		out.VIO = NewNullIO()
	} else {
		out.VIO = attr.Files
	}

	if attr.PTY != nil {
		out.pty = *attr.PTY
	}

	return out, nil
}

// Run executes the process and returns its exit status.
func (p *ProcOS) Run() int {
	return p.Exec(p)
}
