package vos

// PTY describes the terminal a process is attached to.
type PTY struct {
	IsPTY bool
}

// VProc holds information about the running process.
type VProc interface {
	// Args holds command line arguments, including the command as Args[0].
	Args() []string

	// Executable returns the path name for the executable that started the
	// process.
	Executable() (string, error)
}

// VOS provides a virtual OS interface.
type VOS interface {
	VIO
	VProc

	SetPTY(PTY)
	GetPTY() PTY
	StartProcess(name string, argv []string, attr *ProcAttr) (VOS, error)
	Run() int
}
