package vos

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// VIO holds the standard streams of a process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VIOAdapter exposes plain readers and writers as process streams.
type VIOAdapter struct {
	IStdin  io.ReadCloser
	IStdout io.WriteCloser
	IStderr io.WriteCloser
}

var _ VIO = (*VIOAdapter)(nil)

// NewVIOAdapter wraps the given streams. A nil stream behaves like
// /dev/null: reads report os.ErrClosed and writes are discarded.
func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	out := &VIOAdapter{
		IStdout: nopWriteCloser{stdout},
		IStderr: nopWriteCloser{stderr},
	}

	switch r := stdin.(type) {
	case nil:
		out.IStdin = closedReader{}
	case io.ReadCloser:
		out.IStdin = r
	default:
		out.IStdin = io.NopCloser(r)
	}

	return out
}

// NewNullIO creates I/O that can't be read from and discards writes.
func NewNullIO() VIO {
	return NewVIOAdapter(nil, nil, nil)
}

func (pr *VIOAdapter) Stdin() io.ReadCloser {
	return pr.IStdin
}

func (pr *VIOAdapter) Stdout() io.WriteCloser {
	return pr.IStdout
}

func (pr *VIOAdapter) Stderr() io.WriteCloser {
	return pr.IStderr
}

// nopWriteCloser keeps processes from closing streams they share with the
// parent.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type closedReader struct{}

func (closedReader) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}

func (closedReader) Close() error {
	return nil
}

// DetectPTY reports whether w is a terminal. Anything other than an
// *os.File is never a terminal.
func DetectPTY(w io.Writer) PTY {
	f, ok := w.(*os.File)
	if !ok {
		return PTY{}
	}

	fd := f.Fd()
	return PTY{IsPTY: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}
