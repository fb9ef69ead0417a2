package commands

import (
	"fmt"
	"io"

	"github.com/josephlewis42/sysargv/core/argv"
	"github.com/josephlewis42/sysargv/core/config"
	"github.com/josephlewis42/sysargv/core/vos"
)

// WriteReport prints the argument vector, the greatest of the compared
// arguments and the program path to w.
//
// Nothing is written if args isn't longer than the layout's minimum. Unless
// the layout is strict, the vector line is written before the compared
// positions are read, so a short vector produces partial output along with
// an error matching argv.ErrOutOfRange.
func WriteReport(w io.Writer, args argv.Vector, layout *config.Report) error {
	if len(args) < layout.MinLength {
		return nil
	}

	if layout.Strict {
		if err := args.Require(layout.ComparePositions...); err != nil {
			return fmt.Errorf("insufficient arguments: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w, layout.ArgumentsLabel, args); err != nil {
		return err
	}

	greatest, err := args.Max(layout.ComparePositions...)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, layout.MaximumLabel, greatest); err != nil {
		return err
	}

	program, err := args.At(0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, layout.ProgramLabel, program)
	return err
}

// Sysargv reports on the arguments it was started with. Every argument is
// taken literally, none are treated as flags.
func Sysargv(virtOS vos.VOS) int {
	err := WriteReport(virtOS.Stdout(), argv.Vector(virtOS.Args()), config.Default())
	if err != nil {
		PrintError(virtOS, err)
		return 1
	}
	return 0
}

var _ vos.ProcessFunc = Sysargv

func init() {
	mustAddBinCmd("sysargv", Sysargv)
}
