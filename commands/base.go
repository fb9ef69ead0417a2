package commands

import (
	"fmt"
	"path"

	"github.com/fatih/color"
	"github.com/josephlewis42/sysargv/core/vos"
)

// AllCommands holds a list of all registered commands
var AllCommands = make(map[string]vos.ProcessFunc)

// mustAddBinCmd adds a command under /bin and /usr/bin.
func mustAddBinCmd(name string, cmd vos.ProcessFunc) {
	for _, dir := range []string{"/bin", "/usr/bin"} {
		full := path.Join(dir, name)
		if _, ok := AllCommands[full]; ok {
			panic(fmt.Sprintf("duplicate command %q", full))
		}
		AllCommands[full] = cmd
	}
}

// Resolve looks up a command by path or bare name, it returns nil if the
// command doesn't exist.
func Resolve(name string) vos.ProcessFunc {
	if cmd, ok := AllCommands[name]; ok {
		return cmd
	}
	return AllCommands[path.Join("/bin", path.Base(name))]
}

var ColorBoldRed = color.New(color.FgRed, color.Bold)

// ShouldColor reports whether output to the process's terminal should be
// colorized.
func ShouldColor(virtOS vos.VOS) bool {
	return virtOS.GetPTY().IsPTY
}

// Sprintf formats like fmt.Sprintf, applying c if the process is attached to
// a terminal. The process's terminal decides, not the host's stdout.
func Sprintf(virtOS vos.VOS, c *color.Color, format string, a ...interface{}) string {
	if !ShouldColor(virtOS) {
		return fmt.Sprintf(format, a...)
	}

	forced := *c
	forced.EnableColor()
	return forced.Sprintf(format, a...)
}

func errorPrefix(virtOS vos.VOS) string {
	return Sprintf(virtOS, ColorBoldRed, "error:")
}

// PrintError writes a diagnostic for err to the process's stderr.
func PrintError(virtOS vos.VOS, err error) {
	fmt.Fprintf(virtOS.Stderr(), "%s %s\n", errorPrefix(virtOS), err)
}
