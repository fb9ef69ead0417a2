package cmd

import (
	"log"
	"os"

	"github.com/josephlewis42/sysargv/commands"
	"github.com/josephlewis42/sysargv/core/vos"
	"github.com/spf13/cobra"
)

// sysargvPath is the virtual executable the root command runs.
const sysargvPath = "/bin/sysargv"

var (
	// programName becomes the first element of the argument vector.
	programName = os.Args[0]
	// exitStatus holds the status of the last process run by rootCmd.
	exitStatus int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sysargv [ARG]...",
	Short: "Print command line arguments and the greatest of the first three.",
	Long: `Prints the argument vector, the lexicographically greatest of the
first three arguments and the program path.

Nothing is printed when no arguments are given. Arguments are never
interpreted as flags.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		argv := append([]string{programName}, args...)

		initProc := vos.NewInitProc(commands.Resolve, vos.DetectPTY(cmd.ErrOrStderr()))
		proc, err := initProc.StartProcess(sysargvPath, argv, &vos.ProcAttr{
			Files: vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		})
		if err != nil {
			exitStatus = 1
			return err
		}

		exitStatus = proc.Run()
		return nil
	},
}

// Execute runs the root command and exits the process with its status.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger := log.New(rootCmd.ErrOrStderr(), "", 0)
		logger.Printf("sysargv: %v", err)
		os.Exit(1)
	}

	os.Exit(exitStatus)
}
