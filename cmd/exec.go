// Package cmd implements the command-line interface for ioctx.
package cmd

import (
	"os"

	"github.com/ioctx-cli/ioctx/ioctx"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().BoolP("trace", "t", false, "Record the operation and print the trace afterwards")
}

// execCmd runs a child process through an IO context, forwarding its output and exit code.
var execCmd = &cobra.Command{
	Use:     "exec -- <command> [args...]",
	Short:   "Run a command through the IO context and report its exit code",
	Args:    cobra.MinimumNArgs(1),
	Example: "  ioctx exec --trace -- ls -la",
	Run: func(cmd *cobra.Command, args []string) {
		var ctx ioctx.IOContext = ioctx.NewRealIO()
		var tracer *ioctx.TracingIO
		if lo.Must(cmd.Flags().GetBool("trace")) {
			tracer = ioctx.NewTracingIO(ctx)
			ctx = tracer
		}

		result, err := ctx.ExecuteCommand(args)
		handleErr(err)

		_, _ = cmd.OutOrStdout().Write([]byte(result.Stdout))
		_, _ = cmd.ErrOrStderr().Write([]byte(result.Stderr))

		if tracer != nil {
			printTrace(cmd, tracer.Trace())
		}

		if result.ReturnCode != 0 {
			os.Exit(result.ReturnCode)
		}
	},
}
