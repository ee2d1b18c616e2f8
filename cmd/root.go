// Package cmd implements the command-line interface for ioctx.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ioctx-cli/ioctx/color"
	"github.com/ioctx-cli/ioctx/constant"
	"github.com/ioctx-cli/ioctx/ioctx"
	"github.com/ioctx-cli/ioctx/key"
	"github.com/ioctx-cli/ioctx/log"
	"github.com/ioctx-cli/ioctx/style"
	"github.com/ioctx-cli/ioctx/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the ioctx application.
var rootCmd = &cobra.Command{
	Use:   constant.Ioctx,
	Short: "Run file, HTTP, and process effects through a recordable IO context",
	Long: "ioctx routes file IO, HTTP requests, process execution, and logging through a single\n" +
		"swappable context, so every command here can be traced, and every consumer of the\n" +
		"library can be tested against fixtures instead of the real world.\n\n" +
		style.Italic("    - deterministic side effects for Go"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// printTrace renders a recorded operation sequence, one line per completed call.
func printTrace(cmd *cobra.Command, trace []ioctx.TraceEntry) {
	cmd.Println(style.Bold("trace:"))
	for i, entry := range trace {
		cmd.Printf("  %s %s %v\n",
			style.Faint(fmt.Sprintf("%02d", i+1)),
			style.Fg(color.Cyan)(entry.Operation),
			entry.Args,
		)
	}
}
