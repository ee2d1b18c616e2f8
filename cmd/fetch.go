// Package cmd implements the command-line interface for ioctx.
package cmd

import (
	"fmt"

	"github.com/ioctx-cli/ioctx/color"
	"github.com/ioctx-cli/ioctx/filesystem"
	"github.com/ioctx-cli/ioctx/ioctx"
	"github.com/ioctx-cli/ioctx/key"
	"github.com/ioctx-cli/ioctx/style"
	"github.com/ioctx-cli/ioctx/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringP("output", "o", "", "Output file path (defaults to a name derived from the URL)")
	fetchCmd.Flags().BoolP("trace", "t", false, "Record every IO operation and print the trace afterwards")
	fetchCmd.Flags().BoolP("force", "f", false, "Overwrite the output file if it already exists")
	lo.Must0(viper.BindPFlag(key.FetchOverwrite, fetchCmd.Flags().Lookup("force")))
}

// fetchCmd downloads a URL and persists the response body, all through an IO context.
var fetchCmd = &cobra.Command{
	Use:     "fetch <url>",
	Short:   "Fetch a URL and save the response body to a file",
	Args:    cobra.ExactArgs(1),
	Example: "  ioctx fetch https://example.com/data.json -o data.json --trace",
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]

		output := lo.Must(cmd.Flags().GetString("output"))
		if output == "" {
			output = util.SanitizeFilename(url)
		}

		if !viper.GetBool(key.FetchOverwrite) {
			if exists := lo.Must(filesystem.API().Exists(output)); exists {
				handleErr(fmt.Errorf("output file %s already exists (pass --force to overwrite)", output))
			}
		}

		var ctx ioctx.IOContext = ioctx.NewRealIO()
		var tracer *ioctx.TracingIO
		if lo.Must(cmd.Flags().GetBool("trace")) {
			tracer = ioctx.NewTracingIO(ctx)
			ctx = tracer
		}

		status, err := fetchAndSave(ctx, url, output)
		handleErr(err)

		if status == 200 {
			cmd.Printf("%s saved %s\n", style.Fg(color.Green)("✓"), style.Bold(output))
		} else {
			cmd.Printf("%s status %d, nothing saved\n", style.Fg(color.Red)("✗"), status)
		}

		if tracer != nil {
			printTrace(cmd, tracer.Trace())
		}
	},
}

// fetchAndSave GETs url through ctx, logs the outcome, and writes the body to
// outputPath when the fetch succeeded. It returns the HTTP status code.
func fetchAndSave(ctx ioctx.IOContext, url, outputPath string) (int, error) {
	resp, err := ctx.HTTPGet(url, ioctx.RequestOptions{})
	if err != nil {
		return 0, err
	}

	_ = ctx.Log("info", fmt.Sprintf("received status code %d from %s", resp.StatusCode, url))

	if resp.StatusCode == 200 {
		if err := ctx.WriteFile(outputPath, []byte(resp.Text)); err != nil {
			return resp.StatusCode, err
		}
		_ = ctx.Log("info", fmt.Sprintf("wrote %s to %s",
			util.Quantify(len(resp.Text), "byte", "bytes"), outputPath))
	} else {
		_ = ctx.Log("error", fmt.Sprintf("failed to fetch data: %d", resp.StatusCode))
	}

	return resp.StatusCode, nil
}
