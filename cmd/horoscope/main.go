package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joestump/horoscope/internal/build"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// run dispatches one invocation. Under a web server (GATEWAY_INTERFACE set)
// it always handles a CGI request and never parses args: servers pass the
// words of an ISINDEX query string as arguments, so they are client input.
func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	if getenv("GATEWAY_INTERFACE") != "" {
		if err := serveCGI(context.Background(), stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "horoscope",
		Short: "Daily horoscope page generated with Gemini",
		Long: "Horoscope — renders a static page with a freshly generated horoscope.\n" +
			"Run without a subcommand it handles one CGI request.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCGI(cmd.Context(), cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newOnceCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), build.String())
		},
	})
	return rootCmd
}
