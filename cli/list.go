package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/masinc/search-cli/config"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List search providers",
		Long:  "Display the configured search providers in the order they are declared",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return failure.Wrap(err)
			}
			writeProviders(a.stdout, cfg.Providers, verbose)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show aliases")
	return cmd
}

func writeProviders(w io.Writer, providers []config.Provider, verbose bool) {
	for _, p := range providers {
		if verbose {
			fmt.Fprintf(w, "%-20s alias: [%s]\n", p.Name, strings.Join(p.Aliases, ", "))
		} else {
			fmt.Fprintln(w, p.Name)
		}
	}
}
