package mcp

import (
	"github.com/masinc/search-cli/config"
	"github.com/masinc/search-cli/search"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

// ConfigLoader returns the config the server answers from
type ConfigLoader func() (config.Config, error)

// Command returns the MCP server command
func Command(load ConfigLoader, opener search.Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return failure.Wrap(err)
			}
			return NewServer(cfg, opener).Run()
		},
	}
}
