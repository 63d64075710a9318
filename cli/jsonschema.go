package cli

import (
	"fmt"

	"github.com/masinc/search-cli/config"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func newJSONSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "jsonschema",
		Short: "Show config.yaml schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.SchemaJSON()
			if err != nil {
				return failure.Wrap(err)
			}
			fmt.Fprintln(a.stdout, string(b))
			return nil
		},
	}
}
