package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/masinc/search-cli/config"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

type configOptions struct {
	path  bool
	show  bool
	check bool
}

func newConfigCmd(a *app) *cobra.Command {
	var opts configOptions

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.path && !opts.show && !opts.check {
				return cmd.Help()
			}
			return a.runConfig(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.path, "path", "p", false, "Print config file path")
	cmd.Flags().BoolVarP(&opts.show, "show", "s", false, "Print config file content")
	cmd.Flags().BoolVarP(&opts.check, "check", "c", false, "Validate config file against the schema")
	return cmd
}

func (a *app) runConfig(opts configOptions) error {
	path, err := a.path()
	if err != nil {
		return failure.Wrap(err)
	}
	if _, err := config.Init(path); err != nil {
		return failure.Wrap(err)
	}

	if opts.path {
		fmt.Fprintln(a.stdout, path)
	}

	if !opts.show && !opts.check {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return failure.Translate(err, config.ErrIO,
			failure.Message(fmt.Sprintf("Cannot read config file: %s", path)),
			failure.Context{"path": path},
		)
	}

	if opts.show {
		if err := renderYAML(a.stdout, data, isTerminal(a.stdout)); err != nil {
			return failure.Wrap(err)
		}
	}

	if opts.check {
		if err := config.Check(data); err != nil {
			return failure.Wrap(err, failure.Context{"path": path})
		}
		fmt.Fprintf(a.stdout, "%s: ok\n", path)
	}
	return nil
}

// renderYAML highlights YAML with glamour on a terminal and copies it verbatim otherwise.
func renderYAML(w io.Writer, data []byte, terminal bool) error {
	if !terminal {
		_, err := w.Write(data)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return failure.Wrap(err)
	}

	out, err := renderer.Render("```yaml\n" + string(data) + "```\n")
	if err != nil {
		return failure.Wrap(err)
	}
	_, err = io.WriteString(w, out)
	return err
}
