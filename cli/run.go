package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/masinc/search-cli/config"
	"github.com/masinc/search-cli/log"
	"github.com/masinc/search-cli/mcp"
	"github.com/masinc/search-cli/search"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

const usageExternal = "Usage: search [PROVIDER] WORD"

// app carries the process streams and the config loaded for one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	opener search.Opener

	// configPath is set by the --config flag
	configPath string
	cfg        *config.Config
}

// Run executes the main CLI functionality
func Run() error {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		opener: search.SystemOpener{},
	}
	return newRootCmd(a).Execute()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "search [provider] word",
		Short:         "Open a web search in the browser",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `search opens a web search for a word using the providers in
~/.config/search/config.yaml. The file is created with google, bing and
duckduckgo on first run.

Any arguments that are not a subcommand are a shorthand for "open":
1. search <word>             searches with the first provider
2. search <provider> <word>  searches with the named provider or alias`,
		Example: `  search golang              # search word
  search - < words.txt       # search word from stdin
  search g golang            # alias
  search config --path       # print config file path
  search list                # list providers`,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: a.completeRootArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseExternal(args)
			if err != nil {
				return err
			}
			return a.open(opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is $HOME/.config/search/config.yaml)")
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.AddCommand(
		newConfigCmd(a),
		newListCmd(a),
		newOpenCmd(a),
		newCompletionCmd(a),
		newJSONSchemaCmd(a),
		newVersionCmd(a),
		mcp.Command(a.loadConfig, a.opener),
	)
	return rootCmd
}

// parseExternal maps "[provider] word" onto the open command.
func parseExternal(args []string) (openOptions, error) {
	switch len(args) {
	case 1:
		return openOptions{word: args[0]}, nil
	case 2:
		return openOptions{
			provider: providerFlag{IsSet: true, Value: args[0]},
			word:     args[1],
		}, nil
	default:
		return openOptions{}, failure.New(InvalidArguments,
			failure.Message(usageExternal),
			failure.Context{
				"args": strings.Join(args, " "),
			},
		)
	}
}

// path returns the config file location for this invocation.
func (a *app) path() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.Path()
}

// loadConfig creates the config file if needed and loads it once.
func (a *app) loadConfig() (config.Config, error) {
	if a.cfg != nil {
		return *a.cfg, nil
	}

	path, err := a.path()
	if err != nil {
		return config.Config{}, failure.Wrap(err)
	}
	created, err := config.Init(path)
	if err != nil {
		return config.Config{}, failure.Wrap(err)
	}
	if created {
		log.Info("Created config file", "path", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, failure.Wrap(err)
	}
	a.cfg = &cfg
	return cfg, nil
}

func (a *app) completeRootArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return a.completeProviders(cmd, args, toComplete)
}

// completeProviders suggests provider names and aliases from the config.
func (a *app) completeProviders(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, p := range cfg.Providers {
		names = append(names, fmt.Sprintf("%s\t%s", p.Name, p.URL))
		for _, alias := range p.Aliases {
			names = append(names, fmt.Sprintf("%s\talias of %s", alias, p.Name))
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
