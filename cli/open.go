package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/masinc/search-cli/config"
	"github.com/masinc/search-cli/log"
	"github.com/masinc/search-cli/search"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

// stdinWord is the word argument that reads the search word from stdin
const stdinWord = "-"

type openOptions struct {
	provider    providerFlag
	word        string
	interactive bool
	dryRun      bool
}

func newOpenCmd(a *app) *cobra.Command {
	var opts openOptions

	cmd := &cobra.Command{
		Use:   "open [--provider NAME] WORD",
		Short: "Search words",
		Long: `Open the search URL of WORD in the browser.
Without --provider the first provider in the config is used.
If WORD is "-" the word is read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.word = args[0]
			return a.open(opts)
		},
	}

	cmd.Flags().VarP(&opts.provider, "provider", "p", "Specify a search provider by name or alias")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Choose the provider interactively")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the URL instead of opening it")
	_ = cmd.RegisterFlagCompletionFunc("provider", a.completeProviders)

	return cmd
}

func (a *app) open(opts openOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return failure.Wrap(err)
	}

	var provider config.Provider
	if opts.interactive {
		provider, err = a.pickProvider(cfg.Providers, opts.provider.Value)
	} else {
		provider, err = search.Resolve(cfg.Providers, opts.provider.Value, opts.provider.IsSet)
	}
	if err != nil {
		return failure.Wrap(err)
	}

	word, err := a.readWord(opts.word)
	if err != nil {
		return failure.Wrap(err)
	}

	u, err := search.Render(provider.URL, word)
	if err != nil {
		return failure.Wrap(err)
	}
	log.Debug("Rendered URL", "provider", provider.Name, "url", u)

	if opts.dryRun {
		fmt.Fprintln(a.stdout, u)
		return nil
	}

	browser := search.SelectBrowser(cfg, provider)
	if err := search.Launch(a.opener, u, browser); err != nil {
		return failure.Wrap(err)
	}
	return nil
}

// readWord returns word, or reads it from stdin when word is "-".
// A terminal gets a prompt and a single line; a pipe is read to EOF.
func (a *app) readWord(word string) (string, error) {
	if word != stdinWord {
		return word, nil
	}

	var (
		data string
		err  error
	)
	if isTerminal(a.stdin) {
		fmt.Fprint(a.stderr, "Search word: ")
		data, err = bufio.NewReader(a.stdin).ReadString('\n')
		if errors.Is(err, io.EOF) {
			err = nil
		}
	} else {
		var b []byte
		b, err = io.ReadAll(a.stdin)
		data = string(b)
	}
	if err != nil {
		return "", failure.Translate(err, StdinRead,
			failure.Message("Cannot read search word from stdin"),
		)
	}

	return strings.TrimSpace(data), nil
}
