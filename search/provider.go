package search

import (
	"fmt"

	"github.com/masinc/search-cli/config"
	"github.com/masinc/search-cli/log"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// Find returns the first provider whose name or one of whose aliases equals name.
func Find(providers []config.Provider, name string) (config.Provider, bool) {
	return lo.Find(providers, func(p config.Provider) bool {
		return p.Name == name || lo.Contains(p.Aliases, name)
	})
}

// Resolve picks the provider for a search.
// Without a name the first provider is used, so list order defines the default.
func Resolve(providers []config.Provider, name string, named bool) (config.Provider, error) {
	if len(providers) == 0 {
		return config.Provider{}, failure.New(ErrNoProviders,
			failure.Message("No providers are configured"),
		)
	}

	if !named {
		log.Debug("Using default provider", "provider", providers[0].Name)
		return providers[0], nil
	}

	p, ok := Find(providers, name)
	if !ok {
		return config.Provider{}, failure.New(ErrProviderNotFound,
			failure.Message(fmt.Sprintf("The provider does not exist: '%s'", name)),
			failure.Context{
				"name": name,
			},
		)
	}

	log.Debug("Resolved provider", "name", name, "provider", p.Name)
	return p, nil
}
