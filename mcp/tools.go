package mcp

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/masinc/search-cli/config"
	"github.com/masinc/search-cli/search"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

// searchArguments are the arguments shared by search_url and open_search
type searchArguments struct {
	Word     string `mapstructure:"word" validate:"required"`
	Provider string `mapstructure:"provider" validate:"omitempty"`
}

type providerInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	URL     string   `json:"url"`
	Browser string   `json:"browser,omitempty"`
}

func InitTools(cfg config.Config, opener search.Opener) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(SearchURL(cfg)))
	tools = append(tools, newServerTool(ListProviders(cfg)))
	tools = append(tools, newServerTool(OpenSearch(cfg, opener)))

	return tools
}

func searchTool(name, description string) mcp.Tool {
	return mcp.NewTool(
		name,
		mcp.WithDescription(description),
		mcp.WithString("word", mcp.Required(), mcp.Description("Search word")),
		mcp.WithString("provider", mcp.Description("Provider name or alias. The first provider is used when omitted")),
	)
}

// renderArguments decodes and validates tool arguments and renders the URL.
func renderArguments(ctx context.Context, cfg config.Config, arguments any) (string, config.Provider, error) {
	var args searchArguments
	if err := mapstructure.Decode(arguments, &args); err != nil {
		return "", config.Provider{}, err
	}
	if err := validate.StructCtx(ctx, args); err != nil {
		return "", config.Provider{}, err
	}

	p, err := search.Resolve(cfg.Providers, args.Provider, args.Provider != "")
	if err != nil {
		return "", config.Provider{}, err
	}
	u, err := search.Render(p.URL, args.Word)
	if err != nil {
		return "", config.Provider{}, err
	}
	return u, p, nil
}

func SearchURL(cfg config.Config) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return searchTool("search_url", "Build the search URL for a word without opening it"),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			u, _, err := renderArguments(ctx, cfg, req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(u), nil
		}
}

func OpenSearch(cfg config.Config, opener search.Opener) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return searchTool("open_search", "Open the search URL for a word in the user's browser"),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			u, p, err := renderArguments(ctx, cfg, req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := search.Launch(opener, u, search.SelectBrowser(cfg, p)); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(u), nil
		}
}

func ListProviders(cfg config.Config) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_providers",
			mcp.WithDescription("List configured search providers in declaration order"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			infos := make([]providerInfo, 0, len(cfg.Providers))
			for _, p := range cfg.Providers {
				infos = append(infos, providerInfo{
					Name:    p.Name,
					Aliases: p.Aliases,
					URL:     p.URL,
					Browser: p.Browser.String(),
				})
			}

			b, err := json.Marshal(infos)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(b)), nil
		}
}
