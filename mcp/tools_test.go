package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/masinc/search-cli/config"
	"github.com/mark3labs/mcp-go/mcp"
)

type recordingOpener struct {
	urls []string
}

func (r *recordingOpener) Open(rawURL string) error {
	r.urls = append(r.urls, rawURL)
	return nil
}

func (r *recordingOpener) OpenWith(rawURL, browserName string) error {
	r.urls = append(r.urls, browserName+" "+rawURL)
	return nil
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()

	var req mcp.CallToolRequest
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("handler returned %d contents, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("handler returned %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestSearchURL(t *testing.T) {
	_, handler := SearchURL(config.Default())

	tests := []struct {
		name    string
		args    map[string]any
		want    string
		wantErr bool
	}{
		{
			name: "Default provider",
			args: map[string]any{"word": "aaa bbb"},
			want: "https://google.com/search?q=aaa%20bbb",
		},
		{
			name: "Alias",
			args: map[string]any{"word": "aaa", "provider": "d"},
			want: "https://duckduckgo.com/?q=aaa",
		},
		{
			name:    "Missing word",
			args:    map[string]any{"provider": "g"},
			wantErr: true,
		},
		{
			name:    "Unknown provider",
			args:    map[string]any{"word": "aaa", "provider": "yahoo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isErr := callTool(t, handler, tt.args)
			if isErr != tt.wantErr {
				t.Fatalf("IsError = %v, want %v (%s)", isErr, tt.wantErr, got)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("search_url = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenSearch(t *testing.T) {
	cfg := config.Default()
	cfg.Default = &config.DefaultConfig{Browser: "firefox"}
	opener := &recordingOpener{}
	_, handler := OpenSearch(cfg, opener)

	got, isErr := callTool(t, handler, map[string]any{"word": "aaa", "provider": "bing"})
	if isErr {
		t.Fatalf("open_search failed: %s", got)
	}

	want := []string{"firefox https://www.bing.com/search?q=aaa"}
	if diff := cmp.Diff(want, opener.urls); diff != "" {
		t.Errorf("open_search calls mismatch (-want +got):\n%s", diff)
	}
}

func TestListProviders(t *testing.T) {
	_, handler := ListProviders(config.Default())

	got, isErr := callTool(t, handler, nil)
	if isErr {
		t.Fatalf("list_providers failed: %s", got)
	}

	var infos []providerInfo
	if err := json.Unmarshal([]byte(got), &infos); err != nil {
		t.Fatalf("list_providers output is not JSON: %v", err)
	}
	want := []providerInfo{
		{Name: "google", Aliases: []string{"g"}, URL: "https://google.com/search?q={{ word }}"},
		{Name: "bing", URL: "https://www.bing.com/search?q={{ word }}"},
		{Name: "duckduckgo", Aliases: []string{"d"}, URL: "https://duckduckgo.com/?q={{ word }}"},
	}
	if diff := cmp.Diff(want, infos); diff != "" {
		t.Errorf("list_providers mismatch (-want +got):\n%s", diff)
	}
}

func TestInitTools(t *testing.T) {
	tools := InitTools(config.Default(), &recordingOpener{})

	var names []string
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	if diff := cmp.Diff([]string{"search_url", "list_providers", "open_search"}, names); diff != "" {
		t.Errorf("InitTools() mismatch (-want +got):\n%s", diff)
	}
}
