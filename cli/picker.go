package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/masinc/search-cli/config"
	"github.com/masinc/search-cli/search"
	"github.com/morikuni/failure/v2"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("228")). // yellow
			Foreground(lipgloss.Color("0"))    // black

	aliasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)
)

// pickerModel lets the user filter providers and choose one
type pickerModel struct {
	providers []config.Provider
	filter    textinput.Model
	// matches holds indexes into providers
	matches []int
	cursor  int
	chosen  *config.Provider
}

// newPicker creates a picker with an initial filter query
func newPicker(providers []config.Provider, query string) *pickerModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "filter providers"
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.SetValue(query)
	ti.Focus()

	m := &pickerModel{
		providers: providers,
		filter:    ti,
	}
	m.applyFilter()
	return m
}

// Init initializes the picker model
func (m *pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles user input and updates the model state
func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if len(m.matches) > 0 {
				p := m.providers[m.matches[m.cursor]]
				m.chosen = &p
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// View renders the current state of the model
func (m *pickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	for i, idx := range m.matches {
		p := m.providers[idx]
		line := p.Name
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString("  " + line)
		if len(p.Aliases) > 0 {
			b.WriteString(" " + aliasStyle.Render(fmt.Sprintf("(%s)", strings.Join(p.Aliases, ", "))))
		}
		b.WriteString("\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(aliasStyle.Render("  no matching providers") + "\n")
	}

	b.WriteString(helpStyle.Render("↑/ctrl+p up • ↓/ctrl+n down • enter select • esc cancel"))
	return b.String()
}

// applyFilter keeps providers whose name or alias contains the query.
// The match is case-insensitive unless the query has an upper-case letter.
func (m *pickerModel) applyFilter() {
	query := m.filter.Value()
	caseSensitive := strings.ContainsAny(query, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	contains := func(s string) bool {
		if !caseSensitive {
			s = strings.ToLower(s)
		}
		return strings.Contains(s, query)
	}

	m.matches = m.matches[:0]
	for i, p := range m.providers {
		if contains(p.Name) {
			m.matches = append(m.matches, i)
			continue
		}
		for _, alias := range p.Aliases {
			if contains(alias) {
				m.matches = append(m.matches, i)
				break
			}
		}
	}

	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

// pickProvider runs the picker on the terminal and returns the chosen provider
func (a *app) pickProvider(providers []config.Provider, query string) (config.Provider, error) {
	if len(providers) == 0 {
		return search.Resolve(providers, query, false)
	}
	if !isTerminal(a.stdin) || !isTerminal(a.stderr) {
		return config.Provider{}, failure.New(NotATerminal,
			failure.Message("Interactive mode requires a terminal"),
		)
	}

	p := tea.NewProgram(
		newPicker(providers, query),
		tea.WithInput(a.stdin),
		tea.WithOutput(a.stderr),
	)

	final, err := p.Run()
	if err != nil {
		return config.Provider{}, failure.Wrap(err)
	}

	m, ok := final.(*pickerModel)
	if !ok || m.chosen == nil {
		return config.Provider{}, failure.New(Canceled,
			failure.Message("No provider selected"),
		)
	}
	return *m.chosen, nil
}
