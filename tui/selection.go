package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akells/uniauth/auth"
)

// row is the drawable snapshot of one provider, frozen at the last
// fingerprint change so View never calls into a provider.
type row struct {
	auth    auth.Authenticator
	text    string
	icon    string
	loading bool
	errored bool
	errText string
}

// refreshRows re-snapshots every provider and records the fingerprint the
// snapshot was taken at.
func (m *Model) refreshRows() {
	m.fp = fingerprint(m.auths)
	rows := make([]row, 0, len(m.auths))
	for _, a := range m.auths {
		r := row{
			auth:    a,
			text:    displayName(a),
			icon:    a.Style().Icon,
			loading: a.IsLoading(),
			errored: a.IsErrored(),
		}
		if r.errored {
			if err := a.Err(); err != nil {
				r.errText = err.Error()
			}
		}
		rows = append(rows, r)
	}
	m.rows = rows
	if m.cursor >= len(m.visibleRows()) {
		m.cursor = 0
	}
}

// visibleRows applies the fuzzy filter, best matches first. An empty query
// keeps declaration order.
func (m Model) visibleRows() []row {
	if m.filterQuery == "" {
		return m.rows
	}
	q := strings.ToLower(m.filterQuery)
	type scored struct {
		r     row
		score int
	}
	out := make([]scored, 0, len(m.rows))
	for _, r := range m.rows {
		name := strings.ToLower(r.text)
		score := levenshtein.ComputeDistance(q, name)
		if strings.Contains(name, q) {
			score = 0
		}
		out = append(out, scored{r, score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score < out[j].score })
	rows := make([]row, len(out))
	for i, s := range out {
		rows[i] = s.r
	}
	return rows
}

func (m Model) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterOn {
		switch msg.Type {
		case tea.KeyEsc:
			m.filterOn = false
			m.filterQuery = ""
			m.cursor = 0
			return m, nil
		case tea.KeyEnter:
			m.filterOn = false
			return m, nil
		case tea.KeyBackspace:
			if m.filterQuery != "" {
				m.filterQuery = m.filterQuery[:len(m.filterQuery)-1]
			}
			m.cursor = 0
			return m, nil
		case tea.KeyRunes, tea.KeySpace:
			m.filterQuery += string(msg.Runes)
			m.cursor = 0
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.reset()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleRows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		m.filterOn = true
		m.filterQuery = ""
		m.cursor = 0
	case key.Matches(msg, m.keys.Select):
		rows := m.visibleRows()
		if m.cursor >= len(rows) {
			return m, nil
		}
		r := rows[m.cursor]
		// Loading and errored providers are visible but inert.
		if r.loading || r.errored {
			return m, nil
		}
		return m, m.askAccountName(r.auth)
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// askAccountName routes through the provider's account-name requirement
// before any login starts. The check can block, so it runs as a command.
func (m Model) askAccountName(a auth.Authenticator) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		need, err := a.ShouldRequestAccountName(ctx)
		return namePromptMsg{auth: a, need: need, err: err}
	}
}

func (m Model) viewSelection() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.appName))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Please select a service to log in"))
	b.WriteString("\n\n")

	rows := m.visibleRows()
	if len(rows) == 0 {
		b.WriteString(m.theme.Help.Render("(no matching providers)"))
		b.WriteString("\n")
	}
	for i, r := range rows {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		label := r.text
		if r.icon != "" {
			label = r.icon + " " + label
		}
		switch {
		case r.loading:
			label += " (loading)"
		case r.errored:
			label += " (unavailable)"
		}
		b.WriteString(marker)
		b.WriteString(m.theme.rowStyle(i == m.cursor, r.loading, r.errored).Render(label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.filterOn || m.filterQuery != "" {
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("filter: %s", m.filterQuery)))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render("↑/↓: move · enter: select · /: filter · esc: close"))
	return b.String()
}
