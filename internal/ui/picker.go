package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	dirtyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	unpushedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cleanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// PickItem is one worktree offered by the interactive picker.
type PickItem struct {
	Branch   string
	Path     string
	Dirty    bool // uncommitted changes present
	Unpushed bool // commits not on the tracking branch
}

// indicator renders the inline status marker. Uncommitted changes take
// precedence over unpushed commits.
func (i PickItem) indicator() string {
	switch {
	case i.Dirty:
		return dirtyStyle.Render("!")
	case i.Unpushed:
		return unpushedStyle.Render("↑")
	default:
		return cleanStyle.Render("✓")
	}
}

// PickResult holds the outcome of the picker.
type PickResult struct {
	// Indices of the chosen items, in the original input order.
	Indices   []int
	Cancelled bool
}

type pickerModel struct {
	items     []PickItem
	filtered  []int // indices into items, listing order preserved
	selected  map[int]bool
	textInput textinput.Model
	cursor    int
	done      bool
	cancelled bool
	maxHeight int
}

func newPickerModel(items []PickItem) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle

	filtered := make([]int, len(items))
	for i := range items {
		filtered[i] = i
	}

	return pickerModel{
		items:     items,
		filtered:  filtered,
		selected:  make(map[int]bool),
		textInput: ti,
		maxHeight: 10,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case "enter":
			m.done = true
			return m, tea.Quit

		case " ":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				idx := m.filtered[m.cursor]
				m.selected[idx] = !m.selected[idx]
			}
			return m, nil

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = m.filterItems(m.textInput.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

func (m pickerModel) filterItems(query string) []int {
	if query == "" {
		all := make([]int, len(m.items))
		for i := range m.items {
			all[i] = i
		}
		return all
	}

	branches := make([]string, len(m.items))
	for i, item := range m.items {
		branches[i] = item.Branch
	}

	matches := fuzzy.Find(query, branches)
	indices := make([]int, 0, len(matches))
	for _, match := range matches {
		indices = append(indices, match.Index)
	}
	// fuzzy ranks by score; the picker keeps listing order instead.
	sort.Ints(indices)
	return indices
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Select worktrees to remove:\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(dimStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			half := m.maxHeight / 2
			start = m.cursor - half
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			idx := m.filtered[i]
			item := m.items[idx]

			mark := "[ ]"
			if m.selected[idx] {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s %s", mark, item.indicator(), item.Branch)

			if i == m.cursor {
				sb.WriteString(cursorStyle.Render("> "))
				sb.WriteString(selectedStyle.Render(line))
			} else {
				sb.WriteString("  ")
				sb.WriteString(line)
			}
			sb.WriteString(" ")
			sb.WriteString(dimStyle.Render(item.Path))
			sb.WriteString("\n")
		}

		if len(m.filtered) > m.maxHeight {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("space select • ↑/↓ navigate • enter confirm • esc cancel"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("✓ clean  ! uncommitted changes  ↑ unpushed commits"))

	return sb.String()
}

// Pick shows the multi-select worktree picker and returns the chosen
// subset as indices into items, preserving input order.
func Pick(items []PickItem) (PickResult, error) {
	if len(items) == 0 {
		return PickResult{}, nil
	}

	p := tea.NewProgram(newPickerModel(items))
	finalModel, err := p.Run()
	if err != nil {
		return PickResult{}, err
	}

	m := finalModel.(pickerModel)
	if m.cancelled {
		return PickResult{Cancelled: true}, nil
	}

	var indices []int
	for i := range items {
		if m.selected[i] {
			indices = append(indices, i)
		}
	}
	return PickResult{Indices: indices}, nil
}
