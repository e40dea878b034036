package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/netlist"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Key Bindings
// =============================================================================

type nodeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

var nodeKeys = nodeKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k nodeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
}

func (k nodeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Top, k.Bottom}, {k.Quit}}
}

// =============================================================================
// NodeListModel - Interactive node browser
// =============================================================================

// NodeListModel is the bubbletea model for browsing placed terminals and the
// elements attached to them.
type NodeListModel struct {
	Nodes    []graph.Node
	Attached map[string][]*netlist.Element
	Cursor   int
	Height   int
	Offset   int

	help help.Model
}

// NewNodeListModel creates a node browser over a placement. Attached
// elements come from the netlist the placement was solved from.
func NewNodeListModel(p graph.Placement, n *netlist.Netlist) NodeListModel {
	attached := make(map[string][]*netlist.Element)
	for _, node := range n.Nodes() {
		attached[node.Name] = node.Elements
	}
	return NodeListModel{
		Nodes:    p.Nodes,
		Attached: attached,
		Height:   15,
		help:     help.New(),
	}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, nodeKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, nodeKeys.Up):
			if m.Cursor > 0 {
				m.Cursor--
			}
		case key.Matches(msg, nodeKeys.Down):
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
			}
		case key.Matches(msg, nodeKeys.Top):
			m.Cursor = 0
		case key.Matches(msg, nodeKeys.Bottom):
			m.Cursor = max(len(m.Nodes)-1, 0)
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, the table border and the detail panel.
		m.Height = max(msg.Height-14, 5)
		m.help.Width = msg.Width
	}
	m.scroll()
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *NodeListModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m NodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Placed Nodes"))
	b.WriteString("\n")
	b.WriteString(m.help.View(nodeKeys))
	b.WriteString("\n\n")

	if len(m.Nodes) == 0 {
		b.WriteString(listDimStyle.Render("  (empty netlist)"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Nodes))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		kind := ""
		switch {
		case n.Port:
			kind = "port"
		case n.Primary:
			kind = "node"
		}
		rows = append(rows, []string{cursor, n.Name, formatCoord(n.X), formatCoord(n.Y), kind,
			fmt.Sprint(len(m.Attached[n.Name]))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "X", "Y", "Kind", "Elements").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			base := lipgloss.NewStyle()
			if col == 2 || col == 3 {
				base = base.Align(lipgloss.Right)
			}
			if m.Offset+row == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			if col == 4 {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nodes))))

	return b.String()
}

// detail lists the elements attached to the selected node.
func (m NodeListModel) detail() string {
	n := m.Nodes[m.Cursor]
	var b strings.Builder
	b.WriteString(listSelectedStyle.Render(n.Name))
	b.WriteString("\n")
	elements := m.Attached[n.Name]
	if len(elements) == 0 {
		b.WriteString(listDimStyle.Render("  no attached elements"))
		b.WriteString("\n")
		return b.String()
	}
	for _, e := range elements {
		other := e.Terminals[0]
		if other == n.Name {
			other = e.Terminals[1]
		}
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			StyleValue.Render(fmt.Sprintf("%-8s", e.Name)),
			listDimStyle.Render(fmt.Sprintf("%-6s", e.Direction())),
			StyleDim.Render(iconArrow),
			StyleHighlight.Render(other))
	}
	return b.String()
}
