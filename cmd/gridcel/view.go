package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridcel/gridcel/cel"
)

var (
	accentColor = lipgloss.Color("#3B82F6")
	errorColor  = lipgloss.Color("#EF4444")
	mutedColor  = lipgloss.Color("#6B7280")

	headerCellStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	cellStyle = lipgloss.NewStyle()

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	errorCellStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	addressStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)
)

// ViewCmd evaluates an input file and opens an interactive grid browser.
type ViewCmd struct {
	sheetFlags

	Input string `arg:"" help:"Input CSV file." type:"existingfile"`
}

func (c *ViewCmd) Run() error {
	if err := checkCSVPath(c.Input); err != nil {
		return err
	}
	delimiter, err := c.delimiterRune()
	if err != nil {
		return err
	}
	marker, err := c.markerRune()
	if err != nil {
		return err
	}

	records, err := readRecords(c.Input, delimiter)
	if err != nil {
		return err
	}
	header, data := splitHeader(records, c.Header)

	engine := cel.NewEngine(cel.Config{Marker: marker, FailFast: c.FailFast})
	grid := cel.NewGrid(data)
	cellErrs := engine.Evaluate(grid)

	failed := make(map[cel.CellAddress]error, len(cellErrs))
	for _, cellErr := range cellErrs {
		failed[cellErr.Addr] = cellErr.Err
	}

	model := viewModel{
		file:     c.Input,
		header:   header,
		rendered: grid.Render(),
		grid:     grid,
		failed:   failed,
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

type viewKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

var viewKeys = viewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

type viewModel struct {
	file     string
	header   []string
	rendered [][]string
	grid     *cel.Grid
	failed   map[cel.CellAddress]error

	cursor  cel.CellAddress
	rowTop  int
	width   int
	height  int
	started bool
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.started = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, viewKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, viewKeys.Up):
			if m.cursor.Row > 0 {
				m.cursor.Row--
			}
		case key.Matches(msg, viewKeys.Down):
			if m.cursor.Row < m.grid.Rows()-1 {
				m.cursor.Row++
			}
		case key.Matches(msg, viewKeys.Left):
			if m.cursor.Col > 0 {
				m.cursor.Col--
			}
		case key.Matches(msg, viewKeys.Right):
			if m.cursor.Col < m.grid.Cols()-1 {
				m.cursor.Col++
			}
		}
		m.scrollToCursor()
		return m, nil
	}

	return m, nil
}

func (m *viewModel) visibleRows() int {
	// Reserve lines for the title, column header, and the two status rows.
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *viewModel) scrollToCursor() {
	visible := m.visibleRows()
	if m.cursor.Row < m.rowTop {
		m.rowTop = m.cursor.Row
	}
	if m.cursor.Row >= m.rowTop+visible {
		m.rowTop = m.cursor.Row - visible + 1
	}
}

func (m viewModel) View() string {
	if !m.started || m.grid.Rows() == 0 {
		return statusStyle.Render("empty grid (q to quit)")
	}

	widths := m.columnWidths()

	var b strings.Builder
	b.WriteString(headerCellStyle.Render(m.file))
	b.WriteString("\n")
	b.WriteString(m.renderHeaderRow(widths))
	b.WriteString("\n")

	visible := m.visibleRows()
	for row := m.rowTop; row < m.grid.Rows() && row < m.rowTop+visible; row++ {
		b.WriteString(m.renderRow(row, widths))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	return b.String()
}

func (m viewModel) columnWidths() []int {
	widths := make([]int, m.grid.Cols())
	for col := range widths {
		widths[col] = len(columnTitle(m.header, col))
		for row := 0; row < m.grid.Rows(); row++ {
			if n := len(m.rendered[row][col]); n > widths[col] {
				widths[col] = n
			}
		}
		if widths[col] > 24 {
			widths[col] = 24
		}
	}
	return widths
}

func (m viewModel) renderHeaderRow(widths []int) string {
	parts := make([]string, len(widths))
	for col, width := range widths {
		parts[col] = headerCellStyle.Render(pad(columnTitle(m.header, col), width))
	}
	return strings.Join(parts, "  ")
}

func (m viewModel) renderRow(row int, widths []int) string {
	parts := make([]string, len(widths))
	for col, width := range widths {
		addr := cel.CellAddress{Row: row, Col: col}
		text := pad(m.rendered[row][col], width)

		style := cellStyle
		if _, bad := m.failed[addr]; bad {
			style = errorCellStyle
		}
		if addr == m.cursor {
			style = cursorStyle
		}
		parts[col] = style.Render(text)
	}
	return strings.Join(parts, "  ")
}

func (m viewModel) renderStatus() string {
	raw, _ := m.grid.RawAt(m.cursor)
	detail := raw
	if err, bad := m.failed[m.cursor]; bad {
		detail = fmt.Sprintf("%s → %v", raw, err)
	} else if value, ok := m.grid.ValueAt(m.cursor); ok && raw != value.Display() {
		detail = fmt.Sprintf("%s → %s", raw, value.Display())
	}

	line := addressStyle.Render(m.cursor.String()) + " " + statusStyle.Render(detail)
	help := statusStyle.Render("↑↓←→ move · q quit")
	return line + "\n" + help
}

func columnTitle(header []string, col int) string {
	if col < len(header) && header[col] != "" {
		return header[col]
	}
	return cel.ColumnLabel(col)
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
