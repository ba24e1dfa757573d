package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "logmig.dev/pkg/logmig/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.NormalBorder()).
			Padding(0, 2)

	faintStyle   = lipgloss.NewStyle().Faint(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TUI implements UI for interactive terminals. Per-entry progress is printed
// sequentially like SimpleUI; the estimation view pages through Bubble Tea
// when the entry list does not fit on screen.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI writing through the provided command.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayEstimation shows per-entry estimations, paginating when needed.
func (p *TUI) DisplayEstimation(ctx context.Context, records []m.FileRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	output := p.cmd.OutOrStdout()
	model := newEntryListModel(records)

	// Get initial terminal size.
	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If the list is small, just print and exit.
	if !model.needsPagination() {
		_, err := fmt.Fprint(output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// entryListModel is the Bubble Tea model for paging through manifest entries.
type entryListModel struct {
	records  []m.FileRecord
	height   int
	width    int
	offset   int // current scroll offset
	quitting bool
}

func newEntryListModel(records []m.FileRecord) entryListModel {
	return entryListModel{records: records}
}

func (em entryListModel) Init() tea.Cmd {
	return nil
}

func (em entryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.height = msg.Height
		em.width = msg.Width

		return em, nil

	case tea.KeyMsg:
		return em.handleKeyPress(msg)
	}

	return em, nil
}

func (em entryListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		em.quitting = true
		return em, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		em.quitting = true
		return em, tea.Quit

	case "down", "j":
		em.offset++
		if em.offset > em.maxOffset() {
			em.offset = em.maxOffset()
		}

	case "up", "k":
		em.offset--
		if em.offset < 0 {
			em.offset = 0
		}

	case "g", "home":
		em.offset = 0

	case "G", "end":
		em.offset = em.maxOffset()

	case "d", "pgdown":
		em.offset += em.itemsPerPage()
		if em.offset > em.maxOffset() {
			em.offset = em.maxOffset()
		}

	case "u", "pgup":
		em.offset -= em.itemsPerPage()
		if em.offset < 0 {
			em.offset = 0
		}
	}

	return em, nil
}

// itemsPerPage calculates how many entries fit on screen, reserving space for
// the header, totals and the navigation footer.
func (em entryListModel) itemsPerPage() int {
	if em.height == 0 {
		return 10
	}

	reserved := 10

	available := em.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (em entryListModel) maxOffset() int {
	maxOff := len(em.records) - em.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the list is too large to fit on screen.
func (em entryListModel) needsPagination() bool {
	if len(em.records) == 0 {
		return false
	}

	return len(em.records) > em.itemsPerPage() && em.height > 0
}

func (em entryListModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("logmig: console-to-logger migration"))
	b.WriteString("\n\n")

	if len(em.records) == 0 {
		b.WriteString("  No manifest entries\n")
		return b.String()
	}

	em.renderEntryList(&b)

	return b.String()
}

func (em entryListModel) renderEntryList(b *strings.Builder) {
	total := len(em.records)

	itemsPerPage := em.itemsPerPage()
	needsPagination := total > itemsPerPage && em.height > 0

	start := em.offset

	end := start + itemsPerPage
	if end > total {
		end = total
	}

	if start >= total {
		start = total - 1
		if start < 0 {
			start = 0
		}
	}

	display := em.records
	if needsPagination {
		display = em.records[start:end]
	}

	pending := 0
	totalCalls := 0

	for _, record := range em.records {
		totalCalls += record.CallSites

		if record.Outcome == m.WouldMigrate {
			pending++
		}
	}

	for _, record := range display {
		b.WriteString(renderEntryLine(record))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %d console call(s) across %d file(s), %d pending\n", totalCalls, total, pending)

	if needsPagination {
		b.WriteString("\n")

		currentPage := (em.offset / itemsPerPage) + 1
		totalPages := (total + itemsPerPage - 1) / itemsPerPage
		fmt.Fprintf(b, "  Page %d/%d | Showing %d-%d of %d\n",
			currentPage, totalPages, start+1, end, total)
		b.WriteString(faintStyle.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}
}

func renderEntryLine(record m.FileRecord) string {
	scope := record.Scope
	if scope == "" {
		scope = "(default)"
	}

	line := fmt.Sprintf("  %s: %s, %d console call(s) [%s]",
		record.Path, scope, record.CallSites, record.Outcome)

	switch record.Outcome {
	case m.WouldMigrate:
		return pendingStyle.Render(line)
	case m.SkippedMissing:
		return missingStyle.Render(line)
	case m.Migrated, m.SkippedAlreadyMigrated, m.SkippedNoConsoleCalls:
	}

	if record.CallSites == 0 {
		return faintStyle.Render(line)
	}

	return line
}
