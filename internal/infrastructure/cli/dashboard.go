package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/blueprint/pkg/storage"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI overview of the current plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("BLUEPRINT_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		p := tea.NewProgram(initialModel(root))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var domainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

type model struct {
	table  table.Model
	goal   string
	domain string
	pages  int
	files  int
	usage  int
	limit  int
	err    error
}

func initialModel(root string) model {
	repo := storage.NewFilesystemRepository(root)

	// Load Data
	plan, err := repo.LoadPlan()
	if err != nil {
		return model{err: err}
	}

	stats, _ := repo.LoadUsage()
	usageCount := 0
	if stats != nil {
		for _, c := range stats.ProviderStats {
			usageCount += c
		}
	}

	cfg, _ := repo.LoadPolicy()
	tokenLimit := 0
	if cfg != nil {
		tokenLimit = cfg.TokenLimit
	}

	// Setup Table
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Subtask", Width: 60},
	}

	rows := []table.Row{}
	if plan.Planner != nil {
		for i, task := range plan.Planner.Subtasks {
			rows = append(rows, table.Row{fmt.Sprintf("%d", i+1), task})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))

	t.SetStyles(s)

	pages := 0
	if plan.Designer != nil {
		pages = len(plan.Designer.Pages)
	}
	files := 0
	if plan.Coder != nil {
		files = len(plan.Coder.FileStructure)
	}

	return model{
		table:  t,
		goal:   plan.Goal,
		domain: plan.Domain.String(),
		pages:  pages,
		files:  files,
		usage:  usageCount,
		limit:  tokenLimit,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	header := headerStyle.Render(m.goal)

	budgetText := fmt.Sprintf("AI Budget: %d", m.usage)
	if m.limit > 0 {
		budgetText = fmt.Sprintf("AI Budget: %d / %d", m.usage, m.limit)
	}
	if m.limit > 0 && m.usage >= m.limit {
		budgetText = warnStyle.Render(budgetText)
	}

	summary := fmt.Sprintf("Domain: %s  Pages: %d  Files: %d",
		domainStyle.Render(m.domain), m.pages, m.files)

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			summary,
			budgetText,
			"\nSubtasks:",
			m.table.View(),
			"\n[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}
