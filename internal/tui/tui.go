package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gabe/ecopatrol/internal/config"
	"github.com/gabe/ecopatrol/internal/display"
	"github.com/gabe/ecopatrol/internal/filter"
	"github.com/gabe/ecopatrol/internal/layout"
	"github.com/gabe/ecopatrol/internal/models"
	"github.com/gabe/ecopatrol/internal/stats"
	"github.com/gabe/ecopatrol/internal/storage"
	"github.com/gabe/ecopatrol/internal/trend"
)

// Tab identifies a dashboard view
type Tab int

const (
	TabMap Tab = iota
	TabAnalytics
	TabReport
	TabTasks
	numTabs
)

var tabNames = [numTabs]string{"Map", "Analytics", "Report", "Tasks"}

// tabFromName maps a config tab name onto a Tab, falling back to the map
func tabFromName(name string) Tab {
	for i, tabName := range tabNames {
		if strings.EqualFold(tabName, name) {
			return Tab(i)
		}
	}
	return TabMap
}

// Store is the subset of the report store the dashboard needs
type Store interface {
	List() ([]models.EnvironmentalReport, error)
	Create(sub *storage.Submission) (*models.EnvironmentalReport, error)
}

// Options configures a dashboard session
type Options struct {
	Store   Store
	Changes <-chan struct{} // signals the store file changed; may be nil
	Config  *config.Config
	Trend   trend.Source // nil seeds from Config.Trend.Seed
	NoColor bool
}

type reportsLoadedMsg struct {
	reports []models.EnvironmentalReport
	err     error
}

type reportSubmittedMsg struct {
	report *models.EnvironmentalReport
	err    error
}

type storeChangedMsg struct{}

type toastExpiredMsg struct{}

// Model is the dashboard state. Reports, stats and the trend week form the
// snapshot every tab renders from.
type Model struct {
	ActiveTab Tab

	store   Store
	changes <-chan struct{}

	reports []models.EnvironmentalReport
	stats   stats.Stats
	week    trend.Week
	loadErr error

	categoryFilter *Chooser
	statusFilter   *Chooser
	form           reportForm
	toasts         *ToastQueue

	recentCount int
	mapWidth    int
	mapHeight   int
	display     display.Options

	width  int
	height int
}

// NewModel creates a dashboard model from opts
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	src := opts.Trend
	if src == nil {
		src = trend.NewSource(cfg.Trend.Seed)
	}

	categories := []string{filter.All}
	for _, c := range models.Categories {
		categories = append(categories, string(c))
	}
	statuses := []string{filter.All}
	for _, s := range models.Statuses {
		statuses = append(statuses, string(s))
	}

	displayOpts := display.DefaultOptions()
	displayOpts.ColorEnabled = !opts.NoColor

	return Model{
		ActiveTab:      tabFromName(cfg.Dashboard.DefaultTab),
		store:          opts.Store,
		changes:        opts.Changes,
		stats:          stats.Aggregate(nil),
		week:           trend.Weekly(src),
		categoryFilter: NewChooser(categories),
		statusFilter:   NewChooser(statuses),
		form:           newReportForm(),
		toasts:         NewToastQueue(),
		recentCount:    cfg.Dashboard.RecentCount,
		mapWidth:       cfg.Map.Width,
		mapHeight:      cfg.Map.Height,
		display:        displayOpts,
	}
}

var startProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// Run starts the dashboard and blocks until the user quits
func Run(opts Options) error {
	return startProgram(NewModel(opts))
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadReports(m.store), waitForChange(m.changes))
}

func loadReports(store Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return reportsLoadedMsg{}
		}
		reports, err := store.List()
		return reportsLoadedMsg{reports: reports, err: err}
	}
}

func submitReport(store Store, sub *storage.Submission) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return reportSubmittedMsg{err: fmt.Errorf("no report store")}
		}
		report, err := store.Create(sub)
		return reportSubmittedMsg{report: report, err: err}
	}
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func expireToast() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

// pushToast queues a toast, starting the expiry timer if none is showing
func (m *Model) pushToast(toast Toast) tea.Cmd {
	m.toasts.Push(toast)
	if m.toasts.Len() == 1 {
		return expireToast()
	}
	return nil
}

// criteria is the task filter selected by the two choosers
func (m Model) criteria() filter.Criteria {
	category, _ := m.categoryFilter.Selected()
	status, _ := m.statusFilter.Selected()
	c, err := filter.ParseCriteria(category, status)
	if err != nil {
		return filter.Criteria{}
	}
	return c
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reportsLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			log.WithError(msg.err).Error("failed to load reports")
			return m, nil
		}
		m.loadErr = nil
		m.reports = msg.reports
		m.stats = stats.Aggregate(msg.reports)
		return m, nil

	case storeChangedMsg:
		return m, tea.Batch(loadReports(m.store), waitForChange(m.changes))

	case reportSubmittedMsg:
		if msg.err != nil {
			return m, m.pushToast(Toast{Message: "Could not submit: " + msg.err.Error(), IsError: true})
		}
		resetCmd := m.form.reset()
		toastCmd := m.pushToast(Toast{Message: fmt.Sprintf("Report %s submitted. Thank you!", msg.report.ID)})
		return m, tea.Batch(resetCmd, toastCmd, loadReports(m.store))

	case toastExpiredMsg:
		m.toasts.Pop()
		if m.toasts.Len() > 0 {
			return m, expireToast()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.ActiveTab == TabReport {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, keys.NextTab):
		return m, m.switchTab((m.ActiveTab + 1) % numTabs)
	case key.Matches(msg, keys.PrevTab):
		return m, m.switchTab((m.ActiveTab + numTabs - 1) % numTabs)
	}

	if m.ActiveTab == TabReport {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.ReloadSnapshot):
		return m, loadReports(m.store)
	}

	if m.ActiveTab == TabTasks {
		switch {
		case key.Matches(msg, keys.CycleCategory):
			m.categoryFilter.Next()
		case key.Matches(msg, keys.CycleStatus):
			m.statusFilter.Next()
		case key.Matches(msg, keys.ResetFilters):
			m.categoryFilter.Reset(0)
			m.statusFilter.Reset(0)
		}
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		sub, err := m.form.submission()
		if err != nil {
			return m, m.pushToast(Toast{Message: err.Error(), IsError: true})
		}
		sub.Latitude = storage.CenterLatitude
		sub.Longitude = storage.CenterLongitude
		return m, submitReport(m.store, sub)
	case key.Matches(msg, keys.ClearForm):
		return m, m.form.reset()
	case key.Matches(msg, keys.NextField):
		return m, m.form.nextField()
	case key.Matches(msg, keys.PrevField):
		return m, m.form.prevField()
	}

	if m.form.focus == fieldCategory {
		switch {
		case key.Matches(msg, keys.OptionNext):
			m.form.category.Next()
		case key.Matches(msg, keys.OptionPrev):
			m.form.category.Prev()
		}
		return m, nil
	}
	return m, m.form.update(msg)
}

// switchTab activates t, focusing the form when entering the report tab
func (m *Model) switchTab(t Tab) tea.Cmd {
	m.ActiveTab = t
	if t == TabReport {
		return m.form.setFocus(m.form.focus)
	}
	return nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	var content string
	switch m.ActiveTab {
	case TabMap:
		content = m.renderMapTab()
	case TabAnalytics:
		content = m.renderAnalyticsTab()
	case TabReport:
		content = m.form.view()
	case TabTasks:
		content = display.RenderTasks(filter.Apply(m.reports, m.criteria()), m.criteria(), m.display)
	}
	if m.loadErr != nil {
		content = errorStyle.Render("Error loading reports: "+m.loadErr.Error()) + "\n\n" + content
	}
	sb.WriteString(contentStyle.Render(content))
	sb.WriteString("\n")

	if toast, ok := m.toasts.Peek(); ok {
		style := toastStyle
		if toast.IsError {
			style = toastErrorStyle
		}
		sb.WriteString(style.Render(toast.Message))
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderHelp())
	return sb.String()
}

func (m Model) renderHeader() string {
	logo := logoStyle.Render("eco") + logoDimStyle.Render("patrol")

	tabs := make([]string, 0, numTabs)
	for i, name := range tabNames {
		if Tab(i) == m.ActiveTab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return tabBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, logo, "  ", bar))
}

func (m Model) renderMapTab() string {
	summary := display.RenderSummary(m.stats.Summary(), m.display)
	grid := display.RenderMap(layout.AssignPositions(m.reports), m.mapWidth, m.mapHeight, m.display)
	caption := display.RenderExtent(m.reports, m.display)
	side := lipgloss.JoinVertical(lipgloss.Left,
		display.RenderLegend(m.display),
		display.RenderRecent(filter.Recent(m.reports, m.recentCount), m.display))

	left := lipgloss.JoinVertical(lipgloss.Left, grid, caption)
	return lipgloss.JoinVertical(lipgloss.Left,
		summary,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", side))
}

func (m Model) renderAnalyticsTab() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		display.RenderAnalytics(m.stats, m.display),
		display.RenderTrend(m.week, m.display))
}

func (m Model) renderHelp() string {
	bindings := []key.Binding{keys.NextTab, keys.PrevTab}
	switch m.ActiveTab {
	case TabReport:
		bindings = append(bindings, keys.PrevField, keys.NextField, keys.OptionPrev, keys.OptionNext, keys.Submit, keys.ClearForm, keys.ForceQuit)
	case TabTasks:
		bindings = append(bindings, keys.CycleCategory, keys.CycleStatus, keys.ResetFilters, keys.ReloadSnapshot, keys.Quit)
	default:
		bindings = append(bindings, keys.ReloadSnapshot, keys.Quit)
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+keyDescStyle.Render(h.Desc))
	}
	return helpStyle.Render(strings.Join(parts, "  "))
}
