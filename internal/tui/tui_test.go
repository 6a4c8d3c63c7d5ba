package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gabe/ecopatrol/internal/config"
	"github.com/gabe/ecopatrol/internal/models"
	"github.com/gabe/ecopatrol/internal/storage"
)

type fakeStore struct {
	reports   []models.EnvironmentalReport
	submitted []*storage.Submission
	createErr error
}

func (s *fakeStore) List() ([]models.EnvironmentalReport, error) {
	return s.reports, nil
}

func (s *fakeStore) Create(sub *storage.Submission) (*models.EnvironmentalReport, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.submitted = append(s.submitted, sub)
	r := models.EnvironmentalReport{
		ID:            "new",
		Category:      sub.Category,
		Title:         sub.Title,
		Description:   sub.Description,
		Latitude:      sub.Latitude,
		Longitude:     sub.Longitude,
		Status:        models.StatusNew,
		Priority:      models.PriorityMedium,
		SubmittedDate: "2024-01-20",
		Address:       sub.Address,
	}
	s.reports = append(s.reports, r)
	return &r, nil
}

type fixedSource struct{ v float64 }

func (f fixedSource) Float64() float64 { return f.v }

func newTestModel(t *testing.T, store *fakeStore) Model {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	m := NewModel(Options{Store: store, Trend: fixedSource{v: 0.5}})
	updated, _ := m.Update(reportsLoadedMsg{reports: store.reports})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelInitialTab(t *testing.T) {
	m := NewModel(Options{})
	if m.ActiveTab != TabMap {
		t.Fatalf("expected map tab, got %d", m.ActiveTab)
	}

	cfg := config.DefaultConfig()
	cfg.Dashboard.DefaultTab = "tasks"
	m = NewModel(Options{Config: cfg})
	if m.ActiveTab != TabTasks {
		t.Fatalf("expected tasks tab, got %d", m.ActiveTab)
	}
}

func TestTabCycling(t *testing.T) {
	m := newTestModel(t, &fakeStore{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveTab != TabAnalytics {
		t.Fatalf("expected analytics tab, got %d", m.ActiveTab)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ActiveTab != TabTasks {
		t.Fatalf("expected wrap to tasks tab, got %d", m.ActiveTab)
	}
}

func TestViewShowsTabsAndSummary(t *testing.T) {
	m := newTestModel(t, &fakeStore{reports: storage.DemoReports()})

	view := m.View()
	for _, want := range []string{"Map", "Analytics", "Report", "Tasks", "Legend", "Latest reports"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if m.stats.Total != 5 {
		t.Fatalf("expected 5 reports in snapshot, got %d", m.stats.Total)
	}
}

func TestAnalyticsTab(t *testing.T) {
	m := newTestModel(t, &fakeStore{reports: storage.DemoReports()})
	m.ActiveTab = TabAnalytics

	view := m.View()
	if !strings.Contains(view, "40% of total") {
		t.Errorf("expected air share in analytics view:\n%s", view)
	}
	if !strings.Contains(view, "Mon") || !strings.Contains(view, "Sun") {
		t.Errorf("expected trend days in analytics view")
	}
}

func TestTaskFilterCycling(t *testing.T) {
	m := newTestModel(t, &fakeStore{reports: storage.DemoReports()})
	m.ActiveTab = TabTasks

	m, _ = press(t, m, runes("c"))
	if got := m.criteria().Category; got != models.CategoryAir {
		t.Fatalf("expected air filter, got %q", got)
	}

	view := m.View()
	if !strings.Contains(view, "Factory emissions") {
		t.Error("expected air report in filtered view")
	}
	if strings.Contains(view, "River contamination") {
		t.Error("did not expect water report in filtered view")
	}

	// air + resolved matches nothing
	m, _ = press(t, m, runes("s"))
	m, _ = press(t, m, runes("s"))
	m, _ = press(t, m, runes("s"))
	if got := m.criteria().Status; got != models.StatusResolved {
		t.Fatalf("expected resolved filter, got %q", got)
	}
	if !strings.Contains(m.View(), "No tasks found") {
		t.Error("expected empty message")
	}

	m, _ = press(t, m, runes("x"))
	if c := m.criteria(); c.Category != "" || c.Status != "" {
		t.Fatalf("expected filters cleared, got %+v", c)
	}
}

func TestFilterKeysIgnoredOutsideTasks(t *testing.T) {
	m := newTestModel(t, &fakeStore{})
	m, _ = press(t, m, runes("c"))
	if got := m.criteria().Category; got != "" {
		t.Fatalf("expected no filter, got %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, &fakeStore{})

	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}

	m.ActiveTab = TabReport
	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected ctrl+c to quit from the report tab")
	}
}

func TestFormTypingDoesNotQuit(t *testing.T) {
	m := newTestModel(t, &fakeStore{})
	m.ActiveTab = TabReport

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.form.focus != fieldTitle {
		t.Fatalf("expected title focus, got %d", m.form.focus)
	}
	m, _ = press(t, m, runes("q"))
	if got := m.form.input(fieldTitle).Value(); got != "q" {
		t.Fatalf("expected typed q, got %q", got)
	}
	if m.ActiveTab != TabReport {
		t.Fatal("expected to stay on report tab")
	}
}

func TestFormSubmit(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)
	m.ActiveTab = TabReport

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m.form.input(fieldTitle).SetValue("Burning leaves")
	m.form.input(fieldDescription).SetValue("Smoke every evening")
	m.form.input(fieldAddress).SetValue("Garden Ring 4")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	msg, ok := cmd().(reportSubmittedMsg)
	if !ok {
		t.Fatal("expected reportSubmittedMsg")
	}
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}

	if len(store.submitted) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(store.submitted))
	}
	sub := store.submitted[0]
	if sub.Category != models.CategoryAir || sub.Title != "Burning leaves" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if sub.Latitude != storage.CenterLatitude || sub.Longitude != storage.CenterLongitude {
		t.Fatalf("expected city centre coordinates, got %v,%v", sub.Latitude, sub.Longitude)
	}

	updated, _ := m.Update(msg)
	m = updated.(Model)
	toast, ok := m.toasts.Peek()
	if !ok || toast.IsError {
		t.Fatalf("expected success toast, got %+v", toast)
	}
	if !strings.Contains(toast.Message, "Report new submitted") {
		t.Fatalf("expected report id in toast, got %q", toast.Message)
	}
	if _, ok := m.form.category.Selected(); ok {
		t.Fatal("expected form reset")
	}
	if m.form.input(fieldTitle).Value() != "" {
		t.Fatal("expected title cleared")
	}
}

func TestFormSubmitValidation(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)
	m.ActiveTab = TabReport

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	toast, ok := m.toasts.Peek()
	if !ok || !toast.IsError {
		t.Fatalf("expected error toast, got %+v", toast)
	}
	if toast.Message != errMissingCategory.Error() {
		t.Fatalf("unexpected message %q", toast.Message)
	}
	if len(store.submitted) != 0 {
		t.Fatal("expected no submission")
	}
}

func TestSubmitErrorShowsToast(t *testing.T) {
	m := newTestModel(t, &fakeStore{})
	updated, _ := m.Update(reportSubmittedMsg{err: errors.New("disk full")})
	m = updated.(Model)

	toast, ok := m.toasts.Peek()
	if !ok || !toast.IsError || !strings.Contains(toast.Message, "disk full") {
		t.Fatalf("unexpected toast: %+v", toast)
	}
}

func TestToastExpiry(t *testing.T) {
	m := newTestModel(t, &fakeStore{})
	m.pushToast(Toast{Message: "one"})
	m.pushToast(Toast{Message: "two"})

	updated, cmd := m.Update(toastExpiredMsg{})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected timer for the next toast")
	}
	if toast, _ := m.toasts.Peek(); toast.Message != "two" {
		t.Fatalf("expected second toast, got %q", toast.Message)
	}

	updated, cmd = m.Update(toastExpiredMsg{})
	m = updated.(Model)
	if cmd != nil || m.toasts.Len() != 0 {
		t.Fatal("expected empty queue and no timer")
	}
}

func TestStoreChangeReloads(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	store.reports = storage.DemoReports()
	msg := loadReports(store)()
	updated, _ := m.Update(msg)
	m = updated.(Model)
	if len(m.reports) != 5 {
		t.Fatalf("expected reload to pick up 5 reports, got %d", len(m.reports))
	}

	changes := make(chan struct{}, 1)
	changes <- struct{}{}
	if _, ok := waitForChange(changes)().(storeChangedMsg); !ok {
		t.Fatal("expected storeChangedMsg")
	}
	close(changes)
	if waitForChange(changes)() != nil {
		t.Fatal("expected nil message after close")
	}
	if waitForChange(nil) != nil {
		t.Fatal("expected no command without a channel")
	}
}

func TestFormClear(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlR}} {
		m := newTestModel(t, &fakeStore{})
		m.ActiveTab = TabReport

		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m.form.input(fieldTitle).SetValue("Burning leaves")

		m, _ = press(t, m, k)
		if _, ok := m.form.category.Selected(); ok {
			t.Errorf("%s: expected category cleared", k)
		}
		if got := m.form.input(fieldTitle).Value(); got != "" {
			t.Errorf("%s: expected title cleared, got %q", k, got)
		}
		if m.form.focus != fieldCategory {
			t.Errorf("%s: expected focus back on category", k)
		}
		if m.ActiveTab != TabReport {
			t.Errorf("%s: expected to stay on report tab", k)
		}
	}
}

func TestNoColorOption(t *testing.T) {
	m := NewModel(Options{NoColor: true})
	if m.display.ColorEnabled {
		t.Fatal("expected colour disabled")
	}
	m = NewModel(Options{})
	if !m.display.ColorEnabled {
		t.Fatal("expected colour enabled by default")
	}
}
