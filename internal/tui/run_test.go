package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRunUsesStartProgram(t *testing.T) {
	called := false
	original := startProgram
	startProgram = func(model tea.Model) error {
		called = true
		if _, ok := model.(Model); !ok {
			t.Fatalf("expected tui.Model, got %T", model)
		}
		return nil
	}
	defer func() {
		startProgram = original
	}()

	if err := Run(Options{Store: &fakeStore{}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected startProgram to be called")
	}
}
