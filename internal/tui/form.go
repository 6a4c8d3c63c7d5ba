package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabe/ecopatrol/internal/models"
	"github.com/gabe/ecopatrol/internal/storage"
)

const (
	fieldCategory = iota
	fieldTitle
	fieldDescription
	fieldAddress
	fieldReporter
	numFields
)

var errMissingCategory = errors.New("choose a problem type")

// reportForm collects a new report. The category is picked with a chooser,
// the remaining fields are text inputs.
type reportForm struct {
	category *Chooser
	inputs   []textinput.Model // indexed by field - 1
	focus    int
}

func newReportForm() reportForm {
	options := make([]string, 0, models.NumCategories)
	for _, c := range models.Categories {
		options = append(options, string(c))
	}

	fields := []struct {
		placeholder string
		limit       int
	}{
		{"Short summary of the problem", models.MaxTitleLen},
		{"What, since when, consequences...", models.MaxDescriptionLen},
		{"Street, building or a description of the place", models.MaxAddressLen},
		{"Name for follow-up (optional)", models.MaxReporterLen},
	}

	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = field.limit
		in.Width = 50
		inputs[i] = in
	}

	return reportForm{
		category: NewEmptyChooser(options),
		inputs:   inputs,
		focus:    fieldCategory,
	}
}

func (f *reportForm) input(field int) *textinput.Model {
	return &f.inputs[field-1]
}

// setFocus moves focus to field, blurring every other input
func (f *reportForm) setFocus(field int) tea.Cmd {
	f.focus = (field + numFields) % numFields
	var cmd tea.Cmd
	for i := range f.inputs {
		if i+1 == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

func (f *reportForm) nextField() tea.Cmd {
	return f.setFocus(f.focus + 1)
}

func (f *reportForm) prevField() tea.Cmd {
	return f.setFocus(f.focus - 1)
}

// update routes a message to the focused text input
func (f *reportForm) update(msg tea.Msg) tea.Cmd {
	if f.focus == fieldCategory {
		return nil
	}
	var cmd tea.Cmd
	*f.input(f.focus), cmd = f.input(f.focus).Update(msg)
	return cmd
}

// submission validates the form and converts it for the store
func (f *reportForm) submission() (*storage.Submission, error) {
	selected, ok := f.category.Selected()
	if !ok {
		return nil, errMissingCategory
	}

	sub := &storage.Submission{
		Category:     models.Category(selected),
		Title:        strings.TrimSpace(f.input(fieldTitle).Value()),
		Description:  strings.TrimSpace(f.input(fieldDescription).Value()),
		Address:      strings.TrimSpace(f.input(fieldAddress).Value()),
		ReporterName: strings.TrimSpace(f.input(fieldReporter).Value()),
	}

	switch {
	case sub.Title == "":
		return nil, fmt.Errorf("title is required")
	case sub.Description == "":
		return nil, fmt.Errorf("description is required")
	case sub.Address == "":
		return nil, fmt.Errorf("address or location is required")
	}
	return sub, nil
}

func (f *reportForm) reset() tea.Cmd {
	f.category.Reset(-1)
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	return f.setFocus(fieldCategory)
}

func (f *reportForm) view() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Report a problem"))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Describe the environmental issue you found"))
	sb.WriteString("\n\n")

	label := func(field int, text string) string {
		if f.focus == field {
			return focusedLabelStyle.Render("> " + text)
		}
		return labelStyle.Render("  " + text)
	}

	categoryValue := helpStyle.Render("← choose a type →")
	if selected, ok := f.category.Selected(); ok {
		categoryValue = "← " + models.Category(selected).Description() + " →"
	}
	sb.WriteString(label(fieldCategory, "Problem type *"))
	sb.WriteString("\n    ")
	sb.WriteString(categoryValue)
	sb.WriteString("\n\n")

	labels := []string{"Title *", "Description *", "Address or location *", "Your name (optional)"}
	for i, text := range labels {
		field := i + 1
		sb.WriteString(label(field, text))
		sb.WriteString("\n    ")
		sb.WriteString(f.inputs[i].View())
		sb.WriteString("\n\n")
	}

	return formStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
