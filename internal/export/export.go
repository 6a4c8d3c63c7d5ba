// Package export writes the task list and analytics to an .xlsx workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gabe/ecopatrol/internal/models"
	"github.com/gabe/ecopatrol/internal/stats"
)

const (
	TasksSheet     = "Tasks"
	AnalyticsSheet = "Analytics"
)

var taskHeaders = []string{
	"ID", "Category", "Title", "Description", "Status", "Priority",
	"Submitted", "Reporter", "Address", "Latitude", "Longitude",
}

var analyticsHeaders = []string{"Dimension", "Value", "Count", "Percent"}

// Workbook builds a workbook with one row per report and one row per
// analytics bucket
func Workbook(reports []models.EnvironmentalReport, s stats.Stats) (*excelize.File, error) {
	f := excelize.NewFile()

	// The default sheet becomes the task list
	if err := f.SetSheetName("Sheet1", TasksSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(AnalyticsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2E7D32"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRow(f, TasksSheet, 1, toCells(taskHeaders)); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(TasksSheet, 1, 1, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(TasksSheet, "A", "K", 18); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, r := range reports {
		row := []interface{}{
			r.ID, r.Category.Label(), r.Title, r.Description, r.Status.Label(), r.Priority.Label(),
			r.SubmittedDate, r.ReporterName, r.Address, r.Latitude, r.Longitude,
		}
		if err := writeRow(f, TasksSheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := writeRow(f, AnalyticsSheet, 1, toCells(analyticsHeaders)); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(AnalyticsSheet, 1, 1, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(AnalyticsSheet, "A", "D", 16); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	rowIdx := 2
	for _, c := range models.Categories {
		b := s.Category(c)
		if err := writeRow(f, AnalyticsSheet, rowIdx, []interface{}{"category", c.Label(), b.Count, b.Percent}); err != nil {
			f.Close()
			return nil, err
		}
		rowIdx++
	}
	for _, st := range models.Statuses {
		b := s.Status(st)
		if err := writeRow(f, AnalyticsSheet, rowIdx, []interface{}{"status", st.Label(), b.Count, b.Percent}); err != nil {
			f.Close()
			return nil, err
		}
		rowIdx++
	}
	for _, p := range models.Priorities {
		b := s.Priority(p)
		if err := writeRow(f, AnalyticsSheet, rowIdx, []interface{}{"priority", p.Label(), b.Count, b.Percent}); err != nil {
			f.Close()
			return nil, err
		}
		rowIdx++
	}
	if err := writeRow(f, AnalyticsSheet, rowIdx, []interface{}{"total", "", s.Total, ""}); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// WriteFile builds the workbook and saves it to path
func WriteFile(path string, reports []models.EnvironmentalReport, s stats.Stats) error {
	f, err := Workbook(reports, s)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func toCells(headers []string) []interface{} {
	out := make([]interface{}, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}
