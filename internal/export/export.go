// Package export writes practice history to an xlsx workbook so progress
// can be reviewed outside the trainer.
package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/amitn/violino/internal/mastery"
	"github.com/amitn/violino/internal/store"
)

const (
	historySheet = "History"
	summarySheet = "Summary"
)

var historyHeader = []string{
	"Session", "Module", "Content", "Correct", "Response Time (ms)",
	"Hint", "XP", "Level", "Answered At",
}

var summaryHeader = []string{
	"Module", "Answers", "Correct", "Accuracy %", "Grade", "XP Earned", "Last Practiced",
}

// ModuleSummary is one module's aggregate row on the summary sheet.
type ModuleSummary struct {
	Module        string
	Total         int
	Correct       int
	AccuracyPct   int
	Grade         mastery.Grade
	XPEarned      int
	LastPracticed time.Time
}

// Summarize folds raw answer events into per-module aggregates, sorted by
// module name.
func Summarize(history []store.AnswerRecord) []ModuleSummary {
	byModule := make(map[string]*ModuleSummary)
	for _, rec := range history {
		s, ok := byModule[rec.Module]
		if !ok {
			s = &ModuleSummary{Module: rec.Module}
			byModule[rec.Module] = s
		}
		s.Total++
		if rec.Correct {
			s.Correct++
		}
		s.XPEarned += rec.XPAwarded
		if at := rec.CreatedAt(); at.After(s.LastPracticed) {
			s.LastPracticed = at
		}
	}

	summaries := make([]ModuleSummary, 0, len(byModule))
	for _, s := range byModule {
		a := mastery.Assess(s.Correct, s.Total)
		s.AccuracyPct = a.AccuracyPct
		s.Grade = a.Grade
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Module < summaries[j].Module })
	return summaries
}

// WriteWorkbook writes the full answer history and a per-module summary
// to an xlsx file at path, overwriting any existing file.
func WriteWorkbook(path string, history []store.AnswerRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return fmt.Errorf("rename history sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	if err := writeHistory(f, history); err != nil {
		return err
	}
	if err := writeSummary(f, Summarize(history)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeHistory(f *excelize.File, history []store.AnswerRecord) error {
	if err := writeRow(f, historySheet, 1, toAny(historyHeader)); err != nil {
		return err
	}
	for i, rec := range history {
		row := []any{
			rec.SessionID,
			rec.Module,
			rec.ContentID,
			rec.Correct,
			rec.ResponseTimeMs,
			rec.UsedHint,
			rec.XPAwarded,
			rec.Level,
			rec.CreatedAt().Format(time.RFC3339),
		}
		if err := writeRow(f, historySheet, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(historySheet, "A", "I", 20)
}

func writeSummary(f *excelize.File, summaries []ModuleSummary) error {
	if err := writeRow(f, summarySheet, 1, toAny(summaryHeader)); err != nil {
		return err
	}
	for i, s := range summaries {
		last := ""
		if !s.LastPracticed.IsZero() {
			last = s.LastPracticed.Format(time.RFC3339)
		}
		row := []any{s.Module, s.Total, s.Correct, s.AccuracyPct, string(s.Grade), s.XPEarned, last}
		if err := writeRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(summarySheet, "A", "G", 18)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
