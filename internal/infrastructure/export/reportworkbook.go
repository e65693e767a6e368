// Package export renders reports as spreadsheet documents.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"preparos/internal/domain/stock"
	"preparos/internal/shared/biztime"
)

const (
	summarySheet  = "Resumo"
	sessionsSheet = "Sessões"

	// ContentTypeXLSX is the media type of the generated workbook.
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	displayDate     = "02/01/2006"
	displayDateTime = "02/01/2006 15:04"
)

// ReportWorkbook writes a report summary as an XLSX workbook with a summary
// sheet and a per-session sheet. Text is formatted for pt-BR readers.
type ReportWorkbook struct {
	unit    string
	printer *message.Printer
}

func NewReportWorkbook(unit string) *ReportWorkbook {
	if unit == "" {
		unit = "L"
	}
	return &ReportWorkbook{
		unit:    unit,
		printer: message.NewPrinter(language.BrazilianPortuguese),
	}
}

// Filename names the export after its period.
func (w *ReportWorkbook) Filename(start, end time.Time) string {
	return fmt.Sprintf("relatorio_%s_%s.xlsx", start.Format("20060102"), end.Format("20060102"))
}

func (w *ReportWorkbook) ContentType() string {
	return ContentTypeXLSX
}

// FormatQuantity renders q with pt-BR separators and the stock unit.
func (w *ReportWorkbook) FormatQuantity(q decimal.Decimal) string {
	f, _ := q.Round(3).Float64()
	return w.printer.Sprintf("%.3f %s", f, w.unit)
}

func (w *ReportWorkbook) Render(summary stock.Summary, start, end time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sessionsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sessions sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := w.writeSummary(f, styles, summary, start, end); err != nil {
		return nil, err
	}
	if err := w.writeSessions(f, styles, summary.Sessions); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	header   int
	quantity int
	integer  int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}

	quantityFormat := "#,##0.000"
	s.quantity, err = f.NewStyle(&excelize.Style{CustomNumFmt: &quantityFormat})
	if err != nil {
		return s, fmt.Errorf("failed to create quantity style: %w", err)
	}

	s.integer, err = f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return s, fmt.Errorf("failed to create integer style: %w", err)
	}
	return s, nil
}

func (w *ReportWorkbook) writeSummary(f *excelize.File, styles sheetStyles, summary stock.Summary, start, end time.Time) error {
	title := fmt.Sprintf("Relatório de consumo de %s a %s", start.Format(displayDate), end.Format(displayDate))

	rows := []struct {
		label   string
		value   interface{}
		display string
		style   int
	}{
		{"Sessões", summary.SessionCount, w.printer.Sprintf("%d", summary.SessionCount), styles.integer},
		{"Participantes", summary.TotalParticipants, w.printer.Sprintf("%d", summary.TotalParticipants), styles.integer},
		{"Total consumido", summary.TotalConsumed.InexactFloat64(), w.FormatQuantity(summary.TotalConsumed), styles.quantity},
		{"Média por sessão", summary.AveragePerSession.InexactFloat64(), w.FormatQuantity(summary.AveragePerSession), styles.quantity},
		{"Média por participante", summary.AveragePerParticipant.InexactFloat64(), w.FormatQuantity(summary.AveragePerParticipant), styles.quantity},
		{"Total de saídas", summary.TotalTransferred.InexactFloat64(), w.FormatQuantity(summary.TotalTransferred), styles.quantity},
	}

	if err := f.SetCellValue(summarySheet, "A1", title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", styles.header); err != nil {
		return fmt.Errorf("failed to style title: %w", err)
	}

	for i, r := range rows {
		row := i + 3
		if err := f.SetSheetRow(summarySheet, cell("A", row), &[]interface{}{r.label, r.value, r.display}); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
		if err := f.SetCellStyle(summarySheet, cell("B", row), cell("B", row), r.style); err != nil {
			return fmt.Errorf("failed to style summary row: %w", err)
		}
	}

	return f.SetColWidth(summarySheet, "A", "C", 26)
}

func (w *ReportWorkbook) writeSessions(f *excelize.File, styles sheetStyles, sessions []stock.SessionTotal) error {
	header := []interface{}{"ID", "Data e hora", "Tipo", "Dirigente", "Participantes", "Consumo (" + w.unit + ")"}
	if err := f.SetSheetRow(sessionsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write sessions header: %w", err)
	}
	if err := f.SetCellStyle(sessionsSheet, "A1", "F1", styles.header); err != nil {
		return fmt.Errorf("failed to style sessions header: %w", err)
	}

	for i, s := range sessions {
		row := i + 2
		values := []interface{}{
			s.SessionID,
			biztime.FormatInBizTimezone(s.HeldAt, displayDateTime),
			s.Type,
			s.Facilitator,
			s.Participants,
			s.Consumed.InexactFloat64(),
		}
		if err := f.SetSheetRow(sessionsSheet, cell("A", row), &values); err != nil {
			return fmt.Errorf("failed to write session row: %w", err)
		}
	}

	if len(sessions) > 0 {
		last := len(sessions) + 1
		if err := f.SetCellStyle(sessionsSheet, "F2", cell("F", last), styles.quantity); err != nil {
			return fmt.Errorf("failed to style consumption column: %w", err)
		}
	}

	return f.SetColWidth(sessionsSheet, "B", "D", 22)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
