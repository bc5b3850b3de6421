// Package export serializes a classified report to the regularity CSV
// artifact consumed by the dashboard and spreadsheet users.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

// ErrNoRows is returned when an export is attempted on a report with no
// supplier rows. Nothing is written in that case.
var ErrNoRows = errors.New("report has no rows to export")

// statusLabels maps day statuses to the spreadsheet vocabulary. Future
// days, and any day the report does not know, render as "Não fatura".
var statusLabels = map[model.DayStatus]string{
	model.StatusSent:      "Enviado",
	model.StatusPending:   "Pendente",
	model.StatusHoliday:   "Feriado",
	model.StatusNoBilling: "Sem faturamento",
	model.StatusFuture:    "Não fatura",
}

const fallbackLabel = "Não fatura"

// Filename returns the artifact name for a month.
func Filename(year int, month time.Month) string {
	return fmt.Sprintf("regularidade-envio-%d-%02d.csv", year, int(month))
}

// Write renders the report as UTF-8 CSV: a header row, one row per
// cohort, one column per day after the three identity columns. Every
// cell is double-quoted.
func Write(w io.Writer, rep *model.Report, year int, month time.Month) error {
	if rep == nil || len(rep.Suppliers) == 0 {
		return ErrNoRows
	}

	days := model.DaysInMonth(year, month)
	buf := bufio.NewWriter(w)

	header := make([]string, 0, 3+days)
	header = append(header, "Fornecedor", "Empresa", "Filial")
	for day := 1; day <= days; day++ {
		header = append(header, fmt.Sprintf("Dia %d", day))
	}
	if err := writeRecord(buf, header); err != nil {
		return err
	}

	record := make([]string, 0, 3+days)
	for _, row := range rep.Suppliers {
		record = record[:0]
		record = append(record, row.Supplier, row.Company, row.Branch)
		for day := 1; day <= days; day++ {
			record = append(record, label(row.Days[day]))
		}
		if err := writeRecord(buf, record); err != nil {
			return err
		}
	}

	return buf.Flush()
}

func label(rec model.DayRecord) string {
	if l, ok := statusLabels[rec.Status]; ok {
		return l
	}
	return fallbackLabel
}

// writeRecord quotes every cell unconditionally. encoding/csv only quotes
// cells that need it, and the consumers expect uniform quoting.
func writeRecord(w *bufio.Writer, record []string) error {
	for i, cell := range record {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
		if _, err := w.WriteString(strings.ReplaceAll(cell, `"`, `""`)); err != nil {
			return err
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
