package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		Suppliers: []model.SupplierRow{
			{
				Supplier: "AJINOMOTO",
				Company:  "01",
				Branch:   "00",
				Days: map[int]model.DayRecord{
					1: {Status: model.StatusSent, Timestamp: "08:00:00"},
					2: {Status: model.StatusPending},
					3: {Status: model.StatusHoliday},
					4: {Status: model.StatusNoBilling},
					5: {Status: model.StatusFuture},
				},
			},
		},
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		want  string
	}{
		{2025, time.June, "regularidade-envio-2025-06.csv"},
		{2025, time.December, "regularidade-envio-2025-12.csv"},
		{2024, time.February, "regularidade-envio-2024-02.csv"},
	}
	for _, tt := range tests {
		if got := Filename(tt.year, tt.month); got != tt.want {
			t.Errorf("Filename(%d, %s) = %q, want %q", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestWrite_HeaderAndLabels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, sampleReport(), 2025, time.June); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}

	// The output must stay readable by a standard CSV reader.
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	header := records[0]
	if len(header) != 3+30 {
		t.Fatalf("header has %d columns, want %d", len(header), 33)
	}
	if header[0] != "Fornecedor" || header[1] != "Empresa" || header[2] != "Filial" {
		t.Errorf("identity columns = %v", header[:3])
	}
	if header[3] != "Dia 1" || header[32] != "Dia 30" {
		t.Errorf("day columns = %q .. %q, want \"Dia 1\" .. \"Dia 30\"", header[3], header[32])
	}

	row := records[1]
	if row[0] != "AJINOMOTO" || row[1] != "01" || row[2] != "00" {
		t.Errorf("identity cells = %v", row[:3])
	}
	wantLabels := []string{"Enviado", "Pendente", "Feriado", "Sem faturamento", "Não fatura"}
	for i, want := range wantLabels {
		if row[3+i] != want {
			t.Errorf("day %d label = %q, want %q", i+1, row[3+i], want)
		}
	}
	// Days 6..30 have no record at all and fall back to the same label
	// as future days.
	if row[8] != "Não fatura" {
		t.Errorf("missing day label = %q, want %q", row[8], "Não fatura")
	}
}

func TestWrite_EveryCellQuoted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, sampleReport(), 2025, time.June); err != nil {
		t.Fatalf("Write: %v", err)
	}

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		for _, cell := range strings.Split(line, ",") {
			if !strings.HasPrefix(cell, `"`) || !strings.HasSuffix(cell, `"`) {
				t.Fatalf("cell %q is not quoted", cell)
			}
		}
	}
}

func TestWrite_EscapesInnerQuotes(t *testing.T) {
	t.Parallel()

	rep := &model.Report{
		Suppliers: []model.SupplierRow{
			{Supplier: `ACME "BRASIL"`, Company: "01", Branch: "00", Days: map[int]model.DayRecord{}},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, rep, 2025, time.June); err != nil {
		t.Fatalf("Write: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if got := records[1][0]; got != `ACME "BRASIL"` {
		t.Errorf("supplier cell = %q, want %q", got, `ACME "BRASIL"`)
	}
}

func TestWrite_NoRows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, &model.Report{}, 2025, time.June); err != ErrNoRows {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on ErrNoRows, got %d bytes", buf.Len())
	}

	if err := Write(&buf, nil, 2025, time.June); err != ErrNoRows {
		t.Fatalf("expected ErrNoRows for nil report, got %v", err)
	}
}
