// Package roster reads employee rosters from CSV and writes the
// audited result back, one added Pay Equity column.
//
// The layout mirrors the stock workbook: salaried rosters carry a
// Total Compensation column, hourly rosters a Calculated Compensation
// column. The caller picks which column to rank by name; matching is
// forgiving about case, accents and spacing.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/syamvenkatasai/payequity/internal/domain/model"
	"github.com/syamvenkatasai/payequity/pkg/metrics"
)

// Row is one roster line as stored on disk. Compensation values stay
// raw strings here; numeric coercion happens in ToEmployees so that a
// bad cell degrades to a missing value instead of failing the load.
type Row struct {
	EmployeeNumber         string `csv:"Employee Number"`
	JobCode                string `csv:"Job Code"`
	DepartmentCode         string `csv:"Department Code"`
	Gender                 string `csv:"Gender"`
	Ethnicity              string `csv:"Ethnicity"`
	TotalCompensation      string `csv:"Total Compensation"`
	CalculatedCompensation string `csv:"Calculated Compensation"`
	PayEquity              string `csv:"Pay Equity"`
}

// Load reads a roster CSV.
func Load(path string, comma rune) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenRoster, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma

	var rows []Row
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrParseRoster, path, err)
	}
	metrics.RecordRowsRead(len(rows))
	return rows, nil
}

// Save writes the annotated roster.
func Save(path string, rows []Row, comma rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating roster file (%s): %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = comma
	writer.UseCRLF = true

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing roster file (%s): %w", path, err)
	}
	metrics.RecordRowsWritten(len(rows))
	return nil
}

// compensationField resolves a caller-supplied column name against the
// Row struct's csv tags. Matching normalizes case, accents and
// whitespace on both sides.
func compensationField(column string) (int, error) {
	want := NormalizeHeader(column)
	t := reflect.TypeOf(Row{})
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("csv"), ",")[0]
		if NormalizeHeader(tag) == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
}

// ToEmployees converts roster rows into the domain model, coercing the
// selected compensation column. Cells that do not parse numerically
// become missing amounts; the row is kept either way.
func ToEmployees(rows []Row, compensationColumn string) ([]model.Employee, error) {
	field, err := compensationField(compensationColumn)
	if err != nil {
		return nil, err
	}

	employees := make([]model.Employee, len(rows))
	for i, r := range rows {
		raw := reflect.ValueOf(r).Field(field).String()
		employees[i] = model.Employee{
			Row:            i,
			Number:         strings.TrimSpace(r.EmployeeNumber),
			JobCode:        strings.TrimSpace(r.JobCode),
			DepartmentCode: strings.TrimSpace(r.DepartmentCode),
			Gender:         strings.TrimSpace(r.Gender),
			Ethnicity:      strings.TrimSpace(r.Ethnicity),
			Compensation:   coerceAmount(raw),
		}
	}
	return employees, nil
}

// ApplyFindings copies audit results back onto the rows by position.
// The audit returns rows in input order, so indexes line up.
func ApplyFindings(rows []Row, audited []model.Employee) error {
	if len(rows) != len(audited) {
		return fmt.Errorf("%w: %d rows, %d audited", ErrRowMismatch, len(rows), len(audited))
	}
	for i := range rows {
		rows[i].PayEquity = audited[i].Findings
	}
	return nil
}

// coerceAmount parses a raw compensation cell. Currency symbols and
// thousands separators are tolerated; anything else non-numeric means
// the value is missing, never an abort.
func coerceAmount(raw string) model.Amount {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimLeft(cleaned, "$€£R ")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return model.MissingComp()
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		metrics.RecordInvalidCompensation()
		return model.MissingComp()
	}
	return model.Comp(v)
}
