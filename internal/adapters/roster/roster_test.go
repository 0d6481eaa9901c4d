package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syamvenkatasai/payequity/internal/domain/model"
)

const salariedCSV = `Employee Number,Job Code,Department Code,Gender,Ethnicity,Total Compensation,Calculated Compensation,Pay Equity
E1,ENG,D1,M,X,"95,000",,
E2,ENG,D1,F,Y,88000,,
E3,OPS,,F,Y,not a number,,
E4,,,M,Z,$72000,,
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadAndToEmployees(t *testing.T) {
	rows, err := Load(writeTemp(t, salariedCSV), ',')
	require.NoError(t, err)
	require.Len(t, rows, 4)

	employees, err := ToEmployees(rows, "Total Compensation")
	require.NoError(t, err)

	assert.Equal(t, "E1", employees[0].Number)
	assert.Equal(t, 0, employees[0].Row)
	assert.Equal(t, model.Comp(95000), employees[0].Compensation)
	assert.Equal(t, model.Comp(88000), employees[1].Compensation)

	// Non-numeric cells coerce to missing; the row is kept.
	assert.False(t, employees[2].Compensation.Known)
	assert.Equal(t, "E3", employees[2].Number)

	// Currency prefixes are tolerated.
	assert.Equal(t, model.Comp(72000), employees[3].Compensation)

	// Absent grouping codes survive as empty key components.
	assert.Equal(t, "", employees[2].DepartmentCode)
	assert.Equal(t, "", employees[3].JobCode)
}

func TestToEmployeesColumnMatching(t *testing.T) {
	rows := []Row{{EmployeeNumber: "E1", CalculatedCompensation: "18.50"}}

	// Header matching forgives case and spacing.
	employees, err := ToEmployees(rows, "  calculated COMPENSATION ")
	require.NoError(t, err)
	assert.Equal(t, model.Comp(18.50), employees[0].Compensation)

	_, err = ToEmployees(rows, "Base Pay")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestApplyFindingsAndSave(t *testing.T) {
	rows, err := Load(writeTemp(t, salariedCSV), ',')
	require.NoError(t, err)

	audited := make([]model.Employee, len(rows))
	for i := range audited {
		audited[i] = model.Employee{Row: i, Number: rows[i].EmployeeNumber}
	}
	audited[1].Findings = "Pay Disparity detected with respect to Gender. Employee Number: E1"

	require.NoError(t, ApplyFindings(rows, audited))
	assert.Empty(t, rows[0].PayEquity)
	assert.Equal(t, audited[1].Findings, rows[1].PayEquity)

	out := filepath.Join(t.TempDir(), "annotated.csv")
	require.NoError(t, Save(out, rows, ','))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(written), "Pay Disparity detected with respect to Gender. Employee Number: E1")
	assert.Equal(t, len(rows)+1, strings.Count(string(written), "\n"))

	// Round trip: annotated file loads back with findings intact.
	again, err := Load(out, ',')
	require.NoError(t, err)
	require.Len(t, again, len(rows))
	assert.Equal(t, audited[1].Findings, again[1].PayEquity)
}

func TestApplyFindingsLengthMismatch(t *testing.T) {
	err := ApplyFindings(make([]Row, 2), make([]model.Employee, 3))
	assert.ErrorIs(t, err, ErrRowMismatch)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), ',')
	assert.ErrorIs(t, err, ErrOpenRoster)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "total compensation", NormalizeHeader("  Total   Compensation "))
	assert.Equal(t, "remuneracao basica", NormalizeHeader("Remuneração Básica"))
}
