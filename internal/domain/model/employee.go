// Package model contains domain models passed between layers.
package model

import "fmt"

// Amount is a compensation value coerced from a raw roster cell.
// Cells that could not be interpreted numerically carry Known=false and
// are excluded from every numeric comparison downstream.
type Amount struct {
	Value float64
	Known bool
}

// Comp returns a known amount.
func Comp(v float64) Amount { return Amount{Value: v, Known: true} }

// MissingComp marks a compensation cell that failed numeric coercion.
func MissingComp() Amount { return Amount{} }

// Employee represents one roster row flowing through the audit.
// Row is the zero-based position in the input roster; the assembler
// merges evaluated cohorts back into this order.
type Employee struct {
	Row            int    // original input position
	Number         string // employee number, unique within the roster
	JobCode        string // grouping key; empty means absent
	DepartmentCode string // grouping key; empty means absent
	Gender         string
	Ethnicity      string
	Compensation   Amount
	Findings       string // joined finding string, empty when none
}

// CohortKey identifies a comparison cohort. Absent job or department
// codes are valid key components: rows missing either value still form
// their own cohort rather than being dropped.
type CohortKey struct {
	JobCode        string
	DepartmentCode string
}

// Key returns the employee's cohort key.
func (e Employee) Key() CohortKey {
	return CohortKey{JobCode: e.JobCode, DepartmentCode: e.DepartmentCode}
}

func (k CohortKey) String() string {
	return fmt.Sprintf("%s/%s", orMissing(k.JobCode), orMissing(k.DepartmentCode))
}

func orMissing(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}
