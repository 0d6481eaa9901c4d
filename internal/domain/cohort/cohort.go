// Package cohort partitions roster rows into comparison cohorts.
//
// A cohort is the set of employees sharing the same job and department
// code. The partition is exhaustive and disjoint: every row lands in
// exactly one cohort, including rows with absent key components, which
// group under their own distinct key.
package cohort

import (
	"github.com/syamvenkatasai/payequity/internal/domain/model"
)

// Cohort is one partition cell, members in input order.
type Cohort struct {
	Key     model.CohortKey
	Members []model.Employee
}

// Partition groups rows by cohort key. Relative input order is
// preserved within each cohort, and cohorts are returned in first-seen
// key order. An empty input yields an empty partition.
func Partition(rows []model.Employee) []Cohort {
	index := make(map[model.CohortKey]int, len(rows))
	var cohorts []Cohort
	for _, row := range rows {
		key := row.Key()
		i, ok := index[key]
		if !ok {
			i = len(cohorts)
			index[key] = i
			cohorts = append(cohorts, Cohort{Key: key})
		}
		cohorts[i].Members = append(cohorts[i].Members, row)
	}
	return cohorts
}
