// Package ranking orders a cohort by compensation and derives each
// member's gap to the cohort's top earner.
package ranking

import (
	"sort"

	"github.com/syamvenkatasai/payequity/internal/domain/cohort"
	"github.com/syamvenkatasai/payequity/internal/domain/model"
)

// Member is a cohort member in rank position, carrying its gap to the
// cohort's top earner. GapToTop is meaningful only when the member's
// compensation is known and the cohort is analyzable.
type Member struct {
	model.Employee
	GapToTop float64
}

// Ranked is a cohort sorted by descending compensation. Ties keep
// their relative input order; the first member after sorting is the
// top earner. Members with missing compensation sort after all known
// values and take no part in numeric comparisons.
type Ranked struct {
	Key        model.CohortKey
	Members    []Member
	comparable int
}

// Rank sorts the cohort and computes per-member gaps. The tie-break is
// stable: among equal compensation values the earlier input row ranks
// first and is the one treated as top earner.
func Rank(c cohort.Cohort) Ranked {
	members := make([]Member, len(c.Members))
	comparable := 0
	for i, e := range c.Members {
		members[i] = Member{Employee: e}
		if e.Compensation.Known {
			comparable++
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i].Compensation, members[j].Compensation
		if a.Known != b.Known {
			return a.Known // missing values rank last
		}
		return a.Known && a.Value > b.Value
	})

	r := Ranked{Key: c.Key, Members: members, comparable: comparable}
	if !r.Analyzable() {
		return r
	}
	top := members[0].Compensation.Value
	for i := range members {
		if members[i].Compensation.Known {
			members[i].GapToTop = top - members[i].Compensation.Value
		}
	}
	return r
}

// Analyzable reports whether the cohort has enough comparable members
// to evaluate. Below two, every member passes through untouched.
func (r Ranked) Analyzable() bool {
	return len(r.Members) >= 2 && r.comparable >= 2
}

// Top returns the top earner. ok is false when the cohort has no
// member with a known compensation.
func (r Ranked) Top() (Member, bool) {
	if len(r.Members) == 0 || !r.Members[0].Compensation.Known {
		return Member{}, false
	}
	return r.Members[0], true
}
