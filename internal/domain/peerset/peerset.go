// Package peerset derives the better-paid and peer subsets of a ranked
// cohort for one subject under a tolerance threshold.
package peerset

import (
	"github.com/syamvenkatasai/payequity/internal/domain/ranking"
)

// Sets holds the two subsets the disparity rules operate on.
//
// Above contains members paid more than the subject by more than the
// threshold. Peers contains members paid at or within threshold above
// the subject; for any non-negative threshold the subject qualifies as
// its own peer, so Peers is never empty in practice. Both sets keep
// rank order, which fixes which member a finding cites.
type Sets struct {
	Above []ranking.Member
	Peers []ranking.Member
}

// Build computes the subject's peer sets. Pure function of
// (cohort, subject, threshold); members with missing compensation join
// neither set. The subject must have a known compensation.
func Build(r ranking.Ranked, subject ranking.Member, threshold float64) Sets {
	cutoff := subject.Compensation.Value + threshold
	var s Sets
	for _, m := range r.Members {
		if !m.Compensation.Known {
			continue
		}
		if m.Compensation.Value > cutoff {
			s.Above = append(s.Above, m)
		} else {
			s.Peers = append(s.Peers, m)
		}
	}
	return s
}
