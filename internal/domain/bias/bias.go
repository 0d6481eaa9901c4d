// Package bias applies the pay-disparity classification rules to a
// ranked cohort.
//
// Subjects are visited from the lowest-paid member upward. A subject is
// only evaluated when its gap to the cohort's single top earner exceeds
// the threshold; closeness to an immediate neighbor never matters. This
// is a fixed policy, not an oversight: the lowest earner can draw a
// finding even when it sits right next to the second-lowest.
package bias

import (
	"fmt"
	"strings"

	"github.com/syamvenkatasai/payequity/internal/domain/peerset"
	"github.com/syamvenkatasai/payequity/internal/domain/ranking"
	"github.com/syamvenkatasai/payequity/internal/domain/types"
)

// Finding message formats. The cited employee number is always taken
// from the Above set in its rank ordering.
const (
	genderDisparityFmt    = "Pay Disparity detected with respect to Gender. Employee Number: %s"
	ethnicityDisparityFmt = "Pay Disparity detected with respect to Ethnicity %s. Employee Number: %s"
	ethnicityAbsentFmt    = "Pay Disparity detected with respect to Ethnicity. Employee Number: %s"

	findingSeparator = " | "
)

// Classifier evaluates cohorts under a fixed non-negative threshold.
type Classifier struct {
	threshold float64
}

// New creates a classifier. Negative thresholds are treated as zero.
func New(threshold float64) Classifier {
	if threshold < 0 {
		threshold = 0
	}
	return Classifier{threshold: threshold}
}

// Threshold returns the tolerated compensation gap.
func (c Classifier) Threshold() float64 { return c.threshold }

// Outcome is the evaluation result for one cohort member: zero, one,
// or two findings in gender-then-ethnicity order.
type Outcome struct {
	Findings []types.Finding
}

// String joins the finding messages with the report separator; empty
// when the member drew no finding.
func (o Outcome) String() string {
	if len(o.Findings) == 0 {
		return ""
	}
	messages := make([]string, len(o.Findings))
	for i, f := range o.Findings {
		messages[i] = f.Message
	}
	return strings.Join(messages, findingSeparator)
}

// EvaluateCohort classifies every member of the ranked cohort and
// returns one outcome per rank position. Non-analyzable cohorts yield
// all-empty outcomes. Each subject is evaluated exactly once and reads
// only the static cohort, never another subject's outcome, so results
// are independent of evaluation order.
func (c Classifier) EvaluateCohort(r ranking.Ranked) []Outcome {
	out := make([]Outcome, len(r.Members))
	if !r.Analyzable() {
		return out
	}
	for n := len(r.Members) - 1; n >= 0; n-- {
		subject := r.Members[n]
		if !subject.Compensation.Known {
			continue
		}
		if subject.GapToTop <= c.threshold {
			continue
		}
		sets := peerset.Build(r, subject, c.threshold)

		if f, ok := c.genderRule(subject, sets); ok {
			out[n].Findings = append(out[n].Findings, f)
		}
		if f, ok := c.ethnicityRule(subject, sets); ok {
			out[n].Findings = append(out[n].Findings, f)
		}
	}
	return out
}

// genderRule flags the subject when its gender is absent from the
// better-paid set and the peer set is either empty or uniformly the
// subject's gender. The empty-Peers arm is kept for robustness even
// though a non-negative threshold makes the subject its own peer.
func (c Classifier) genderRule(subject ranking.Member, s peerset.Sets) (types.Finding, bool) {
	if len(s.Above) == 0 {
		return types.Finding{}, false
	}
	inAbove := hasValue(s.Above, gender, subject.Gender)
	switch {
	case len(s.Peers) == 0 && !inAbove:
	case !inAbove && allValue(s.Peers, gender, subject.Gender):
	default:
		return types.Finding{}, false
	}
	cited := s.Above[0].Number
	return types.Finding{
		Attribute:     types.AttributeGender,
		Message:       fmt.Sprintf(genderDisparityFmt, cited),
		CitedEmployee: cited,
	}, true
}

// ethnicityRule applies three cases with strict precedence:
//
//  1. empty Peers and the subject's ethnicity absent from Above cites
//     the first Above member (unreachable for non-negative thresholds,
//     kept as written);
//  2. the subject's ethnicity appearing in Above suppresses any
//     finding, even when case 3 would otherwise fire;
//  3. an ethnicity present in Above but absent from Peers cites the
//     first Above member holding the first such value.
func (c Classifier) ethnicityRule(subject ranking.Member, s peerset.Sets) (types.Finding, bool) {
	if len(s.Above) == 0 {
		return types.Finding{}, false
	}
	if len(s.Peers) == 0 && !hasValue(s.Above, ethnicity, subject.Ethnicity) {
		cited := s.Above[0].Number
		return types.Finding{
			Attribute:     types.AttributeEthnicity,
			Message:       fmt.Sprintf(ethnicityAbsentFmt, cited),
			CitedEmployee: cited,
		}, true
	}
	if hasValue(s.Above, ethnicity, subject.Ethnicity) {
		return types.Finding{}, false
	}
	for _, value := range uniqueValues(s.Above, ethnicity) {
		if hasValue(s.Peers, ethnicity, value) {
			continue
		}
		for _, m := range s.Above {
			if ethnicity(m) == value {
				return types.Finding{
					Attribute:      types.AttributeEthnicity,
					Message:        fmt.Sprintf(ethnicityDisparityFmt, value, m.Number),
					CitedEmployee:  m.Number,
					EthnicityValue: value,
				}, true
			}
		}
	}
	return types.Finding{}, false
}

func gender(m ranking.Member) string    { return m.Gender }
func ethnicity(m ranking.Member) string { return m.Ethnicity }

func hasValue(members []ranking.Member, attr func(ranking.Member) string, v string) bool {
	for _, m := range members {
		if attr(m) == v {
			return true
		}
	}
	return false
}

func allValue(members []ranking.Member, attr func(ranking.Member) string, v string) bool {
	for _, m := range members {
		if attr(m) != v {
			return false
		}
	}
	return true
}

// uniqueValues lists distinct attribute values in first-occurrence
// order, which decides which ethnicity a case-3 finding names.
func uniqueValues(members []ranking.Member, attr func(ranking.Member) string) []string {
	seen := make(map[string]struct{}, len(members))
	var values []string
	for _, m := range members {
		v := attr(m)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
