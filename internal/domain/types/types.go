// Package types contains common types used across the application
package types

// Attribute names a demographic attribute a finding relates to.
type Attribute string

// Attributes the classifier evaluates.
const (
	AttributeGender    Attribute = "gender"
	AttributeEthnicity Attribute = "ethnicity"
)

// Finding is one detected pay disparity, citing the better-paid
// comparator whose presence triggered the rule.
type Finding struct {
	Attribute      Attribute `json:"attribute"`
	Message        string    `json:"message"`
	CitedEmployee  string    `json:"cited_employee"`
	EthnicityValue string    `json:"ethnicity_value,omitempty"` // set for ethnicity findings only
}
