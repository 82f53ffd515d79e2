package domain

import "errors"

// ErrJurisdictionNotFound is returned when a country code has no entry in the
// jurisdiction table. The evaluation aborts; there is no default jurisdiction.
var ErrJurisdictionNotFound = errors.New("jurisdiction not found")

// GroupLogic defines how a requirement group's fields combine.
type GroupLogic string

const (
	LogicAnd GroupLogic = "AND"
	LogicOr  GroupLogic = "OR"
)

// RequirementGroup is one rule entry: a non-empty ordered field list combined
// with AND (all required) or OR (any one satisfies).
type RequirementGroup struct {
	Fields []string   `json:"fields" yaml:"fields"`
	Logic  GroupLogic `json:"logic" yaml:"logic"`
}

// RequirementRuleSet is the ordered group sequence a jurisdiction applies to
// one customer category on one side of the monetary threshold.
type RequirementRuleSet struct {
	Groups            []RequirementGroup `json:"groups" yaml:"groups"`
	KYCRequired       bool               `json:"kyc_required" yaml:"kyc_required"`
	AMLRequired       bool               `json:"aml_required" yaml:"aml_required"`
	WalletAttribution bool               `json:"wallet_attribution" yaml:"wallet_attribution"`
	RecommendedFields []string           `json:"recommended_fields,omitempty" yaml:"recommended_fields,omitempty"`
}

// CategoryRules holds the two rule sets of one customer category.
type CategoryRules struct {
	BelowThreshold RequirementRuleSet `json:"below_threshold" yaml:"below_threshold"`
	AboveThreshold RequirementRuleSet `json:"above_threshold" yaml:"above_threshold"`
}

// JurisdictionConfig is the per-country configuration entry. The threshold is
// inclusive: amount >= threshold selects the above-threshold rule set.
type JurisdictionConfig struct {
	CountryCode string        `json:"country_code" yaml:"-"`
	Currency    string        `json:"currency" yaml:"currency"`
	Threshold   float64       `json:"threshold" yaml:"threshold"`
	Individual  CategoryRules `json:"individual" yaml:"individual"`
	Company     CategoryRules `json:"company" yaml:"company"`
}

// RulesFor selects the rule set for a category and threshold tier. An
// unrecognized category yields an empty rule set; the engine performs no
// category validation (callers validate at the transport edge).
func (c JurisdictionConfig) RulesFor(category CustomerCategory, aboveThreshold bool) RequirementRuleSet {
	var rules CategoryRules
	switch category {
	case CategoryIndividual:
		rules = c.Individual
	case CategoryCompany:
		rules = c.Company
	}
	if aboveThreshold {
		return rules.AboveThreshold
	}
	return rules.BelowThreshold
}
