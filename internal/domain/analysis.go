package domain

// Classification is the single compliance outcome of an evaluation.
//
// It is derived from the two mandatory (AND-only) field sets and the transfer
// direction. Alternative-group satisfaction and semantic matches are reported
// in FieldAnalysis but deliberately never feed the classification: a party
// whose only gap is covered by an alternative group still classifies as
// mismatched here. Downstream consumers depend on these narrower semantics.
type Classification string

const (
	ClassificationFullMatch                  Classification = "full_match"
	ClassificationOvercompliance             Classification = "overcompliance"
	ClassificationCounterpartyMayRequestMore Classification = "counterparty_may_request_more"
	ClassificationSenderMayNotProvide        Classification = "sender_may_not_provide"
)

// AlternativeGroup is one OR-group of a rule set: satisfying any listed field
// (or the date-of-birth/birthplace pair in the alternative-identity case)
// fulfills the requirement. IDs are positional per side: group_0, group_1, ...
// counted over OR groups only.
type AlternativeGroup struct {
	ID     string   `json:"id"`
	Fields []string `json:"fields"`
}

// ExtractedRequirements is the flattened field-coverage model of one side.
type ExtractedRequirements struct {
	MandatoryFields   []string           `json:"mandatory_fields"`
	AlternativeGroups []AlternativeGroup `json:"alternative_groups"`
}

// FieldMatch pairs one origin-side field with one counterparty-side field.
// Each field appears in at most one match.
type FieldMatch struct {
	SourceField        string `json:"source_field"`
	TargetField        string `json:"target_field"`
	Exact              bool   `json:"exact"`
	ViaAlternative     bool   `json:"via_alternative"`
	AlternativeGroupID string `json:"alternative_group_id,omitempty"`
}

// FieldAnalysis is the field-by-field reconciliation of the two sides.
// Depending on direction, exactly one of SourceSendsMore and
// CounterpartySendsMore is populated; the other stays empty.
type FieldAnalysis struct {
	MissingFields               []string          `json:"missing_fields"`
	ExtraFields                 []string          `json:"extra_fields"`
	MatchingFields              []string          `json:"matching_fields"`
	SourceSendsMore             []string          `json:"source_sends_more"`
	CounterpartySendsMore       []string          `json:"counterparty_sends_more"`
	Matches                     []FieldMatch      `json:"matches"`
	AlternativeGroupResolutions map[string]string `json:"alternative_group_resolutions"`
}

// PartySummary describes one side's extracted requirements and flags.
type PartySummary struct {
	CountryCode       string             `json:"country_code"`
	Currency          string             `json:"currency"`
	ThresholdMet      bool               `json:"threshold_met"`
	MandatoryFields   []string           `json:"mandatory_fields"`
	AlternativeGroups []AlternativeGroup `json:"alternative_groups"`
	RuleGroups        []RequirementGroup `json:"rule_groups"`
	KYCRequired       bool               `json:"kyc_required"`
	AMLRequired       bool               `json:"aml_required"`
	WalletAttribution bool               `json:"wallet_attribution"`
	RecommendedFields []string           `json:"recommended_fields,omitempty"`
}

// ComplianceResult is the top-level output of one evaluation. Currency and
// ThresholdMet refer to the origin jurisdiction; ConvertedAmount is the
// transfer amount expressed in the counterparty currency.
type ComplianceResult struct {
	Origin          PartySummary   `json:"origin"`
	Counterparty    PartySummary   `json:"counterparty"`
	Classification  Classification `json:"classification"`
	Currency        string         `json:"currency"`
	Amount          float64        `json:"amount"`
	ConvertedAmount float64        `json:"converted_amount"`
	ThresholdMet    bool           `json:"threshold_met"`
	FieldAnalysis   FieldAnalysis  `json:"field_analysis"`
}
