package usecase

import (
	"context"
	"fmt"

	"transfer-compliance/internal/domain"
)

// ComplianceUseCase orchestrates one transfer evaluation: config lookup for
// both sides, threshold tier selection, requirement extraction, field
// matching, classification and result assembly. Evaluations are stateless and
// side-effect free, so concurrent calls need no locking.
type ComplianceUseCase struct {
	repo      ConfigRepository
	converter CurrencyConverter
}

// NewComplianceUseCase creates a new instance of the usecase.
func NewComplianceUseCase(repo ConfigRepository, converter CurrencyConverter) *ComplianceUseCase {
	return &ComplianceUseCase{repo: repo, converter: converter}
}

// Calculate evaluates a single transfer. The transfer amount is denominated
// in the origin jurisdiction's currency; the counterparty threshold is
// compared against the converted amount. An unknown country code on either
// side aborts the evaluation with domain.ErrJurisdictionNotFound wrapped in
// the returned error; no partial result is produced.
func (uc *ComplianceUseCase) Calculate(ctx context.Context, tx domain.TransactionDescription) (*domain.ComplianceResult, error) {
	originCfg, err := uc.repo.GetJurisdiction(ctx, tx.OriginCountry)
	if err != nil {
		return nil, fmt.Errorf("could not load origin jurisdiction %q: %w", tx.OriginCountry, err)
	}
	counterpartyCfg, err := uc.repo.GetJurisdiction(ctx, tx.CounterpartyCountry)
	if err != nil {
		return nil, fmt.Errorf("could not load counterparty jurisdiction %q: %w", tx.CounterpartyCountry, err)
	}
	dict, err := uc.repo.GetFieldDictionary(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load field dictionary: %w", err)
	}

	convertedAmount, err := uc.converter.Convert(ctx, tx.Amount, originCfg.Currency, counterpartyCfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("could not convert amount to %s: %w", counterpartyCfg.Currency, err)
	}

	// Inclusive thresholds: amount >= threshold selects the above tier.
	originAbove := tx.Amount >= originCfg.Threshold
	counterpartyAbove := convertedAmount >= counterpartyCfg.Threshold

	originRules := originCfg.RulesFor(tx.CustomerCategory, originAbove)
	counterpartyRules := counterpartyCfg.RulesFor(tx.CustomerCategory, counterpartyAbove)

	originReq := ExtractRequirements(originRules)
	counterpartyReq := ExtractRequirements(counterpartyRules)

	analysis := MatchFields(originReq, counterpartyReq, dict, tx.Direction)
	classification := Classify(originReq.MandatoryFields, counterpartyReq.MandatoryFields, tx.Direction)

	return &domain.ComplianceResult{
		Origin:          partySummary(originCfg, originRules, originReq, originAbove),
		Counterparty:    partySummary(counterpartyCfg, counterpartyRules, counterpartyReq, counterpartyAbove),
		Classification:  classification,
		Currency:        originCfg.Currency,
		Amount:          tx.Amount,
		ConvertedAmount: convertedAmount,
		ThresholdMet:    originAbove,
		FieldAnalysis:   analysis,
	}, nil
}

func partySummary(cfg domain.JurisdictionConfig, rules domain.RequirementRuleSet,
	req domain.ExtractedRequirements, aboveThreshold bool) domain.PartySummary {
	return domain.PartySummary{
		CountryCode:       cfg.CountryCode,
		Currency:          cfg.Currency,
		ThresholdMet:      aboveThreshold,
		MandatoryFields:   req.MandatoryFields,
		AlternativeGroups: req.AlternativeGroups,
		RuleGroups:        rules.Groups,
		KYCRequired:       rules.KYCRequired,
		AMLRequired:       rules.AMLRequired,
		WalletAttribution: rules.WalletAttribution,
		RecommendedFields: rules.RecommendedFields,
	}
}
