package gateway

import "transfer-compliance/internal/domain"

// Builtin jurisdiction rule tables and field dictionary. These mirror the
// travel-rule style requirements the tool ships with; business correctness of
// the data is the responsibility of whoever maintains it, not of the engine.

func builtinDictionary() domain.FieldDictionary {
	return domain.FieldDictionary{
		{Key: "full_name", Label: "Full name", Aliases: []string{"company_name", "registered_name"}},
		{Key: "residential_address", Label: "Residential address", Aliases: []string{"registered_address", "business_address"}},
		{Key: "wallet_address", Label: "Wallet address", Aliases: []string{"crypto_address", "blockchain_address", "virtual_asset_address", "dlt_address"}},
		{Key: domain.FieldIDDocumentNumber, Label: "Identity document number", Aliases: []string{"passport_number", "national_id_number"}},
		{Key: domain.FieldCustomerID, Label: "Customer identifier", Aliases: []string{"account_number", "customer_identification_number"}},
		{Key: domain.FieldDateOfBirth, Label: "Date of birth"},
		{Key: domain.FieldBirthplace, Label: "Place of birth"},
		{Key: "nationality", Label: "Nationality"},
		{Key: "email_address", Label: "Email address"},
		{Key: "company_name", Label: "Company name"},
		{Key: "registered_address", Label: "Registered address"},
		{Key: "registration_number", Label: "Company registration number", Aliases: []string{"commercial_register_number"}},
		{Key: "lei_code", Label: "Legal entity identifier"},
		{Key: "account_number", Label: "Account number"},
	}
}

func builtinJurisdictions() map[string]domain.JurisdictionConfig {
	alternativeIdentity := domain.RequirementGroup{
		Fields: []string{domain.FieldIDDocumentNumber, domain.FieldCustomerID, domain.FieldDateOfBirth, domain.FieldBirthplace},
		Logic:  domain.LogicOr,
	}

	// No de-minimis threshold: every amount lands in the above tier.
	deIndividual := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"full_name", "residential_address", "wallet_address"}, Logic: domain.LogicAnd},
			alternativeIdentity,
		},
		KYCRequired:       true,
		AMLRequired:       true,
		WalletAttribution: true,
		RecommendedFields: []string{"email_address"},
	}
	deCompany := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"company_name", "registered_address", "wallet_address"}, Logic: domain.LogicAnd},
			{Fields: []string{"registration_number", "lei_code"}, Logic: domain.LogicOr},
		},
		KYCRequired:       true,
		AMLRequired:       true,
		WalletAttribution: true,
	}

	chIndividualBelow := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"full_name", "wallet_address"}, Logic: domain.LogicAnd},
		},
		KYCRequired:       true,
		WalletAttribution: true,
	}
	chIndividualAbove := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"full_name", "residential_address", "wallet_address"}, Logic: domain.LogicAnd},
			alternativeIdentity,
		},
		KYCRequired:       true,
		AMLRequired:       true,
		WalletAttribution: true,
		RecommendedFields: []string{"nationality"},
	}
	chCompanyBelow := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"company_name", "wallet_address"}, Logic: domain.LogicAnd},
		},
		KYCRequired:       true,
		WalletAttribution: true,
	}
	chCompanyAbove := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"company_name", "registered_address", "wallet_address"}, Logic: domain.LogicAnd},
			{Fields: []string{"registration_number", "lei_code"}, Logic: domain.LogicOr},
		},
		KYCRequired:       true,
		AMLRequired:       true,
		WalletAttribution: true,
	}

	gbIndividualAbove := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"full_name", "residential_address", "date_of_birth", "wallet_address"}, Logic: domain.LogicAnd},
		},
		KYCRequired: true,
		AMLRequired: true,
	}
	gbCompanyAbove := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"company_name", "registered_address", "registration_number", "wallet_address"}, Logic: domain.LogicAnd},
		},
		KYCRequired: true,
		AMLRequired: true,
	}

	usIndividualAbove := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"full_name", "residential_address", "account_number", "wallet_address"}, Logic: domain.LogicAnd},
		},
		KYCRequired:       true,
		AMLRequired:       true,
		RecommendedFields: []string{domain.FieldIDDocumentNumber},
	}
	usCompanyAbove := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"company_name", "registered_address", "account_number", "wallet_address"}, Logic: domain.LogicAnd},
		},
		KYCRequired: true,
		AMLRequired: true,
	}

	sgIndividualAbove := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"full_name", "residential_address", "wallet_address"}, Logic: domain.LogicAnd},
			{Fields: []string{domain.FieldIDDocumentNumber, domain.FieldDateOfBirth}, Logic: domain.LogicOr},
		},
		KYCRequired:       true,
		AMLRequired:       true,
		WalletAttribution: true,
	}
	sgCompanyAbove := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"company_name", "registered_address", "wallet_address"}, Logic: domain.LogicAnd},
			{Fields: []string{"registration_number", "lei_code"}, Logic: domain.LogicOr},
		},
		KYCRequired: true,
		AMLRequired: true,
	}

	nameOnlyIndividual := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"full_name", "wallet_address"}, Logic: domain.LogicAnd},
		},
		KYCRequired: true,
	}
	nameOnlyCompany := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"company_name", "wallet_address"}, Logic: domain.LogicAnd},
		},
		KYCRequired: true,
	}

	return map[string]domain.JurisdictionConfig{
		"DE": {
			CountryCode: "DE",
			Currency:    "EUR",
			Threshold:   0,
			Individual:  domain.CategoryRules{BelowThreshold: deIndividual, AboveThreshold: deIndividual},
			Company:     domain.CategoryRules{BelowThreshold: deCompany, AboveThreshold: deCompany},
		},
		"CH": {
			CountryCode: "CH",
			Currency:    "CHF",
			Threshold:   1000,
			Individual:  domain.CategoryRules{BelowThreshold: chIndividualBelow, AboveThreshold: chIndividualAbove},
			Company:     domain.CategoryRules{BelowThreshold: chCompanyBelow, AboveThreshold: chCompanyAbove},
		},
		"GB": {
			CountryCode: "GB",
			Currency:    "GBP",
			Threshold:   1000,
			Individual:  domain.CategoryRules{BelowThreshold: nameOnlyIndividual, AboveThreshold: gbIndividualAbove},
			Company:     domain.CategoryRules{BelowThreshold: nameOnlyCompany, AboveThreshold: gbCompanyAbove},
		},
		"US": {
			CountryCode: "US",
			Currency:    "USD",
			Threshold:   3000,
			Individual:  domain.CategoryRules{BelowThreshold: nameOnlyIndividual, AboveThreshold: usIndividualAbove},
			Company:     domain.CategoryRules{BelowThreshold: nameOnlyCompany, AboveThreshold: usCompanyAbove},
		},
		"SG": {
			CountryCode: "SG",
			Currency:    "SGD",
			Threshold:   1500,
			Individual:  domain.CategoryRules{BelowThreshold: nameOnlyIndividual, AboveThreshold: sgIndividualAbove},
			Company:     domain.CategoryRules{BelowThreshold: nameOnlyCompany, AboveThreshold: sgCompanyAbove},
		},
	}
}
