package usecase

import (
	"context"

	"transfer-compliance/internal/domain"
)

// ConfigRepository supplies the read-only jurisdiction rule table and the
// field-alias dictionary. The usecase layer depends on this interface, not on
// a concrete implementation. Implementations must treat the data as immutable
// at call time; callers are responsible for loading and refreshing it.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type ConfigRepository interface {
	GetJurisdiction(ctx context.Context, countryCode string) (domain.JurisdictionConfig, error)
	GetFieldDictionary(ctx context.Context) (domain.FieldDictionary, error)
}

// CurrencyConverter converts an amount between two currency codes. Conversion
// is an external collaborator; the engine only needs it to compare the
// transfer amount against each jurisdiction's threshold.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}
