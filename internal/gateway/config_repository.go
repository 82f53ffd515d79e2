package gateway

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"transfer-compliance/internal/domain"
)

// StaticConfigRepository implements usecase.ConfigRepository over an
// in-memory jurisdiction table and field dictionary. The data is loaded once
// and never mutated afterwards, so the repository is safe for concurrent use.
type StaticConfigRepository struct {
	jurisdictions map[string]domain.JurisdictionConfig
	dictionary    domain.FieldDictionary
}

// NewBuiltinConfigRepository creates a repository serving the builtin tables.
func NewBuiltinConfigRepository() *StaticConfigRepository {
	return &StaticConfigRepository{
		jurisdictions: builtinJurisdictions(),
		dictionary:    builtinDictionary(),
	}
}

// configFile is the YAML override schema.
type configFile struct {
	Jurisdictions map[string]domain.JurisdictionConfig `yaml:"jurisdictions"`
	Fields        []domain.FieldDefinition             `yaml:"fields"`
}

// NewYAMLConfigRepository loads a full jurisdiction table and field
// dictionary from a YAML file, replacing the builtin set. A malformed file is
// a load-time error, never an evaluation-time condition.
func NewYAMLConfigRepository(path string) (*StaticConfigRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if len(file.Jurisdictions) == 0 {
		return nil, fmt.Errorf("config file %s declares no jurisdictions", path)
	}

	jurisdictions := make(map[string]domain.JurisdictionConfig, len(file.Jurisdictions))
	for code, cfg := range file.Jurisdictions {
		code = strings.ToUpper(code)
		cfg.CountryCode = code
		jurisdictions[code] = cfg
	}

	dictionary := domain.FieldDictionary(file.Fields)
	if len(dictionary) == 0 {
		dictionary = builtinDictionary()
	}

	return &StaticConfigRepository{
		jurisdictions: jurisdictions,
		dictionary:    dictionary,
	}, nil
}

// GetJurisdiction looks up a country code in the table.
func (r *StaticConfigRepository) GetJurisdiction(ctx context.Context, countryCode string) (domain.JurisdictionConfig, error) {
	cfg, ok := r.jurisdictions[strings.ToUpper(countryCode)]
	if !ok {
		return domain.JurisdictionConfig{}, fmt.Errorf("country code %q: %w", countryCode, domain.ErrJurisdictionNotFound)
	}
	return cfg, nil
}

// GetFieldDictionary returns the field-alias dictionary.
func (r *StaticConfigRepository) GetFieldDictionary(ctx context.Context) (domain.FieldDictionary, error) {
	return r.dictionary, nil
}
