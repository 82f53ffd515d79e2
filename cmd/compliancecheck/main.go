package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"transfer-compliance/internal/domain"
	"transfer-compliance/internal/gateway"
	"transfer-compliance/internal/usecase"
)

func main() {
	// Define command-line flags
	origin := flag.String("origin", "", "Origin country code (required)")
	counterparty := flag.String("counterparty", "", "Counterparty country code (required)")
	category := flag.String("category", string(domain.CategoryIndividual), "Customer category: individual or company")
	direction := flag.String("direction", string(domain.DirectionOut), "Transfer direction: OUT or IN")
	amount := flag.Float64("amount", 0, "Transfer amount in the origin jurisdiction currency (required)")
	configPath := flag.String("config", "", "Optional path to a jurisdictions YAML file (defaults to builtin tables)")
	flag.Parse()

	if *origin == "" || *counterparty == "" {
		fmt.Println("Error: flags -origin and -counterparty are required.")
		flag.Usage()
		os.Exit(1)
	}

	customerCategory, err := domain.ParseCustomerCategory(*category)
	if err != nil {
		log.Fatalf("Error parsing category: %v", err)
	}
	transferDirection, err := domain.ParseDirection(*direction)
	if err != nil {
		log.Fatalf("Error parsing direction: %v", err)
	}
	if *amount < 0 {
		log.Fatalf("Error: amount must not be negative")
	}

	// Wire the config repository (builtin tables unless overridden) and the
	// static rate converter into the usecase.
	var repo usecase.ConfigRepository
	if *configPath != "" {
		yamlRepo, err := gateway.NewYAMLConfigRepository(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		repo = yamlRepo
	} else {
		repo = gateway.NewBuiltinConfigRepository()
	}

	complianceUseCase := usecase.NewComplianceUseCase(repo, gateway.NewStaticRateConverter())

	result, err := complianceUseCase.Calculate(context.Background(), domain.TransactionDescription{
		OriginCountry:       *origin,
		CounterpartyCountry: *counterparty,
		CustomerCategory:    customerCategory,
		Direction:           transferDirection,
		Amount:              *amount,
	})
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON output: %v", err)
	}

	fmt.Println(string(output))
}
