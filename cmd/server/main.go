package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"transfer-compliance/internal/gateway"
	"transfer-compliance/internal/usecase"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	listenAddr := getenv("LISTEN_ADDR", ":8080")
	configPath := os.Getenv("CONFIG_PATH")

	var repo usecase.ConfigRepository
	if configPath != "" {
		yamlRepo, err := gateway.NewYAMLConfigRepository(configPath)
		if err != nil {
			log.Fatalf("config load error: %v", err)
		}
		repo = yamlRepo
		log.Printf("loaded jurisdiction table from %s", configPath)
	} else {
		repo = gateway.NewBuiltinConfigRepository()
	}

	complianceUseCase := usecase.NewComplianceUseCase(repo, gateway.NewStaticRateConverter())
	handler := gateway.NewHandler(complianceUseCase)

	r := chi.NewRouter()
	r.Mount("/", handler.Routes())

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(listenAddr, r) }()
	log.Printf("listening on %s", listenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
	case err := <-errCh:
		log.Fatalf("server error: %v", err)
	}
}
