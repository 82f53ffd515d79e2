package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"transfer-compliance/internal/domain"
)

// ComplianceCalculator is the engine surface the HTTP handler depends on.
type ComplianceCalculator interface {
	Calculate(ctx context.Context, tx domain.TransactionDescription) (*domain.ComplianceResult, error)
}

// Handler exposes the compliance engine as a JSON API.
type Handler struct {
	calculator ComplianceCalculator
}

// NewHandler creates an HTTP handler around a calculator.
func NewHandler(calculator ComplianceCalculator) *Handler {
	return &Handler{calculator: calculator}
}

// Routes returns a chi.Router with the API endpoints mounted.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", h.health)
	r.Post("/api/v1/evaluations", h.evaluate)
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type evaluationRequest struct {
	OriginCountry       string  `json:"origin_country"`
	CounterpartyCountry string  `json:"counterparty_country"`
	CustomerCategory    string  `json:"customer_category"`
	Direction           string  `json:"direction"`
	Amount              float64 `json:"amount"`
}

// toTransaction validates the request at the transport edge. The engine
// itself performs no validation beyond the jurisdiction lookup.
func (req evaluationRequest) toTransaction() (domain.TransactionDescription, error) {
	if req.OriginCountry == "" || req.CounterpartyCountry == "" {
		return domain.TransactionDescription{}, errors.New("origin_country and counterparty_country are required")
	}
	category, err := domain.ParseCustomerCategory(req.CustomerCategory)
	if err != nil {
		return domain.TransactionDescription{}, err
	}
	direction, err := domain.ParseDirection(req.Direction)
	if err != nil {
		return domain.TransactionDescription{}, err
	}
	if req.Amount < 0 {
		return domain.TransactionDescription{}, errors.New("amount must not be negative")
	}
	return domain.TransactionDescription{
		OriginCountry:       req.OriginCountry,
		CounterpartyCountry: req.CounterpartyCountry,
		CustomerCategory:    category,
		Direction:           direction,
		Amount:              req.Amount,
	}, nil
}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tx, err := req.toTransaction()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.calculator.Calculate(r.Context(), tx)
	if err != nil {
		if errors.Is(err, domain.ErrJurisdictionNotFound) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
