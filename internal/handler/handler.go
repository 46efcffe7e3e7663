package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dan9191/investment-calculator/internal/middleware"
	"github.com/Dan9191/investment-calculator/internal/models"
	"github.com/Dan9191/investment-calculator/internal/report"
	"github.com/Dan9191/investment-calculator/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// summaryRequest accepts principal as a JSON number or string and the rate as "0.10" or "10%"
type summaryRequest struct {
	Principal     json.RawMessage `json:"principal"`
	Currency      string          `json:"currency"`
	IssuerName    string          `json:"issuer_name"`
	LenderName    string          `json:"lender_name"`
	GuarantorName string          `json:"guarantor_name"`
	AdvisorName   string          `json:"advisor_name"`
	Tenor         string          `json:"tenor"`
	EffectiveDate string          `json:"effective_date"`
	MaturityDate  string          `json:"maturity_date"`
	EffectiveRate string          `json:"effective_rate"`
}

// principal returns the JSON string contents, or the raw token for numbers
func (r summaryRequest) principal() string {
	var s string
	if err := json.Unmarshal(r.Principal, &s); err == nil {
		return s
	}
	return string(r.Principal)
}

func (r summaryRequest) raw() models.RawInput {
	return models.RawInput{
		Principal:     r.principal(),
		IssuerName:    r.IssuerName,
		LenderName:    r.LenderName,
		GuarantorName: r.GuarantorName,
		AdvisorName:   r.AdvisorName,
		Tenor:         r.Tenor,
		EffectiveDate: r.EffectiveDate,
		MaturityDate:  r.MaturityDate,
		EffectiveRate: r.EffectiveRate,
		Currency:      r.Currency,
	}
}

// CreateSummary computes an investment and renders its summary
func (h *Handler) CreateSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := report.FormatJSON
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := report.ParseFormat(q)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		format = f
	}

	if sub, ok := middleware.Subject(r.Context()); ok {
		h.log.Debugf("Summary requested by %s", sub)
	}

	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	input, err := req.raw().Parse()
	if err == nil {
		var inv *models.Investment
		if inv, err = h.svc.CreateInvestment(input); err == nil {
			h.writeSummary(w, inv, format)
			return
		}
	}

	var invalid *models.InvalidInputError
	if errors.As(err, &invalid) {
		writeJSONError(w, http.StatusUnprocessableEntity, invalid.Error(), invalid.Field)
		return
	}
	h.log.Errorf("Failed to create investment summary: %v", err)
	writeJSONError(w, http.StatusInternalServerError, "internal error", "")
}

func (h *Handler) writeSummary(w http.ResponseWriter, inv *models.Investment, format report.Format) {
	body, err := report.Render(inv, format)
	if err != nil {
		h.log.Errorf("Failed to render summary: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error", "")
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.log.Warnf("Failed to write response: %v", err)
	}
}

// Health reports service liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeJSONError(w http.ResponseWriter, status int, msg, field string) {
	body := map[string]string{"error": msg}
	if field != "" {
		body["field"] = field
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
