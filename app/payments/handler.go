package payments

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dukapos/pos-backend/app/respond"
	"github.com/dukapos/pos-backend/models"
)

type Payment struct {
	ID              string  `json:"id"`
	Method          string  `json:"method"`
	Amount          float64 `json:"amount"`
	TransactionCode string  `json:"transactionCode"`
	Date            string  `json:"date"`
}

type PaymentProvider interface {
	CreatePayment(payment *models.Payment) error
	ListPayments() ([]models.Payment, error)
	DeletePayment(id string) error
	TransactionCodeExists(code string) (bool, error)
}

type PaymentsHandler struct {
	repo PaymentProvider
}

func NewPaymentsHandler(r PaymentProvider) *PaymentsHandler {
	return &PaymentsHandler{repo: r}
}

type createPaymentInput struct {
	Method          string   `json:"method"`
	Amount          *float64 `json:"amount"`
	TransactionCode string   `json:"transactionCode"`
}

func (in *createPaymentInput) validate() error {
	if in.Method == "" {
		return errors.New("method is required")
	}
	if !models.PaymentMethod(in.Method).Valid() {
		return errors.New("method must be Cash or M-Pesa")
	}
	if in.Amount == nil {
		return errors.New("amount is required")
	}
	if *in.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if in.TransactionCode == "" {
		return errors.New("transactionCode is required")
	}
	return nil
}

func (h *PaymentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input createPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body")
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, err.Error())
		return
	}

	payment := &models.Payment{
		Method:          models.PaymentMethod(input.Method),
		Amount:          decimal.NewFromFloat(*input.Amount),
		TransactionCode: input.TransactionCode,
	}
	if err := h.repo.CreatePayment(payment); err != nil {
		if errors.Is(err, models.ErrDuplicateTransactionCode) {
			respond.Error(w, http.StatusBadRequest, respond.CodeConflict, "transaction code must be unique")
			return
		}
		respond.Internal(w, "failed to record payment")
		return
	}

	respond.JSON(w, http.StatusCreated, toPaymentResponse(payment))
}

func (h *PaymentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	res, err := h.repo.ListPayments()
	if err != nil {
		respond.Internal(w, "failed to fetch payments")
		return
	}

	payments := make([]Payment, len(res))
	for i := range res {
		payments[i] = toPaymentResponse(&res[i])
	}
	respond.JSON(w, http.StatusOK, payments)
}

func (h *PaymentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.DeletePayment(id); err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			respond.Error(w, http.StatusNotFound, respond.CodeNotFound, "payment not found")
			return
		}
		respond.Internal(w, "failed to delete payment")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Payment deleted successfully",
	})
}

// HandleVerifyTransaction is the advisory existence probe the sale form
// calls before submitting. The unique index still decides the race.
func (h *PaymentsHandler) HandleVerifyTransaction(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	exists, err := h.repo.TransactionCodeExists(code)
	if err != nil {
		respond.Internal(w, "failed to check transaction code")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func toPaymentResponse(p *models.Payment) Payment {
	return Payment{
		ID:              p.ID,
		Method:          string(p.Method),
		Amount:          p.Amount.InexactFloat64(),
		TransactionCode: p.TransactionCode,
		Date:            p.CreatedAt.Format(time.RFC3339),
	}
}
