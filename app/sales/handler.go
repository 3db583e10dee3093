package sales

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukapos/pos-backend/app/respond"
	"github.com/dukapos/pos-backend/models"
)

type SalePayment struct {
	ID              string  `json:"id"`
	Method          string  `json:"method"`
	Amount          float64 `json:"amount"`
	TransactionCode string  `json:"transactionCode"`
}

type Sale struct {
	ID              string       `json:"id"`
	ProductName     string       `json:"productName"`
	Quantity        int          `json:"quantity"`
	Amount          float64      `json:"amount"`
	PaymentMethod   string       `json:"paymentMethod"`
	TransactionCode string       `json:"transactionCode,omitempty"`
	Date            string       `json:"date"`
	Payment         *SalePayment `json:"payment,omitempty"`
}

type SaleStore interface {
	CreateSale(sale *models.Sale) error
	ListSales() ([]models.Sale, error)
}

// TransactionChecker is the payment-side existence probe the workflow
// consults before accepting an M-Pesa code.
type TransactionChecker interface {
	TransactionCodeExists(code string) (bool, error)
}

type SalesHandler struct {
	store    SaleStore
	payments TransactionChecker
}

func NewSalesHandler(store SaleStore, payments TransactionChecker) *SalesHandler {
	return &SalesHandler{
		store:    store,
		payments: payments,
	}
}

type recordSaleInput struct {
	ProductName     string   `json:"productName"`
	Quantity        *int     `json:"quantity"`
	Amount          *float64 `json:"amount"`
	PaymentMethod   string   `json:"paymentMethod"`
	TransactionCode string   `json:"transactionCode"`
	PaymentID       string   `json:"paymentId"`
}

func (in *recordSaleInput) validate() error {
	if in.ProductName == "" {
		return errors.New("productName is required")
	}
	if in.Quantity == nil || *in.Quantity <= 0 {
		return errors.New("quantity must be a positive integer")
	}
	if in.Amount == nil || *in.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if !models.PaymentMethod(in.PaymentMethod).Valid() {
		return errors.New("paymentMethod must be Cash or M-Pesa")
	}
	if models.PaymentMethod(in.PaymentMethod) == models.PaymentMethodMpesa && in.TransactionCode == "" {
		return errors.New("transaction code is required for M-Pesa payments")
	}
	return nil
}

// HandleRecord validates and persists one sale. Stock deduction is a
// separate PUT /products/{id} call the client issues after a success
// here; the two writes are not transactionally tied.
func (h *SalesHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var input recordSaleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body")
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, err.Error())
		return
	}

	if models.PaymentMethod(input.PaymentMethod) == models.PaymentMethodMpesa {
		exists, err := h.payments.TransactionCodeExists(input.TransactionCode)
		if err != nil {
			respond.Internal(w, "failed to check transaction code")
			return
		}
		if exists {
			respond.Error(w, http.StatusBadRequest, respond.CodeConflict, "transaction code must be unique")
			return
		}
	}

	sale := &models.Sale{
		ProductName:   input.ProductName,
		Quantity:      *input.Quantity,
		Amount:        decimal.NewFromFloat(*input.Amount),
		PaymentMethod: models.PaymentMethod(input.PaymentMethod),
	}
	if input.TransactionCode != "" {
		sale.TransactionCode = &input.TransactionCode
	}
	if input.PaymentID != "" {
		sale.PaymentID = &input.PaymentID
	}

	if err := h.store.CreateSale(sale); err != nil {
		if errors.Is(err, models.ErrDuplicateTransactionCode) {
			respond.Error(w, http.StatusBadRequest, respond.CodeConflict, "transaction code must be unique")
			return
		}
		respond.Internal(w, "failed to record sale")
		return
	}

	respond.JSON(w, http.StatusCreated, toSaleResponse(sale))
}

func (h *SalesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	res, err := h.store.ListSales()
	if err != nil {
		respond.Internal(w, "failed to fetch sales")
		return
	}

	sales := make([]Sale, len(res))
	for i := range res {
		sales[i] = toSaleResponse(&res[i])
	}
	respond.JSON(w, http.StatusOK, sales)
}

func toSaleResponse(s *models.Sale) Sale {
	out := Sale{
		ID:            s.ID,
		ProductName:   s.ProductName,
		Quantity:      s.Quantity,
		Amount:        s.Amount.InexactFloat64(),
		PaymentMethod: string(s.PaymentMethod),
		Date:          s.CreatedAt.Format(time.RFC3339),
	}
	if s.TransactionCode != nil {
		out.TransactionCode = *s.TransactionCode
	}
	if s.Payment != nil {
		out.Payment = &SalePayment{
			ID:              s.Payment.ID,
			Method:          string(s.Payment.Method),
			Amount:          s.Payment.Amount.InexactFloat64(),
			TransactionCode: s.Payment.TransactionCode,
		}
	}
	return out
}
