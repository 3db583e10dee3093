package dashboard

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/dukapos/pos-backend/app/respond"
	"github.com/dukapos/pos-backend/models"
)

type Summary struct {
	ProductsCount int     `json:"productsCount"`
	ProductsSold  int     `json:"productsSold"`
	MpesaTotal    float64 `json:"mpesaTotal"`
	CashTotal     float64 `json:"cashTotal"`
	TotalSales    float64 `json:"totalSales"`
}

type ProductLister interface {
	ListProducts(searchTerm string) ([]models.Product, error)
}

type PaymentLister interface {
	ListPayments() ([]models.Payment, error)
}

type DashboardHandler struct {
	products ProductLister
	payments PaymentLister
}

func NewDashboardHandler(products ProductLister, payments PaymentLister) *DashboardHandler {
	return &DashboardHandler{
		products: products,
		payments: payments,
	}
}

// HandleSummary recomputes the dashboard figures from scratch on every
// call by scanning both collections. No caching.
func (h *DashboardHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts("")
	if err != nil {
		respond.Internal(w, "failed to fetch products")
		return
	}
	payments, err := h.payments.ListPayments()
	if err != nil {
		respond.Internal(w, "failed to fetch payments")
		return
	}

	summary := Summary{
		ProductsCount: len(products),
	}
	for _, p := range products {
		summary.ProductsSold += p.Sold
	}

	mpesa := decimal.Zero
	cash := decimal.Zero
	for _, p := range payments {
		switch p.Method {
		case models.PaymentMethodMpesa:
			mpesa = mpesa.Add(p.Amount)
		case models.PaymentMethodCash:
			cash = cash.Add(p.Amount)
		}
	}
	summary.MpesaTotal = mpesa.InexactFloat64()
	summary.CashTotal = cash.InexactFloat64()
	summary.TotalSales = mpesa.Add(cash).InexactFloat64()

	respond.JSON(w, http.StatusOK, summary)
}
