package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dukapos/pos-backend/models"
)

type MockProductLister struct {
	Products []models.Product
	Err      error
}

func (m *MockProductLister) ListProducts(string) ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Products, nil
}

type MockPaymentLister struct {
	Payments []models.Payment
	Err      error
}

func (m *MockPaymentLister) ListPayments() ([]models.Payment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Payments, nil
}

func serve(products *MockProductLister, payments *MockPaymentLister) *httptest.ResponseRecorder {
	h := NewDashboardHandler(products, payments)
	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	h.HandleSummary(rec, req)
	return rec
}

func TestHandleSummary(t *testing.T) {
	products := &MockProductLister{
		Products: []models.Product{
			{ID: "id-1", Name: "Soap", Quantity: 10, Sold: 3},
			{ID: "id-2", Name: "Sugar", Quantity: 5, Sold: 7},
			{ID: "id-3", Name: "Salt", Quantity: 2},
		},
	}
	payments := &MockPaymentLister{
		Payments: []models.Payment{
			{ID: "p-1", Method: models.PaymentMethodCash, Amount: decimal.NewFromInt(100), TransactionCode: "C1"},
			{ID: "p-2", Method: models.PaymentMethodMpesa, Amount: decimal.NewFromInt(50), TransactionCode: "M1"},
		},
	}

	rec := serve(products, payments)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp Summary
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 3, resp.ProductsCount)
	assert.Equal(t, 10, resp.ProductsSold)
	assert.Equal(t, 100.0, resp.CashTotal)
	assert.Equal(t, 50.0, resp.MpesaTotal)
	assert.Equal(t, 150.0, resp.TotalSales)
}

func TestHandleSummaryEmpty(t *testing.T) {
	rec := serve(&MockProductLister{}, &MockPaymentLister{})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp Summary
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, Summary{}, resp)
}

func TestHandleSummaryErrors(t *testing.T) {
	t.Run("Products fetch fails", func(t *testing.T) {
		rec := serve(&MockProductLister{Err: errors.New("db down")}, &MockPaymentLister{})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Payments fetch fails", func(t *testing.T) {
		rec := serve(&MockProductLister{}, &MockPaymentLister{Err: errors.New("db down")})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
