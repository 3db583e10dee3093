package catalog

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

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Date        string  `json:"date"`
}

type ProductProvider interface {
	CreateProduct(product *models.Product) error
	ListProducts(searchTerm string) ([]models.Product, error)
	AdjustStock(id string, quantitySold int) (*models.Product, error)
	DeleteProduct(id string) error
}

type CatalogHandler struct {
	repo ProductProvider
}

func NewCatalogHandler(r ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

type createProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

func (in *createProductInput) validate() error {
	if in.Name == "" {
		return errors.New("name is required")
	}
	if in.Price == nil {
		return errors.New("price is required")
	}
	if *in.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if in.Quantity == nil {
		return errors.New("quantity is required")
	}
	if *in.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	return nil
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input createProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body")
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, err.Error())
		return
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       decimal.NewFromFloat(*input.Price),
		Quantity:    *input.Quantity,
	}
	if err := h.repo.CreateProduct(product); err != nil {
		respond.Internal(w, "failed to record product")
		return
	}

	respond.JSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	searchTerm := r.URL.Query().Get("searchTerm")

	res, err := h.repo.ListProducts(searchTerm)
	if err != nil {
		respond.Internal(w, "failed to fetch products")
		return
	}

	products := make([]Product, len(res))
	for i := range res {
		products[i] = toProductResponse(&res[i])
	}
	respond.JSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) HandleAdjustStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input struct {
		QuantitySold *int `json:"quantitySold"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body")
		return
	}
	if input.QuantitySold == nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, "quantitySold is required")
		return
	}

	product, err := h.repo.AdjustStock(id, *input.QuantitySold)
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		respond.Error(w, http.StatusNotFound, respond.CodeNotFound, "product not found")
		return
	case errors.Is(err, models.ErrInsufficientStock):
		respond.Error(w, http.StatusBadRequest, respond.CodeInsufficientStock, "insufficient stock")
		return
	case err != nil:
		respond.Internal(w, "failed to update product stock")
		return
	}

	respond.JSON(w, http.StatusOK, toProductResponse(product))
}

func (h *CatalogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.DeleteProduct(id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			respond.Error(w, http.StatusNotFound, respond.CodeNotFound, "product not found")
			return
		}
		respond.Internal(w, "failed to delete product")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}

func toProductResponse(p *models.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Quantity:    p.Quantity,
		Date:        p.CreatedAt.Format(time.RFC3339),
	}
}
