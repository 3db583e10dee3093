package models

import (
	"errors"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a deduction exceeds the
// on-hand quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) CreateProduct(product *Product) error {
	return r.db.Create(product).Error
}

// ListProducts returns all products, optionally narrowed to those whose
// name contains searchTerm (case-insensitive). No pagination.
func (r *ProductsRepository) ListProducts(searchTerm string) ([]Product, error) {
	var products []Product
	query := r.db.Model(&Product{})
	if searchTerm != "" {
		query = query.Where("name ILIKE ?", "%"+searchTerm+"%")
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// AdjustStock deducts quantitySold from the product's on-hand quantity
// as a single conditional update, so concurrent deductions cannot drive
// the quantity negative. A negative quantitySold restocks through the
// same statement. Returns the product as it stands after the update.
func (r *ProductsRepository) AdjustStock(id string, quantitySold int) (*Product, error) {
	res := r.db.Model(&Product{}).
		Where("id = ? AND quantity >= ?", id, quantitySold).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantitySold))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// The guard rejects both unknown ids and short stock; look the
		// product up to tell the two apart.
		var count int64
		if err := r.db.Model(&Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrProductNotFound
		}
		return nil, ErrInsufficientStock
	}

	var product Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductsRepository) DeleteProduct(id string) error {
	res := r.db.Delete(&Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
