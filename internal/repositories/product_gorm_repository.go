package repositories

import (
	"fmt"
	"vibecart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database, newest first.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// Search retrieves products whose name, description or category contains
// the query, case-insensitively.
func (r *GORMProductRepository) Search(query string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// ListBySeller retrieves the products owned by a seller, newest first.
func (r *GORMProductRepository) ListBySeller(sellerID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("seller_id = ?", sellerID).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products for seller %s: %w", sellerID, err)
	}
	return products, nil
}

// CountBySeller counts the products listed by a seller.
func (r *GORMProductRepository) CountBySeller(sellerID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("seller_id = ?", sellerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products for seller %s: %w", sellerID, err)
	}
	return count, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product. The seller ID in the WHERE clause
// keeps sellers from touching each other's listings.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND seller_id = ?", product.ID, product.SellerID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
			"category":    product.Category,
			"image_url":   product.ImageURL,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	return nil
}

// Delete deletes a product owned by the seller.
func (r *GORMProductRepository) Delete(id, sellerID string) error {
	res := r.db.Delete(&models.Product{}, "id = ? AND seller_id = ?", id, sellerID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	return nil
}
