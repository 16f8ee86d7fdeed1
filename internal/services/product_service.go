package services

import (
	"vibecart/internal/models"
	"vibecart/internal/repositories"
)

// ProductService handles the public catalog and seller listing management.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// BrowseProducts returns the catalog, filtered by the search query when
// one is given.
func (s *ProductService) BrowseProducts(query string) ([]models.Product, error) {
	if query != "" {
		return s.repo.Search(query)
	}
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// ListSellerProducts retrieves the seller's own listings.
func (s *ProductService) ListSellerProducts(sellerID string) ([]models.Product, error) {
	return s.repo.ListBySeller(sellerID)
}

// CreateProduct creates a listing owned by the seller, regardless of any
// seller ID the client submitted.
func (s *ProductService) CreateProduct(sellerID string, product *models.Product) error {
	product.SellerID = sellerID
	return s.repo.Create(product)
}

// UpdateProduct updates a listing. Ownership is enforced by the repository
// query, so another seller's product reads as not found.
func (s *ProductService) UpdateProduct(sellerID string, product *models.Product) error {
	product.SellerID = sellerID
	return s.repo.Update(product)
}

// DeleteProduct deletes a listing owned by the seller.
func (s *ProductService) DeleteProduct(id, sellerID string) error {
	return s.repo.Delete(id, sellerID)
}
