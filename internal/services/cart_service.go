package services

import (
	"fmt"

	"vibecart/internal/models"
	"vibecart/internal/repositories"
)

// CartService handles the server-authoritative cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the user's cart lines joined with live products.
func (s *CartService) GetCart(userID string) ([]models.CartLine, error) {
	return s.cartRepo.GetLines(userID)
}

// AddToCart adds quantity of a product to the user's cart, merging with an
// existing line for the same product. The merged quantity may not exceed
// the product's live stock.
func (s *CartService) AddToCart(userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	newQuantity := quantity
	if existing, err := s.cartRepo.GetItem(userID, productID); err != nil {
		return nil, err
	} else if existing != nil {
		newQuantity += existing.Quantity
	}

	if product.Stock < newQuantity {
		return nil, &InsufficientStockError{
			ProductID:   productID,
			ProductName: product.Name,
			Requested:   newQuantity,
			Available:   product.Stock,
		}
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  newQuantity,
	}
	if err := s.cartRepo.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveFromCart deletes a single line from the user's cart.
func (s *CartService) RemoveFromCart(userID, productID string) error {
	return s.cartRepo.Remove(userID, productID)
}
