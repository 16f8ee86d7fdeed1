package services

import (
	"fmt"
	"log"
	"time"

	"vibecart/internal/models"
	"vibecart/internal/repositories"
	"vibecart/pkg/rabbitmq"

	"github.com/google/uuid"
)

// sellerPartition groups a buyer's cart lines for one seller. Each
// partition becomes exactly one order.
type sellerPartition struct {
	sellerID string
	lines    []models.CartLine
	subtotal float64
}

// checkoutPlan is the validated price/stock snapshot of a cart, built
// before any mutation is attempted.
type checkoutPlan struct {
	partitions []sellerPartition
	total      float64
}

// buildCheckoutPlan validates every cart line against live stock and
// partitions the cart by seller, preserving the order sellers first appear
// in. It returns the first violated constraint. Prices come from the live
// product rows on the lines, never from anything client-submitted.
func buildCheckoutPlan(lines []models.CartLine) (*checkoutPlan, error) {
	plan := &checkoutPlan{}
	index := make(map[string]int)

	for _, line := range lines {
		if line.Product.Stock < line.Quantity {
			return nil, &InsufficientStockError{
				ProductID:   line.ProductID,
				ProductName: line.Product.Name,
				Requested:   line.Quantity,
				Available:   line.Product.Stock,
			}
		}

		lineTotal := line.Product.Price * float64(line.Quantity)
		plan.total += lineTotal

		i, ok := index[line.Product.SellerID]
		if !ok {
			i = len(plan.partitions)
			index[line.Product.SellerID] = i
			plan.partitions = append(plan.partitions, sellerPartition{sellerID: line.Product.SellerID})
		}
		plan.partitions[i].lines = append(plan.partitions[i].lines, line)
		plan.partitions[i].subtotal += lineTotal
	}
	return plan, nil
}

// CheckoutService is the order placement engine. It validates a buyer's
// cart against live stock and funds, then hands a fully built set of
// per-seller orders to the checkout repository for an atomic commit.
type CheckoutService struct {
	userRepo     repositories.UserRepository
	cartRepo     repositories.CartRepository
	addressRepo  repositories.AddressRepository
	checkoutRepo repositories.CheckoutRepository
	mqClient     *rabbitmq.Client
}

// NewCheckoutService creates a new CheckoutService. mqClient may be nil;
// event publication is then skipped.
func NewCheckoutService(
	userRepo repositories.UserRepository,
	cartRepo repositories.CartRepository,
	addressRepo repositories.AddressRepository,
	checkoutRepo repositories.CheckoutRepository,
	mqClient *rabbitmq.Client,
) *CheckoutService {
	return &CheckoutService{
		userRepo:     userRepo,
		cartRepo:     cartRepo,
		addressRepo:  addressRepo,
		checkoutRepo: checkoutRepo,
		mqClient:     mqClient,
	}
}

// PlaceOrder places the buyer's current cart as one order per seller.
//
// Preconditions are checked with read-only queries before anything is
// written: the address must belong to the buyer, the cart must be
// non-empty, every line must fit within live stock, and the wallet must
// cover the total computed from current prices. The commit itself is a
// single transaction re-validating stock and funds with conditional
// writes, so a race lost between check and commit aborts cleanly with no
// partial orders, partial stock decrement or partial debit.
func (s *CheckoutService) PlaceOrder(buyerID, addressID string) ([]models.Order, error) {
	buyer, err := s.userRepo.GetByID(buyerID)
	if err != nil {
		return nil, fmt.Errorf("buyer lookup failed: %w", err)
	}

	address, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return nil, fmt.Errorf("address lookup failed: %w", err)
	}
	if address == nil || address.UserID != buyerID {
		return nil, ErrAddressNotOwned
	}

	lines, err := s.cartRepo.GetLines(buyerID)
	if err != nil {
		return nil, fmt.Errorf("cart lookup failed: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	plan, err := buildCheckoutPlan(lines)
	if err != nil {
		return nil, err
	}
	if buyer.WalletBalance < plan.total {
		return nil, ErrInsufficientFunds
	}

	orders := make([]*models.Order, 0, len(plan.partitions))
	for _, partition := range plan.partitions {
		order := &models.Order{
			ID:          uuid.New().String(),
			BuyerID:     buyerID,
			SellerID:    partition.sellerID,
			AddressID:   addressID,
			TotalAmount: partition.subtotal,
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		for _, line := range partition.lines {
			order.Items = append(order.Items, models.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price, // Price at the time of order
			})
		}
		orders = append(orders, order)
	}

	if err := s.checkoutRepo.Commit(buyerID, plan.total, orders); err != nil {
		log.Printf("Checkout commit failed for buyer %s: %v", buyerID, err)
		return nil, fmt.Errorf("%w: %v", ErrTransactionAborted, err)
	}

	s.publishOrderPlaced(buyerID, plan.total, orders)

	placed := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		placed = append(placed, *order)
	}
	return placed, nil
}

// publishOrderPlaced emits the placement event. Publication is
// best-effort: a broker failure is logged and never unwinds the order.
func (s *CheckoutService) publishOrderPlaced(buyerID string, total float64, orders []*models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := rabbitmq.OrderPlacedEvent{
		BuyerID:  buyerID,
		Total:    total,
		PlacedAt: time.Now(),
	}
	for _, order := range orders {
		event.Orders = append(event.Orders, rabbitmq.OrderPlacedEntry{
			OrderID:  order.ID,
			SellerID: order.SellerID,
			Amount:   order.TotalAmount,
		})
	}
	if err := s.mqClient.PublishOrderPlaced(event); err != nil {
		log.Printf("Warning: Failed to publish order placed event for buyer %s: %v", buyerID, err)
	}
}
