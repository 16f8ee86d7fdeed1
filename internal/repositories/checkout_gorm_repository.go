package repositories

import (
	"fmt"
	"vibecart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCheckoutRepository is a GORM implementation of CheckoutRepository.
type GORMCheckoutRepository struct {
	db *gorm.DB
}

// NewGORMCheckoutRepository creates a new instance of GORMCheckoutRepository.
func NewGORMCheckoutRepository(db *gorm.DB) *GORMCheckoutRepository {
	return &GORMCheckoutRepository{
		db: db,
	}
}

// Commit applies the placement in a single database transaction. Stock
// decrements use a floor check in the UPDATE itself ("stock = stock - ?
// WHERE stock >= ?"), so a concurrent placement that exhausted stock since
// the precondition read aborts the transaction here with zero rows
// affected; the wallet debit is guarded the same way.
func (r *GORMCheckoutRepository) Commit(buyerID string, total float64, orders []*models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND wallet_balance >= ?", buyerID, total).
			Update("wallet_balance", gorm.Expr("wallet_balance - ?", total))
		if res.Error != nil {
			return fmt.Errorf("failed to debit wallet: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("wallet debit refused for user %s: insufficient balance", buyerID)
		}

		entry := models.WalletTransaction{
			ID:     uuid.New().String(),
			UserID: buyerID,
			Amount: -total,
			Type:   models.TransactionPurchase,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append purchase ledger entry: %w", err)
		}

		for _, order := range orders {
			if err := tx.Create(order).Error; err != nil {
				return fmt.Errorf("failed to create order for seller %s: %w", order.SellerID, err)
			}
			for _, item := range order.Items {
				res := tx.Model(&models.Product{}).
					Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
					Update("stock", gorm.Expr("stock - ?", item.Quantity))
				if res.Error != nil {
					return fmt.Errorf("failed to decrement stock for product %s: %w", item.ProductID, res.Error)
				}
				if res.RowsAffected == 0 {
					return fmt.Errorf("stock decrement refused for product %s: insufficient stock", item.ProductID)
				}
			}
		}

		if err := tx.Delete(&models.CartItem{}, "user_id = ?", buyerID).Error; err != nil {
			return fmt.Errorf("failed to clear cart for user %s: %w", buyerID, err)
		}
		return nil
	})
}
