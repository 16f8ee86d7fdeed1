package repositories

import "vibecart/internal/models"

// CheckoutRepository commits a fully validated order placement. Commit is
// all-or-nothing: the wallet debit, the PURCHASE ledger entry, every order
// with its items, every stock decrement and the cart wipe either all apply
// or none do. The debit and each stock decrement are conditional writes
// (balance/stock floor checked in the same statement), so a placement that
// loses a race at commit time fails the whole transaction instead of
// driving either value negative.
type CheckoutRepository interface {
	Commit(buyerID string, total float64, orders []*models.Order) error
}
