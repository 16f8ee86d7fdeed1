package handlers

import (
	"errors"
	"log"

	"vibecart/internal/middleware"
	"vibecart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WalletHandler handles HTTP requests for wallet top-ups, the ledger and
// the profile screen.
type WalletHandler struct {
	service  *services.WalletService
	validate *validator.Validate
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(service *services.WalletService) *WalletHandler {
	return &WalletHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the wallet and profile routes with the Fiber app.
func (h *WalletHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleGetProfile)
	walletRoutes := router.Group("/wallet")
	walletRoutes.Post("/topup", h.HandleTopUp)
	walletRoutes.Get("/transactions", h.HandleListTransactions)
}

// TopUpRequest represents the request body for a wallet top-up.
type TopUpRequest struct {
	Amount float64 `json:"amount" validate:"required"`
}

// HandleTopUp credits the user's wallet.
func (h *WalletHandler) HandleTopUp(c *fiber.Ctx) error {
	var req TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing top-up request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	newBalance, err := h.service.TopUp(middleware.UserID(c), req.Amount)
	if err != nil {
		log.Printf("Error during top-up: %v", err)
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Top-up amount must be positive and cannot exceed 10,000,000",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not process top-up",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"new_balance": newBalance,
	})
}

// HandleGetProfile returns the user's profile including wallet balance.
func (h *WalletHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.service.GetProfile(middleware.UserID(c))
	if err != nil {
		log.Printf("Error fetching profile: %v", err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}
	return c.JSON(user)
}

// HandleListTransactions returns the user's wallet ledger, newest first.
func (h *WalletHandler) HandleListTransactions(c *fiber.Ctx) error {
	entries, err := h.service.GetTransactions(middleware.UserID(c))
	if err != nil {
		log.Printf("Error fetching wallet transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wallet transactions",
			"error":   err.Error(),
		})
	}
	return c.JSON(entries)
}
