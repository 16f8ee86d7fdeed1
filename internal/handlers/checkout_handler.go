package handlers

import (
	"errors"
	"log"

	"vibecart/internal/middleware"
	"vibecart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for order placement and the
// buyer's order history.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	orderService    *services.OrderService
	validate        *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *services.CheckoutService, orderService *services.OrderService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Post("/", h.HandlePlaceOrder)
}

// PlaceOrderRequest represents the request body for checkout. The cart is
// read server-side; the client only picks the shipping address.
type PlaceOrderRequest struct {
	AddressID string `json:"address_id" validate:"required,uuid"`
}

// HandlePlaceOrder places the buyer's cart as one order per seller.
func (h *CheckoutHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	orders, err := h.checkoutService.PlaceOrder(middleware.UserID(c), req.AddressID)
	if err != nil {
		return checkoutErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(orders)
}

// HandleListOrders retrieves the buyer's order history.
func (h *CheckoutHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListBuyerOrders(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// checkoutErrorResponse maps engine errors to HTTP statuses: validation
// failures are 400s with a specific message, anything that reached the
// transaction and failed is a generic 500.
func checkoutErrorResponse(c *fiber.Ctx, err error) error {
	log.Printf("Error placing order: %v", err)

	var stockErr *services.InsufficientStockError
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Your cart is empty",
		})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Not enough stock for " + stockErr.ProductName,
			"error":   stockErr.Error(),
		})
	case errors.Is(err, services.ErrInsufficientFunds):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Insufficient wallet balance",
		})
	case errors.Is(err, services.ErrAddressNotOwned):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Shipping address is invalid",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
		})
	}
}
