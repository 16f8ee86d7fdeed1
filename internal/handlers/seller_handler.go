package handlers

import (
	"log"
	"strings"

	"vibecart/internal/middleware"
	"vibecart/internal/models"
	"vibecart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SellerHandler handles the seller console: listings, incoming orders and
// the dashboard. All routes sit behind RequireRole("seller").
type SellerHandler struct {
	productService *services.ProductService
	orderService   *services.OrderService
	validate       *validator.Validate
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(productService *services.ProductService, orderService *services.OrderService) *SellerHandler {
	return &SellerHandler{
		productService: productService,
		orderService:   orderService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the seller routes with the Fiber app.
func (h *SellerHandler) RegisterRoutes(router fiber.Router) {
	sellerRoutes := router.Group("/seller")
	sellerRoutes.Get("/products", h.HandleListProducts)
	sellerRoutes.Post("/products", h.HandleCreateProduct)
	sellerRoutes.Put("/products/:id", h.HandleUpdateProduct)
	sellerRoutes.Delete("/products/:id", h.HandleDeleteProduct)
	sellerRoutes.Get("/orders", h.HandleListOrders)
	sellerRoutes.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
	sellerRoutes.Get("/dashboard", h.HandleDashboard)
}

// HandleListProducts lists the seller's own products.
func (h *SellerHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.productService.ListSellerProducts(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing seller products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// ProductRequest represents the request body for creating or updating a
// listing.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

// HandleCreateProduct creates a listing owned by the seller.
func (h *SellerHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := h.productService.CreateProduct(middleware.UserID(c), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates one of the seller's listings.
func (h *SellerHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product := models.Product{
		ID:          c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := h.productService.UpdateProduct(middleware.UserID(c), &product); err != nil {
		log.Printf("Error updating product: %v", err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleDeleteProduct deletes one of the seller's listings.
func (h *SellerHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.productService.DeleteProduct(productID, middleware.UserID(c)); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleListOrders lists the orders addressed to the seller.
func (h *SellerHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListSellerOrders(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing seller orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// UpdateOrderStatusRequest represents the request body for a status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING SHIPPED DELIVERED CANCELLED"`
}

// HandleUpdateOrderStatus advances the status of one of the seller's orders.
func (h *SellerHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	orderID := c.Params("id")
	if err := h.orderService.UpdateOrderStatus(orderID, middleware.UserID(c), req.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
	})
}

// HandleDashboard returns the seller's aggregated stats.
func (h *SellerHandler) HandleDashboard(c *fiber.Ctx) error {
	stats, err := h.orderService.Dashboard(middleware.UserID(c))
	if err != nil {
		log.Printf("Error building seller dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve dashboard",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}
