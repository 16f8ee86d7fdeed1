package handlers

import (
	"errors"
	"log"
	"strings"

	"vibecart/internal/middleware"
	"vibecart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin-only user management. All routes sit behind
// RequireRole("admin").
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Get("/users", h.HandleListUsers)
	adminRoutes.Delete("/users/:id", h.HandleDeleteUser)
}

// HandleListUsers lists every account except the admin's own.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// HandleDeleteUser removes an account.
func (h *AdminHandler) HandleDeleteUser(c *fiber.Ctx) error {
	targetID := c.Params("id")
	if err := h.service.DeleteUser(middleware.UserID(c), targetID); err != nil {
		log.Printf("Error deleting user %s: %v", targetID, err)
		if errors.Is(err, services.ErrSelfDelete) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "You cannot delete your own account",
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete user",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
