package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"vibecart/internal/handlers"
	"vibecart/internal/middleware"
	"vibecart/internal/models"
	"vibecart/internal/repositories"
	"vibecart/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestApp wires the full HTTP stack against an in-memory SQLite
// database, mirroring the production wiring minus the message broker.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	// Each test gets its own named in-memory database so parallel
	// tests never see each other's rows.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.WalletTransaction{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	ledgerRepo := repositories.NewGORMLedgerRepository(db)
	checkoutRepo := repositories.NewGORMCheckoutRepository(db)

	authService := services.NewAuthService(userRepo, "integration-test-secret")
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	addressService := services.NewAddressService(addressRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)
	walletService := services.NewWalletService(userRepo, ledgerRepo)
	checkoutService := services.NewCheckoutService(userRepo, cartRepo, addressRepo, checkoutRepo, nil)
	adminService := services.NewAdminService(userRepo)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)
	handlers.NewProductHandler(productService).RegisterRoutes(apiV1)

	authed := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewCartHandler(cartService).RegisterRoutes(authed)
	handlers.NewAddressHandler(addressService).RegisterRoutes(authed)
	handlers.NewCheckoutHandler(checkoutService, orderService).RegisterRoutes(authed)
	handlers.NewWalletHandler(walletService).RegisterRoutes(authed)

	handlers.NewSellerHandler(productService, orderService).RegisterRoutes(
		authed.Group("", middleware.RequireRole(models.RoleSeller)))
	handlers.NewAdminHandler(adminService).RegisterRoutes(
		authed.Group("", middleware.RequireRole(models.RoleAdmin)))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	return app
}

// doJSON performs a request against the test app and decodes the JSON
// response body into out (when out is non-nil).
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode %s %s response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

// registerAndLogin creates an account and returns its token and ID.
func registerAndLogin(t *testing.T, app *fiber.App, name, email, role string) (token, id string) {
	t.Helper()

	var registered struct {
		User models.User `json:"user"`
	}
	status := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	}, &registered)
	if status != http.StatusCreated {
		t.Fatalf("registration of %s returned status %d", email, status)
	}

	var loggedIn struct {
		Token string `json:"token"`
	}
	status = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    email,
		"password": "password123",
	}, &loggedIn)
	if status != http.StatusOK {
		t.Fatalf("login of %s returned status %d", email, status)
	}
	return loggedIn.Token, registered.User.ID
}

func createProduct(t *testing.T, app *fiber.App, sellerToken, name string, price float64, stock int) models.Product {
	t.Helper()

	var product models.Product
	status := doJSON(t, app, http.MethodPost, "/api/v1/seller/products", sellerToken, fiber.Map{
		"name":     name,
		"price":    price,
		"stock":    stock,
		"category": "electronics",
	}, &product)
	if status != http.StatusCreated {
		t.Fatalf("product creation returned status %d", status)
	}
	return product
}

func TestOrderPlacementFlow(t *testing.T) {
	app := newTestApp(t)

	buyerToken, buyerID := registerAndLogin(t, app, "Budi", "budi@example.com", "buyer")
	sellerAToken, sellerAID := registerAndLogin(t, app, "Toko Elektronik", "elektronik@example.com", "seller")
	sellerBToken, sellerBID := registerAndLogin(t, app, "Toko Buku", "buku@example.com", "seller")

	productA := createProduct(t, app, sellerAToken, "Mechanical Keyboard", 100000, 5)
	productB := createProduct(t, app, sellerBToken, "Go Programming Book", 50000, 3)

	// Fund the wallet.
	var topup struct {
		NewBalance float64 `json:"new_balance"`
	}
	status := doJSON(t, app, http.MethodPost, "/api/v1/wallet/topup", buyerToken, fiber.Map{
		"amount": 1000000,
	}, &topup)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1000000.0, topup.NewBalance)

	// Shipping address.
	var address models.Address
	status = doJSON(t, app, http.MethodPost, "/api/v1/addresses", buyerToken, fiber.Map{
		"street":      "Jl. Sudirman 1",
		"city":        "Jakarta",
		"province":    "DKI Jakarta",
		"postal_code": "10110",
	}, &address)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, buyerID, address.UserID)

	// Fill the cart with products from two different sellers.
	status = doJSON(t, app, http.MethodPost, "/api/v1/cart", buyerToken, fiber.Map{
		"product_id": productA.ID,
		"quantity":   2,
	}, nil)
	assert.Equal(t, http.StatusOK, status)
	status = doJSON(t, app, http.MethodPost, "/api/v1/cart", buyerToken, fiber.Map{
		"product_id": productB.ID,
		"quantity":   1,
	}, nil)
	assert.Equal(t, http.StatusOK, status)

	// Checkout: one order per seller.
	var orders []models.Order
	status = doJSON(t, app, http.MethodPost, "/api/v1/orders", buyerToken, fiber.Map{
		"address_id": address.ID,
	}, &orders)
	assert.Equal(t, http.StatusCreated, status)
	assert.Len(t, orders, 2)

	totalsBySeller := map[string]float64{}
	for _, order := range orders {
		assert.Equal(t, buyerID, order.BuyerID)
		assert.Equal(t, address.ID, order.AddressID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		totalsBySeller[order.SellerID] = order.TotalAmount
	}
	assert.Equal(t, 200000.0, totalsBySeller[sellerAID])
	assert.Equal(t, 50000.0, totalsBySeller[sellerBID])

	// Wallet debited by the grand total.
	var profile models.User
	status = doJSON(t, app, http.MethodGet, "/api/v1/profile", buyerToken, nil, &profile)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 750000.0, profile.WalletBalance)

	// Stock decremented on the live catalog.
	var liveProduct models.Product
	status = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productA.ID, buyerToken, nil, &liveProduct)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, liveProduct.Stock)

	// Cart cleared.
	var cart []models.CartLine
	status = doJSON(t, app, http.MethodGet, "/api/v1/cart", buyerToken, nil, &cart)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, cart)

	// Ledger holds the top-up credit and the purchase debit.
	var ledger []models.WalletTransaction
	status = doJSON(t, app, http.MethodGet, "/api/v1/wallet/transactions", buyerToken, nil, &ledger)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, ledger, 2)
	amountsByType := map[string]float64{}
	for _, entry := range ledger {
		amountsByType[entry.Type] = entry.Amount
	}
	assert.Equal(t, 1000000.0, amountsByType[models.TransactionTopUp])
	assert.Equal(t, -250000.0, amountsByType[models.TransactionPurchase])

	// Each seller sees exactly their own share of the checkout.
	var sellerAOrders []models.Order
	status = doJSON(t, app, http.MethodGet, "/api/v1/seller/orders", sellerAToken, nil, &sellerAOrders)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, sellerAOrders, 1)
	assert.Equal(t, 200000.0, sellerAOrders[0].TotalAmount)

	var sellerBOrders []models.Order
	status = doJSON(t, app, http.MethodGet, "/api/v1/seller/orders", sellerBToken, nil, &sellerBOrders)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, sellerBOrders, 1)
	assert.Equal(t, 50000.0, sellerBOrders[0].TotalAmount)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	app := newTestApp(t)

	buyerToken, _ := registerAndLogin(t, app, "Budi", "empty-cart@example.com", "buyer")

	var address models.Address
	doJSON(t, app, http.MethodPost, "/api/v1/addresses", buyerToken, fiber.Map{
		"street":      "Jl. Sudirman 1",
		"city":        "Jakarta",
		"province":    "DKI Jakarta",
		"postal_code": "10110",
	}, &address)

	var errResp struct {
		Message string `json:"message"`
	}
	status := doJSON(t, app, http.MethodPost, "/api/v1/orders", buyerToken, fiber.Map{
		"address_id": address.ID,
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Your cart is empty", errResp.Message)
}

func TestCheckoutFailureIsAtomic(t *testing.T) {
	app := newTestApp(t)

	buyerToken, _ := registerAndLogin(t, app, "Budi", "atomic@example.com", "buyer")
	sellerToken, _ := registerAndLogin(t, app, "Toko", "atomic-seller@example.com", "seller")
	product := createProduct(t, app, sellerToken, "Mechanical Keyboard", 100000, 5)

	// 150,000 in the wallet cannot cover two units at 100,000.
	doJSON(t, app, http.MethodPost, "/api/v1/wallet/topup", buyerToken, fiber.Map{"amount": 150000}, nil)

	var address models.Address
	doJSON(t, app, http.MethodPost, "/api/v1/addresses", buyerToken, fiber.Map{
		"street":      "Jl. Sudirman 1",
		"city":        "Jakarta",
		"province":    "DKI Jakarta",
		"postal_code": "10110",
	}, &address)
	doJSON(t, app, http.MethodPost, "/api/v1/cart", buyerToken, fiber.Map{
		"product_id": product.ID,
		"quantity":   2,
	}, nil)

	var errResp struct {
		Message string `json:"message"`
	}
	status := doJSON(t, app, http.MethodPost, "/api/v1/orders", buyerToken, fiber.Map{
		"address_id": address.ID,
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Insufficient wallet balance", errResp.Message)

	// Nothing moved: balance, stock and cart are exactly as they were.
	var profile models.User
	doJSON(t, app, http.MethodGet, "/api/v1/profile", buyerToken, nil, &profile)
	assert.Equal(t, 150000.0, profile.WalletBalance)

	var liveProduct models.Product
	doJSON(t, app, http.MethodGet, "/api/v1/products/"+product.ID, buyerToken, nil, &liveProduct)
	assert.Equal(t, 5, liveProduct.Stock)

	var cart []models.CartLine
	doJSON(t, app, http.MethodGet, "/api/v1/cart", buyerToken, nil, &cart)
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	var orders []models.Order
	doJSON(t, app, http.MethodGet, "/api/v1/orders", buyerToken, nil, &orders)
	assert.Empty(t, orders)
}

func TestCheckoutRejectsForeignAddress(t *testing.T) {
	app := newTestApp(t)

	buyerToken, _ := registerAndLogin(t, app, "Budi", "addr-buyer@example.com", "buyer")
	otherToken, _ := registerAndLogin(t, app, "Ani", "addr-other@example.com", "buyer")
	sellerToken, _ := registerAndLogin(t, app, "Toko", "addr-seller@example.com", "seller")
	product := createProduct(t, app, sellerToken, "Desk Lamp", 50000, 5)

	doJSON(t, app, http.MethodPost, "/api/v1/wallet/topup", buyerToken, fiber.Map{"amount": 500000}, nil)
	doJSON(t, app, http.MethodPost, "/api/v1/cart", buyerToken, fiber.Map{
		"product_id": product.ID,
		"quantity":   1,
	}, nil)

	// The address belongs to a different account.
	var foreignAddress models.Address
	doJSON(t, app, http.MethodPost, "/api/v1/addresses", otherToken, fiber.Map{
		"street":      "Jl. Thamrin 2",
		"city":        "Jakarta",
		"province":    "DKI Jakarta",
		"postal_code": "10230",
	}, &foreignAddress)

	var errResp struct {
		Message string `json:"message"`
	}
	status := doJSON(t, app, http.MethodPost, "/api/v1/orders", buyerToken, fiber.Map{
		"address_id": foreignAddress.ID,
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Shipping address is invalid", errResp.Message)
}

func TestTopUpCeiling(t *testing.T) {
	app := newTestApp(t)
	buyerToken, _ := registerAndLogin(t, app, "Budi", "ceiling@example.com", "buyer")

	status := doJSON(t, app, http.MethodPost, "/api/v1/wallet/topup", buyerToken, fiber.Map{
		"amount": 10000001,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	var topup struct {
		NewBalance float64 `json:"new_balance"`
	}
	status = doJSON(t, app, http.MethodPost, "/api/v1/wallet/topup", buyerToken, fiber.Map{
		"amount": 10000000,
	}, &topup)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 10000000.0, topup.NewBalance)
}

func TestRoleAndAuthGating(t *testing.T) {
	app := newTestApp(t)

	buyerToken, _ := registerAndLogin(t, app, "Budi", "gating-buyer@example.com", "buyer")
	sellerToken, _ := registerAndLogin(t, app, "Toko", "gating-seller@example.com", "seller")

	// Unauthenticated requests to protected routes.
	status := doJSON(t, app, http.MethodGet, "/api/v1/cart", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// A buyer cannot reach the seller console or admin surface.
	status = doJSON(t, app, http.MethodGet, "/api/v1/seller/dashboard", buyerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status = doJSON(t, app, http.MethodGet, "/api/v1/admin/users", buyerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// A seller is not an admin either.
	status = doJSON(t, app, http.MethodGet, "/api/v1/admin/users", sellerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// The catalog and health check stay public.
	status = doJSON(t, app, http.MethodGet, "/api/v1/products/", "", nil, nil)
	assert.Equal(t, http.StatusOK, status)
	status = doJSON(t, app, http.MethodGet, "/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestSellerDashboardCountsDeliveredRevenue(t *testing.T) {
	app := newTestApp(t)

	buyerToken, _ := registerAndLogin(t, app, "Budi", "dash-buyer@example.com", "buyer")
	sellerToken, _ := registerAndLogin(t, app, "Toko", "dash-seller@example.com", "seller")
	product := createProduct(t, app, sellerToken, "Desk Lamp", 100000, 10)

	doJSON(t, app, http.MethodPost, "/api/v1/wallet/topup", buyerToken, fiber.Map{"amount": 1000000}, nil)

	var address models.Address
	doJSON(t, app, http.MethodPost, "/api/v1/addresses", buyerToken, fiber.Map{
		"street":      "Jl. Sudirman 1",
		"city":        "Jakarta",
		"province":    "DKI Jakarta",
		"postal_code": "10110",
	}, &address)

	placeOrder := func() models.Order {
		doJSON(t, app, http.MethodPost, "/api/v1/cart", buyerToken, fiber.Map{
			"product_id": product.ID,
			"quantity":   1,
		}, nil)
		var orders []models.Order
		status := doJSON(t, app, http.MethodPost, "/api/v1/orders", buyerToken, fiber.Map{
			"address_id": address.ID,
		}, &orders)
		if status != http.StatusCreated || len(orders) != 1 {
			t.Fatalf("checkout returned status %d with %d orders", status, len(orders))
		}
		return orders[0]
	}

	delivered := placeOrder()
	placeOrder() // stays PENDING

	status := doJSON(t, app, http.MethodPatch, "/api/v1/seller/orders/"+delivered.ID+"/status", sellerToken, fiber.Map{
		"status": models.OrderStatusDelivered,
	}, nil)
	assert.Equal(t, http.StatusOK, status)

	var stats services.DashboardStats
	status = doJSON(t, app, http.MethodGet, "/api/v1/seller/dashboard", sellerToken, nil, &stats)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 100000.0, stats.TotalRevenue, "pending orders do not count toward revenue")
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.ProductsListed)
}
