package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fitbite/internal/auth"
	"fitbite/internal/config"
	"fitbite/internal/errors"
	"fitbite/internal/handler"
	"fitbite/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	billingHandler *handler.BillingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/catalog/products", catalogHandler.ListProducts)
	api.GET("/catalog/products/:id", catalogHandler.GetProduct)
	api.POST("/billing/webhook", billingHandler.PaymentWebhook)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", authHandler.Me)
	secured.PUT("/me", authHandler.UpdateProfile)

	// Cart routes
	secured.GET("/cart", cartHandler.GetCart)
	secured.POST("/cart/items", cartHandler.AddItem)
	secured.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	secured.DELETE("/cart", cartHandler.ClearCart)

	// Order routes
	secured.POST("/orders", orderHandler.Checkout)
	secured.GET("/orders", orderHandler.List)
	secured.GET("/orders/:id", orderHandler.Get)
	secured.PUT("/orders/:id/cancel", orderHandler.Cancel)
	secured.PUT("/orders/:id/pay", orderHandler.Pay)

	// Billing routes
	secured.GET("/billing/orders/:id", billingHandler.InvoiceData)
	secured.POST("/billing/receipts", billingHandler.IssueReceipt)
	secured.POST("/billing/invoices", billingHandler.IssueInvoice)

	// Admin routes
	admin := secured.Group("/admin", AdminOnly)
	admin.GET("/orders/active", adminHandler.KitchenQueue)
	admin.PUT("/orders/:id/status", adminHandler.SetOrderStatus)
	admin.PUT("/orders/:id/courier", adminHandler.AssignCourier)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.SetUserRole)
	admin.GET("/users/:id/orders", adminHandler.UserOrderHistory)
	admin.GET("/products", adminHandler.ListProducts)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.GET("/reports/sales", adminHandler.SalesReport)
}

// AdminOnly rejects requests whose token does not carry the admin role.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := handler.CurrentClaims(c)
		if claims == nil || claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "admin role required",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
