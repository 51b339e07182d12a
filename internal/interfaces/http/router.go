package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// RouterDeps agrupa los handlers y la configuración del router.
type RouterDeps struct {
	JWTSecret string
	Auth      *AuthHandler
	Products  *ProductHandler
	Checkout  *CheckoutHandler
	Orders    *OrderHandler
	Users     *UserHandler
}

// Router registra todas las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	authn := AuthMiddleware(deps.JWTSecret)
	admin := RequireRole(entity.RoleAdmin)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", deps.Auth.Register)
	auth.Post("/login", deps.Auth.Login)
	auth.Get("/me", authn, deps.Auth.Me)

	products := api.Group("/products")
	products.Get("/", deps.Products.List)
	products.Get("/search", deps.Products.Search)
	products.Get("/:id", deps.Products.GetByID)
	products.Post("/", authn, admin, deps.Products.Create)
	products.Delete("/:id", authn, admin, deps.Products.Delete)

	checkout := api.Group("/checkout", authn)
	checkout.Post("/create-session", deps.Checkout.CreateSession)
	checkout.Post("/create-cart-session", deps.Checkout.CreateCartSession)
	checkout.Post("/confirm", deps.Checkout.Confirm)

	orders := api.Group("/orders", authn)
	orders.Get("/my", deps.Orders.My)
	orders.Get("/", admin, deps.Orders.List)

	users := api.Group("/users", authn, admin)
	users.Get("/", deps.Users.List)
	users.Patch("/:id/role", deps.Users.UpdateRole)
	users.Delete("/:id", deps.Users.Delete)
}
