package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore/internal/api/http/handlers"
	"github.com/spec-kit/bookstore/internal/auth"
	"github.com/spec-kit/bookstore/internal/identity"
)

// AuthRouteConfig bundles dependencies for the auth service routes.
type AuthRouteConfig struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Tokens *auth.TokenManager
}

// RegisterAuthRoutes wires the auth service HTTP routes.
func RegisterAuthRoutes(app *fiber.App, cfg AuthRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	group := app.Group("/api/auth")
	group.Post("/sign-up", cfg.Auth.SignUp)
	group.Post("/sign-in", cfg.Auth.SignIn)
	group.Post("/send-otp", cfg.Auth.SendOTP)
	group.Post("/resend-otp", cfg.Auth.ResendOTP)
	group.Post("/verify-otp", cfg.Auth.VerifyOTP)
	group.Post("/forgot-password", cfg.Auth.ForgotPassword)

	group.Post("/change-password", handlers.RequireBearer(cfg.Tokens), cfg.Auth.ChangePassword)
}

// UserRouteConfig bundles dependencies for the user service routes.
type UserRouteConfig struct {
	Health *handlers.HealthHandler
	Users  *handlers.UsersHandler
}

// RegisterUserRoutes wires the user service HTTP routes.
func RegisterUserRoutes(app *fiber.App, cfg UserRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Static segments go first: fiber matches in registration order, so the
	// bare ":id" route must come last.
	group := app.Group("/api/user")
	group.Post("/save", cfg.Users.Save)
	group.Get("/all", cfg.Users.List)
	group.Post("/add-address", cfg.Users.AddAddress)
	group.Post("/update-address", cfg.Users.UpdateAddress)
	group.Delete("/delete-address/:id", cfg.Users.DeleteAddress)
	group.Get("/:id/addresses", cfg.Users.Addresses)
	group.Put("/:id/update", cfg.Users.Update)
	group.Get("/:id", cfg.Users.GetByID)
}

// BookRouteConfig bundles dependencies for the book service routes.
type BookRouteConfig struct {
	Health *handlers.HealthHandler
	Books  *handlers.BooksHandler
}

// RegisterBookRoutes wires the book service HTTP routes.
func RegisterBookRoutes(app *fiber.App, cfg BookRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	group := app.Group("/api/books")
	group.Get("/paged", cfg.Books.Paged)
	group.Get("/newest", cfg.Books.Newest)
	group.Patch("/:id/update-stock", cfg.Books.UpdateStock)
	group.Get("/:id", cfg.Books.GetByID)
}

// CartRouteConfig bundles dependencies for the cart service routes.
type CartRouteConfig struct {
	Health *handlers.HealthHandler
	Cart   *handlers.CartHandler
}

// RegisterCartRoutes wires the cart service HTTP routes. Every cart endpoint
// requires the gateway-propagated identity header.
func RegisterCartRoutes(app *fiber.App, cfg CartRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	group := app.Group("/api/cart", identity.Require())
	group.Post("/add", cfg.Cart.Add)
	group.Get("/all", cfg.Cart.All)
	group.Delete("/remove", cfg.Cart.Remove)
	group.Patch("/increase", cfg.Cart.Increase)
	group.Patch("/decrease", cfg.Cart.Decrease)
	group.Delete("/clear", cfg.Cart.Clear)
}
