package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/application/auth"
	"github.com/carta-digital/carta-api/internal/application/usecase"
	"github.com/carta-digital/carta-api/internal/domain/repository"
	"github.com/carta-digital/carta-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	PanelUC    *usecase.PanelUseCase
	CustomerUC *usecase.CustomerUseCase
	Users      repository.UserRepository
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := app.Group("/auth")
	authGroup.Post("/token/", authHandler.Token)
	authGroup.Post("/token/refresh/", authHandler.Refresh)
	authGroup.Post("/login/", authHandler.Login)
	authGroup.Post("/register/", authHandler.Register)

	// Carta pública (sin auth; solo entidades activas)
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	menus := app.Group("/menus")
	menus.Get("/:menu_slug/", customerHandler.ListCategories)
	menus.Get("/:menu_slug/:category_id/", customerHandler.GetCategory)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	protected.Get("/users/me/", userHandler.Me)

	// Familia del dueño: "mi carta activa" implícita en el usuario
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:category_id/", categoryHandler.Get)
	categories.Patch("/:category_id/", categoryHandler.Update)
	categories.Get("/:category_id/products/", productHandler.List)
	categories.Post("/:category_id/products/", productHandler.Create)
	categories.Get("/:category_id/products/:product_id/", productHandler.Get)
	categories.Patch("/:category_id/products/:product_id/", productHandler.Update)

	// Panel de administración: staff lee, dueño o superusuario escribe
	panelHandler := NewPanelHandler(deps.PanelUC, deps.Log)
	panel := protected.Group("/panel", PanelMiddleware())
	panel.Get("/:menu_slug/categories/", panelHandler.ListCategories)
	panel.Post("/:menu_slug/categories/", panelHandler.CreateCategory)
	panel.Get("/:menu_slug/categories/:category_id/", panelHandler.GetCategory)
	panel.Patch("/:menu_slug/categories/:category_id/", panelHandler.UpdateCategory)
}
