package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/couponhub-api/internal/application/auth"
	"github.com/jhoicas/couponhub-api/internal/application/catalog"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC    *catalog.StoreUseCase
	CategoryUC *catalog.CategoryUseCase
	CouponUC   *catalog.CouponUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	catalogHandler := NewCatalogHandler(deps.StoreUC, deps.CategoryUC, deps.CouponUC)

	// Listados (público): alimentan los multi-select del panel.
	api.Get("/getstores", catalogHandler.GetStores)
	api.Get("/getcategories", catalogHandler.GetCategories)

	// Altas: solo admin
	adminOnly := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin)}
	api.Post("/createstore", append(adminOnly, catalogHandler.CreateStore)...)
	api.Post("/createcategory", append(adminOnly, catalogHandler.CreateCategory)...)
	api.Post("/createcoupon", append(adminOnly, catalogHandler.CreateCoupon)...)
}
