package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/couponhub-api/internal/application/catalog"
	"github.com/jhoicas/couponhub-api/internal/application/dto"
)

// CatalogHandler altas y listados de tiendas, categorías y cupones.
type CatalogHandler struct {
	stores     *catalog.StoreUseCase
	categories *catalog.CategoryUseCase
	coupons    *catalog.CouponUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(stores *catalog.StoreUseCase, categories *catalog.CategoryUseCase, coupons *catalog.CouponUseCase) *CatalogHandler {
	return &CatalogHandler{stores: stores, categories: categories, coupons: coupons}
}

// CreateStore godoc
// @Summary      Crear tienda
// @Tags         stores
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file    false  "Logo (JPEG 400x400)"
// @Param        data  formData  string  true   "JSON dto.CreateStoreRequest"
// @Success      201   {object}  dto.CreateStoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/createstore [post]
func (h *CatalogHandler) CreateStore(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	logo, err := decodeMultipart(c, &in)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := h.stores.Create(c.UserContext(), in, logo)
	if err != nil {
		return writeCreateError(c, err, fmt.Sprintf("Store with the name %s already exists", in.Name))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateStoreResponse{Success: true, Store: out})
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file    false  "Logo (JPEG 400x400)"
// @Param        data  formData  string  true   "JSON dto.CreateCategoryRequest"
// @Success      201   {object}  dto.CreateCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/createcategory [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	logo, err := decodeMultipart(c, &in)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := h.categories.Create(c.UserContext(), in, logo)
	if err != nil {
		return writeCreateError(c, err, fmt.Sprintf("Category with the name %s already exists", in.Name))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateCategoryResponse{Success: true, Category: out})
}

// CreateCoupon godoc
// @Summary      Crear cupón
// @Tags         coupons
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file    false  "Logo (JPEG 400x400)"
// @Param        data  formData  string  true   "JSON dto.CreateCouponRequest"
// @Success      201   {object}  dto.CreateCouponResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/createcoupon [post]
func (h *CatalogHandler) CreateCoupon(c *fiber.Ctx) error {
	var in dto.CreateCouponRequest
	logo, err := decodeMultipart(c, &in)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := h.coupons.Create(c.UserContext(), in, logo)
	if err != nil {
		return writeCreateError(c, err, fmt.Sprintf("Coupon with the title %s already exists for this store", in.Title))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateCouponResponse{Success: true, Coupon: out})
}

// GetStores godoc
// @Summary      Listar tiendas (id, nombre)
// @Tags         stores
// @Produce      json
// @Success      200  {object}  dto.StoreListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/getstores [get]
func (h *CatalogHandler) GetStores(c *fiber.Ctx) error {
	list, err := h.stores.ListOptions(c.UserContext())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.StoreListResponse{Success: true, Stores: list})
}

// GetCategories godoc
// @Summary      Listar categorías (id, nombre)
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/getcategories [get]
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	list, err := h.categories.ListOptions(c.UserContext())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.CategoryListResponse{Success: true, Categories: list})
}
