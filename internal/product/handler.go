package product

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/httpx"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.search)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	IsVeg       bool    `json:"isVeg"`
	Rating      float64 `json:"rating"`
}

func (h *Handler) search(c *gin.Context) {
	filter := SearchFilter{
		Query:    c.Query("search"),
		Category: c.Query("category"),
	}

	if v := c.Query("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httpx.Error(c, apperr.Validationf("minPrice must be a number"))
			return
		}
		filter.MinPrice = &price
	}
	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httpx.Error(c, apperr.Validationf("maxPrice must be a number"))
			return
		}
		filter.MaxPrice = &price
	}
	if v := c.Query("isVeg"); v != "" {
		veg, err := strconv.ParseBool(v)
		if err != nil {
			httpx.Error(c, apperr.Validationf("isVeg must be true or false"))
			return
		}
		filter.IsVeg = &veg
	}

	products, err := h.svc.Search(c.Request.Context(), filter)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponseList(products))
}

func (h *Handler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.NotFound("product", c.Param("id")))
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(p))
}

func (h *Handler) create(c *gin.Context) {
	var req productRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsVeg:       req.IsVeg,
		Rating:      req.Rating,
	})
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, ToResponse(p))
}

func (h *Handler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.NotFound("product", c.Param("id")))
		return
	}

	var req productRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsVeg:       req.IsVeg,
		Rating:      req.Rating,
	})
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(p))
}

func (h *Handler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.NotFound("product", c.Param("id")))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httpx.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
