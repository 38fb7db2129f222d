package address

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/httpx"
	"github.com/peakstore/peakstore-be/internal/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:userId", h.list)
	rg.POST("", h.create)
	rg.PUT("/:id/default", h.setDefault)
	rg.DELETE("/:id", h.delete)
}

type createAddressRequest struct {
	UserID    uint   `json:"userId" validate:"required"`
	FullName  string `json:"fullName" validate:"required"`
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

type setDefaultRequest struct {
	UserID uint `json:"userId" validate:"required"`
}

func (h *Handler) list(c *gin.Context) {
	userID, err := utils.ToUint(c.Param("userId"))
	if err != nil {
		httpx.Error(c, apperr.Validationf("User ID is required"))
		return
	}

	addrs, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponseList(addrs))
}

func (h *Handler) create(c *gin.Context) {
	var req createAddressRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	addr, err := h.svc.Create(c.Request.Context(), CreateAddressInput{
		UserID:    req.UserID,
		FullName:  req.FullName,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, ToResponse(addr))
}

func (h *Handler) setDefault(c *gin.Context) {
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.NotFound("address", c.Param("id")))
		return
	}

	var req setDefaultRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	addr, err := h.svc.SetDefault(c.Request.Context(), addressID, req.UserID)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(addr))
}

func (h *Handler) delete(c *gin.Context) {
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.NotFound("address", c.Param("id")))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), addressID); err != nil {
		httpx.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
