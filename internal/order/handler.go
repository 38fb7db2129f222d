package order

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
	rg.POST("", h.create)
	rg.GET("", h.listAll)
	rg.GET("/user/:userId", h.listByUser)
	rg.PUT("/:id/status", h.updateStatus)
	rg.PUT("/:id/feedback", h.addFeedback)
}

type createOrderRequest struct {
	UserID          uint    `json:"userId" validate:"required"`
	ShippingAddress string  `json:"shippingAddress" validate:"required"`
	TotalAmount     float64 `json:"totalAmount"`
	ProductIDsJSON  string  `json:"productIdsJson"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type feedbackRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comments string `json:"comments"`
}

func (h *Handler) create(c *gin.Context) {
	var req createOrderRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	o, err := h.svc.Create(c.Request.Context(), CreateOrderInput{
		UserID:          req.UserID,
		ShippingAddress: req.ShippingAddress,
		TotalAmount:     req.TotalAmount,
		ProductIDsJSON:  req.ProductIDsJSON,
	})
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"order":   ToResponse(o),
	})
}

func (h *Handler) listByUser(c *gin.Context) {
	userID, err := utils.ToUint(c.Param("userId"))
	if err != nil {
		httpx.Error(c, apperr.Validationf("User ID is required"))
		return
	}

	orders, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponseList(orders))
}

// listAll serves the admin order dashboard with user info joined in.
func (h *Handler) listAll(c *gin.Context) {
	orders, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToAdminResponseList(orders))
}

func (h *Handler) updateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.NotFound("order", c.Param("id")))
		return
	}

	var req updateStatusRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	o, err := h.svc.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(o))
}

func (h *Handler) addFeedback(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.NotFound("order", c.Param("id")))
		return
	}

	var req feedbackRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	o, err := h.svc.AddFeedback(c.Request.Context(), orderID, req.Rating, req.Comments)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(o))
}
