package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
	rg.PUT("/profile", h.updateProfile)
	rg.GET("/users", h.listUsers)
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	UserID    uint   `json:"userId"`
	AvatarURL string `json:"avatarUrl" validate:"required"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  *Response `json:"user"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	u, token, err := h.svc.Register(c.Request.Context(), RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{Token: token, User: ToResponse(u)})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	u, token, err := h.svc.Login(c.Request.Context(), LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if errors.Is(err, ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: ToResponse(u)})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	// Prefer the authenticated identity; the body userId keeps the
	// prototype's tokenless clients working.
	userID := req.UserID
	if id, ok := utils.GetUserIDFromContext(c.Request.Context()); ok {
		userID = id
	}

	u, err := h.svc.UpdateProfile(c.Request.Context(), userID, req.AvatarURL)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponse(u))
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToResponseList(users))
}
