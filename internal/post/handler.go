package post

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
	rg.GET("", h.feed)
	rg.POST("", h.create)
	rg.POST("/:id/like", h.like)
}

type createPostRequest struct {
	ImageURL    string `json:"imageUrl" validate:"required"`
	Caption     string `json:"caption"`
	OverlayType string `json:"overlayType"`
	OverlayText string `json:"overlayText"`
}

func (h *Handler) feed(c *gin.Context) {
	posts, err := h.svc.Feed(c.Request.Context())
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ToFeedResponseList(posts))
}

func (h *Handler) create(c *gin.Context) {
	var req createPostRequest
	if err := httpx.BindAndValidate(c, &req); err != nil {
		httpx.Error(c, err)
		return
	}

	authorID, ok := utils.GetUserIDFromContext(c.Request.Context())
	if !ok {
		httpx.Error(c, apperr.Validationf("authorId is required"))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), CreatePostInput{
		AuthorID:    authorID,
		ImageURL:    req.ImageURL,
		Caption:     req.Caption,
		OverlayType: req.OverlayType,
		OverlayText: req.OverlayText,
	})
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, ToResponse(p))
}

func (h *Handler) like(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.Error(c, apperr.NotFound("post", c.Param("id")))
		return
	}

	likes, err := h.svc.Like(c.Request.Context(), postID)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}
