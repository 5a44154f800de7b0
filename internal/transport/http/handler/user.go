package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/transport/http/middleware"
	"github.com/aselbek/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

type userUsecaser interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, role domain.Role, input usecase.UpdateProfileInput) (*domain.User, error)
}

type UserHandler struct {
	uc     userUsecaser
	logger *slog.Logger
}

func NewUserHandler(uc userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger.With("component", "user_handler")}
}

// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	h.getUser(c, c.GetString(middleware.CtxUserID))
}

// GET /users/:id — backs the chat header.
func (h *UserHandler) GetByID(c *gin.Context) {
	h.getUser(c, c.Param("id"))
}

func (h *UserHandler) getUser(c *gin.Context, id string) {
	user, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
			return
		}
		h.logger.Error("get user", "user_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

type updateProfileRequest struct {
	Name     *string  `json:"name"`
	Location *string  `json:"location"`
	Bio      *string  `json:"bio"`
	Avatar   *string  `json:"avatar"`
	Skills   []string `json:"skills"`
	Company  *string  `json:"company"`
	Website  *string  `json:"website" binding:"omitempty,url"`
}

// PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.uc.UpdateProfile(c.Request.Context(),
		c.GetString(middleware.CtxUserID),
		domain.Role(c.GetString(middleware.CtxUserRole)),
		usecase.UpdateProfileInput{
			Name:     req.Name,
			Location: req.Location,
			Bio:      req.Bio,
			Avatar:   req.Avatar,
			Skills:   req.Skills,
			Company:  req.Company,
			Website:  req.Website,
		})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
			return
		}
		h.logger.Error("update profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}
