package handler

import (
	"net/http"
	"time"

	"github.com/RCOSDP/weko-itemtype/internal/services"
	"github.com/RCOSDP/weko-itemtype/internal/transport/httpdto"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"
	"github.com/RCOSDP/weko-itemtype/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
	log     *logger.Logger
}

func NewAuthHandler(service *services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == registry_errors.ErrInvalidPassword {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("invalid credentials", "UNAUTHORIZED"))
			return
		}
		h.log.Errorf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("login failed", "INTERNAL_ERROR"))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.LoginResponse{
		UserID:      result.UserID,
		Role:        result.Role,
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt.Format(time.RFC3339),
	}))
}
