package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/matchly/internal/common"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) register(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorLoginAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		default:
			s.logger.Error(ctx, "registration failed", "error", err.Error())
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	s.logger.Info(ctx, "Registered", "username", user.Username)
	c.Status(http.StatusCreated)
}

func (s *Server) login(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		// Unknown user and wrong password map to the same empty 401.
		if errors.Is(err, common.ErrorUnauthorized) {
			c.Status(http.StatusUnauthorized)
			return
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token})
}
