package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskdeck/internal/database"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

var errInvalidCredentials = &apiError{Status: http.StatusUnauthorized, Message: "Invalid email or password"}

func (s *Server) handleRegister(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateProfile(req.Username, req.Email); err != nil {
		s.fail(c, err)
		return
	}
	if err := validatePassword(req.Password); err != nil {
		s.fail(c, err)
		return
	}

	hash, err := s.passwords.hash(req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	user, err := s.store.CreateUser(c.Request.Context(), req.Username, req.Email, hash)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.respondWithToken(c, http.StatusCreated, user)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errInvalidBody)
		return
	}

	user, hash, err := s.store.GetCredentials(c.Request.Context(), strings.TrimSpace(req.Email))
	if errors.Is(err, database.ErrNotFound) {
		s.fail(c, errInvalidCredentials)
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	match, err := s.passwords.matches(req.Password, hash)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !match {
		s.fail(c, errInvalidCredentials)
		return
	}
	s.respondWithToken(c, http.StatusOK, user)
}

func (s *Server) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := s.tokens.issue(user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(status, models.AuthResponse{Token: token, User: *user})
}

func (s *Server) handleChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	if err := validatePassword(req.NewPassword); err != nil {
		s.fail(c, err)
		return
	}

	ctx := c.Request.Context()
	userID := currentUserID(c)
	hash, err := s.store.GetPasswordHash(ctx, userID)
	if err != nil {
		s.fail(c, lookup(err, errUserNotFound))
		return
	}
	match, err := s.passwords.matches(req.CurrentPassword, hash)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !match {
		s.fail(c, badRequest("Current password is incorrect"))
		return
	}

	newHash, err := s.passwords.hash(req.NewPassword)
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.store.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Password updated"})
}

func (s *Server) handleMe(c *gin.Context) {
	user, err := s.store.GetUserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, lookup(err, errUserNotFound))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleUpdateMe(c *gin.Context) {
	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateProfile(req.Username, req.Email); err != nil {
		s.fail(c, err)
		return
	}

	user, err := s.store.UpdateProfile(c.Request.Context(), currentUserID(c), req.Username, req.Email)
	if err != nil {
		s.fail(c, lookup(err, errUserNotFound))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleListUsers(c *gin.Context) {
	users, err := s.store.ListUsers(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Server) handleGetUser(c *gin.Context) {
	user, err := s.store.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, lookup(err, errUserNotFound))
		return
	}
	c.JSON(http.StatusOK, user)
}
