package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mmasetshaba28/haircut-booking/internal/auth"
	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
	"github.com/Mmasetshaba28/haircut-booking/internal/validators"
)

type AuthHandler struct {
	repo   domain.Repository
	issuer *auth.Issuer
}

func NewAuthHandler(repo domain.Repository, issuer *auth.Issuer) *AuthHandler {
	return &AuthHandler{repo: repo, issuer: issuer}
}

// --------- Requests ---------

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Stored and compared exactly as given; no case folding.
	_, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	case !errors.Is(err, domain.ErrNotFound):
		// a failed lookup must not read as "email free"
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_check_email"})
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
	}

	if err := h.repo.CreateUser(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_check_email"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.issuer.Issue(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"email": user.Email,
		"role":  user.Role,
	})
}
