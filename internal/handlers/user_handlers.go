package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maisonbelle/maisonbelle-api/internal/middleware"
	"github.com/maisonbelle/maisonbelle-api/internal/models"
	"github.com/maisonbelle/maisonbelle-api/internal/store"
)

// Session tokens live for 72 hours; the cookie expires with them.
const sessionCookieMaxAge = 72 * 60 * 60

// SignUpInput is the JSON body for POST /api/auth/signup. It is a separate
// struct from models.User so a caller can never smuggle in an id or a role.
type SignUpInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignInInput is the JSON body for POST /api/auth/signin.
type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUp registers a customer account and signs them in immediately.
func (h *Handlers) SignUp(c *gin.Context) {
	var input SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: password.Hash,
		Role:         "user",
		CreatedAt:    time.Now(),
	}

	if err := h.Users.CreateUser(user); err != nil {
		// Most likely the UNIQUE constraint on email.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account, email may already be registered."})
		return
	}

	token, err := h.Tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// SignIn checks the credentials and issues a session token. Wrong email and
// wrong password answer the same 401 so account existence is not leaked.
func (h *Handlers) SignIn(c *gin.Context) {
	var input SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.GetUserByEmail(input.Email)
	if err != nil {
		if err == store.ErrUserNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.Tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me is the handler for GET /api/auth/me, behind AuthRequired. It echoes the
// verified session so the frontend can ask who the current caller is without
// decoding the token itself.
func (h *Handlers) Me(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": sess.UserID, "role": sess.Role})
}

// SignOut clears the session cookie.
func (h *Handlers) SignOut(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *Handlers) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
}
