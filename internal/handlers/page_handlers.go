package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The storefront pages themselves are rendered by the frontend; these
// handlers exist so the gated navigation paths resolve server-side and the
// access-control table has routes to protect.

func (h *Handlers) HomePage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "home"})
}

func (h *Handlers) SignInPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "signin"})
}

func (h *Handlers) SignUpPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "signup"})
}

func (h *Handlers) AdminPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "admin"})
}
