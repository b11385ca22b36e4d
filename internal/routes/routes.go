package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/maisonbelle/maisonbelle-api/internal/auth"
	"github.com/maisonbelle/maisonbelle-api/internal/config"
	"github.com/maisonbelle/maisonbelle-api/internal/handlers"
	"github.com/maisonbelle/maisonbelle-api/internal/middleware"
)

// SetupRouter builds the full route table: gated pages, the public API and
// the admin API.
func SetupRouter(h *handlers.Handlers, verifier auth.Verifier, cfg config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"POST", "GET", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Route protection runs before everything. Its matcher only intercepts
	// the page paths; /api/* passes straight through.
	router.Use(middleware.AccessControl(verifier))

	// Uploaded product/service images
	router.Static("/uploads", cfg.UploadDir)

	// --- Pages (gated by AccessControl) ---
	router.GET("/", h.HomePage)
	router.GET("/signin", h.SignInPage)
	router.GET("/signup", h.SignUpPage)
	router.GET("/admin", h.AdminPage)
	router.GET("/admin/*path", h.AdminPage)

	// --- Public API ---
	api := router.Group("/api")
	{
		api.GET("/products", h.GetProducts)
		api.GET("/search", h.SearchProducts)

		api.GET("/review", h.GetReviews)
		api.POST("/review", h.CreateReview)

		api.GET("/reservation", h.GetReservations)
		api.POST("/reservation", h.CreateReservation)
		api.DELETE("/reservation", h.DeleteReservations)
		api.PATCH("/reservation", h.PatchReservation)

		api.GET("/data", h.GetData)
		api.GET("/categories", h.GetCategories)
		api.GET("/brands", h.GetBrands)

		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/signin", h.SignIn)
		api.POST("/auth/signout", h.SignOut)
		api.GET("/auth/me", middleware.AuthRequired(verifier), h.Me)
	}

	// --- Admin API (JSON 401/403 instead of redirects) ---
	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(verifier))
	admin.Use(middleware.AdminRequired())
	{
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.POST("/categories", h.CreateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.POST("/brands", h.CreateBrand)

		admin.POST("/upload", h.UploadImage)
	}

	return router
}
