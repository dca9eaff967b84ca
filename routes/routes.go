package routes

import (
	"shophub/controllers"
	"shophub/middleware"
	"shophub/models"
	"shophub/repositories"
	"shophub/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository()
	itemRepo := repositories.NewItemRepository()
	cartRepo := repositories.NewCartRepository()

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Warn().Err(err).Msg("email disabled")
		emailService = nil
	}

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, emailService))
	itemCtrl := controllers.NewItemController(services.NewItemService(itemRepo))
	cartCtrl := controllers.NewCartController(services.NewCartService(userRepo, itemRepo, cartRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/items", itemCtrl.GetItems)
	router.GET("/items/:id", itemCtrl.GetItemByID)
	router.GET("/categories", itemCtrl.GetCategories)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddToCart)
		auth.DELETE("/cart", cartCtrl.RemoveFromCart)

		auth.POST("/items", itemCtrl.CreateItem)
		auth.PUT("/items/:id", itemCtrl.UpdateItem)
		auth.DELETE("/items/:id", itemCtrl.DeleteItem)
		auth.POST("/items/:id/image", itemCtrl.UploadItemImage)
	}
}
