package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/deviill007/ShakeHubInShop/configs"
	"github.com/deviill007/ShakeHubInShop/controllers"
	"github.com/deviill007/ShakeHubInShop/middlewares"
	"github.com/deviill007/ShakeHubInShop/pkg/resp"
	"github.com/deviill007/ShakeHubInShop/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) error {
	r.Use(middlewares.CORSMiddleware())

	// Wrong verb on a known path is a 405, not a 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(resp.MethodNotAllowed)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	uploadSvc, err := services.NewUploadService(cfg.Cloudinary)
	if err != nil {
		return err
	}

	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	uploadCtrl := controllers.NewUploadController(uploadSvc)

	api := r.Group("/api")

	menu := api.Group("/menu")
	{
		menu.GET("/get", menuCtrl.List)
		menu.POST("/add", menuCtrl.Add)
		menu.PUT("/update", menuCtrl.Update)
		menu.DELETE("/delete", menuCtrl.Delete)
	}

	order := api.Group("/order")
	{
		order.GET("/get", orderCtrl.ListPending)
		order.POST("/place", orderCtrl.Place)
		order.PUT("/update", orderCtrl.MarkReady)
	}

	api.POST("/upload", uploadCtrl.Upload)

	return nil
}
