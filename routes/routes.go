package routes

import (
	"net/http"

	"estate-listing-service/config"
	"estate-listing-service/controllers"
	_ "estate-listing-service/docs"
	"estate-listing-service/services/container"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件，与前端约定放开所有来源
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)

	// 上传的图片以静态文件方式对外提供
	r.Static(controllers.PublicUploadPrefix, cfg.UploadDir)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 根路径欢迎信息
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to estate-listing-service!",
			"version": "1.0",
		})
	})

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")

	// 健康检查
	healthController := controllers.NewHealthCheckController(container)
	api.GET("/ping", healthController.Ping)

	v1 := api.Group("/v1")

	// 条目路由
	v1.Group("/items").GET("", controllers.HandleItemFunc(container, "getItems"))
	v1.Group("/items").GET("/:id", controllers.HandleItemFunc(container, "getItem"))
	v1.Group("/items").POST("", controllers.HandleItemFunc(container, "createItem"))
	v1.Group("/items").DELETE("/:id", controllers.HandleItemFunc(container, "deleteItem"))

	// 房源路由
	v1.Group("/properties").GET("", controllers.HandlePropertyFunc(container, "getProperties"))
	v1.Group("/properties").GET("/:id", controllers.HandlePropertyFunc(container, "getProperty"))
	v1.Group("/properties").POST("", controllers.HandlePropertyFunc(container, "createProperty"))
	v1.Group("/properties").PUT("/:id", controllers.HandlePropertyFunc(container, "updateProperty"))
	v1.Group("/properties").DELETE("/:id", controllers.HandlePropertyFunc(container, "deleteProperty"))
	// 房源图片子资源
	v1.Group("/properties").POST("/:id/images", controllers.HandlePropertyFunc(container, "uploadImages"))
	v1.Group("/properties").DELETE("/:id/images/:image_id", controllers.HandlePropertyFunc(container, "deleteImage"))

	// 咨询路由
	v1.Group("/enquiries").GET("", controllers.HandleEnquiryFunc(container, "getEnquiries"))
	v1.Group("/enquiries").GET("/:id", controllers.HandleEnquiryFunc(container, "getEnquiry"))
	v1.Group("/enquiries").POST("", controllers.HandleEnquiryFunc(container, "createEnquiry"))
	v1.Group("/enquiries").PUT("/:id", controllers.HandleEnquiryFunc(container, "updateEnquiry"))
	v1.Group("/enquiries").DELETE("/:id", controllers.HandleEnquiryFunc(container, "deleteEnquiry"))
}
