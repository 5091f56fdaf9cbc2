// @title           Estate Listing Service API
// @version         1.0
// @description     房源信息发布与客户咨询管理服务
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
package main

import (
	"fmt"
	"log"
	"os"

	"estate-listing-service/config"
	"estate-listing-service/internal/infrastructure/database"
	"estate-listing-service/models"
	"estate-listing-service/routes"
	"estate-listing-service/services"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，环境变量可能已经通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 加载配置，显式传入各组件，不做全局引用
	cfg := config.LoadConfig()

	// 创建数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法创建数据库连接池: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	// 根据配置执行数据库迁移
	if cfg.DBMigrationMode == "drop" {
		log.Println("警告: 在drop模式下运行，将删除并重建所有表")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("删除并重建表失败: %v", err)
		}
	} else {
		// 默认AutoMigrate，只会添加新列和新表
		if err := autoMigrate(db); err != nil {
			log.Fatalf("自动迁移失败: %v", err)
		}
	}

	// 确保上传目录存在
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatalf("创建上传目录失败: %v", err)
	}

	// 启动孤儿文件定时清理
	startOrphanFileSweeper(db, cfg)

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 启动服务器
	config.Info("服务器启动在: http://0.0.0.0:%s", cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Item{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Enquiry{},
	)
	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables 删除并重建所有表
func dropAndRecreateTables(db *gorm.DB) error {
	// 警告: 这将删除所有数据
	db.Exec("SET FOREIGN_KEY_CHECKS = 0")
	defer db.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{"enquiries", "property_images", "properties", "items"}
	for _, table := range tables {
		log.Printf("正在删除表: %s", table)
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	return autoMigrate(db)
}

// startOrphanFileSweeper 每天凌晨清理一次上传目录中的孤儿文件
func startOrphanFileSweeper(db *gorm.DB, cfg *config.Config) {
	cleanupService := services.NewCleanupService(db, cfg)

	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		removed, err := cleanupService.RemoveOrphanFiles()
		if err != nil {
			config.Error("清理孤儿文件失败: %v", err)
			return
		}
		if removed > 0 {
			config.Info("已清理 %d 个孤儿文件", removed)
		}
	})
	if err != nil {
		log.Fatalf("注册清理任务失败: %v", err)
	}

	c.Start()
}
