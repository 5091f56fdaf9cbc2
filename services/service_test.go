package services

import (
	"path/filepath"
	"testing"

	"estate-listing-service/config"
	"estate-listing-service/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 创建独立的测试数据库并完成建表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Item{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Enquiry{},
	))

	return db
}

// newTestConfig 创建测试配置，上传目录指向临时目录
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		UploadDir:  t.TempDir(),
		SMTPHost:   "127.0.0.1",
		SMTPPort:   "2525",
		SMTPUser:   "noreply@example.com",
		AdminEmail: "admin@example.com",
	}
}

// seedProperty 插入一条房源记录
func seedProperty(t *testing.T, db *gorm.DB, title, category, city string) *models.Property {
	t.Helper()

	property := &models.Property{
		Title:    title,
		Category: category,
		City:     city,
		Price:    500000,
		Status:   models.PropertyStatusAvailable,
	}
	require.NoError(t, db.Create(property).Error)
	return property
}
