package container

import (
	"sync"

	"estate-listing-service/config"
	"estate-listing-service/services"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 业务服务
	propertyService services.InterfacePropertyService
	enquiryService  services.InterfaceEnquiryService
	itemService     services.InterfaceItemService

	// 通知与维护服务
	emailService   services.InterfaceEmailService
	cleanupService services.InterfaceCleanupService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.propertyService = services.NewPropertyService(c.db, c.config)
	c.enquiryService = services.NewEnquiryService(c.db, c.config)
	c.itemService = services.NewItemService(c.db, c.config)

	c.emailService = services.NewEmailService(c.config)
	c.cleanupService = services.NewCleanupService(c.db, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "property":
		return c.propertyService
	case "enquiry":
		return c.enquiryService
	case "item":
		return c.itemService
	case "email":
		return c.emailService
	case "cleanup":
		return c.cleanupService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
