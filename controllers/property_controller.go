package controllers

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"estate-listing-service/config"
	"estate-listing-service/internal/error/code"
	"estate-listing-service/internal/error/response"
	"estate-listing-service/models"
	"estate-listing-service/services"
	"estate-listing-service/services/container"
	"estate-listing-service/utils"

	"github.com/gin-gonic/gin"
)

// PublicUploadPrefix 图片对外访问路径前缀
const PublicUploadPrefix = "/uploads/properties/"

// InterfacePropertyController 定义房源控制器接口
type InterfacePropertyController interface {
	GetProperties()
	GetProperty()
	CreateProperty()
	UpdateProperty()
	DeleteProperty()
	UploadImages()
	DeleteImage()
}

// PropertyController 处理房源相关的请求
type PropertyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPropertyController 创建一个新的房源控制器
func NewPropertyController(ctx *gin.Context, container *container.ServiceContainer) *PropertyController {
	return &PropertyController{
		Ctx:       ctx,
		Container: container,
	}
}

// PropertyRequest 表示创建房源请求
type PropertyRequest struct {
	Title       string   `json:"title" binding:"required" example:"城南临街商铺"`
	Description string   `json:"description" example:"地段好，人流量大"`
	Category    string   `json:"category" binding:"required" example:"commercial"` // land, residential, commercial
	Address     string   `json:"address" example:"幸福路128号"`
	City        string   `json:"city" example:"杭州"`
	State       string   `json:"state" example:"浙江"`
	Pincode     string   `json:"pincode" example:"310000"`
	Price       float64  `json:"price" binding:"required" example:"1280000"`
	AreaSqft    *float64 `json:"area_sqft" example:"1200"`
	Status      string   `json:"status" example:"available"` // available, sold, rented

	// 土地类房源专用字段
	LandType   string `json:"land_type" example:"agricultural"`
	SoilType   string `json:"soil_type" example:"loam"`
	RoadAccess string `json:"road_access" example:"paved"`
	Zoning     string `json:"zoning" example:"residential"`

	// 住宅类房源专用字段
	Bedrooms   *int   `json:"bedrooms" example:"3"`
	Bathrooms  *int   `json:"bathrooms" example:"2"`
	Floors     *int   `json:"floors" example:"2"`
	Furnishing string `json:"furnishing" example:"furnished"` // furnished, semi, unfurnished
	Parking    string `json:"parking" example:"covered"`
	Amenities  string `json:"amenities" example:"gym,pool"`

	// 商业类房源专用字段
	CommercialType string   `json:"commercial_type" example:"shop"`
	FloorNumber    *int     `json:"floor_number" example:"1"`
	CarpetArea     *float64 `json:"carpet_area" example:"980"`
	Pantry         bool     `json:"pantry" example:"false"`
	PowerBackup    bool     `json:"power_backup" example:"true"`
}

// PropertyUpdateRequest 表示部分更新房源请求，只有显式给出的字段会被修改
type PropertyUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Pincode     *string  `json:"pincode"`
	Price       *float64 `json:"price"`
	AreaSqft    *float64 `json:"area_sqft"`
	Status      *string  `json:"status"`

	LandType   *string `json:"land_type"`
	SoilType   *string `json:"soil_type"`
	RoadAccess *string `json:"road_access"`
	Zoning     *string `json:"zoning"`

	Bedrooms   *int    `json:"bedrooms"`
	Bathrooms  *int    `json:"bathrooms"`
	Floors     *int    `json:"floors"`
	Furnishing *string `json:"furnishing"`
	Parking    *string `json:"parking"`
	Amenities  *string `json:"amenities"`

	CommercialType *string  `json:"commercial_type"`
	FloorNumber    *int     `json:"floor_number"`
	CarpetArea     *float64 `json:"carpet_area"`
	Pantry         *bool    `json:"pantry"`
	PowerBackup    *bool    `json:"power_backup"`
}

// toUpdates 把非空指针字段折算成 列名->新值 的映射
func (r *PropertyUpdateRequest) toUpdates() map[string]interface{} {
	updates := make(map[string]interface{})

	set := func(column string, value interface{}, present bool) {
		if present {
			updates[column] = value
		}
	}

	set("title", deref(r.Title), r.Title != nil)
	set("description", deref(r.Description), r.Description != nil)
	set("category", deref(r.Category), r.Category != nil)
	set("address", deref(r.Address), r.Address != nil)
	set("city", deref(r.City), r.City != nil)
	set("state", deref(r.State), r.State != nil)
	set("pincode", deref(r.Pincode), r.Pincode != nil)
	set("status", deref(r.Status), r.Status != nil)
	set("land_type", deref(r.LandType), r.LandType != nil)
	set("soil_type", deref(r.SoilType), r.SoilType != nil)
	set("road_access", deref(r.RoadAccess), r.RoadAccess != nil)
	set("zoning", deref(r.Zoning), r.Zoning != nil)
	set("furnishing", deref(r.Furnishing), r.Furnishing != nil)
	set("parking", deref(r.Parking), r.Parking != nil)
	set("amenities", deref(r.Amenities), r.Amenities != nil)
	set("commercial_type", deref(r.CommercialType), r.CommercialType != nil)

	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.AreaSqft != nil {
		updates["area_sqft"] = *r.AreaSqft
	}
	if r.Bedrooms != nil {
		updates["bedrooms"] = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		updates["bathrooms"] = *r.Bathrooms
	}
	if r.Floors != nil {
		updates["floors"] = *r.Floors
	}
	if r.FloorNumber != nil {
		updates["floor_number"] = *r.FloorNumber
	}
	if r.CarpetArea != nil {
		updates["carpet_area"] = *r.CarpetArea
	}
	if r.Pantry != nil {
		updates["pantry"] = *r.Pantry
	}
	if r.PowerBackup != nil {
		updates["power_backup"] = *r.PowerBackup
	}

	return updates
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// HandlePropertyFunc 返回一个处理房源请求的Gin处理函数
func HandlePropertyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPropertyController(ctx, container)

		switch method {
		case "getProperties":
			controller.GetProperties()
		case "getProperty":
			controller.GetProperty()
		case "createProperty":
			controller.CreateProperty()
		case "updateProperty":
			controller.UpdateProperty()
		case "deleteProperty":
			controller.DeleteProperty()
		case "uploadImages":
			controller.UploadImages()
		case "deleteImage":
			controller.DeleteImage()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// propertyID 解析路径中的房源ID
func (c *PropertyController) propertyID() (uint, bool) {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil || id < 1 {
		response.ParamError(c.Ctx, "无效的房源ID")
		return 0, false
	}
	return uint(id), true
}

// 1. GetProperties 获取房源列表
// @Summary 获取房源列表
// @Description 获取房源列表，支持按类别、状态过滤和关键字搜索，按创建时间倒序
// @Tags Property
// @Accept json
// @Produce json
// @Param category query string false "类别: land, residential, commercial"
// @Param status query string false "状态: available, sold, rented"
// @Param search query string false "关键字，匹配标题/城市/地址"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /properties [get]
func (c *PropertyController) GetProperties() {
	filter := services.PropertyFilter{
		Category: c.Ctx.Query("category"),
		Status:   c.Ctx.Query("status"),
		Search:   c.Ctx.Query("search"),
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	properties, err := propertyService.GetAllProperties(filter)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取房源列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, properties)
}

// 2. GetProperty 获取单个房源详情
// @Summary 获取房源详情
// @Description 根据ID获取房源详细信息，包含图片列表
// @Tags Property
// @Accept json
// @Produce json
// @Param id path int true "房源ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /properties/{id} [get]
func (c *PropertyController) GetProperty() {
	id, ok := c.propertyID()
	if !ok {
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	property, err := propertyService.GetPropertyByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			response.NotFound(c.Ctx, code.ErrPropertyNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取房源失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, property)
}

// 3. CreateProperty 创建新房源
// @Summary 创建房源
// @Description 创建一个新的房源，标题、类别、价格为必填项
// @Tags Property
// @Accept json
// @Produce json
// @Param property body PropertyRequest true "房源信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /properties [post]
func (c *PropertyController) CreateProperty() {
	var req PropertyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	property := &models.Property{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		Price:          req.Price,
		AreaSqft:       req.AreaSqft,
		Status:         req.Status,
		LandType:       req.LandType,
		SoilType:       req.SoilType,
		RoadAccess:     req.RoadAccess,
		Zoning:         req.Zoning,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		Floors:         req.Floors,
		Furnishing:     req.Furnishing,
		Parking:        req.Parking,
		Amenities:      req.Amenities,
		CommercialType: req.CommercialType,
		FloorNumber:    req.FloorNumber,
		CarpetArea:     req.CarpetArea,
		Pantry:         req.Pantry,
		PowerBackup:    req.PowerBackup,
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	if err := propertyService.CreateProperty(property); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建房源失败: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, property)
}

// 4. UpdateProperty 部分更新房源
// @Summary 更新房源
// @Description 部分更新房源信息，只修改请求体中显式给出的字段
// @Tags Property
// @Accept json
// @Produce json
// @Param id path int true "房源ID"
// @Param property body PropertyUpdateRequest true "要修改的字段"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /properties/{id} [put]
func (c *PropertyController) UpdateProperty() {
	id, ok := c.propertyID()
	if !ok {
		return
	}

	var req PropertyUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	property, err := propertyService.UpdateProperty(id, req.toUpdates())
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			response.NotFound(c.Ctx, code.ErrPropertyNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新房源失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, property)
}

// 5. DeleteProperty 删除房源及其图片
// @Summary 删除房源
// @Description 删除房源，级联删除图片记录和咨询，并清理磁盘上的图片文件
// @Tags Property
// @Accept json
// @Produce json
// @Param id path int true "房源ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /properties/{id} [delete]
func (c *PropertyController) DeleteProperty() {
	id, ok := c.propertyID()
	if !ok {
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	if err := propertyService.DeleteProperty(id); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			response.NotFound(c.Ctx, code.ErrPropertyNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除房源失败: "+err.Error(), nil)
		return
	}

	response.NoContent(c.Ctx)
}

// 6. UploadImages 上传房源图片
// @Summary 上传房源图片
// @Description 以multipart形式上传一张或多张图片，逐张落盘并入库；房源尚无主图时第一张成为主图
// @Tags Property
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "房源ID"
// @Param files formData file true "图片文件，可多个"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /properties/{id}/images [post]
func (c *PropertyController) UploadImages() {
	id, ok := c.propertyID()
	if !ok {
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	if _, err := propertyService.GetPropertyByID(id); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			response.NotFound(c.Ctx, code.ErrPropertyNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取房源失败: "+err.Error(), nil)
		return
	}

	form, err := c.Ctx.MultipartForm()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的表单数据: "+err.Error(), nil)
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		response.ParamError(c.Ctx, "缺少上传文件")
		return
	}

	cfg := c.Container.GetService("config").(*config.Config)
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrImageUpload, "创建上传目录失败: "+err.Error(), nil)
		return
	}

	// 逐张处理：每张图片落盘后立即入库。中途失败时之前的图片保留，
	// 剩余的不再处理。
	uploaded := make([]models.PropertyImage, 0, len(files))
	for _, file := range files {
		filename := utils.RandomImageName(file.Filename)
		dst := filepath.Join(cfg.UploadDir, filename)

		if err := c.Ctx.SaveUploadedFile(file, dst); err != nil {
			response.FailWithMessage(c.Ctx, code.ErrImageUpload, "保存图片失败: "+err.Error(), uploaded)
			return
		}

		image, err := propertyService.AddImage(id, PublicUploadPrefix+filename)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "保存图片记录失败: "+err.Error(), uploaded)
			return
		}

		uploaded = append(uploaded, *image)
	}

	response.Success(c.Ctx, uploaded)
}

// 7. DeleteImage 删除房源图片
// @Summary 删除房源图片
// @Description 按 (房源ID, 图片ID) 删除图片记录并移除磁盘文件，文件缺失时容忍
// @Tags Property
// @Accept json
// @Produce json
// @Param id path int true "房源ID"
// @Param image_id path int true "图片ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /properties/{id}/images/{image_id} [delete]
func (c *PropertyController) DeleteImage() {
	id, ok := c.propertyID()
	if !ok {
		return
	}

	imageID, err := strconv.Atoi(c.Ctx.Param("image_id"))
	if err != nil || imageID < 1 {
		response.ParamError(c.Ctx, "无效的图片ID")
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	if err := propertyService.DeleteImage(id, uint(imageID)); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			response.NotFound(c.Ctx, code.ErrImageNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除图片失败: "+err.Error(), nil)
		return
	}

	response.NoContent(c.Ctx)
}
