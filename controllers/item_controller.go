package controllers

import (
	"errors"
	"strconv"

	"estate-listing-service/internal/error/code"
	"estate-listing-service/internal/error/response"
	"estate-listing-service/models"
	"estate-listing-service/services"
	"estate-listing-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceItemController 定义条目控制器接口
type InterfaceItemController interface {
	GetItems()
	GetItem()
	CreateItem()
	DeleteItem()
}

// ItemController 处理条目相关的请求，仅作CRUD演示
type ItemController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewItemController 创建一个新的条目控制器
func NewItemController(ctx *gin.Context, container *container.ServiceContainer) *ItemController {
	return &ItemController{
		Ctx:       ctx,
		Container: container,
	}
}

// ItemRequest 表示创建条目请求
type ItemRequest struct {
	Name        string `json:"name" binding:"required" example:"样例条目"`
	Description string `json:"description" example:"仅用于演示"`
}

// HandleItemFunc 返回一个处理条目请求的Gin处理函数
func HandleItemFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewItemController(ctx, container)

		switch method {
		case "getItems":
			controller.GetItems()
		case "getItem":
			controller.GetItem()
		case "createItem":
			controller.CreateItem()
		case "deleteItem":
			controller.DeleteItem()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetItems 获取所有条目
// @Summary 获取条目列表
// @Description 获取所有条目
// @Tags Item
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /items [get]
func (c *ItemController) GetItems() {
	itemService := c.Container.GetService("item").(services.InterfaceItemService)
	items, err := itemService.GetAllItems()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取条目列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, items)
}

// 2. GetItem 获取单个条目
// @Summary 获取条目详情
// @Description 根据ID获取条目
// @Tags Item
// @Accept json
// @Produce json
// @Param id path int true "条目ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /items/{id} [get]
func (c *ItemController) GetItem() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil || id < 1 {
		response.ParamError(c.Ctx, "无效的条目ID")
		return
	}

	itemService := c.Container.GetService("item").(services.InterfaceItemService)
	item, err := itemService.GetItemByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			response.NotFound(c.Ctx, code.ErrItemNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取条目失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, item)
}

// 3. CreateItem 创建新条目
// @Summary 创建条目
// @Description 创建一个新的条目
// @Tags Item
// @Accept json
// @Produce json
// @Param item body ItemRequest true "条目信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /items [post]
func (c *ItemController) CreateItem() {
	var req ItemRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
	}

	itemService := c.Container.GetService("item").(services.InterfaceItemService)
	if err := itemService.CreateItem(item); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建条目失败: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, item)
}

// 4. DeleteItem 删除条目
// @Summary 删除条目
// @Description 删除指定的条目
// @Tags Item
// @Accept json
// @Produce json
// @Param id path int true "条目ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /items/{id} [delete]
func (c *ItemController) DeleteItem() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil || id < 1 {
		response.ParamError(c.Ctx, "无效的条目ID")
		return
	}

	itemService := c.Container.GetService("item").(services.InterfaceItemService)
	if err := itemService.DeleteItem(uint(id)); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			response.NotFound(c.Ctx, code.ErrItemNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除条目失败: "+err.Error(), nil)
		return
	}

	response.NoContent(c.Ctx)
}
