package controllers

import (
	"errors"
	"strconv"
	"time"

	"estate-listing-service/config"
	"estate-listing-service/internal/error/code"
	"estate-listing-service/internal/error/response"
	"estate-listing-service/models"
	"estate-listing-service/services"
	"estate-listing-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceEnquiryController 定义咨询控制器接口
type InterfaceEnquiryController interface {
	GetEnquiries()
	GetEnquiry()
	CreateEnquiry()
	UpdateEnquiry()
	DeleteEnquiry()
}

// EnquiryController 处理咨询相关的请求
type EnquiryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEnquiryController 创建一个新的咨询控制器
func NewEnquiryController(ctx *gin.Context, container *container.ServiceContainer) *EnquiryController {
	return &EnquiryController{
		Ctx:       ctx,
		Container: container,
	}
}

// EnquiryRequest 表示创建咨询请求
type EnquiryRequest struct {
	PropertyID uint   `json:"property_id" binding:"required" example:"1"`
	Name       string `json:"name" binding:"required" example:"王先生"`
	Email      string `json:"email" binding:"required" example:"wang@example.com"`
	Phone      string `json:"phone" binding:"required" example:"13800138000"`
	Message    string `json:"message" example:"想了解一下这套房子"`
}

// EnquiryUpdateRequest 表示部分更新咨询请求，只有显式给出的字段会被修改
type EnquiryUpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
	Status  *string `json:"status"` // new, contacted, qualified, closed
}

// toUpdates 把非空指针字段折算成 列名->新值 的映射
func (r *EnquiryUpdateRequest) toUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Message != nil {
		updates["message"] = *r.Message
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates
}

// EnquiryResponse 表示咨询响应，附带房源标题
type EnquiryResponse struct {
	ID            uint      `json:"id"`
	PropertyID    uint      `json:"property_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	PropertyTitle string    `json:"property_title"`
}

// toEnquiryResponse 把咨询模型转换为响应结构
func toEnquiryResponse(enquiry *models.Enquiry) EnquiryResponse {
	resp := EnquiryResponse{
		ID:         enquiry.ID,
		PropertyID: enquiry.PropertyID,
		Name:       enquiry.Name,
		Email:      enquiry.Email,
		Phone:      enquiry.Phone,
		Message:    enquiry.Message,
		Status:     enquiry.Status,
		CreatedAt:  enquiry.CreatedAt,
		UpdatedAt:  enquiry.UpdatedAt,
	}
	if enquiry.Property != nil {
		resp.PropertyTitle = enquiry.Property.Title
	}
	return resp
}

// HandleEnquiryFunc 返回一个处理咨询请求的Gin处理函数
func HandleEnquiryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEnquiryController(ctx, container)

		switch method {
		case "getEnquiries":
			controller.GetEnquiries()
		case "getEnquiry":
			controller.GetEnquiry()
		case "createEnquiry":
			controller.CreateEnquiry()
		case "updateEnquiry":
			controller.UpdateEnquiry()
		case "deleteEnquiry":
			controller.DeleteEnquiry()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// enquiryID 解析路径中的咨询ID
func (c *EnquiryController) enquiryID() (uint, bool) {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil || id < 1 {
		response.ParamError(c.Ctx, "无效的咨询ID")
		return 0, false
	}
	return uint(id), true
}

// 1. GetEnquiries 获取咨询列表
// @Summary 获取咨询列表
// @Description 获取咨询列表，支持按房源、状态过滤和关键字搜索，按创建时间倒序
// @Tags Enquiry
// @Accept json
// @Produce json
// @Param property_id query int false "房源ID"
// @Param status query string false "状态: new, contacted, qualified, closed"
// @Param search query string false "关键字，匹配姓名/邮箱/电话"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /enquiries [get]
func (c *EnquiryController) GetEnquiries() {
	filter := services.EnquiryFilter{
		Status: c.Ctx.Query("status"),
		Search: c.Ctx.Query("search"),
	}
	if propertyID, err := strconv.Atoi(c.Ctx.Query("property_id")); err == nil && propertyID > 0 {
		filter.PropertyID = uint(propertyID)
	}

	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiries, err := enquiryService.GetAllEnquiries(filter)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取咨询列表失败: "+err.Error(), nil)
		return
	}

	result := make([]EnquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		result = append(result, toEnquiryResponse(&enquiries[i]))
	}

	response.Success(c.Ctx, result)
}

// 2. GetEnquiry 获取单个咨询详情
// @Summary 获取咨询详情
// @Description 根据ID获取咨询详细信息
// @Tags Enquiry
// @Accept json
// @Produce json
// @Param id path int true "咨询ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /enquiries/{id} [get]
func (c *EnquiryController) GetEnquiry() {
	id, ok := c.enquiryID()
	if !ok {
		return
	}

	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiry, err := enquiryService.GetEnquiryByID(id)
	if err != nil {
		if errors.Is(err, services.ErrEnquiryNotFound) {
			response.NotFound(c.Ctx, code.ErrEnquiryNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取咨询失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, toEnquiryResponse(enquiry))
}

// 3. CreateEnquiry 创建新咨询并发送通知邮件
// @Summary 创建咨询
// @Description 针对已存在的房源创建咨询；入库成功后同步发送确认邮件和管理员提醒邮件，
// @Description 邮件发送失败会使请求失败，但咨询记录已提交
// @Tags Enquiry
// @Accept json
// @Produce json
// @Param enquiry body EnquiryRequest true "咨询信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /enquiries [post]
func (c *EnquiryController) CreateEnquiry() {
	var req EnquiryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	enquiry := &models.Enquiry{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
	}

	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	if err := enquiryService.CreateEnquiry(enquiry); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			response.NotFound(c.Ctx, code.ErrPropertyNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建咨询失败: "+err.Error(), nil)
		return
	}

	propertyTitle := ""
	if enquiry.Property != nil {
		propertyTitle = enquiry.Property.Title
	}

	// 行已提交后同步发信，发送失败按请求失败上报
	emailService := c.Container.GetService("email").(services.InterfaceEmailService)
	if err := emailService.SendEnquiryConfirmation(enquiry, propertyTitle); err != nil {
		config.Error("发送咨询确认邮件失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrEmailDelivery, "发送确认邮件失败: "+err.Error(), nil)
		return
	}
	if err := emailService.SendEnquiryAdminNotification(enquiry, propertyTitle); err != nil {
		config.Error("发送管理员提醒邮件失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrEmailDelivery, "发送管理员提醒邮件失败: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, toEnquiryResponse(enquiry))
}

// 4. UpdateEnquiry 部分更新咨询
// @Summary 更新咨询
// @Description 部分更新咨询信息，只修改请求体中显式给出的字段
// @Tags Enquiry
// @Accept json
// @Produce json
// @Param id path int true "咨询ID"
// @Param enquiry body EnquiryUpdateRequest true "要修改的字段"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /enquiries/{id} [put]
func (c *EnquiryController) UpdateEnquiry() {
	id, ok := c.enquiryID()
	if !ok {
		return
	}

	var req EnquiryUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiry, err := enquiryService.UpdateEnquiry(id, req.toUpdates())
	if err != nil {
		if errors.Is(err, services.ErrEnquiryNotFound) {
			response.NotFound(c.Ctx, code.ErrEnquiryNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新咨询失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, toEnquiryResponse(enquiry))
}

// 5. DeleteEnquiry 删除咨询
// @Summary 删除咨询
// @Description 删除指定的咨询记录
// @Tags Enquiry
// @Accept json
// @Produce json
// @Param id path int true "咨询ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /enquiries/{id} [delete]
func (c *EnquiryController) DeleteEnquiry() {
	id, ok := c.enquiryID()
	if !ok {
		return
	}

	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	if err := enquiryService.DeleteEnquiry(id); err != nil {
		if errors.Is(err, services.ErrEnquiryNotFound) {
			response.NotFound(c.Ctx, code.ErrEnquiryNotFound, "")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除咨询失败: "+err.Error(), nil)
		return
	}

	response.NoContent(c.Ctx)
}
