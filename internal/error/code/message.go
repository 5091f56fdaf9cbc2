package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:    "成功",
	ErrUnknown:    "未知错误",
	ErrBind:       "请求参数绑定错误",
	ErrValidation: "请求参数验证错误",

	// 房源相关错误码
	ErrPropertyNotFound: "房源不存在",
	ErrImageNotFound:    "房源图片不存在",
	ErrImageUpload:      "图片保存失败",

	// 咨询相关错误码
	ErrEnquiryNotFound: "咨询不存在",
	ErrEmailDelivery:   "通知邮件发送失败",

	// 条目相关错误码
	ErrItemNotFound: "条目不存在",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:    StatusOK,
	ErrUnknown:    StatusInternalServerError,
	ErrBind:       StatusBadRequest,
	ErrValidation: StatusBadRequest,

	// 房源相关错误码
	ErrPropertyNotFound: StatusNotFound,
	ErrImageNotFound:    StatusNotFound,
	ErrImageUpload:      StatusInternalServerError,

	// 咨询相关错误码
	ErrEnquiryNotFound: StatusNotFound,
	ErrEmailDelivery:   StatusInternalServerError,

	// 条目相关错误码
	ErrItemNotFound: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
