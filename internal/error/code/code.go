package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 创建成功.
	StatusCreated = 201
	// StatusNoContent - 204: 无内容.
	StatusNoContent = 204
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
)

// 房源相关错误码 (101xxx).
const (
	// ErrPropertyNotFound - 404: 房源不存在.
	ErrPropertyNotFound int = iota + 101000
	// ErrImageNotFound - 404: 房源图片不存在.
	ErrImageNotFound
	// ErrImageUpload - 500: 图片保存失败.
	ErrImageUpload
)

// 咨询相关错误码 (102xxx).
const (
	// ErrEnquiryNotFound - 404: 咨询不存在.
	ErrEnquiryNotFound int = iota + 102000
	// ErrEmailDelivery - 500: 通知邮件发送失败.
	ErrEmailDelivery
)

// 条目相关错误码 (103xxx).
const (
	// ErrItemNotFound - 404: 条目不存在.
	ErrItemNotFound int = iota + 103000
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
