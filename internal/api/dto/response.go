package dto

// Response 统一返回结构，ErrorCode 仅在表单类校验失败时出现
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	ErrorCode string      `json:"errorCode,omitempty"`
	Data      interface{} `json:"data"`
}
