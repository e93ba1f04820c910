package response

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/pkg/emotion"
	"WithTheLake/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// FailWithCode 带机器可读错误码的失败返回，表单校验使用
func FailWithCode(c *gin.Context, businessCode int, errorCode, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:      businessCode,
		Message:   message,
		ErrorCode: errorCode,
		Data:      nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var verr *emotion.ValidationError
	if errors.As(err, &verr) {
		code := BadRequest
		if verr.Code == emotion.CodeLoginRequired {
			code = Unauthorized
		}
		FailWithCode(c, code, verr.Code, verr.Message)
		return
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		code = InternalServerError
		log.Error("Error", "err", err)
	}
	Fail(c, code, err.Error())
}
