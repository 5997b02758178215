package response

import (
	"net/http"

	cErr "lensboard/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

type Response struct {
	RequestID   string `json:"requestID"`
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// AbortWithError 只記錄錯誤並中止，實際輸出由 recovery middleware 統一處理
func AbortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, requestID string, httpCode int, errorCode int, msg string, desc string) {
	c.JSON(httpCode, Response{
		RequestID:   requestID,
		Code:        errorCode,
		Message:     msg,
		Description: desc,
	})
	c.Abort()
}

func FailByErr(c *gin.Context, requestID string, err error) {
	v, ok := err.(*cErr.Error)
	if ok {
		Fail(c, requestID, v.HttpCode(), v.ErrorCode(), v.Error(), v.ErrorDesc())
	} else {
		Fail(c, requestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, err.Error(), "internal error")
	}
}
