package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shift-scheduler/backend/pkg/response"
)

// BodyLimit 请求体大小限制中间件
// 排班与调休接口的请求体都很小，maxBytes 取 1MB 已留足余量；
// 超限时由 MaxBytesReader 截断，这里统一转为 413 响应
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, ginErr := range c.Errors {
			var maxBytesErr *http.MaxBytesError
			if errors.As(ginErr.Err, &maxBytesErr) {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体过大")
				return
			}
		}
	}
}
