package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestID берёт X-Request-ID клиента или выдаёт новый uuid,
// кладёт его в контекст запроса для логов и возвращает в ответе
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
