package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"TickerPane/internal/api/constant"
	"TickerPane/internal/api/dto"
)

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if errors.Is(c.Request.Context().Err(), context.DeadlineExceeded) {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, dto.Res{
				Success: false,
				Error:   constant.ErrTimeout.Error(),
			})
			return
		}

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		// - Validation error from request binding
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			validationErrors := make([]dto.ErrorType, 0, len(ve))
			for _, fe := range ve {
				validationErrors = append(validationErrors, dto.ErrorType{
					Field:   fe.Field(),
					Message: fe.Error(),
				})
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Res{
				Success: false,
				Error:   validationErrors,
			})
			return
		}

		// - Domain and custom errors
		if ce, ok := constant.FromError(err); ok {
			c.AbortWithStatusJSON(ce.StatusCode, dto.Res{
				Success: false,
				Error:   ce.Error(),
			})
			return
		}

		if errors.Is(err, context.DeadlineExceeded) {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, dto.Res{
				Success: false,
				Error:   constant.ErrTimeout.Error(),
			})
			return
		}

		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Res{
			Success: false,
			Error:   err.Error(),
		})
	}
}
