package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/saradorri/prospera/internal/domain"
)

const defaultLimit = 100

func init() {
	// Report json/form names in validation errors instead of Go field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	}
}

// PageQuery is the skip/limit pagination shared by list endpoints
type PageQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0" example:"0"`
	Limit int `form:"limit,default=100" binding:"min=1,max=1000" example:"100"`
}

// respondError writes err in the standard error envelope and records it on the context
func respondError(c *gin.Context, err error) {
	appErr := domain.AsAppError(err)
	if errors.Is(err, context.DeadlineExceeded) {
		appErr = domain.NewAppError(domain.ErrCodeTimeout, "Request timeout", http.StatusRequestTimeout, err)
	}
	appErr.RequestID = c.GetString("request_id")
	appErr.Path = c.Request.URL.Path
	appErr.Method = c.Request.Method

	_ = c.Error(appErr)
	c.AbortWithStatusJSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
}

// bindingError converts a gin binding failure into an AppError
func bindingError(err error) *domain.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.NewValidationError(fe.Field(), describe(fe))
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid number: "+numErr.Num, http.StatusUnprocessableEntity, err)
	}

	return domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusUnprocessableEntity, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, domain.NewAppError(
			domain.ErrCodeInvalidFormat,
			fmt.Sprintf("Invalid %s format", name),
			http.StatusUnprocessableEntity,
			err,
		))
		return 0, false
	}
	return id, true
}

// bindPage reads skip and limit from the query string
func bindPage(c *gin.Context) (PageQuery, bool) {
	page := PageQuery{Skip: 0, Limit: defaultLimit}
	if err := c.ShouldBindQuery(&page); err != nil {
		respondError(c, bindingError(err))
		return page, false
	}
	return page, true
}
