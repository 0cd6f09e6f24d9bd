package api

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"la-cave/internal/filter"

	"github.com/go-playground/validator/v10"
)

// 訂位 Email 沿用既有前端的規則，比 validator 內建的 email 寬鬆
var reservationEmail = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewValidator 錯誤訊息中的欄位名稱使用 JSON 名稱
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("resvemail", func(fl validator.FieldLevel) bool {
		return reservationEmail.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// ValidationFailed 把 validator 或 filter 的錯誤轉成 400 回應內容
func ValidationFailed(err error) ErrorResponse {
	return ErrorResponse{Message: "Validation failed", Errors: FieldErrors(err)}
}

func FieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]FieldError, 0, len(ve))
		for _, e := range ve {
			out = append(out, FieldError{Field: fieldPath(e), Message: prettyError(e)})
		}
		return out
	}
	var fe filter.Errors
	if errors.As(err, &fe) {
		out := make([]FieldError, 0, len(fe))
		for _, e := range fe {
			out = append(out, FieldError{Field: e.Field, Message: e.Message})
		}
		return out
	}
	return []FieldError{{Message: err.Error()}}
}

// fieldPath 去掉最外層的 struct 名稱，dive 時保留索引，例如 dietary[0]
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func prettyError(e validator.FieldError) string {
	name := e.Field()
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "email", "resvemail":
		return "Please include a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(e.Param(), " ", ", "))
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot be more than %s characters", name, e.Param())
		}
		return fmt.Sprintf("%s cannot be more than %s", name, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", name, e.Param())
	default:
		return e.Error()
	}
}
