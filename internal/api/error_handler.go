package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler 統一把 handler 回傳的錯誤轉成 ErrorResponse
func NewHTTPErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		resp := ErrorResponse{Message: "Server Error"}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch {
			case he == echo.ErrNotFound:
				resp.Message = "Route not found"
			case code < http.StatusInternalServerError:
				if msg, ok := he.Message.(string); ok {
					resp.Message = msg
				} else {
					resp.Message = fmt.Sprint(he.Message)
				}
			}
		}

		if code >= http.StatusInternalServerError {
			c.Logger().Error(err)
			if !production {
				resp.Stack = err.Error()
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, resp)
		}
		if err != nil {
			c.Logger().Error(err)
		}
	}
}
