package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const adminTokenHeader = "X-Admin-Token"

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// 管理APIの共有トークン認証。ヘッダのトークンを設定値と定数時間比較する。
func AdminToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := c.Request().Header.Get(adminTokenHeader)
			if got == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthorized"))
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthorized"))
			}

			return next(c)
		}
	}
}
