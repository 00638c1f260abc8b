package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"seed-inventory/app/server/gen/oapi"
)

const messageInvalidBody = "Invalid request body"

// DataResponse data 为单条记录、记录列表或 null
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func (a *App) er(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return c.JSON(statusCode, &oapi.Message{
		Message: message,
	})
}

// 更新与删除成功时的状态码
func (a *App) mutationStatus() int {
	if a.legacyStatus {
		return http.StatusCreated
	}
	return http.StatusOK
}
