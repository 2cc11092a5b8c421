package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "inventory-system/pkg/errors"
)

// ProblemDetails — тело ответа при 500, instance всегда путь запроса.
type ProblemDetails struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

// ErrorResponse переводит ошибку сервиса в HTTP-ответ:
// not-found отдаётся пустым телом или простой строкой, ошибки валидации — 400,
// всё остальное — 500 с конвертом ProblemDetails. title подставляется
// в конверт 500 и задаётся контроллером для каждой операции.
func ErrorResponse(ctx echo.Context, err error, title string, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return problemResponse(ctx, httpErr, title, logger)
		}

		logger.Warn("HTTP Error",
			zap.Int("code", httpErr.Code),
			zap.String("message", httpErr.Message),
			zap.Error(httpErr.Err),
		)
		if httpErr.Message == "" {
			return ctx.NoContent(httpErr.Code)
		}
		return ctx.String(httpErr.Code, httpErr.Message)
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return ctx.NoContent(http.StatusNotFound)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return ctx.String(http.StatusBadRequest, "Ошибка валидации: "+strings.Join(msgs, "; "))
	}

	return problemResponse(ctx, err, title, logger)
}

func problemResponse(ctx echo.Context, err error, title string, logger *zap.Logger) error {
	logger.Error("Unexpected Error",
		zap.String("title", title),
		zap.String("path", ctx.Request().URL.Path),
		zap.Error(err),
	)
	return ctx.JSON(http.StatusInternalServerError, ProblemDetails{
		Title:    title,
		Detail:   err.Error(),
		Instance: ctx.Request().URL.Path,
	})
}
