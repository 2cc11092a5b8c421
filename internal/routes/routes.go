package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")

	runDeviceRouter(api, dbConn, logger)
	runEmployeeRouter(api, dbConn, logger)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
