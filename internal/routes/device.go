package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
)

func runDeviceRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	deviceRepository := repositories.NewDeviceRepository(dbConn, logger)
	deviceTypeRepository := repositories.NewDeviceTypeRepository(dbConn, logger)
	deviceService := services.NewDeviceService(deviceRepository, deviceTypeRepository, logger)
	deviceCtrl := controllers.NewDeviceController(deviceService, logger)

	api.GET("/devices", deviceCtrl.GetAll)
	api.GET("/devices/:id", deviceCtrl.GetByID)
	api.POST("/devices", deviceCtrl.Create)
	api.PUT("/devices/:id", deviceCtrl.Update)
	api.DELETE("/devices/:id", deviceCtrl.Delete)
}
