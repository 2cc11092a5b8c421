package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
)

func runEmployeeRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	employeeRepository := repositories.NewEmployeeRepository(dbConn, logger)
	employeeService := services.NewEmployeeService(employeeRepository, logger)
	employeeCtrl := controllers.NewEmployeeController(employeeService, logger)

	api.GET("/employees", employeeCtrl.GetAll)
	api.GET("/employees/:id", employeeCtrl.GetByID)
}
