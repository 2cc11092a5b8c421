package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type DeviceController struct {
	service services.DeviceServiceInterface
	logger  *zap.Logger
}

func NewDeviceController(service services.DeviceServiceInterface, logger *zap.Logger) *DeviceController {
	return &DeviceController{service: service, logger: logger}
}

func (c *DeviceController) GetAll(ctx echo.Context) error {
	result, err := c.service.GetDevices(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, "Server error", c.logger)
	}
	return ctx.JSON(http.StatusOK, result)
}

func (c *DeviceController) GetByID(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("GetByID: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID", err, nil), "Server error", c.logger)
	}

	result, err := c.service.FindDevice(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, "Server error", c.logger)
	}
	return ctx.JSON(http.StatusOK, result)
}

func (c *DeviceController) Create(ctx echo.Context) error {
	var d dto.CreateDeviceDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), "Cannot create new device", c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, "Cannot create new device", c.logger)
	}

	result, err := c.service.CreateDevice(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, "Cannot create new device", c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/devices/%d", result.ID))
	return ctx.JSON(http.StatusCreated, result)
}

func (c *DeviceController) Update(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("Update: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID", err, nil), "Cannot update device", c.logger)
	}

	var d dto.CreateDeviceDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), "Cannot update device", c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, "Cannot update device", c.logger)
	}

	result, err := c.service.UpdateDevice(ctx.Request().Context(), id, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, "Cannot update device", c.logger)
	}
	return ctx.JSON(http.StatusOK, result)
}

func (c *DeviceController) Delete(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("Delete: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID", err, nil), "Cannot delete the device", c.logger)
	}

	if err := c.service.DeleteDevice(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, "Cannot delete the device", c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
