package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type stubDeviceService struct {
	getDevices   func(ctx context.Context) ([]dto.ShortDeviceDTO, error)
	findDevice   func(ctx context.Context, id uint64) (*dto.DeviceDTO, error)
	createDevice func(ctx context.Context, payload dto.CreateDeviceDTO) (*entities.Device, error)
	updateDevice func(ctx context.Context, id uint64, payload dto.CreateDeviceDTO) (*entities.Device, error)
	deleteDevice func(ctx context.Context, id uint64) error
}

func (s *stubDeviceService) GetDevices(ctx context.Context) ([]dto.ShortDeviceDTO, error) {
	return s.getDevices(ctx)
}

func (s *stubDeviceService) FindDevice(ctx context.Context, id uint64) (*dto.DeviceDTO, error) {
	return s.findDevice(ctx, id)
}

func (s *stubDeviceService) CreateDevice(ctx context.Context, payload dto.CreateDeviceDTO) (*entities.Device, error) {
	return s.createDevice(ctx, payload)
}

func (s *stubDeviceService) UpdateDevice(ctx context.Context, id uint64, payload dto.CreateDeviceDTO) (*entities.Device, error) {
	return s.updateDevice(ctx, id, payload)
}

func (s *stubDeviceService) DeleteDevice(ctx context.Context, id uint64) error {
	return s.deleteDevice(ctx, id)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	return e
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDeviceGetAll_OK(t *testing.T) {
	svc := &stubDeviceService{
		getDevices: func(ctx context.Context) ([]dto.ShortDeviceDTO, error) {
			return []dto.ShortDeviceDTO{{ID: 1, Name: "ThinkPad"}, {ID: 2, Name: "Dell U2723QE"}}, nil
		},
	}
	ctrl := NewDeviceController(svc, zap.NewNop())

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/devices", "")
	require.NoError(t, ctrl.GetAll(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"ThinkPad"},{"id":2,"name":"Dell U2723QE"}]`, rec.Body.String())
}

func TestDeviceGetAll_ServerError(t *testing.T) {
	svc := &stubDeviceService{
		getDevices: func(ctx context.Context) ([]dto.ShortDeviceDTO, error) {
			return nil, errors.New("connection refused")
		},
	}
	ctrl := NewDeviceController(svc, zap.NewNop())

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/devices", "")
	require.NoError(t, ctrl.GetAll(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var problem utils.ProblemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Server error", problem.Title)
	assert.Equal(t, "connection refused", problem.Detail)
	assert.Equal(t, "/api/devices", problem.Instance)
}

func TestDeviceGetByID_NotFound(t *testing.T) {
	svc := &stubDeviceService{
		findDevice: func(ctx context.Context, id uint64) (*dto.DeviceDTO, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	ctrl := NewDeviceController(svc, zap.NewNop())

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/devices/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")
	require.NoError(t, ctrl.GetByID(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String(), "404 на карточке отдаётся пустым телом")
}

func TestDeviceGetByID_OK(t *testing.T) {
	svc := &stubDeviceService{
		findDevice: func(ctx context.Context, id uint64) (*dto.DeviceDTO, error) {
			return &dto.DeviceDTO{
				Name:                 "ThinkPad",
				TypeName:             "Laptop",
				IsEnabled:            true,
				AdditionalProperties: map[string]interface{}{"ram_gb": float64(32)},
				CurrentEmployee:      &dto.EmployeeDTO{ID: 12, FullName: "Ann Lee"},
			}, nil
		},
	}
	ctrl := NewDeviceController(svc, zap.NewNop())

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/devices/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, ctrl.GetByID(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"name": "ThinkPad",
		"typeName": "Laptop",
		"isEnabled": true,
		"additionalProperties": {"ram_gb": 32},
		"currentEmployee": {"id": 12, "fullName": "Ann Lee"}
	}`, rec.Body.String())
}

func TestDeviceCreate_Created(t *testing.T) {
	svc := &stubDeviceService{
		createDevice: func(ctx context.Context, payload dto.CreateDeviceDTO) (*entities.Device, error) {
			return &entities.Device{
				ID:                   10,
				Name:                 payload.Name,
				IsEnabled:            *payload.IsEnabled,
				AdditionalProperties: payload.AdditionalProperties,
				DeviceTypeID:         7,
			}, nil
		},
	}
	ctrl := NewDeviceController(svc, zap.NewNop())

	body := `{"name":"ThinkPad","type":"Laptop","isEnabled":true,"additionalProperties":"{\"ram_gb\":32}"}`
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/devices", body)
	require.NoError(t, ctrl.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/devices/10", rec.Header().Get(echo.HeaderLocation))

	// Тело ответа — полная сохранённая строка, включая id и внешний ключ
	var created entities.Device
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, uint64(10), created.ID)
	assert.Equal(t, uint64(7), created.DeviceTypeID)
	assert.Equal(t, `{"ram_gb":32}`, created.AdditionalProperties)
}

func TestDeviceCreate_MissingFields(t *testing.T) {
	ctrl := NewDeviceController(&stubDeviceService{}, zap.NewNop())

	body := `{"type":"Laptop","isEnabled":true,"additionalProperties":"{}"}`
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/devices", body)
	require.NoError(t, ctrl.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code, "отсутствие обязательного поля отбивается до сервиса")
}

func TestDeviceCreate_FalseIsEnabledPassesValidation(t *testing.T) {
	svc := &stubDeviceService{
		createDevice: func(ctx context.Context, payload dto.CreateDeviceDTO) (*entities.Device, error) {
			return &entities.Device{ID: 1, Name: payload.Name, IsEnabled: *payload.IsEnabled}, nil
		},
	}
	ctrl := NewDeviceController(svc, zap.NewNop())

	body := `{"name":"Printer","type":"Printer","isEnabled":false,"additionalProperties":"{}"}`
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/devices", body)
	require.NoError(t, ctrl.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code, "isEnabled=false — это присутствующее значение, а не пропуск поля")
}

func TestDeviceCreate_UnknownType(t *testing.T) {
	svc := &stubDeviceService{
		createDevice: func(ctx context.Context, payload dto.CreateDeviceDTO) (*entities.Device, error) {
			return nil, apperrors.NewHttpError(http.StatusNotFound, "DeviceType not found.", apperrors.ErrNotFound, nil)
		},
	}
	ctrl := NewDeviceController(svc, zap.NewNop())

	body := `{"name":"X","type":"NoSuchType","isEnabled":true,"additionalProperties":"{}"}`
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/devices", body)
	require.NoError(t, ctrl.Create(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DeviceType not found.", rec.Body.String())
}

func TestDeviceUpdate_OK(t *testing.T) {
	svc := &stubDeviceService{
		updateDevice: func(ctx context.Context, id uint64, payload dto.CreateDeviceDTO) (*entities.Device, error) {
			return &entities.Device{ID: id, Name: payload.Name, IsEnabled: *payload.IsEnabled, DeviceTypeID: 7}, nil
		},
	}
	ctrl := NewDeviceController(svc, zap.NewNop())

	body := `{"name":"Renamed","type":"Laptop","isEnabled":true,"additionalProperties":"{}"}`
	c, rec := newTestContext(newTestEcho(), http.MethodPut, "/api/devices/5", body)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, ctrl.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code, "обновление возвращает 200, а не 201")
}

func TestDeviceDelete_NoContentThenNotFound(t *testing.T) {
	deleted := map[uint64]bool{}
	svc := &stubDeviceService{
		deleteDevice: func(ctx context.Context, id uint64) error {
			if deleted[id] {
				return apperrors.NewHttpError(http.StatusNotFound, "Device with ID 5 not found.", apperrors.ErrNotFound, nil)
			}
			deleted[id] = true
			return nil
		},
	}
	ctrl := NewDeviceController(svc, zap.NewNop())
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodDelete, "/api/devices/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, ctrl.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	c, rec = newTestContext(e, http.MethodDelete, "/api/devices/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, ctrl.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code, "повторное удаление того же id — 404")
}

func TestDeviceGetByID_BadID(t *testing.T) {
	ctrl := NewDeviceController(&stubDeviceService{}, zap.NewNop())

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/devices/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, ctrl.GetByID(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
