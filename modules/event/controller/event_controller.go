package controller

import (
	"context"
	"strings"
	"time"

	"myevent-api/core/constants"
	"myevent-api/core/controller"
	"myevent-api/core/errors"
	"myevent-api/core/middleware"
	"myevent-api/core/params"
	"myevent-api/core/storage"
	"myevent-api/modules/event/dto"
	"myevent-api/modules/event/entity"
	"myevent-api/modules/event/location"
	"myevent-api/modules/event/service"
	"myevent-api/modules/event/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	service  *service.EventService
	uploader storage.Uploader
	loc      *time.Location
	controller.BaseController
}

func NewEventController(service *service.EventService, uploader storage.Uploader, loc *time.Location) *EventController {
	if loc == nil {
		loc = time.UTC
	}
	return &EventController{
		service:        service,
		uploader:       uploader,
		loc:            loc,
		BaseController: controller.NewBaseController(),
	}
}

func (c *EventController) CreateEvent(ctx echo.Context) error {
	req := new(dto.CreateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}
	req.OrganizerID = middleware.GetUserID(ctx)

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := c.service.CreateEvent(reqCtx, req)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.CreatedResponse(ctx, event, "Evento creado exitosamente")
}

func (c *EventController) UpdateEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de evento inválido", nil)
	}
	req := new(dto.UpdateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := c.service.UpdateEvent(reqCtx, id, middleware.GetUserID(ctx), req)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, event, "Evento actualizado exitosamente")
}

// GetEvent returns an event with the viewer's role. Authentication is optional.
func (c *EventController) GetEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de evento inválido", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := c.service.GetEventWithRole(reqCtx, id, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, event, "Evento obtenido exitosamente")
}

func (c *EventController) GetEventBySlug(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := c.service.GetEventBySlug(reqCtx, ctx.Param("slug"), middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, event, "Evento obtenido exitosamente")
}

func (c *EventController) UpdateStatus(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de evento inválido", nil)
	}
	req := new(dto.UpdateStatusRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := c.service.SetEventStatus(reqCtx, id, req.Status)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, event, "Estado del evento actualizado correctamente")
}

func (c *EventController) ListPublic(ctx echo.Context) error {
	return c.list(ctx, entity.VisibilityPublic)
}

func (c *EventController) ListPrivate(ctx echo.Context) error {
	return c.list(ctx, entity.VisibilityPrivate)
}

func (c *EventController) list(ctx echo.Context, visibility entity.Visibility) error {
	filter, msg := c.parseFilter(ctx)
	if msg != "" {
		return c.BadRequest(errors.ErrInvalidInput, msg, nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	page, appErr := c.service.ListEvents(reqCtx, visibility, filter)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, page, "Eventos obtenidos exitosamente")
}

func (c *EventController) parseFilter(ctx echo.Context) (entity.EventFilter, string) {
	qp := params.NewQueryParams(ctx)
	filter := entity.EventFilter{
		Search:     qp.Search,
		City:       strings.TrimSpace(ctx.QueryParam("city")),
		District:   strings.TrimSpace(ctx.QueryParam("district")),
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}

	if raw := strings.TrimSpace(ctx.QueryParam("category_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, "category_id no es válido"
		}
		filter.CategoryID = &id
	}
	if raw := strings.TrimSpace(ctx.QueryParam("from")); raw != "" {
		from, err := validator.ParseDate(raw, c.loc)
		if err != nil {
			return filter, "La fecha 'from' no es válida"
		}
		filter.From = &from
	}
	if raw := strings.TrimSpace(ctx.QueryParam("to")); raw != "" {
		to, err := validator.ParseDate(raw, c.loc)
		if err != nil {
			return filter, "La fecha 'to' no es válida"
		}
		filter.To = &to
	}
	return filter, ""
}

func (c *EventController) RequestAttendance(ctx echo.Context) error {
	req := new(dto.AttendanceRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	res, appErr := c.service.RequestAttendance(reqCtx, req.EventID, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, map[string]bool{"pendiente": res.Pending}, res.Message)
}

func (c *EventController) CancelAttendance(ctx echo.Context) error {
	req := new(dto.AttendanceRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	msg, appErr := c.service.CancelAttendance(reqCtx, req.EventID, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, nil, msg)
}

func (c *EventController) MyAttendedEvents(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	events, appErr := c.service.MyAttendedEvents(reqCtx, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, events, "Eventos obtenidos exitosamente")
}

func (c *EventController) MyCreatedEvents(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	events, appErr := c.service.MyCreatedEvents(reqCtx, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, events, "Eventos obtenidos exitosamente")
}

func (c *EventController) Summary(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	summary, appErr := c.service.Summary(reqCtx, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, summary, "Resumen obtenido exitosamente")
}

func (c *EventController) UploadImage(ctx echo.Context) error {
	return c.upload(ctx, "imagen", constants.FolderEvents, constants.MaxImageSize, storage.ImageTypes, "Imagen subida exitosamente")
}

func (c *EventController) UploadResource(ctx echo.Context) error {
	return c.upload(ctx, "archivo", constants.FolderResources, constants.MaxPDFSize, storage.PDFTypes, "Recurso subido exitosamente")
}

func (c *EventController) upload(ctx echo.Context, field, folder string, maxSize int64, allowed []string, okMsg string) error {
	header, err := ctx.FormFile(field)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "No se proporcionó ningún archivo.", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.UploadTimeout)
	defer cancel()

	url, err := storage.Store(reqCtx, c.uploader, header, folder, maxSize, allowed)
	if err != nil {
		var vErr *storage.ValidationError
		if errors.As(err, &vErr) {
			return c.BadRequest(errors.ErrInvalidInput, vErr.Message, nil)
		}
		return c.HandleAppError(errors.NewAppError(errors.ErrUploadFailed, "No se pudo subir el archivo", err))
	}
	return c.CreatedResponse(ctx, dto.UploadResponse{URL: url}, okMsg)
}

// Districts lists the known districts per city.
func (c *EventController) Districts(ctx echo.Context) error {
	return c.SuccessResponse(ctx, location.Districts(), "Distritos obtenidos exitosamente")
}
