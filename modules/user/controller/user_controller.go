package controller

import (
	"context"
	"net/http"

	"myevent-api/core/constants"
	"myevent-api/core/controller"
	"myevent-api/core/errors"
	"myevent-api/core/middleware"
	"myevent-api/modules/user/dto"
	"myevent-api/modules/user/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	service      *service.UserService
	secureCookie bool
	controller.BaseController
}

func NewUserController(service *service.UserService, secureCookie bool) *UserController {
	return &UserController{
		service:        service,
		secureCookie:   secureCookie,
		BaseController: controller.NewBaseController(),
	}
}

func (c *UserController) Register(ctx echo.Context) error {
	req := new(dto.RegisterRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	user, appErr := c.service.Register(reqCtx, req)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.CreatedResponse(ctx, user, "Usuario registrado exitosamente")
}

func (c *UserController) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	session, appErr := c.service.Login(reqCtx, req)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	c.setSessionCookie(ctx, session)
	return c.SuccessResponse(ctx, session, "Inicio de sesión exitoso")
}

func (c *UserController) Logout(ctx echo.Context) error {
	token, _ := ctx.Get(constants.ContextRawToken).(string)

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := c.service.Logout(reqCtx, token); appErr != nil {
		return c.HandleAppError(appErr)
	}
	c.clearSessionCookie(ctx)
	return c.SuccessResponse(ctx, nil, "Sesión cerrada exitosamente")
}

// CheckStatus runs behind optional auth so an anonymous caller gets a 401
// instead of being rejected by the middleware.
func (c *UserController) CheckStatus(ctx echo.Context) error {
	userID := middleware.GetUserID(ctx)
	if userID == uuid.Nil {
		return c.Unauthorized(errors.ErrUnauthorized, "No autenticado")
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	status, appErr := c.service.CheckStatus(reqCtx, userID)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, status, "Usuario activo")
}

func (c *UserController) GetProfile(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	user, appErr := c.service.GetProfile(reqCtx, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, user, "Perfil obtenido exitosamente")
}

func (c *UserController) GetPublicUser(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de usuario inválido", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	user, appErr := c.service.GetPublicUser(reqCtx, id)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, user, "Usuario obtenido exitosamente")
}

func (c *UserController) UpdateProfile(ctx echo.Context) error {
	req := new(dto.UpdateProfileRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	session, appErr := c.service.UpdateProfile(reqCtx, middleware.GetUserID(ctx), req)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	c.setSessionCookie(ctx, session)
	return c.SuccessResponse(ctx, session, "Perfil actualizado exitosamente")
}

func (c *UserController) UploadPhoto(ctx echo.Context) error {
	header, err := ctx.FormFile("imagen")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "No se recibió ninguna imagen", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.UploadTimeout)
	defer cancel()

	session, appErr := c.service.UploadPhoto(reqCtx, middleware.GetUserID(ctx), header)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	c.setSessionCookie(ctx, session)
	return c.SuccessResponse(ctx, dto.PhotoResponse{ImageURL: session.User.ImageURL}, "Foto de perfil actualizada exitosamente")
}

func (c *UserController) DeletePhoto(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	session, appErr := c.service.DeletePhoto(reqCtx, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	c.setSessionCookie(ctx, session)
	return c.SuccessResponse(ctx, nil, "Foto eliminada correctamente")
}

func (c *UserController) DeleteAccount(ctx echo.Context) error {
	token, _ := ctx.Get(constants.ContextRawToken).(string)

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := c.service.DeleteAccount(reqCtx, middleware.GetUserID(ctx), token); appErr != nil {
		return c.HandleAppError(appErr)
	}
	c.clearSessionCookie(ctx)
	return c.SuccessResponse(ctx, nil, "Cuenta eliminada correctamente")
}

func (c *UserController) setSessionCookie(ctx echo.Context, session *dto.SessionResponse) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(session.ExpiresIn),
		HttpOnly: true,
		Secure:   c.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *UserController) clearSessionCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
