package service

import (
	"context"
	"strings"

	"myevent-api/core/cache"
	"myevent-api/core/constants"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/core/utils"
	"myevent-api/core/validator"
	"myevent-api/core/worker"
	"myevent-api/modules/verification/dto"
)

type VerificationService struct {
	cache    cache.Cache
	enqueuer worker.Enqueuer
}

func NewVerificationService(c cache.Cache, enqueuer worker.Enqueuer) *VerificationService {
	return &VerificationService{cache: c, enqueuer: enqueuer}
}

// SendCode stores a fresh code for the email, replacing any earlier one, and
// queues the email that delivers it.
func (s *VerificationService) SendCode(ctx context.Context, req *dto.SendCodeRequest) (*dto.SendCodeResponse, *errors.AppError) {
	email := normalize(req.Email)
	if !validator.IsEmail(email) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "El correo no es válido", nil)
	}

	code, err := utils.GenerateNumericCode(constants.VerificationCodeLn)
	if err != nil {
		logger.Error("VerificationService:SendCode:GenerateNumericCode:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "No se pudo generar el código", err)
	}

	if err := s.cache.SetVerificationCode(ctx, email, code, constants.VerificationCodeTTL); err != nil {
		logger.Error("VerificationService:SendCode:SetVerificationCode:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "No se pudo guardar el código", err)
	}

	task, err := worker.NewVerificationEmailTask(email, code)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "No se pudo enviar el código", err)
	}
	if err := s.enqueuer.Enqueue(ctx, task); err != nil {
		_ = s.cache.DeleteVerificationCode(ctx, email)
		return nil, errors.NewAppError(errors.ErrInternalServer, "No se pudo enviar el código", err)
	}

	return &dto.SendCodeResponse{ExpiresInMinutes: int(constants.VerificationCodeTTL.Minutes())}, nil
}

// VerifyCode consumes the stored code when it matches.
func (s *VerificationService) VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) *errors.AppError {
	email := normalize(req.Email)
	code := strings.TrimSpace(req.Code)
	if email == "" || code == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "Correo y código son requeridos", nil)
	}

	stored, err := s.cache.GetVerificationCode(ctx, email)
	if err != nil {
		logger.Error("VerificationService:VerifyCode:GetVerificationCode:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "No se pudo verificar el código", err)
	}
	if stored == "" || stored != code {
		return errors.NewAppError(errors.ErrInvalidInput, "Código inválido o expirado", nil)
	}

	if err := s.cache.DeleteVerificationCode(ctx, email); err != nil {
		logger.Warn("VerificationService:VerifyCode:DeleteVerificationCode:Error:", "error", err)
	}
	return nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
