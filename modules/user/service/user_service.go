package service

import (
	"context"
	"mime/multipart"
	"strings"

	"myevent-api/core/cache"
	"myevent-api/core/clock"
	"myevent-api/core/constants"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/core/storage"
	"myevent-api/core/utils"
	"myevent-api/modules/user/dto"
	"myevent-api/modules/user/entity"
	"myevent-api/modules/user/mapper"
	"myevent-api/modules/user/repository"
	"myevent-api/modules/user/validator"

	"github.com/google/uuid"
)

type UserService struct {
	repo     repository.UserRepositoryInterface
	tokens   *utils.TokenManager
	cache    cache.Cache
	uploader storage.Uploader
	clock    clock.Clock
}

func NewUserService(repo repository.UserRepositoryInterface, tokens *utils.TokenManager, c cache.Cache, uploader storage.Uploader, clk clock.Clock) *UserService {
	if clk == nil {
		clk = clock.New()
	}
	return &UserService{
		repo:     repo,
		tokens:   tokens,
		cache:    c,
		uploader: uploader,
		clock:    clk,
	}
}

func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError) {
	if v := validator.ValidateRegisterRequest(req); v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, v.Message(), nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("UserService:Register:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "No se pudo registrar el usuario", err)
	}

	now := s.clock.Now()
	user, err := s.repo.CreateUser(ctx, &entity.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Nickname:     utils.StringPtr(strings.TrimSpace(req.Nickname)),
		Role:         constants.RoleUser,
		Active:       true,
		RegisteredAt: now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "El correo ya está registrado", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "No se pudo registrar el usuario", err)
	}

	resp := mapper.ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, *errors.AppError) {
	if v := validator.ValidateLoginRequest(req); v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, v.Message(), nil)
	}

	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Error interno del servidor", err)
	}
	if user == nil || !utils.ComparePassword(user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrInvalidCredentials, "Correo o contraseña incorrectos", nil)
	}
	if !user.Active {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Usuario inactivo", nil)
	}

	return s.issueSession(user)
}

// Logout revokes the token for the rest of its lifetime.
func (s *UserService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := s.tokens.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidTokenFormat, "Token inválido", err)
	}
	return s.revoke(ctx, token, claims)
}

func (s *UserService) revoke(ctx context.Context, token string, claims *utils.TokenClaims) *errors.AppError {
	ttl := claims.RemainingTTL(s.clock.Now())
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("UserService:Revoke:AddToTokenBlacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "No se pudo cerrar la sesión", err)
	}
	return nil
}

// CheckStatus reports whether the session's user still exists and is active.
func (s *UserService) CheckStatus(ctx context.Context, userID uuid.UUID) (*dto.StatusResponse, *errors.AppError) {
	user, appErr := s.mustGet(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}
	if !user.Active {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Usuario inactivo", nil)
	}
	return &dto.StatusResponse{Active: user.Active, UserID: user.ID, Role: user.Role}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, appErr := s.mustGet(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}
	resp := mapper.ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) GetPublicUser(ctx context.Context, userID uuid.UUID) (*dto.PublicUserResponse, *errors.AppError) {
	user, appErr := s.mustGet(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}
	if !user.Active {
		return nil, errors.NewAppError(errors.ErrNotFound, "Usuario no encontrado", nil)
	}
	return mapper.ToPublicUserResponse(user), nil
}

// UpdateProfile changes name and nickname and reissues the token, which
// carries the nickname.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.SessionResponse, *errors.AppError) {
	if v := validator.ValidateUpdateProfileRequest(req); v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, v.Message(), nil)
	}

	user, appErr := s.mustGet(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Nickname != nil {
		user.Nickname = utils.StringPtr(strings.TrimSpace(*req.Nickname))
	}
	user.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Usuario no encontrado, no se pudo actualizar", err)
	}
	return s.issueSession(user)
}

// UploadPhoto stores a new profile photo and removes the previous one.
func (s *UserService) UploadPhoto(ctx context.Context, userID uuid.UUID, header *multipart.FileHeader) (*dto.SessionResponse, *errors.AppError) {
	user, appErr := s.mustGet(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	url, err := storage.Store(ctx, s.uploader, header, constants.FolderProfilePhoto, constants.MaxImageSize, storage.ImageTypes)
	if err != nil {
		var vErr *storage.ValidationError
		if errors.As(err, &vErr) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, vErr.Message, nil)
		}
		return nil, errors.NewAppError(errors.ErrUploadFailed, "Error al subir la imagen.", err)
	}

	previous := user.ImageURL
	user.ImageURL = &url
	user.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateImage(ctx, user.ID, user.ImageURL, user.UpdatedAt); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Usuario no encontrado, la foto no se pudo guardar.", err)
	}
	s.deleteObject(ctx, previous)

	return s.issueSession(user)
}

func (s *UserService) DeletePhoto(ctx context.Context, userID uuid.UUID) (*dto.SessionResponse, *errors.AppError) {
	user, appErr := s.mustGet(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	previous := user.ImageURL
	user.ImageURL = nil
	user.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateImage(ctx, user.ID, nil, user.UpdatedAt); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Usuario no encontrado, la foto no se pudo eliminar.", err)
	}
	s.deleteObject(ctx, previous)

	return s.issueSession(user)
}

// DeleteAccount deactivates the user and revokes the current token.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID, token string) *errors.AppError {
	user, appErr := s.mustGet(ctx, userID)
	if appErr != nil {
		return appErr
	}

	ok, err := s.repo.DeactivateUser(ctx, userID, s.clock.Now())
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "No se pudo eliminar el usuario o no existe", err)
	}
	if !ok {
		return errors.NewAppError(errors.ErrNotFound, "No se pudo eliminar el usuario o no existe", nil)
	}
	s.deleteObject(ctx, user.ImageURL)

	if claims, err := s.tokens.ValidateAndParseToken(token); err == nil {
		return s.revoke(ctx, token, claims)
	}
	return nil
}

func (s *UserService) mustGet(ctx context.Context, userID uuid.UUID) (*entity.User, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Error al obtener el usuario", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Usuario no encontrado", nil)
	}
	return user, nil
}

func (s *UserService) issueSession(user *entity.User) (*dto.SessionResponse, *errors.AppError) {
	token, err := s.tokens.GenerateToken(user.ID, user.Nickname, user.Role, user.ImageURL)
	if err != nil {
		logger.Error("UserService:IssueSession:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "No se pudo generar el token", err)
	}
	return &dto.SessionResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		User:      mapper.ToUserResponse(user),
	}, nil
}

func (s *UserService) deleteObject(ctx context.Context, url *string) {
	if url == nil || s.uploader == nil {
		return
	}
	if err := s.uploader.Delete(ctx, *url); err != nil {
		logger.Warn("UserService:DeleteObject:Error:", "url", *url, "error", err)
	}
}
