package service

import (
	"context"
	"strconv"
	"strings"

	"myevent-api/core/clock"
	coreDto "myevent-api/core/dto"
	"myevent-api/core/errors"
	"myevent-api/core/params"
	"myevent-api/core/validator"
	"myevent-api/modules/comment/dto"
	"myevent-api/modules/comment/entity"
	"myevent-api/modules/comment/mapper"
	"myevent-api/modules/comment/repository"
	eventEntity "myevent-api/modules/event/entity"

	"github.com/google/uuid"
)

const maxCommentLength = 500

// EventFinder looks up the event a comment belongs to.
type EventFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

type CommentService struct {
	repo   repository.CommentRepositoryInterface
	events EventFinder
	clock  clock.Clock
}

func NewCommentService(repo repository.CommentRepositoryInterface, events EventFinder, clk clock.Clock) *CommentService {
	if clk == nil {
		clk = clock.New()
	}
	return &CommentService{repo: repo, events: events, clock: clk}
}

func (s *CommentService) CreateComment(ctx context.Context, eventID, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, *errors.AppError) {
	message := strings.TrimSpace(req.Message)
	v := validator.New()
	v.Var(message, "notblank,trimmax="+strconv.Itoa(maxCommentLength), validator.Messages{
		"notblank": "El comentario no puede estar vacío",
		"trimmax":  "El comentario no puede exceder 500 caracteres",
	})
	if v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, v.Message(), nil)
	}

	if appErr := s.ensureEvent(ctx, eventID); appErr != nil {
		return nil, appErr
	}

	detail, err := s.repo.Create(ctx, &entity.Comment{
		EventID:   eventID,
		UserID:    userID,
		Message:   message,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "No se pudo crear el comentario", err)
	}
	resp := mapper.ToCommentResponse(*detail)
	return &resp, nil
}

func (s *CommentService) GetEventComments(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*coreDto.Pagination[dto.CommentResponse], *errors.AppError) {
	if appErr := s.ensureEvent(ctx, eventID); appErr != nil {
		return nil, appErr
	}

	page, err := s.repo.ListByEvent(ctx, eventID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Error al obtener los comentarios", err)
	}
	return coreDto.MapPagination(page, mapper.ToCommentResponse), nil
}

func (s *CommentService) Like(ctx context.Context, commentID uuid.UUID) (*dto.ReactionResponse, *errors.AppError) {
	return s.react(ctx, commentID, entity.ReactionLike)
}

func (s *CommentService) Dislike(ctx context.Context, commentID uuid.UUID) (*dto.ReactionResponse, *errors.AppError) {
	return s.react(ctx, commentID, entity.ReactionDislike)
}

func (s *CommentService) react(ctx context.Context, commentID uuid.UUID, reaction entity.Reaction) (*dto.ReactionResponse, *errors.AppError) {
	comment, err := s.repo.React(ctx, commentID, reaction)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "No se pudo registrar la reacción", err)
	}
	if comment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Comentario no encontrado", nil)
	}
	return mapper.ToReactionResponse(comment), nil
}

func (s *CommentService) ensureEvent(ctx context.Context, eventID uuid.UUID) *errors.AppError {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "Error al obtener el evento", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Evento no encontrado", nil)
	}
	return nil
}
