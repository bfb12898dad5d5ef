package service

import (
	"context"

	"myevent-api/core/clock"
	"myevent-api/core/errors"
	eventDto "myevent-api/modules/event/dto"
	eventEntity "myevent-api/modules/event/entity"
	eventMapper "myevent-api/modules/event/mapper"
	"myevent-api/modules/savedevent/dto"
	"myevent-api/modules/savedevent/repository"

	"github.com/google/uuid"
)

// EventReader is the slice of the event store saved events need.
type EventReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
	ListSavedBy(ctx context.Context, userID uuid.UUID, status eventEntity.EventStatus) ([]eventEntity.EventListItem, error)
}

type SavedEventService struct {
	repo   repository.SavedEventRepositoryInterface
	events EventReader
	clock  clock.Clock
}

func NewSavedEventService(repo repository.SavedEventRepositoryInterface, events EventReader, clk clock.Clock) *SavedEventService {
	if clk == nil {
		clk = clock.New()
	}
	return &SavedEventService{repo: repo, events: events, clock: clk}
}

func (s *SavedEventService) Save(ctx context.Context, userID uuid.UUID, req *dto.SaveEventRequest) (*dto.SavedEventResponse, *errors.AppError) {
	if req.EventID == uuid.Nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "El ID del evento es requerido", nil)
	}

	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Error al obtener el evento", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Evento no encontrado", nil)
	}

	now := s.clock.Now()
	if err := s.repo.Save(ctx, userID, req.EventID, now); err != nil {
		if errors.Is(err, repository.ErrAlreadySaved) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "El evento ya está guardado", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "No se pudo guardar el evento", err)
	}
	return &dto.SavedEventResponse{EventID: req.EventID, SavedAt: now}, nil
}

func (s *SavedEventService) Remove(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError {
	ok, err := s.repo.Remove(ctx, userID, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "No se pudo quitar el evento guardado", err)
	}
	if !ok {
		return errors.NewAppError(errors.ErrNotFound, "El evento no está guardado", nil)
	}
	return nil
}

// List returns every event the user saved, newest save first, in any status.
func (s *SavedEventService) List(ctx context.Context, userID uuid.UUID) ([]eventDto.EventListItemResponse, *errors.AppError) {
	items, err := s.events.ListSavedBy(ctx, userID, "")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudieron obtener los eventos guardados", err)
	}
	return eventMapper.ToEventListItemResponses(items), nil
}
