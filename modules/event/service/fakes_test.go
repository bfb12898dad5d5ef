package service

import (
	"context"
	"sync"
	"time"

	coreEntity "myevent-api/core/entity"
	"myevent-api/modules/event/entity"
	"myevent-api/modules/event/repository"
	invEntity "myevent-api/modules/invitation/entity"
	notifEntity "myevent-api/modules/notification/entity"

	"github.com/google/uuid"
)

// store backs the event, participation and invitation fakes with one set of
// maps so tests can inspect every side effect.
type store struct {
	mu             sync.Mutex
	events         map[uuid.UUID]*entity.Event
	participations []entity.Participation
	invitations    []invEntity.Invitation
	expiredBefore  *time.Time
}

func newStore() *store {
	return &store{events: map[uuid.UUID]*entity.Event{}}
}

func (s *store) addEvent(visibility entity.Visibility, organizer uuid.UUID) *entity.Event {
	e := &entity.Event{
		ID:         uuid.New(),
		Title:      "Concierto en el parque",
		Visibility: visibility,
		Status:     entity.EventStatusActive,
		Slug:       "concierto-en-el-parque-abc123",
	}
	s.events[e.ID] = e
	if organizer != uuid.Nil {
		s.participations = append(s.participations, entity.Participation{
			ID: uuid.New(), EventID: e.ID, UserID: organizer, Role: entity.RoleOrganizer,
		})
	}
	return e
}

func (s *store) participationsFor(eventID uuid.UUID) []entity.Participation {
	var out []entity.Participation
	for _, p := range s.participations {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out
}

type fakeEvents struct{ *store }

func (f fakeEvents) CreateWithOrganizer(_ context.Context, e *entity.Event, organizerID uuid.UUID) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	created := *e
	created.ID = uuid.New()
	f.events[created.ID] = &created
	f.participations = append(f.participations, entity.Participation{
		ID: uuid.New(), EventID: created.ID, UserID: organizerID, Role: entity.RoleOrganizer, RegisteredAt: e.CreatedAt,
	})
	return &created, nil
}

func (f fakeEvents) GetByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f fakeEvents) GetListItemByID(ctx context.Context, id uuid.UUID) (*entity.EventListItem, error) {
	e, _ := f.GetByID(ctx, id)
	if e == nil {
		return nil, nil
	}
	return f.listItem(e), nil
}

func (f fakeEvents) GetListItemBySlug(_ context.Context, slug string) (*entity.EventListItem, error) {
	for _, e := range f.events {
		if e.Slug == slug {
			return f.listItem(e), nil
		}
	}
	return nil, nil
}

func (f fakeEvents) listItem(e *entity.Event) *entity.EventListItem {
	item := &entity.EventListItem{Event: *e}
	for _, p := range f.participationsFor(e.ID) {
		switch p.Role {
		case entity.RoleOrganizer:
			id := p.UserID
			item.OrganizerID = &id
		case entity.RoleAttendee:
			item.AttendeeCount++
		}
	}
	return item
}

func (f fakeEvents) Update(_ context.Context, e *entity.Event) error {
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f fakeEvents) UpdateStatus(_ context.Context, id uuid.UUID, status entity.EventStatus) (bool, error) {
	e, ok := f.events[id]
	if !ok {
		return false, nil
	}
	e.Status = status
	return true, nil
}

func (f fakeEvents) ExpireBefore(_ context.Context, date time.Time) (int64, error) {
	f.store.expiredBefore = &date
	var n int64
	for _, e := range f.events {
		if e.Status == entity.EventStatusActive && e.Date.Before(date) {
			e.Status = entity.EventStatusExpired
			n++
		}
	}
	return n, nil
}

func (f fakeEvents) List(_ context.Context, filter entity.EventFilter) (*coreEntity.Pagination[entity.EventListItem], error) {
	items := []entity.EventListItem{}
	for _, e := range f.events {
		if e.Visibility == filter.Visibility && e.Status == filter.Status {
			items = append(items, *f.listItem(e))
		}
	}
	return &coreEntity.Pagination[entity.EventListItem]{
		Items: items, TotalItems: len(items), PageNumber: filter.PageNumber, PageSize: filter.PageSize,
	}, nil
}

func (f fakeEvents) ListByParticipant(_ context.Context, userID uuid.UUID, roles []entity.ParticipationRole, status entity.EventStatus) ([]entity.EventListItem, error) {
	items := []entity.EventListItem{}
	for _, p := range f.participations {
		if p.UserID != userID {
			continue
		}
		for _, r := range roles {
			e := f.events[p.EventID]
			if p.Role == r && (status == "" || e.Status == status) {
				items = append(items, *f.listItem(e))
			}
		}
	}
	return items, nil
}

func (f fakeEvents) ListSavedBy(context.Context, uuid.UUID, entity.EventStatus) ([]entity.EventListItem, error) {
	return []entity.EventListItem{}, nil
}

type fakeParticipations struct{ *store }

func (f fakeParticipations) Create(_ context.Context, p *entity.Participation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.participations {
		if existing.EventID == p.EventID && existing.UserID == p.UserID {
			return repository.ErrDuplicate
		}
	}
	p.ID = uuid.New()
	f.participations = append(f.participations, *p)
	return nil
}

func (f fakeParticipations) GetByEventAndUser(_ context.Context, eventID, userID uuid.UUID) ([]entity.Participation, error) {
	out := []entity.Participation{}
	for _, p := range f.participations {
		if p.EventID == eventID && p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeParticipations) GetOrganizer(_ context.Context, eventID uuid.UUID) (*entity.Participation, error) {
	for _, p := range f.participations {
		if p.EventID == eventID && p.Role == entity.RoleOrganizer {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f fakeParticipations) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range f.participations {
		if p.ID == id {
			f.participations = append(f.participations[:i], f.participations[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeInvitations struct{ *store }

func (f fakeInvitations) Create(_ context.Context, inv *invEntity.Invitation) error {
	inv.ID = uuid.New()
	f.invitations = append(f.invitations, *inv)
	return nil
}

func (f fakeInvitations) GetLatestByEventAndInvitee(_ context.Context, eventID, inviteeID uuid.UUID) (*invEntity.Invitation, error) {
	for i := len(f.invitations) - 1; i >= 0; i-- {
		inv := f.invitations[i]
		if inv.EventID == eventID && inv.InviteeID == inviteeID {
			return &inv, nil
		}
	}
	return nil, nil
}

type notice struct {
	userID uuid.UUID
	kind   notifEntity.NotificationType
}

type fakeNotifier struct {
	sent []notice
}

func (n *fakeNotifier) Notify(_ context.Context, userID uuid.UUID, kind notifEntity.NotificationType, _, _ string, _ map[string]any) error {
	n.sent = append(n.sent, notice{userID: userID, kind: kind})
	return nil
}
