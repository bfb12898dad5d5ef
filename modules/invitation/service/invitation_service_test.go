package service

import (
	"context"
	"testing"
	"time"

	"myevent-api/core/clock"
	"myevent-api/core/errors"
	"myevent-api/modules/invitation/entity"
	notifEntity "myevent-api/modules/notification/entity"

	"github.com/google/uuid"
)

type fakeRepo struct {
	items map[uuid.UUID]*entity.InvitationDetail
}

func newFakeRepo(items ...entity.InvitationDetail) *fakeRepo {
	r := &fakeRepo{items: map[uuid.UUID]*entity.InvitationDetail{}}
	for i := range items {
		r.items[items[i].ID] = &items[i]
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, inv *entity.Invitation) error {
	inv.ID = uuid.New()
	r.items[inv.ID] = &entity.InvitationDetail{Invitation: *inv}
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.InvitationDetail, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeRepo) GetLatestByEventAndInvitee(_ context.Context, eventID, inviteeID uuid.UUID) (*entity.Invitation, error) {
	for _, d := range r.items {
		if d.EventID == eventID && d.InviteeID == inviteeID {
			inv := d.Invitation
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetPendingByOrganizerID(_ context.Context, organizerID uuid.UUID) ([]entity.InvitationDetail, error) {
	out := []entity.InvitationDetail{}
	for _, d := range r.items {
		if d.OrganizerID == organizerID && d.Status == entity.StatusPending {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByInviteeID(_ context.Context, inviteeID uuid.UUID) ([]entity.InvitationDetail, error) {
	out := []entity.InvitationDetail{}
	for _, d := range r.items {
		if d.InviteeID == inviteeID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.InvitationStatus, at time.Time) (bool, error) {
	d, ok := r.items[id]
	if !ok || d.Status != from {
		return false, nil
	}
	d.Status = to
	d.RespondedAt = &at
	return true, nil
}

func (r *fakeRepo) CountPendingByOrganizerID(ctx context.Context, organizerID uuid.UUID) (int, error) {
	items, _ := r.GetPendingByOrganizerID(ctx, organizerID)
	return len(items), nil
}

type sentNotification struct {
	userID uuid.UUID
	kind   notifEntity.NotificationType
}

type fakeNotifier struct {
	sent []sentNotification
}

func (n *fakeNotifier) Notify(_ context.Context, userID uuid.UUID, kind notifEntity.NotificationType, _, _ string, _ map[string]any) error {
	n.sent = append(n.sent, sentNotification{userID: userID, kind: kind})
	return nil
}

func pending(organizer, invitee uuid.UUID) entity.InvitationDetail {
	return entity.InvitationDetail{
		Invitation: entity.Invitation{
			ID:          uuid.New(),
			EventID:     uuid.New(),
			OrganizerID: organizer,
			InviteeID:   invitee,
			Status:      entity.StatusPending,
			Message:     entity.DefaultRequestMessage,
		},
		EventTitle: "Feria del libro",
	}
}

func TestDecide(t *testing.T) {
	organizer, invitee := uuid.New(), uuid.New()
	at := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		accept   bool
		caller   uuid.UUID
		status   entity.InvitationStatus
		wantCode errors.ErrorCode
		wantKind notifEntity.NotificationType
	}{
		{name: "organizer accepts", accept: true, caller: organizer, status: entity.StatusPending, wantKind: notifEntity.TypeInvitationAccepted},
		{name: "organizer declines", caller: organizer, status: entity.StatusPending, wantKind: notifEntity.TypeInvitationDeclined},
		{name: "other user", accept: true, caller: invitee, status: entity.StatusPending, wantCode: errors.ErrForbidden},
		{name: "already decided", accept: true, caller: organizer, status: entity.StatusDeclined, wantCode: errors.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := pending(organizer, invitee)
			inv.Status = tt.status
			repo := newFakeRepo(inv)
			notifier := &fakeNotifier{}
			svc := NewInvitationService(repo, notifier, clock.Fixed{At: at})

			decide := svc.DeclineInvitation
			if tt.accept {
				decide = svc.AcceptInvitation
			}
			resp, err := decide(context.Background(), inv.ID, tt.caller)

			if tt.wantCode != "" {
				if err == nil || err.Code != tt.wantCode {
					t.Fatalf("err = %v, want %s", err, tt.wantCode)
				}
				if len(notifier.sent) != 0 {
					t.Error("no notification expected on failure")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if resp.RespondedAt == nil || !resp.RespondedAt.Equal(at) {
				t.Errorf("responded_at = %v", resp.RespondedAt)
			}
			if len(notifier.sent) != 1 || notifier.sent[0].userID != invitee || notifier.sent[0].kind != tt.wantKind {
				t.Errorf("notifications = %+v", notifier.sent)
			}
		})
	}
}

func TestDecideMissingInvitation(t *testing.T) {
	svc := NewInvitationService(newFakeRepo(), nil, nil)
	_, err := svc.AcceptInvitation(context.Background(), uuid.New(), uuid.New())
	if err == nil || err.Code != errors.ErrNotFound {
		t.Fatalf("err = %v", err)
	}
}

func TestPendingListAndCount(t *testing.T) {
	organizer := uuid.New()
	a := pending(organizer, uuid.New())
	b := pending(organizer, uuid.New())
	b.Status = entity.StatusAccepted
	c := pending(uuid.New(), uuid.New())
	svc := NewInvitationService(newFakeRepo(a, b, c), nil, nil)

	list, err := svc.GetPendingInvitations(context.Background(), organizer)
	if err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 || list.Invitations[0].ID != a.ID {
		t.Errorf("list = %+v", list)
	}

	count, err := svc.CountPending(context.Background(), organizer)
	if err != nil || count != 1 {
		t.Errorf("count = %d err = %v", count, err)
	}
}
