package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"myevent-api/core/clock"
	coreEntity "myevent-api/core/entity"
	"myevent-api/core/errors"
	"myevent-api/core/params"
	"myevent-api/modules/comment/dto"
	"myevent-api/modules/comment/entity"
	eventEntity "myevent-api/modules/event/entity"

	"github.com/google/uuid"
)

type fakeRepo struct {
	comments []*entity.Comment
}

func (r *fakeRepo) Create(_ context.Context, c *entity.Comment) (*entity.CommentDetail, error) {
	cp := *c
	cp.ID = uuid.New()
	r.comments = append(r.comments, &cp)
	return &entity.CommentDetail{Comment: cp, AuthorName: "Ana Torres"}, nil
}

func (r *fakeRepo) ListByEvent(_ context.Context, eventID uuid.UUID, q params.QueryParams) (*coreEntity.Pagination[entity.CommentDetail], error) {
	all := []entity.CommentDetail{}
	for _, c := range r.comments {
		if c.EventID == eventID {
			all = append(all, entity.CommentDetail{Comment: *c})
		}
	}
	end := q.Offset() + q.PageSize
	if end > len(all) {
		end = len(all)
	}
	start := q.Offset()
	if start > end {
		start = end
	}
	return &coreEntity.Pagination[entity.CommentDetail]{
		Items:      all[start:end],
		TotalItems: len(all),
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
	}, nil
}

func (r *fakeRepo) React(_ context.Context, id uuid.UUID, reaction entity.Reaction) (*entity.Comment, error) {
	for _, c := range r.comments {
		if c.ID != id {
			continue
		}
		if reaction == entity.ReactionLike {
			c.Likes++
		} else {
			c.Dislikes++
		}
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

type fakeEvents map[uuid.UUID]*eventEntity.Event

func (f fakeEvents) GetByID(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	return f[id], nil
}

func setup() (*CommentService, uuid.UUID) {
	eventID := uuid.New()
	events := fakeEvents{eventID: {ID: eventID}}
	now := time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC)
	return NewCommentService(&fakeRepo{}, events, clock.Fixed{At: now}), eventID
}

func TestCreateComment(t *testing.T) {
	svc, eventID := setup()
	user := uuid.New()

	got, appErr := svc.CreateComment(context.Background(), eventID, user, &dto.CreateCommentRequest{Message: "  ¡Nos vemos ahí!  "})
	if appErr != nil {
		t.Fatal(appErr)
	}
	if got.Message != "¡Nos vemos ahí!" || got.Author.ID != user || got.Author.FullName != "Ana Torres" {
		t.Errorf("comment = %+v", got)
	}

	tests := []struct {
		name    string
		eventID uuid.UUID
		message string
		code    errors.ErrorCode
	}{
		{"empty", eventID, "   ", errors.ErrInvalidInput},
		{"too long", eventID, strings.Repeat("a", 501), errors.ErrInvalidInput},
		{"unknown event", uuid.New(), "hola", errors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.CreateComment(context.Background(), tt.eventID, user, &dto.CreateCommentRequest{Message: tt.message})
			if appErr == nil || appErr.Code != tt.code {
				t.Fatalf("got %v, want %s", appErr, tt.code)
			}
		})
	}
}

func TestGetEventCommentsPaginates(t *testing.T) {
	svc, eventID := setup()
	for i := 0; i < 3; i++ {
		if _, appErr := svc.CreateComment(context.Background(), eventID, uuid.New(), &dto.CreateCommentRequest{Message: "hola"}); appErr != nil {
			t.Fatal(appErr)
		}
	}

	page, appErr := svc.GetEventComments(context.Background(), eventID, params.QueryParams{PageNumber: 2, PageSize: 2})
	if appErr != nil {
		t.Fatal(appErr)
	}
	if len(page.Items) != 1 || page.TotalItems != 3 || page.TotalPages != 2 || page.HasNext || !page.HasPrev {
		t.Errorf("page = %+v", page)
	}
}

func TestReactions(t *testing.T) {
	svc, eventID := setup()
	c, _ := svc.CreateComment(context.Background(), eventID, uuid.New(), &dto.CreateCommentRequest{Message: "hola"})

	svc.Like(context.Background(), c.ID)
	got, appErr := svc.Like(context.Background(), c.ID)
	if appErr != nil || got.Likes != 2 {
		t.Fatalf("like: %+v %v", got, appErr)
	}
	got, _ = svc.Dislike(context.Background(), c.ID)
	if got.Dislikes != 1 || got.Likes != 2 {
		t.Errorf("dislike: %+v", got)
	}

	if _, appErr := svc.Like(context.Background(), uuid.New()); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("unknown comment: got %v", appErr)
	}
}
