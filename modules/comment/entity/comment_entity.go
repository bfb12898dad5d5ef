package entity

import (
	"time"

	"github.com/google/uuid"
)

type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

type Comment struct {
	ID        uuid.UUID `db:"id"`
	EventID   uuid.UUID `db:"event_id"`
	UserID    uuid.UUID `db:"user_id"`
	Message   string    `db:"message"`
	Likes     int       `db:"likes"`
	Dislikes  int       `db:"dislikes"`
	CreatedAt time.Time `db:"created_at"`
}

// CommentDetail is a comment joined with its author.
type CommentDetail struct {
	Comment
	AuthorName     string  `db:"author_name"`
	AuthorNickname *string `db:"author_nickname"`
	AuthorImageURL *string `db:"author_image_url"`
}
