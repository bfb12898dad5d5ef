package mapper

import (
	"myevent-api/modules/comment/dto"
	"myevent-api/modules/comment/entity"
)

func ToCommentResponse(c entity.CommentDetail) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		Message:   c.Message,
		Likes:     c.Likes,
		Dislikes:  c.Dislikes,
		CreatedAt: c.CreatedAt,
		Author: dto.AuthorResponse{
			ID:       c.UserID,
			FullName: c.AuthorName,
			Nickname: c.AuthorNickname,
			ImageURL: c.AuthorImageURL,
		},
	}
}

func ToReactionResponse(c *entity.Comment) *dto.ReactionResponse {
	return &dto.ReactionResponse{ID: c.ID, Likes: c.Likes, Dislikes: c.Dislikes}
}
