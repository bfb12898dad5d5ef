package mapper

import (
	"myevent-api/modules/user/dto"
	"myevent-api/modules/user/entity"
)

func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Nickname:     u.Nickname,
		Role:         u.Role,
		ImageURL:     u.ImageURL,
		Active:       u.Active,
		RegisteredAt: u.RegisteredAt,
	}
}

func ToPublicUserResponse(u *entity.User) *dto.PublicUserResponse {
	return &dto.PublicUserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Nickname: u.Nickname,
		ImageURL: u.ImageURL,
	}
}
