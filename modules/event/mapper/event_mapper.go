package mapper

import (
	"myevent-api/modules/event/dto"
	"myevent-api/modules/event/entity"
	"myevent-api/modules/event/location"
)

const dateLayout = "2006-01-02"

func ToEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		LongDescription:  e.LongDescription,
		Date:             e.Date.Format(dateLayout),
		Time:             e.Time,
		Visibility:       string(e.Visibility),
		Location:         e.Location,
		Latitude:         e.Latitude,
		Longitude:        e.Longitude,
		City:             e.City,
		District:         e.District,
		MapURL:           e.MapURL,
		DirectionsURL:    directionsURL(e),
		ResourceURL:      e.ResourceURL,
		ImageURL:         e.ImageURL,
		CategoryID:       e.CategoryID,
		Status:           string(e.Status),
		Slug:             e.Slug,
		CreatedAt:        e.CreatedAt,
	}
}

func directionsURL(e *entity.Event) *string {
	u, ok := location.DirectionsURL(location.Hint{
		Latitude:  deref(e.Latitude),
		Longitude: deref(e.Longitude),
		Address:   deref(e.Location),
		City:      deref(e.City),
		District:  deref(e.District),
	}, "")
	if !ok {
		return nil
	}
	return &u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ToEventListItemResponse(item entity.EventListItem) dto.EventListItemResponse {
	resp := dto.EventListItemResponse{
		EventResponse: *ToEventResponse(&item.Event),
		CategoryName:  item.CategoryName,
		AttendeeCount: item.AttendeeCount,
	}
	if item.OrganizerID != nil {
		resp.Organizer = &dto.OrganizerResponse{
			ID:       *item.OrganizerID,
			FullName: item.OrganizerName,
			Nickname: item.OrganizerNickname,
			ImageURL: item.OrganizerImageURL,
		}
	}
	return resp
}

func ToEventListItemResponses(items []entity.EventListItem) []dto.EventListItemResponse {
	out := make([]dto.EventListItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToEventListItemResponse(item))
	}
	return out
}

func ToSummaryResponse(s *entity.Summary) *dto.SummaryResponse {
	return &dto.SummaryResponse{
		CreatedCount:   len(s.Created),
		AttendingCount: len(s.Attending),
		SavedCount:     len(s.Saved),
		Created:        ToEventListItemResponses(s.Created),
		Attending:      ToEventListItemResponses(s.Attending),
		Saved:          ToEventListItemResponses(s.Saved),
	}
}
