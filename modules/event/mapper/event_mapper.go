package mapper

import (
	"time"

	"ella-rises-admin/core/dto"
	eventdto "ella-rises-admin/modules/event/dto"
	"ella-rises-admin/modules/event/entity"
)

func ToEventResponse(e *entity.Event) *eventdto.EventResponse {
	resp := &eventdto.EventResponse{
		ID:                e.ID,
		Name:              e.Name,
		Type:              e.Type,
		Description:       e.Description.String,
		RecurrencePattern: e.RecurrencePattern.String,
		CreatedAt:         e.CreatedAt,
	}
	if e.DefaultCapacity.Valid {
		capacity := e.DefaultCapacity.Int64
		resp.DefaultCapacity = &capacity
	}
	return resp
}

func ToEventList(page *entity.PaginatedEvents, search, eventType string, types []string) *eventdto.EventList {
	items := make([]eventdto.EventResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToEventResponse(&page.Items[i])
	}
	return &eventdto.EventList{
		Pagination: dto.Pagination[eventdto.EventResponse]{
			Items:      items,
			TotalItems: page.TotalItems,
			TotalPages: dto.TotalPages(page.TotalItems, page.PageSize),
			PageNumber: page.PageNumber,
			PageSize:   page.PageSize,
			Search:     search,
		},
		Type:  eventType,
		Types: types,
	}
}

func ToOccurrenceResponse(o *entity.EventOccurrence) *eventdto.OccurrenceResponse {
	resp := &eventdto.OccurrenceResponse{
		ID:       o.ID,
		EventID:  o.EventID,
		StartsAt: o.StartsAt,
		EndsAt:   o.EndsAt,
		Location: o.Location.String,
	}
	if o.Capacity.Valid {
		capacity := o.Capacity.Int64
		resp.Capacity = &capacity
	}
	if o.RegistrationDeadline.Valid {
		resp.RegistrationDeadline = o.RegistrationDeadline.Time.Format(time.RFC3339)
	}
	return resp
}

func ToOccurrenceResponses(rows []entity.EventOccurrence) []eventdto.OccurrenceResponse {
	out := make([]eventdto.OccurrenceResponse, len(rows))
	for i := range rows {
		out[i] = *ToOccurrenceResponse(&rows[i])
	}
	return out
}
