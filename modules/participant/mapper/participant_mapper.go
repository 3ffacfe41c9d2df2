package mapper

import (
	"ella-rises-admin/core/dto"
	"ella-rises-admin/core/utils"
	participantdto "ella-rises-admin/modules/participant/dto"
	"ella-rises-admin/modules/participant/entity"
)

func ToParticipantResponse(p *entity.Participant) *participantdto.ParticipantResponse {
	return &participantdto.ParticipantResponse{
		ID:               p.ID,
		Email:            p.Email,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		FullName:         utils.FullName(p.FirstName, p.LastName),
		Role:             p.Role.String,
		SchoolOrEmployer: p.SchoolOrEmployer.String,
		Phone:            p.Phone.String,
		CreatedAt:        p.CreatedAt,
	}
}

func ToPaginatedResponse(page *entity.PaginatedParticipants, search, dateSort string) *participantdto.PaginatedParticipants {
	items := make([]participantdto.ParticipantResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToParticipantResponse(&page.Items[i])
	}
	return &participantdto.PaginatedParticipants{
		Items:      items,
		TotalItems: page.TotalItems,
		TotalPages: dto.TotalPages(page.TotalItems, page.PageSize),
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		Search:     search,
		DateSort:   dateSort,
	}
}

func ToMilestoneHistory(rows []entity.ParticipantMilestone) []participantdto.MilestoneHistory {
	out := make([]participantdto.MilestoneHistory, len(rows))
	for i, m := range rows {
		out[i] = participantdto.MilestoneHistory{
			ID:            m.ID,
			MilestoneDate: m.MilestoneDate.Format("2006-01-02"),
			Notes:         m.Notes.String,
			TypeTitle:     m.TypeTitle.String,
			TypeCategory:  m.TypeCategory.String,
		}
	}
	return out
}

func ToEventHistory(rows []entity.ParticipantEvent) []participantdto.EventHistory {
	out := make([]participantdto.EventHistory, len(rows))
	for i, e := range rows {
		out[i] = participantdto.EventHistory{
			EventName:        e.EventName,
			EventType:        e.EventType,
			StartsAt:         e.StartsAt,
			AttendanceStatus: e.AttendanceStatus,
		}
	}
	return out
}
