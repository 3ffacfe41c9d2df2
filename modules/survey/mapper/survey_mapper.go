package mapper

import (
	"strings"

	"ella-rises-admin/core/dto"
	surveydto "ella-rises-admin/modules/survey/dto"
	"ella-rises-admin/modules/survey/entity"
)

func ToSurveyResponse(row *entity.SurveyRow) *surveydto.SurveyResponse {
	resp := &surveydto.SurveyResponse{
		ID:              row.ID,
		SubmissionDate:  row.SubmissionDate,
		Comments:        row.Comments.String,
		ParticipantName: strings.TrimSpace(row.FirstName.String + " " + row.LastName.String),
		EventName:       row.EventName.String,
	}
	if row.RegistrationID.Valid {
		id := row.RegistrationID.Int64
		resp.RegistrationID = &id
	}
	if row.SatisfactionScore.Valid {
		score := row.SatisfactionScore.Int64
		resp.SatisfactionScore = &score
	}
	if row.StartsAt.Valid {
		resp.EventDate = row.StartsAt.Time.Format("2006-01-02")
	}
	return resp
}

func ToPaginatedResponse(page *entity.PaginatedSurveys, search, dateSort string) *surveydto.PaginatedSurveys {
	items := make([]surveydto.SurveyResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToSurveyResponse(&page.Items[i])
	}
	return &surveydto.PaginatedSurveys{
		Items:      items,
		TotalItems: page.TotalItems,
		TotalPages: dto.TotalPages(page.TotalItems, page.PageSize),
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		Search:     search,
		DateSort:   dateSort,
	}
}
