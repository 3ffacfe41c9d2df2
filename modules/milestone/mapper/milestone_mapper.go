package mapper

import (
	"strings"

	"ella-rises-admin/core/dto"
	milestonedto "ella-rises-admin/modules/milestone/dto"
	"ella-rises-admin/modules/milestone/entity"
)

func ToMilestoneResponse(row *entity.MilestoneRow) *milestonedto.MilestoneResponse {
	return &milestonedto.MilestoneResponse{
		ID:              row.ID,
		ParticipantID:   row.ParticipantID,
		ParticipantName: strings.TrimSpace(row.FirstName.String + " " + row.LastName.String),
		MilestoneDate:   row.MilestoneDate.Format("2006-01-02"),
		Notes:           row.Notes.String,
		TypeTitle:       row.TypeTitle.String,
		TypeCategory:    row.TypeCategory.String,
	}
}

func ToMilestoneList(page *entity.PaginatedMilestones, search, dateSort, typeTitle string, types []entity.MilestoneType) *milestonedto.MilestoneList {
	items := make([]milestonedto.MilestoneResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToMilestoneResponse(&page.Items[i])
	}
	return &milestonedto.MilestoneList{
		Pagination: dto.Pagination[milestonedto.MilestoneResponse]{
			Items:      items,
			TotalItems: page.TotalItems,
			TotalPages: dto.TotalPages(page.TotalItems, page.PageSize),
			PageNumber: page.PageNumber,
			PageSize:   page.PageSize,
			Search:     search,
			DateSort:   dateSort,
		},
		Type:  typeTitle,
		Types: ToTypeResponses(types),
	}
}

func ToTypeResponses(types []entity.MilestoneType) []milestonedto.MilestoneTypeResponse {
	out := make([]milestonedto.MilestoneTypeResponse, len(types))
	for i, t := range types {
		out[i] = milestonedto.MilestoneTypeResponse{
			ID:       t.ID,
			Title:    t.Title,
			Category: t.Category.String,
		}
	}
	return out
}
