package mapper

import (
	"strings"

	"ella-rises-admin/core/dto"
	donationdto "ella-rises-admin/modules/donation/dto"
	"ella-rises-admin/modules/donation/entity"
)

func ToDonationResponse(row *entity.DonationRow) *donationdto.DonationResponse {
	resp := &donationdto.DonationResponse{
		ID:              row.ID,
		DonorName:       row.DonorName,
		DonorEmail:      row.DonorEmail,
		DonorPhone:      row.DonorPhone.String,
		Amount:          row.Amount,
		DonationType:    row.DonationType,
		ParticipantName: strings.TrimSpace(row.FirstName.String + " " + row.LastName.String),
	}
	if row.DonationDate.Valid {
		resp.DonationDate = row.DonationDate.Time.Format("2006-01-02")
	}
	if row.ParticipantID.Valid {
		id := row.ParticipantID.Int64
		resp.ParticipantID = &id
	}
	return resp
}

func ToDonationList(page *entity.PaginatedDonations, search, dateSort, amountFilter string) *donationdto.DonationList {
	items := make([]donationdto.DonationResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToDonationResponse(&page.Items[i])
	}
	return &donationdto.DonationList{
		Pagination: dto.Pagination[donationdto.DonationResponse]{
			Items:      items,
			TotalItems: page.TotalItems,
			TotalPages: dto.TotalPages(page.TotalItems, page.PageSize),
			PageNumber: page.PageNumber,
			PageSize:   page.PageSize,
			Search:     search,
			DateSort:   dateSort,
		},
		AmountFilter: amountFilter,
	}
}
