package service

import (
	"context"
	"testing"

	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	donationdto "ella-rises-admin/modules/donation/dto"
	"ella-rises-admin/modules/donation/entity"
	"ella-rises-admin/modules/donation/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDonationRepo struct {
	mock.Mock
}

func (m *mockDonationRepo) List(ctx context.Context, p params.QueryParams, amount repository.AmountRange) (*entity.PaginatedDonations, error) {
	args := m.Called(ctx, p, amount)
	page, _ := args.Get(0).(*entity.PaginatedDonations)
	return page, args.Error(1)
}

func (m *mockDonationRepo) GetByID(ctx context.Context, id int64) (*entity.DonationRow, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*entity.DonationRow)
	return row, args.Error(1)
}

func (m *mockDonationRepo) Create(ctx context.Context, d *entity.Donation) (*entity.Donation, error) {
	args := m.Called(ctx, d)
	created, _ := args.Get(0).(*entity.Donation)
	return created, args.Error(1)
}

func (m *mockDonationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestAmountBracketTokens(t *testing.T) {
	cases := []struct {
		token string
		min   *float64
		max   *float64
	}{
		{"under25", nil, f(25)},
		{"25-50", f(25), f(50)},
		{"50-100", f(50), f(100)},
		{"100-250", f(100), f(250)},
		{"250-500", f(250), f(500)},
		{"500-1000", f(500), f(1000)},
		{"over1000", f(1000), nil},
	}

	for _, tc := range cases {
		bracket := AmountBracket(tc.token)
		assert.Equal(t, tc.min, bracket.Min, tc.token)
		assert.Equal(t, tc.max, bracket.Max, tc.token)
		assert.False(t, bracket.IsZero(), tc.token)
	}
}

// An unrecognized token means no amount predicate at all, not an empty page.
func TestAmountBracketUnrecognizedToken(t *testing.T) {
	for _, token := range []string{"", "under5", "25 - 50", "ALL", "over9000"} {
		assert.True(t, AmountBracket(token).IsZero(), token)
	}
}

func TestListDropsUnrecognizedFilterToken(t *testing.T) {
	repo := new(mockDonationRepo)
	svc := NewDonationService(repo)

	queryParams := params.QueryParams{PageNumber: 1, PageSize: 15, DateSort: "desc"}
	repo.On("List", mock.Anything, queryParams, repository.AmountRange{}).
		Return(&entity.PaginatedDonations{Items: []entity.DonationRow{}, PageSize: 15, PageNumber: 1}, nil)

	page, appErr := svc.List(context.Background(), queryParams, "bogus")

	require.Nil(t, appErr)
	assert.Equal(t, "", page.AmountFilter)
	repo.AssertExpectations(t)
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	repo := new(mockDonationRepo)
	svc := NewDonationService(repo)

	for _, amount := range []string{"0", "-5", "-0.01", "abc", ""} {
		appErr := svc.Create(context.Background(), &donationdto.DonationRequest{
			DonorName: "Jordan", DonorEmail: "jordan@example.org", Amount: amount,
		})
		require.NotNil(t, appErr, amount)
		assert.Equal(t, coreerrors.ErrInvalidInput, appErr.Code, amount)
		assert.Equal(t, "Donation amount must be greater than zero", appErr.Message, amount)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateDefaultsDonationType(t *testing.T) {
	repo := new(mockDonationRepo)
	svc := NewDonationService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *entity.Donation) bool {
		return d.DonationType == "general" && d.Amount == 25.50 && !d.ParticipantID.Valid
	})).Return(&entity.Donation{}, nil)

	appErr := svc.Create(context.Background(), &donationdto.DonationRequest{
		DonorName: "Jordan", DonorEmail: "jordan@example.org", Amount: "25.50",
	})

	assert.Nil(t, appErr)
	repo.AssertExpectations(t)
}

func f(v float64) *float64 { return &v }
