package settings

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

type memorySettingsRepo struct {
	cost    *entity.CostProfile
	studio  *entity.StudioProfile
	failErr error
}

func (r *memorySettingsRepo) GetCostProfile(context.Context) (*entity.CostProfile, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	if r.cost == nil {
		return nil, domainerror.ErrSettingNotFound
	}
	c := *r.cost
	return &c, nil
}

func (r *memorySettingsRepo) SaveCostProfile(_ context.Context, p entity.CostProfile) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.cost = &p
	return nil
}

func (r *memorySettingsRepo) GetStudioProfile(context.Context) (*entity.StudioProfile, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	if r.studio == nil {
		return nil, domainerror.ErrSettingNotFound
	}
	s := *r.studio
	return &s, nil
}

func (r *memorySettingsRepo) SaveStudioProfile(_ context.Context, p entity.StudioProfile) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.studio = &p
	return nil
}

func TestGetCostProfile_DefaultsWhenMissing(t *testing.T) {
	uc := NewGetCostProfileUseCase(&memorySettingsRepo{})

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, out.IsDefault)
	assert.Equal(t, entity.DefaultCostProfile(), out.Profile)
}

func TestGetCostProfile_StorageFailure(t *testing.T) {
	uc := NewGetCostProfileUseCase(&memorySettingsRepo{failErr: errors.New("locked")})

	_, err := uc.Execute(context.Background())
	assert.ErrorContains(t, err, "locked")
}

func TestUpdateCostProfile(t *testing.T) {
	repo := &memorySettingsRepo{}
	update := NewUpdateCostProfileUseCase(repo)
	get := NewGetCostProfileUseCase(repo)

	profile := entity.CostProfile{MonthlyRent: 2000, DaysWorkedPerMonth: 20, HoursWorkedPerDay: 8}
	_, err := update.Execute(context.Background(), UpdateCostProfileInput{Profile: profile})
	require.NoError(t, err)

	out, err := get.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, out.IsDefault)
	assert.Equal(t, profile, out.Profile)
}

func TestUpdateCostProfile_RejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *entity.CostProfile)
	}{
		{"rent", func(p *entity.CostProfile) { p.MonthlyRent = -1 }},
		{"utilities", func(p *entity.CostProfile) { p.MonthlyUtilities = -0.01 }},
		{"marketing", func(p *entity.CostProfile) { p.MonthlyMarketing = -5 }},
		{"misc", func(p *entity.CostProfile) { p.MonthlyMisc = -5 }},
		{"days", func(p *entity.CostProfile) { p.DaysWorkedPerMonth = -1 }},
		{"hours", func(p *entity.CostProfile) { p.HoursWorkedPerDay = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memorySettingsRepo{}
			profile := entity.DefaultCostProfile()
			tt.mutate(&profile)

			_, err := NewUpdateCostProfileUseCase(repo).Execute(context.Background(), UpdateCostProfileInput{Profile: profile})

			assert.ErrorIs(t, err, domainerror.ErrNegativeCost)
			assert.True(t, domainerror.IsValidation(err))
			assert.Nil(t, repo.cost)
		})
	}
}

func TestUpdateCostProfile_AcceptsZeroCapacity(t *testing.T) {
	repo := &memorySettingsRepo{}
	profile := entity.DefaultCostProfile()
	profile.HoursWorkedPerDay = 0

	_, err := NewUpdateCostProfileUseCase(repo).Execute(context.Background(), UpdateCostProfileInput{Profile: profile})
	require.NoError(t, err)
	assert.Zero(t, repo.cost.HoursWorkedPerDay)
}

func TestStudioProfile(t *testing.T) {
	t.Run("defaults when missing", func(t *testing.T) {
		out, err := NewGetStudioProfileUseCase(&memorySettingsRepo{}).Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, out.IsDefault)
		assert.Equal(t, "Seu Studio", out.Profile.Name)
	})

	t.Run("trims and stores", func(t *testing.T) {
		repo := &memorySettingsRepo{}
		_, err := NewUpdateStudioProfileUseCase(repo).Execute(context.Background(), UpdateStudioProfileInput{
			Profile: entity.StudioProfile{Name: "  Black Rose Tattoo ", LogoURL: "data:image/png;base64,AAAA"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Black Rose Tattoo", repo.studio.Name)
		assert.Equal(t, "data:image/png;base64,AAAA", repo.studio.LogoURL)
	})

	t.Run("rejects large logo", func(t *testing.T) {
		repo := &memorySettingsRepo{}
		_, err := NewUpdateStudioProfileUseCase(repo).Execute(context.Background(), UpdateStudioProfileInput{
			Profile: entity.StudioProfile{Name: "Studio", LogoURL: strings.Repeat("A", entity.MaxLogoBytes+1)},
		})
		assert.ErrorIs(t, err, domainerror.ErrLogoTooLarge)
		assert.True(t, domainerror.IsValidation(err))
		assert.Nil(t, repo.studio)
	})
}
