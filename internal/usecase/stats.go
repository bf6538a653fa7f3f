package usecase

import (
	"context"

	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/domain/repository"
)

// StatsUseCase computes registry aggregates on demand.
type StatsUseCase struct {
	stats   repository.StatsRepository
	pricing Pricing
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository, pricing Pricing) *StatsUseCase {
	return &StatsUseCase{stats: stats, pricing: pricing}
}

// Overview returns fresh counters plus the revenue estimate.
func (u *StatsUseCase) Overview(ctx context.Context) (*model.Stats, error) {
	st, err := u.stats.Overview(ctx)
	if err != nil {
		return nil, err
	}
	st.RevenueEstimate = u.pricing.Revenue(st.TotalLookups)
	return st, nil
}

// Pricing exposes billing parameters used for estimates.
func (u *StatsUseCase) Pricing() Pricing {
	return u.pricing
}
