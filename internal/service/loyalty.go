package service

import (
	"context"
	"log"

	"busline/internal/backendapi"
	"busline/internal/cache"
	"busline/internal/domain"
)

// LoyaltyBackend is the slice of the backend API loyalty features need.
type LoyaltyBackend interface {
	LoyaltyPoints(ctx context.Context) (*domain.LoyaltyBalance, error)
	PointsReport(ctx context.Context, rng domain.ReportRange) (*domain.PointsReport, error)
}

var _ LoyaltyBackend = (*backendapi.Client)(nil)

// LoyaltyService serves point balances and report series.
type LoyaltyService struct {
	backend LoyaltyBackend
	cache   cache.QueryCache
}

// NewLoyaltyService creates a new LoyaltyService.
func NewLoyaltyService(backend LoyaltyBackend, queryCache cache.QueryCache) *LoyaltyService {
	return &LoyaltyService{backend: backend, cache: queryCache}
}

// Balance returns the user's point balance through the query cache.
func (s *LoyaltyService) Balance(ctx context.Context, username string) (*domain.LoyaltyBalance, error) {
	if username == "" {
		return nil, ErrNotLoggedIn
	}
	cached, err := s.cache.GetLoyalty(ctx, username)
	if err != nil {
		log.Printf("loyalty cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}
	balance, err := s.backend.LoyaltyPoints(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetLoyalty(ctx, username, balance); err != nil {
		log.Printf("loyalty cache write failed: %v", err)
	}
	return balance, nil
}

// Report returns the point report series for a range.
func (s *LoyaltyService) Report(ctx context.Context, rng domain.ReportRange) (*domain.PointsReport, error) {
	switch rng {
	case domain.ReportRangeWeekly, domain.ReportRangeMonthly, domain.ReportRangeYearly:
	default:
		return nil, ErrInvalidReportRange
	}
	return s.backend.PointsReport(ctx, rng)
}
