package tests

import (
	"context"
	"errors"
	"testing"

	"busline/internal/domain"
	"busline/internal/service"
)

func TestLoyaltyBalance_RequiresLogin(t *testing.T) {
	t.Parallel()

	svc := service.NewLoyaltyService(NewMockBackend(), NewMockQueryCache())

	_, err := svc.Balance(context.Background(), "")
	if !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestLoyaltyBalance_ServedFromCache(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.LoyaltyResult = &domain.LoyaltyBalance{LoyaltyPoints: 500}
	cache := NewMockQueryCache()
	svc := service.NewLoyaltyService(backend, cache)

	first, err := svc.Balance(context.Background(), "an")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.LoyaltyPoints != 500 {
		t.Errorf("expected 500 points, got %v", first.LoyaltyPoints)
	}

	// A stale backend value must not surface while the cache holds one.
	backend.LoyaltyResult = &domain.LoyaltyBalance{LoyaltyPoints: 9999}
	second, err := svc.Balance(context.Background(), "an")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.LoyaltyPoints != 500 {
		t.Errorf("expected cached 500 points, got %v", second.LoyaltyPoints)
	}
}

func TestLoyaltyReport_ValidatesRange(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.ReportResult = &domain.PointsReport{
		ReportData: map[string]domain.PointsEntry{
			"Mon": {PointsEarned: 10, PointsUsed: 5},
		},
	}
	svc := service.NewLoyaltyService(backend, NewMockQueryCache())

	if _, err := svc.Report(context.Background(), "daily"); !errors.Is(err, service.ErrInvalidReportRange) {
		t.Errorf("expected ErrInvalidReportRange, got %v", err)
	}

	report, err := svc.Report(context.Background(), domain.ReportRangeWeekly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ReportData["Mon"].PointsEarned != 10 {
		t.Errorf("unexpected report payload: %+v", report.ReportData)
	}
}
