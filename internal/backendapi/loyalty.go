package backendapi

import (
	"context"
	"net/http"
	"net/url"

	"busline/internal/domain"
)

// LoyaltyPoints fetches the logged-in user's point balance.
func (c *Client) LoyaltyPoints(ctx context.Context) (*domain.LoyaltyBalance, error) {
	var out domain.LoyaltyBalance
	if err := c.do(ctx, http.MethodGet, "/loyalty-points", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PointsReport fetches the loyalty point report series for a range.
func (c *Client) PointsReport(ctx context.Context, rng domain.ReportRange) (*domain.PointsReport, error) {
	q := url.Values{"range": {string(rng)}}
	var out domain.PointsReport
	if err := c.do(ctx, http.MethodGet, "/reports/points", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
