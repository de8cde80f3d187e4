package service

import (
	"context"
	"fmt"

	"github.com/Aztekk/GoogleAnalytics/dal"
	"github.com/Aztekk/GoogleAnalytics/domain/report"
	"github.com/Aztekk/GoogleAnalytics/logger"
)

// defaultMaxPages bounds the pagination loop. A provider that keeps
// returning a continuation token would otherwise never terminate.
const defaultMaxPages = 1000

type ReportsService struct {
	loggerProvider logger.Provider
	reporting      dal.AnalyticsReporting
	management     dal.AnalyticsManagement
	maxPages       int
}

func NewReportsService(
	loggerProvider logger.Provider,
	reporting dal.AnalyticsReporting,
	management dal.AnalyticsManagement,
) *ReportsService {
	return &ReportsService{
		loggerProvider,
		reporting,
		management,
		defaultMaxPages,
	}
}

// SetMaxPages overrides the pagination safety cap.
func (s *ReportsService) SetMaxPages(maxPages int) {
	s.maxPages = maxPages
}

// GetFullReport fetches report pages until the provider stops returning a
// continuation token and merges their rows into a single page. Headers are
// taken from the last page fetched. Any fetch failure aborts the whole
// extraction; rows accumulated so far are discarded.
func (s *ReportsService) GetFullReport(ctx context.Context, query *report.QueryDescriptor) (*report.ReportPage, error) {
	l := s.loggerProvider(ctx)

	page, err := s.reporting.GetReport(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get report for view %s: %w", query.ViewID, err)
	}

	rows := page.Rows
	pages := 1

	for page.NextPageToken != "" {
		if pages >= s.maxPages {
			return nil, fmt.Errorf("%w: view %s returned a continuation token after %d pages", ErrTooManyPages, query.ViewID, pages)
		}

		page, err = s.reporting.GetReport(ctx, query.WithPageToken(page.NextPageToken))
		if err != nil {
			return nil, fmt.Errorf("failed to get report page %d for view %s: %w", pages+1, query.ViewID, err)
		}

		rows = append(rows, page.Rows...)
		pages++
	}

	l.Infof("fetched %d rows in %d pages for view %s", len(rows), pages, query.ViewID)

	return &report.ReportPage{
		DimensionHeaders: page.DimensionHeaders,
		MetricHeaders:    page.MetricHeaders,
		Rows:             rows,
	}, nil
}

// GetGoals returns the goals configured on the given view.
func (s *ReportsService) GetGoals(ctx context.Context, accountID, webPropertyID, profileID string) ([]report.Goal, error) {
	goals, err := s.management.ListGoals(ctx, accountID, webPropertyID, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for profile %s: %w", profileID, err)
	}

	return goals, nil
}
