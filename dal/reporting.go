package dal

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	analyticsreporting "google.golang.org/api/analyticsreporting/v4"
	"google.golang.org/api/option"

	"github.com/Aztekk/GoogleAnalytics/config"
	"github.com/Aztekk/GoogleAnalytics/domain/report"
)

const (
	dateFormat    = "2006-01-02"
	samplingLevel = "LARGE"
)

//go:generate mockery --name AnalyticsReporting --output ./mocks --case=underscore
type AnalyticsReporting interface {
	GetReport(ctx context.Context, query *report.QueryDescriptor) (*report.ReportPage, error)
}

type AnalyticsReportingAPI struct {
	service *analyticsreporting.Service
}

func NewAnalyticsReportingAPI(ctx context.Context, cfg *config.Config) (*AnalyticsReportingAPI, error) {
	clientOpt, err := newClientOption(ctx, cfg, analyticsreporting.AnalyticsReadonlyScope)
	if err != nil {
		return nil, err
	}

	service, err := analyticsreporting.NewService(ctx, clientOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics reporting service: %w", err)
	}

	return &AnalyticsReportingAPI{service: service}, nil
}

// newClientOption builds an authenticated HTTP client option from the
// configured service account key. Missing or unparsable credentials fail
// here, before any fetch is attempted.
func newClientOption(ctx context.Context, cfg *config.Config, defaultScope string) (option.ClientOption, error) {
	data, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{defaultScope}
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	return option.WithHTTPClient(jwtConfig.Client(ctx)), nil
}

// GetReport fetches a single report page. Provider failures come back as
// *googleapi.Error with the provider status code and message.
func (s *AnalyticsReportingAPI) GetReport(ctx context.Context, query *report.QueryDescriptor) (*report.ReportPage, error) {
	res, err := s.service.Reports.BatchGet(&analyticsreporting.GetReportsRequest{
		ReportRequests: []*analyticsreporting.ReportRequest{toReportRequest(query)},
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return toReportPage(res)
}

func toReportRequest(query *report.QueryDescriptor) *analyticsreporting.ReportRequest {
	dimensions := make([]*analyticsreporting.Dimension, len(query.Dimensions))
	for i, name := range query.Dimensions {
		dimensions[i] = &analyticsreporting.Dimension{Name: name}
	}

	metrics := make([]*analyticsreporting.Metric, len(query.Metrics))
	for i, expression := range query.Metrics {
		metrics[i] = &analyticsreporting.Metric{Expression: expression}
	}

	var filterClauses []*analyticsreporting.DimensionFilterClause

	if query.Filters != nil {
		filters := make([]*analyticsreporting.DimensionFilter, len(query.Filters.Filters))
		for i, filter := range query.Filters.Filters {
			filters[i] = &analyticsreporting.DimensionFilter{
				DimensionName: filter.DimensionName,
				Operator:      filter.Operator,
				Expressions:   filter.Expressions,
			}
		}

		filterClauses = []*analyticsreporting.DimensionFilterClause{
			{
				Operator: query.Filters.Operator,
				Filters:  filters,
			},
		}
	}

	return &analyticsreporting.ReportRequest{
		ViewId: query.ViewID,
		DateRanges: []*analyticsreporting.DateRange{
			{
				StartDate: query.DateFrom.Format(dateFormat),
				EndDate:   query.DateTo.Format(dateFormat),
			},
		},
		Dimensions:             dimensions,
		Metrics:                metrics,
		DimensionFilterClauses: filterClauses,
		SamplingLevel:          samplingLevel,
		PageSize:               query.PageSize,
		PageToken:              query.PageToken,
	}
}

func toReportPage(res *analyticsreporting.GetReportsResponse) (*report.ReportPage, error) {
	if len(res.Reports) == 0 {
		return nil, ErrEmptyResponse
	}

	apiReport := res.Reports[0]
	page := &report.ReportPage{NextPageToken: apiReport.NextPageToken}

	if header := apiReport.ColumnHeader; header != nil {
		page.DimensionHeaders = header.Dimensions

		if header.MetricHeader != nil {
			for _, entry := range header.MetricHeader.MetricHeaderEntries {
				page.MetricHeaders = append(page.MetricHeaders, entry.Name)
			}
		}
	}

	if apiReport.Data == nil {
		return page, nil
	}

	for _, apiRow := range apiReport.Data.Rows {
		row := report.Row{Dimensions: apiRow.Dimensions}
		for _, group := range apiRow.Metrics {
			row.Metrics = append(row.Metrics, report.MetricValues{Values: group.Values})
		}

		page.Rows = append(page.Rows, row)
	}

	return page, nil
}
