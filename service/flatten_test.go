package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aztekk/GoogleAnalytics/domain/report"
	"github.com/Aztekk/GoogleAnalytics/logger"
)

func TestReportsService_ToTable(t *testing.T) {
	s := NewReportsService(logger.FromContext, nil, nil)

	tests := []struct {
		name        string
		page        *report.ReportPage
		stripPrefix string
		want        report.ReportTable
		wantErr     error
	}{
		{
			name: "one row flattens to one record",
			page: &report.ReportPage{
				DimensionHeaders: []string{"date", "sourceMedium"},
				MetricHeaders:    []string{"sessions"},
				Rows: []report.Row{
					{
						Dimensions: []string{"20200901", "google / cpc"},
						Metrics:    []report.MetricValues{{Values: []string{"42"}}},
					},
				},
			},
			want: report.ReportTable{
				{"date": "20200901", "sourceMedium": "google / cpc", "sessions": "42"},
			},
		},
		{
			name: "namespace prefix is stripped from column keys",
			page: &report.ReportPage{
				DimensionHeaders: []string{"ga:date"},
				MetricHeaders:    []string{"ga:sessions"},
				Rows: []report.Row{
					{
						Dimensions: []string{"20200901"},
						Metrics:    []report.MetricValues{{Values: []string{"42"}}},
					},
				},
			},
			stripPrefix: "ga:",
			want: report.ReportTable{
				{"date": "20200901", "sessions": "42"},
			},
		},
		{
			name: "a later date range group overwrites the earlier one",
			page: &report.ReportPage{
				DimensionHeaders: []string{"date"},
				MetricHeaders:    []string{"sessions"},
				Rows: []report.Row{
					{
						Dimensions: []string{"20200901"},
						Metrics: []report.MetricValues{
							{Values: []string{"42"}},
							{Values: []string{"17"}},
						},
					},
				},
			},
			want: report.ReportTable{
				{"date": "20200901", "sessions": "17"},
			},
		},
		{
			name: "empty rows produce an empty table",
			page: &report.ReportPage{
				DimensionHeaders: []string{"date"},
				MetricHeaders:    []string{"sessions"},
			},
			want: report.ReportTable{},
		},
		{
			name: "nil page produces an empty table",
			page: nil,
			want: report.ReportTable{},
		},
		{
			name: "rows without headers fail",
			page: &report.ReportPage{
				Rows: []report.Row{
					{Dimensions: []string{"20200901"}},
				},
			},
			wantErr: ErrMissingHeaders,
		},
		{
			name: "dimension value count mismatch fails",
			page: &report.ReportPage{
				DimensionHeaders: []string{"date", "sourceMedium"},
				MetricHeaders:    []string{"sessions"},
				Rows: []report.Row{
					{
						Dimensions: []string{"20200901"},
						Metrics:    []report.MetricValues{{Values: []string{"42"}}},
					},
				},
			},
			wantErr: ErrShapeMismatch,
		},
		{
			name: "metric value count mismatch fails",
			page: &report.ReportPage{
				DimensionHeaders: []string{"date"},
				MetricHeaders:    []string{"sessions", "users"},
				Rows: []report.Row{
					{
						Dimensions: []string{"20200901"},
						Metrics:    []report.MetricValues{{Values: []string{"42"}}},
					},
				},
			},
			wantErr: ErrShapeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ToTable(tt.page, tt.stripPrefix)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportsService_ToTable_AllBadRowsReported(t *testing.T) {
	s := NewReportsService(logger.FromContext, nil, nil)

	page := &report.ReportPage{
		DimensionHeaders: []string{"date", "sourceMedium"},
		MetricHeaders:    []string{"sessions"},
		Rows: []report.Row{
			{Dimensions: []string{"20200901"}},
			{Dimensions: []string{"20200902"}},
		},
	}

	_, err := s.ToTable(page, "")
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "row 0")
	assert.Contains(t, err.Error(), "row 1")
}
