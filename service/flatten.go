package service

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/Aztekk/GoogleAnalytics/domain/report"
)

// ToTable projects a report page into one flat record per row. Dimension
// headers pair with a row's dimension values positionally, then every
// metric-value group pairs with the metric headers; a later group
// overwrites same-named keys from an earlier one, so a report with
// multiple date ranges keeps the last range's values. stripPrefix, when
// non-empty, is removed from header names before they become column keys.
//
// Rows whose value counts do not match the header counts make the whole
// call fail; all offending rows are reported together.
func (s *ReportsService) ToTable(page *report.ReportPage, stripPrefix string) (report.ReportTable, error) {
	if page == nil || len(page.Rows) == 0 {
		return report.ReportTable{}, nil
	}

	if len(page.DimensionHeaders) == 0 && len(page.MetricHeaders) == 0 {
		return nil, ErrMissingHeaders
	}

	if stripPrefix != "" {
		page = page.StripNamespace(stripPrefix)
	}

	var shapeErrs error

	table := make(report.ReportTable, 0, len(page.Rows))

	for i, row := range page.Rows {
		if len(row.Dimensions) != len(page.DimensionHeaders) {
			shapeErrs = multierror.Append(shapeErrs, fmt.Errorf(
				"row %d: %w: %d dimension values for %d headers",
				i, ErrShapeMismatch, len(row.Dimensions), len(page.DimensionHeaders)))

			continue
		}

		record := make(report.FlatRecord, len(page.DimensionHeaders)+len(page.MetricHeaders))

		for j, header := range page.DimensionHeaders {
			record[header] = row.Dimensions[j]
		}

		for groupIdx, group := range row.Metrics {
			if len(group.Values) != len(page.MetricHeaders) {
				shapeErrs = multierror.Append(shapeErrs, fmt.Errorf(
					"row %d group %d: %w: %d metric values for %d headers",
					i, groupIdx, ErrShapeMismatch, len(group.Values), len(page.MetricHeaders)))

				continue
			}

			for j, header := range page.MetricHeaders {
				record[header] = group.Values[j]
			}
		}

		table = append(table, record)
	}

	if shapeErrs != nil {
		return nil, shapeErrs
	}

	return table, nil
}
