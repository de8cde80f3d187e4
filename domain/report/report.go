package report

import (
	"strings"
	"time"
)

// MaxPageSize is the row cap the reporting API enforces per request.
const MaxPageSize = 100000

const (
	FilterOperatorAnd = "AND"
	FilterOperatorOr  = "OR"
)

const (
	MatchOperatorExact      = "EXACT"
	MatchOperatorContains   = "PARTIAL"
	MatchOperatorBeginsWith = "BEGINS_WITH"
	MatchOperatorRegexp     = "REGEXP"
)

// DimensionFilter matches a single dimension against a set of expressions.
type DimensionFilter struct {
	DimensionName string
	Operator      string
	Expressions   []string
}

// FilterClause combines dimension filters with an AND/OR operator.
type FilterClause struct {
	Operator string
	Filters  []DimensionFilter
}

// QueryDescriptor describes one report request against a view.
// DateFrom and DateTo are inclusive calendar dates.
type QueryDescriptor struct {
	ViewID     string
	Dimensions []string
	Metrics    []string
	Filters    *FilterClause
	DateFrom   time.Time
	DateTo     time.Time
	PageSize   int64
	PageToken  string
}

// WithPageToken returns a copy of the descriptor pointing at the next page.
func (q *QueryDescriptor) WithPageToken(token string) *QueryDescriptor {
	next := *q
	next.PageToken = token

	return &next
}

// MetricValues is one group of metric values, parallel to the page's
// metric headers. A report requesting multiple date ranges yields one
// group per range.
type MetricValues struct {
	Values []string
}

type Row struct {
	Dimensions []string
	Metrics    []MetricValues
}

// ReportPage is one reporting API response. NextPageToken is empty on
// the last page.
type ReportPage struct {
	DimensionHeaders []string
	MetricHeaders    []string
	Rows             []Row
	NextPageToken    string
}

// StripNamespace returns a copy of the page with the literal prefix
// removed from dimension and metric header names. Headers without the
// prefix are left untouched, so applying it twice equals applying it once.
func (p *ReportPage) StripNamespace(prefix string) *ReportPage {
	stripped := *p
	stripped.DimensionHeaders = stripPrefix(p.DimensionHeaders, prefix)
	stripped.MetricHeaders = stripPrefix(p.MetricHeaders, prefix)

	return &stripped
}

func stripPrefix(headers []string, prefix string) []string {
	if len(headers) == 0 {
		return headers
	}

	stripped := make([]string, len(headers))
	for i, header := range headers {
		stripped[i] = strings.TrimPrefix(header, prefix)
	}

	return stripped
}

// FlatRecord maps a column name to its value for one row.
type FlatRecord map[string]string

type ReportTable []FlatRecord

// Goal is a summary of a goal configured on a view, from the
// management API.
type Goal struct {
	ID   string
	Name string
	Type string
}
