package dal

import (
	"context"
	"fmt"

	analytics "google.golang.org/api/analytics/v3"

	"github.com/Aztekk/GoogleAnalytics/config"
	"github.com/Aztekk/GoogleAnalytics/domain/report"
)

//go:generate mockery --name AnalyticsManagement --output ./mocks --case=underscore
type AnalyticsManagement interface {
	ListGoals(ctx context.Context, accountID, webPropertyID, profileID string) ([]report.Goal, error)
}

type AnalyticsManagementAPI struct {
	service *analytics.Service
}

func NewAnalyticsManagementAPI(ctx context.Context, cfg *config.Config) (*AnalyticsManagementAPI, error) {
	clientOpt, err := newClientOption(ctx, cfg, analytics.AnalyticsReadonlyScope)
	if err != nil {
		return nil, err
	}

	service, err := analytics.NewService(ctx, clientOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics management service: %w", err)
	}

	return &AnalyticsManagementAPI{service: service}, nil
}

// ListGoals returns the goals configured on the given view.
func (s *AnalyticsManagementAPI) ListGoals(ctx context.Context, accountID, webPropertyID, profileID string) ([]report.Goal, error) {
	res, err := s.service.Management.Goals.List(accountID, webPropertyID, profileID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return toGoals(res), nil
}

func toGoals(res *analytics.Goals) []report.Goal {
	goals := make([]report.Goal, 0, len(res.Items))
	for _, item := range res.Items {
		goals = append(goals, report.Goal{
			ID:   item.Id,
			Name: item.Name,
			Type: item.Type,
		})
	}

	return goals
}
