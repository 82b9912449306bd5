package service

import (
	"context"
	"fmt"

	"alphadash/internal/models"
	"alphadash/internal/perf"
	"alphadash/internal/repository"
)

// ProjectDetail is the full per-project view: the enriched execution series,
// the terminal summary and the progress block, all from one record snapshot.
type ProjectDetail struct {
	Project  models.Project
	Progress perf.Progress
	Summary  perf.Summary
	Orders   []perf.EnrichedOrder
}

type ProjectWithProgress struct {
	models.Project
	Progress perf.Progress
}

type ProjectQueryService struct {
	Repo repository.Repository
}

// ProjectDetail loads a project with its child orders and runs the
// performance engine over them. Returns (nil, nil) when the project is
// unknown.
func (s *ProjectQueryService) ProjectDetail(ctx context.Context, projectID string) (*ProjectDetail, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	project, err := s.Repo.GetProjectByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load project %q: %w", projectID, err)
	}
	if project == nil {
		return nil, nil
	}

	var orders []models.ChildOrder
	if project.ProjectID != nil {
		orders, err = s.Repo.ListChildOrdersByParentOrderID(ctx, *project.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("load child orders for %q: %w", projectID, err)
		}
	}

	enriched, summary, err := perf.Compute(*project, orders)
	if err != nil {
		return nil, err
	}

	return &ProjectDetail{
		Project:  *project,
		Progress: perf.AggregateProgress(*project, orders),
		Summary:  summary,
		Orders:   enriched,
	}, nil
}

// ListProjectsWithProgress joins every project against the child-order
// aggregate totals. Projects without a saved ProjectID get zero progress.
func (s *ProjectQueryService) ListProjectsWithProgress(ctx context.Context) ([]ProjectWithProgress, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	projects, err := s.Repo.ListProjects(ctx, repository.ListProjectsParams{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	aggregates, err := s.Repo.AggregateChildOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate child orders: %w", err)
	}

	byParent := make(map[string]repository.ChildOrderAggregate, len(aggregates))
	for _, agg := range aggregates {
		byParent[agg.ParentOrderID] = agg
	}

	out := make([]ProjectWithProgress, 0, len(projects))
	for _, p := range projects {
		var agg repository.ChildOrderAggregate
		if p.ProjectID != nil {
			agg = byParent[*p.ProjectID]
		}
		out = append(out, ProjectWithProgress{
			Project:  p,
			Progress: perf.ProgressFromTotals(p, agg.TotalExecQty, agg.TotalExecAmount, agg.TradedDaysCount),
		})
	}
	return out, nil
}
