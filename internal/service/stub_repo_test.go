package service

import (
	"context"
	"sort"

	"alphadash/internal/models"
	"alphadash/internal/perf"
	"alphadash/internal/repository"
)

// stubRepo is an in-memory Repository for service tests. Only the read paths
// the query services touch are faithful; the rest are straight slice edits.
type stubRepo struct {
	projects  []models.Project
	orders    []models.ChildOrder
	events    []models.CalendarEvent
	snapshots []models.MarketSnapshot

	listProjectsErr error
	aggregateErr    error
}

var _ repository.Repository = (*stubRepo)(nil)

func (s *stubRepo) InsertProject(_ context.Context, item *models.Project) error {
	item.ID = uint64(len(s.projects) + 1)
	s.projects = append(s.projects, *item)
	return nil
}

func (s *stubRepo) GetProjectByID(_ context.Context, id uint64) (*models.Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) GetProjectByProjectID(_ context.Context, projectID string) (*models.Project, error) {
	for _, p := range s.projects {
		if p.ProjectID != nil && *p.ProjectID == projectID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ListProjects(_ context.Context, _ repository.ListProjectsParams) ([]models.Project, error) {
	if s.listProjectsErr != nil {
		return nil, s.listProjectsErr
	}
	return append([]models.Project(nil), s.projects...), nil
}

func (s *stubRepo) CountProjects(_ context.Context, _ repository.ListProjectsParams) (int64, error) {
	return int64(len(s.projects)), nil
}

func (s *stubRepo) UpdateProject(_ context.Context, item *models.Project) error {
	for i, p := range s.projects {
		if p.ID == item.ID {
			s.projects[i] = *item
			return nil
		}
	}
	return nil
}

func (s *stubRepo) DeleteProjectByProjectID(_ context.Context, projectID string) (int64, error) {
	kept := s.projects[:0]
	var removed int64
	for _, p := range s.projects {
		if p.ProjectID != nil && *p.ProjectID == projectID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.projects = kept
	return removed, nil
}

func (s *stubRepo) InsertChildOrder(_ context.Context, item *models.ChildOrder) error {
	item.ID = uint64(len(s.orders) + 1)
	s.orders = append(s.orders, *item)
	return nil
}

func (s *stubRepo) GetChildOrderByID(_ context.Context, id uint64) (*models.ChildOrder, error) {
	for _, o := range s.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ListChildOrders(_ context.Context, params repository.ListChildOrdersParams) ([]models.ChildOrder, error) {
	var out []models.ChildOrder
	for _, o := range s.orders {
		if params.ParentOrderID != nil && o.ParentOrderID != *params.ParentOrderID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *stubRepo) CountChildOrders(ctx context.Context, params repository.ListChildOrdersParams) (int64, error) {
	items, _ := s.ListChildOrders(ctx, params)
	return int64(len(items)), nil
}

func (s *stubRepo) ListChildOrdersByParentOrderID(_ context.Context, parentOrderID string) ([]models.ChildOrder, error) {
	var out []models.ChildOrder
	for _, o := range s.orders {
		if o.ParentOrderID == parentOrderID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return perf.DayKey(out[i].TradeDate) < perf.DayKey(out[j].TradeDate)
	})
	return out, nil
}

func (s *stubRepo) UpdateChildOrder(_ context.Context, item *models.ChildOrder) error {
	for i, o := range s.orders {
		if o.ID == item.ID {
			s.orders[i] = *item
			return nil
		}
	}
	return nil
}

func (s *stubRepo) DeleteChildOrder(_ context.Context, id uint64) (int64, error) {
	kept := s.orders[:0]
	var removed int64
	for _, o := range s.orders {
		if o.ID == id {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	s.orders = kept
	return removed, nil
}

func (s *stubRepo) AggregateChildOrders(_ context.Context) ([]repository.ChildOrderAggregate, error) {
	if s.aggregateErr != nil {
		return nil, s.aggregateErr
	}
	byParent := make(map[string]*repository.ChildOrderAggregate)
	days := make(map[string]map[string]struct{})
	var order []string
	for _, o := range s.orders {
		if o.ParentOrderID == "" {
			continue
		}
		agg, ok := byParent[o.ParentOrderID]
		if !ok {
			agg = &repository.ChildOrderAggregate{ParentOrderID: o.ParentOrderID}
			byParent[o.ParentOrderID] = agg
			days[o.ParentOrderID] = make(map[string]struct{})
			order = append(order, o.ParentOrderID)
		}
		days[o.ParentOrderID][o.TradeDate] = struct{}{}
		if o.ExecQty != nil {
			agg.TotalExecQty = agg.TotalExecQty.Add(*o.ExecQty)
			if o.AvgPx != nil {
				agg.TotalExecAmount = agg.TotalExecAmount.Add(o.ExecQty.Mul(*o.AvgPx))
			}
		}
	}
	out := make([]repository.ChildOrderAggregate, 0, len(order))
	for _, parent := range order {
		agg := byParent[parent]
		agg.TradedDaysCount = len(days[parent])
		out = append(out, *agg)
	}
	return out, nil
}

func (s *stubRepo) InsertCalendarEvent(_ context.Context, item *models.CalendarEvent) error {
	item.ID = uint64(len(s.events) + 1)
	s.events = append(s.events, *item)
	return nil
}

func (s *stubRepo) GetCalendarEventByID(_ context.Context, id uint64) (*models.CalendarEvent, error) {
	for _, e := range s.events {
		if e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ListCalendarEvents(_ context.Context) ([]models.CalendarEvent, error) {
	return append([]models.CalendarEvent(nil), s.events...), nil
}

func (s *stubRepo) UpdateCalendarEvent(_ context.Context, item *models.CalendarEvent) error {
	for i, e := range s.events {
		if e.ID == item.ID {
			s.events[i] = *item
			return nil
		}
	}
	return nil
}

func (s *stubRepo) DeleteCalendarEvent(_ context.Context, id uint64) (int64, error) {
	kept := s.events[:0]
	var removed int64
	for _, e := range s.events {
		if e.ID == id {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	return removed, nil
}

func (s *stubRepo) UpsertMarketSnapshot(_ context.Context, item *models.MarketSnapshot) error {
	for i, snap := range s.snapshots {
		if snap.Ticker == item.Ticker && snap.SnapshotDate == item.SnapshotDate {
			s.snapshots[i] = *item
			return nil
		}
	}
	s.snapshots = append(s.snapshots, *item)
	return nil
}

func (s *stubRepo) ListMarketSnapshots(_ context.Context, params repository.ListMarketSnapshotsParams) ([]models.MarketSnapshot, error) {
	var out []models.MarketSnapshot
	for _, snap := range s.snapshots {
		if params.Ticker != nil && snap.Ticker != *params.Ticker {
			continue
		}
		out = append(out, snap)
	}
	return out, nil
}
