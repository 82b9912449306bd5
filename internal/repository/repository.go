package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"alphadash/internal/models"
)

// ChildOrderAggregate is one parent order's execution totals, produced by a
// single GROUP BY over child_orders for the project list page.
type ChildOrderAggregate struct {
	ParentOrderID   string
	TotalExecQty    decimal.Decimal
	TotalExecAmount decimal.Decimal
	TradedDaysCount int
}

type ListProjectsParams struct {
	Ticker  *string
	Side    *string
	Limit   int
	Offset  int
	OrderBy string
	Asc     *bool
}

type ListChildOrdersParams struct {
	ParentOrderID *string
	Limit         int
	Offset        int
}

type ListMarketSnapshotsParams struct {
	Ticker *string
	Limit  int
	Offset int
}

// Repository is the record-store contract. The engine never sees it; services
// fetch through it and hand plain values to the computation core.
type Repository interface {
	// Projects
	InsertProject(ctx context.Context, item *models.Project) error
	GetProjectByID(ctx context.Context, id uint64) (*models.Project, error)
	GetProjectByProjectID(ctx context.Context, projectID string) (*models.Project, error)
	ListProjects(ctx context.Context, params ListProjectsParams) ([]models.Project, error)
	CountProjects(ctx context.Context, params ListProjectsParams) (int64, error)
	UpdateProject(ctx context.Context, item *models.Project) error
	DeleteProjectByProjectID(ctx context.Context, projectID string) (int64, error)

	// Child orders. Mutation is append / full-record replace / delete-by-row;
	// there are no partial patches.
	InsertChildOrder(ctx context.Context, item *models.ChildOrder) error
	GetChildOrderByID(ctx context.Context, id uint64) (*models.ChildOrder, error)
	ListChildOrders(ctx context.Context, params ListChildOrdersParams) ([]models.ChildOrder, error)
	CountChildOrders(ctx context.Context, params ListChildOrdersParams) (int64, error)
	ListChildOrdersByParentOrderID(ctx context.Context, parentOrderID string) ([]models.ChildOrder, error)
	UpdateChildOrder(ctx context.Context, item *models.ChildOrder) error
	DeleteChildOrder(ctx context.Context, id uint64) (int64, error)
	AggregateChildOrders(ctx context.Context) ([]ChildOrderAggregate, error)

	// Calendar events
	InsertCalendarEvent(ctx context.Context, item *models.CalendarEvent) error
	GetCalendarEventByID(ctx context.Context, id uint64) (*models.CalendarEvent, error)
	ListCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error)
	UpdateCalendarEvent(ctx context.Context, item *models.CalendarEvent) error
	DeleteCalendarEvent(ctx context.Context, id uint64) (int64, error)

	// Market snapshots
	UpsertMarketSnapshot(ctx context.Context, item *models.MarketSnapshot) error
	ListMarketSnapshots(ctx context.Context, params ListMarketSnapshotsParams) ([]models.MarketSnapshot, error)
}
