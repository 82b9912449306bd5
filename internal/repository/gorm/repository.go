package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alphadash/internal/models"
	"alphadash/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- Projects ---------------------------------------------------------------

func (s *Store) InsertProject(ctx context.Context, item *models.Project) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetProjectByID(ctx context.Context, id uint64) (*models.Project, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.Project
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetProjectByProjectID(ctx context.Context, projectID string) (*models.Project, error) {
	if s == nil || s.db == nil || strings.TrimSpace(projectID) == "" {
		return nil, nil
	}
	var item models.Project
	err := s.db.WithContext(ctx).First(&item, "project_id = ?", strings.TrimSpace(projectID)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func projectsQuery(db *gorm.DB, params repository.ListProjectsParams) *gorm.DB {
	query := db.Model(&models.Project{})
	if params.Ticker != nil && strings.TrimSpace(*params.Ticker) != "" {
		query = query.Where("ticker = ?", strings.TrimSpace(*params.Ticker))
	}
	if params.Side != nil && strings.TrimSpace(*params.Side) != "" {
		query = query.Where("side = ?", strings.TrimSpace(*params.Side))
	}
	return query
}

func (s *Store) ListProjects(ctx context.Context, params repository.ListProjectsParams) ([]models.Project, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := projectsQuery(s.db.WithContext(ctx), params)
	query = applyOrder(query, params.OrderBy, params.Asc, "created_at")
	if params.Limit > 0 {
		query = query.Limit(normalizeLimit(params.Limit, 200)).Offset(normalizeOffset(params.Offset))
	}
	var items []models.Project
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountProjects(ctx context.Context, params repository.ListProjectsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := projectsQuery(s.db.WithContext(ctx), params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) UpdateProject(ctx context.Context, item *models.Project) error {
	if s == nil || s.db == nil || item == nil || item.ID == 0 {
		return nil
	}
	// Save writes every column so cleared optional fields persist as NULL.
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteProjectByProjectID(ctx context.Context, projectID string) (int64, error) {
	if s == nil || s.db == nil || strings.TrimSpace(projectID) == "" {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Where("project_id = ?", strings.TrimSpace(projectID)).
		Delete(&models.Project{})
	return res.RowsAffected, res.Error
}

// --- Child orders -----------------------------------------------------------

func (s *Store) InsertChildOrder(ctx context.Context, item *models.ChildOrder) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetChildOrderByID(ctx context.Context, id uint64) (*models.ChildOrder, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.ChildOrder
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func childOrdersQuery(db *gorm.DB, params repository.ListChildOrdersParams) *gorm.DB {
	query := db.Model(&models.ChildOrder{})
	if params.ParentOrderID != nil && strings.TrimSpace(*params.ParentOrderID) != "" {
		query = query.Where("parent_order_id = ?", strings.TrimSpace(*params.ParentOrderID))
	}
	return query
}

func (s *Store) ListChildOrders(ctx context.Context, params repository.ListChildOrdersParams) ([]models.ChildOrder, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := childOrdersQuery(s.db.WithContext(ctx), params).
		Order("trade_date desc").
		Order("parent_order_id asc")
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.ChildOrder
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountChildOrders(ctx context.Context, params repository.ListChildOrdersParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := childOrdersQuery(s.db.WithContext(ctx), params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListChildOrdersByParentOrderID(ctx context.Context, parentOrderID string) ([]models.ChildOrder, error) {
	if s == nil || s.db == nil || strings.TrimSpace(parentOrderID) == "" {
		return nil, nil
	}
	var items []models.ChildOrder
	if err := s.db.WithContext(ctx).
		Where("parent_order_id = ?", strings.TrimSpace(parentOrderID)).
		Order("trade_date asc").
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateChildOrder(ctx context.Context, item *models.ChildOrder) error {
	if s == nil || s.db == nil || item == nil || item.ID == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteChildOrder(ctx context.Context, id uint64) (int64, error) {
	if s == nil || s.db == nil || id == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Delete(&models.ChildOrder{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (s *Store) AggregateChildOrders(ctx context.Context) ([]repository.ChildOrderAggregate, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var rows []repository.ChildOrderAggregate
	err := s.db.WithContext(ctx).
		Model(&models.ChildOrder{}).
		Select("parent_order_id, " +
			"COALESCE(SUM(exec_qty), 0) AS total_exec_qty, " +
			"COALESCE(SUM(exec_qty * avg_px), 0) AS total_exec_amount, " +
			"COUNT(DISTINCT trade_date) AS traded_days_count").
		Where("parent_order_id <> ''").
		Group("parent_order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// --- Calendar events --------------------------------------------------------

func (s *Store) InsertCalendarEvent(ctx context.Context, item *models.CalendarEvent) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetCalendarEventByID(ctx context.Context, id uint64) (*models.CalendarEvent, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.CalendarEvent
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.CalendarEvent
	if err := s.db.WithContext(ctx).
		Model(&models.CalendarEvent{}).
		Order("start_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateCalendarEvent(ctx context.Context, item *models.CalendarEvent) error {
	if s == nil || s.db == nil || item == nil || item.ID == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteCalendarEvent(ctx context.Context, id uint64) (int64, error) {
	if s == nil || s.db == nil || id == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Delete(&models.CalendarEvent{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// --- Market snapshots -------------------------------------------------------

func (s *Store) UpsertMarketSnapshot(ctx context.Context, item *models.MarketSnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if strings.TrimSpace(item.Ticker) == "" || strings.TrimSpace(item.SnapshotDate) == "" {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ticker"}, {Name: "snapshot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"price",
			"all_day_vwap",
			"chg_pct_1d",
			"fetched_at",
		}),
	}).Create(item).Error
}

func (s *Store) ListMarketSnapshots(ctx context.Context, params repository.ListMarketSnapshotsParams) ([]models.MarketSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.MarketSnapshot{})
	if params.Ticker != nil && strings.TrimSpace(*params.Ticker) != "" {
		query = query.Where("ticker = ?", strings.TrimSpace(*params.Ticker))
	}
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.MarketSnapshot
	if err := query.
		Order("snapshot_date desc").
		Order("ticker asc").
		Limit(limit).Offset(offset).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- helpers ----------------------------------------------------------------

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = fallback
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
