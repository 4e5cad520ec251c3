package venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	"github.com/goatcricket/GCB-BookingService/pkg/dbmetrics"
	"github.com/goatcricket/GCB-BookingService/pkg/psqlbuilder"
)

var venueColumns = []string{
	"id",
	"name",
	"address",
	"city",
	"phone",
	"email",
	"description",
	"rating",
	"created_at",
}

var courtColumns = []string{
	"id",
	"venue_id",
	"name",
	"capacity",
	"price_per_hour",
	"description",
	"is_active",
	"created_at",
}

// Repository репозиторий для работы с площадками и кортами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListVenues возвращает список площадок с поиском и сортировкой
// Поиск идет по name, city и address (ILIKE), сортировка по умолчанию - рейтинг по убыванию
func (r *Repository) ListVenues(ctx context.Context, filter domain.VenueFilter) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(venueColumns...).From("venues")

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"city": pattern},
			squirrel.ILike{"address": pattern},
		})
	}

	switch filter.OrderBy {
	case "name":
		selectBuilder = selectBuilder.OrderBy("name ASC")
	case "rating":
		selectBuilder = selectBuilder.OrderBy("rating DESC")
	case "created_at":
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	default:
		selectBuilder = selectBuilder.OrderBy("rating DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListVenues - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVenues - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		var v domain.Venue
		var createdAt sql.NullTime

		err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Address,
			&v.City,
			&v.Phone,
			&v.Email,
			&v.Description,
			&v.Rating,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListVenues - scan row: %v", ErrScanRow, err)
		}

		v.CreatedAt = createdAt.Time
		venues = append(venues, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVenues - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// GetVenueByID получает площадку по ID
func (r *Repository) GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Venue
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.Name,
		&v.Address,
		&v.City,
		&v.Phone,
		&v.Email,
		&v.Description,
		&v.Rating,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueByID - scan venue: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time

	return &v, nil
}

// ListCourtsByVenue возвращает корты площадки
// activeOnly ограничивает выборку активными кортами
func (r *Repository) ListCourtsByVenue(ctx context.Context, venueID int64, activeOnly bool) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourtsByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourtsByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCourts(rows)
}

// GetCourtByID получает корт по ID
func (r *Repository) GetCourtByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Court
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.VenueID,
		&c.Name,
		&c.Capacity,
		&c.PricePerHour,
		&c.Description,
		&c.IsActive,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtByID - scan court: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time

	return &c, nil
}

// CountCourtsByVenue возвращает количество кортов площадки
func (r *Repository) CountCourtsByVenue(ctx context.Context, venueID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("courts").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountCourtsByVenue - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCourtsByVenue - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanCourts сканирует результаты запроса в слайс кортов
func scanCourts(rows *sql.Rows) ([]*domain.Court, error) {
	courts := make([]*domain.Court, 0)

	for rows.Next() {
		var c domain.Court
		var createdAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.VenueID,
			&c.Name,
			&c.Capacity,
			&c.PricePerHour,
			&c.Description,
			&c.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCourts - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		courts = append(courts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCourts - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}
