package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	"github.com/goatcricket/GCB-BookingService/pkg/dbmetrics"
	"github.com/goatcricket/GCB-BookingService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

// Repository репозиторий для работы с отзывами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает отзыв
// Уникальный индекс (venue_id, user_id) переводится в ErrDuplicateReview
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("venue_id", "user_id", "rating", "comment").
		Values(review.VenueID, review.UserID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time

	return review, nil
}

// ListByVenue возвращает отзывы площадки, новые первыми
func (r *Repository) ListByVenue(ctx context.Context, venueID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "venue_id", "user_id", "rating", "comment", "created_at").
		From("reviews").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		var createdAt sql.NullTime

		err := rows.Scan(&rev.ID, &rev.VenueID, &rev.UserID, &rev.Rating, &rev.Comment, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByVenue - scan row: %v", ErrScanRow, err)
		}

		rev.CreatedAt = createdAt.Time
		reviews = append(reviews, &rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// AverageRatingByVenue возвращает средний рейтинг площадки по отзывам
// Если отзывов нет, возвращает (0, false)
func (r *Repository) AverageRatingByVenue(ctx context.Context, venueID int64) (float64, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("AVG(rating)").
		From("reviews").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return 0, false, fmt.Errorf("%w: AverageRatingByVenue - build select query: %v", ErrBuildQuery, err)
	}

	var avg sql.NullFloat64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("%w: AverageRatingByVenue - scan avg: %v", ErrScanRow, err)
	}

	if !avg.Valid {
		return 0, false, nil
	}

	return avg.Float64, true, nil
}
