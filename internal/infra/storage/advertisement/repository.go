package advertisement

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

var adColumns = []string{
	"id",
	"brand_name",
	"contact_person_name",
	"email",
	"mobile_no",
	"promotion_type",
	"company_details",
	"advertise_duration",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с рекламными заявками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория рекламных заявок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает заявку на спонсорство в статусе pending
func (r *Repository) Create(ctx context.Context, ad *domain.Advertisement) (*domain.Advertisement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("advertisements").
		Columns(
			"brand_name",
			"contact_person_name",
			"email",
			"mobile_no",
			"promotion_type",
			"company_details",
			"advertise_duration",
			"status",
		).
		Values(
			ad.BrandName,
			ad.ContactPersonName,
			ad.Email,
			ad.MobileNo,
			ad.PromotionType,
			ad.CompanyDetails,
			ad.AdvertiseDuration,
			ad.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ad.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ad.CreatedAt = createdAt.Time
	ad.UpdatedAt = updatedAt.Time

	return ad, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(adColumns...).
		From("advertisements").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var ad domain.Advertisement
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ad.ID,
		&ad.BrandName,
		&ad.ContactPersonName,
		&ad.Email,
		&ad.MobileNo,
		&ad.PromotionType,
		&ad.CompanyDetails,
		&ad.AdvertiseDuration,
		&ad.Status,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdvertisementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan advertisement: %v", ErrScanRow, err)
	}

	ad.CreatedAt = createdAt.Time
	ad.UpdatedAt = updatedAt.Time

	return &ad, nil
}

// List возвращает заявки, новые первыми, с опциональным фильтром по статусу
func (r *Repository) List(ctx context.Context, status *domain.AdvertisementStatus) ([]*domain.Advertisement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(adColumns...).
		From("advertisements").
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ads := make([]*domain.Advertisement, 0)
	for rows.Next() {
		var ad domain.Advertisement
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&ad.ID,
			&ad.BrandName,
			&ad.ContactPersonName,
			&ad.Email,
			&ad.MobileNo,
			&ad.PromotionType,
			&ad.CompanyDetails,
			&ad.AdvertiseDuration,
			&ad.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		ad.CreatedAt = createdAt.Time
		ad.UpdatedAt = updatedAt.Time
		ads = append(ads, &ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return ads, nil
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AdvertisementStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("advertisements").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAdvertisementNotFound
	}

	return nil
}
