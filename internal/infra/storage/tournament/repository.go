package tournament

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	"github.com/goatcricket/GCB-BookingService/pkg/dbmetrics"
	"github.com/goatcricket/GCB-BookingService/pkg/psqlbuilder"
)

var tournamentColumns = []string{
	"id",
	"name",
	"description",
	"start_date",
	"end_date",
	"start_time",
	"venue_id",
	"max_teams",
	"entry_fee",
	"status",
	"contact_person",
	"contact_email",
	"contact_phone",
	"rules",
	"prize_pool",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с турнирами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория турниров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает турнир
func (r *Repository) Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tournaments").
		Columns(
			"name",
			"description",
			"start_date",
			"end_date",
			"start_time",
			"venue_id",
			"max_teams",
			"entry_fee",
			"status",
			"contact_person",
			"contact_email",
			"contact_phone",
			"rules",
			"prize_pool",
		).
		Values(
			t.Name,
			t.Description,
			t.StartDate,
			t.EndDate,
			t.StartTime,
			t.VenueID,
			t.MaxTeams,
			t.EntryFee,
			t.Status,
			t.ContactPerson,
			t.ContactEmail,
			t.ContactPhone,
			t.Rules,
			t.PrizePool,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает турнир по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tournament, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tournamentColumns...).
		From("tournaments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTournamentRow(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan tournament: %v", ErrScanRow, err)
	}

	return t, nil
}

// ListUpcoming возвращает турниры с датой начала не раньше from, ближайшие первыми
func (r *Repository) ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Tournament, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tournamentColumns...).
		From("tournaments").
		Where(squirrel.GtOrEq{"start_date": from}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tournaments := make([]*domain.Tournament, 0)
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListUpcoming - scan row: %v", ErrScanRow, err)
		}
		tournaments = append(tournaments, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - rows error: %v", ErrScanRow, err)
	}

	return tournaments, nil
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanTournamentRow(row *sql.Row) (*domain.Tournament, error) {
	return scanTournament(row)
}

func scanTournament(row scannable) (*domain.Tournament, error) {
	var t domain.Tournament
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.StartDate,
		&t.EndDate,
		&t.StartTime,
		&t.VenueID,
		&t.MaxTeams,
		&t.EntryFee,
		&t.Status,
		&t.ContactPerson,
		&t.ContactEmail,
		&t.ContactPhone,
		&t.Rules,
		&t.PrizePool,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
