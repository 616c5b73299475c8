package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/pkg/utils"
)

const (
	callBookingTable = "cal_monthly_calls cmc"
)

type CallBookingRepository interface {
	GetMonthlyCalls(ctx context.Context) ([]domain.CallBookingMonth, error)
}

type callBookingRepository struct {
	conn   postgres.Queryer
	months int
	now    func() time.Time
}

// NewCallBookingRepository lê a série exportada pela ferramenta de agendamento, limitada aos últimos meses
func NewCallBookingRepository(conn postgres.Queryer, months int) CallBookingRepository {
	return &callBookingRepository{
		conn:   conn,
		months: months,
		now:    time.Now,
	}
}

type callBookingRow struct {
	Month              string
	CallsBooked        int
	CallsAccepted      int
	CallsShowed        sql.NullInt64
	YouTubeViews       int
	YouTubeUniqueViews sql.NullInt64
	UniqueVisitors     int
}

func (r *callBookingRepository) GetMonthlyCalls(ctx context.Context) ([]domain.CallBookingMonth, error) {
	query, args, err := monthlyCallsQuery(utils.LastMonths(r.now(), r.months))
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	calls := make([]domain.CallBookingMonth, 0, r.months)
	for rows.Next() {
		var row callBookingRow
		err := rows.Scan(
			&row.Month,
			&row.CallsBooked,
			&row.CallsAccepted,
			&row.CallsShowed,
			&row.YouTubeViews,
			&row.YouTubeUniqueViews,
			&row.UniqueVisitors,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamentos mensais: %w", err)
		}
		calls = append(calls, row.toDomain())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return calls, nil
}

func monthlyCallsQuery(months []string) (string, []interface{}, error) {
	return squirrel.
		Select("cmc.month, cmc.calls_booked, cmc.calls_accepted, cmc.calls_showed, cmc.youtube_views, cmc.youtube_unique_views, cmc.unique_visitors").
		From(callBookingTable).
		Where("cmc.month = ANY(?)", pq.Array(months)).
		OrderBy("cmc.month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (row callBookingRow) toDomain() domain.CallBookingMonth {
	call := domain.CallBookingMonth{
		Month:          row.Month,
		CallsBooked:    row.CallsBooked,
		CallsAccepted:  row.CallsAccepted,
		YouTubeViews:   row.YouTubeViews,
		UniqueVisitors: row.UniqueVisitors,
	}

	if row.CallsShowed.Valid {
		call.CallsShowed = int(row.CallsShowed.Int64)
	}
	if row.YouTubeUniqueViews.Valid {
		unique := int(row.YouTubeUniqueViews.Int64)
		call.YouTubeUniqueViews = &unique
	}

	return call
}
