package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	paymentTable = "kajabi_monthly_revenue kmr"
)

type PaymentRepository interface {
	GetMonthlyPayments(ctx context.Context) ([]domain.PaymentMonth, error)
}

type paymentRepository struct {
	conn   postgres.Queryer
	months int
	now    func() time.Time
}

// NewPaymentRepository lê a série exportada pela plataforma de pagamentos, limitada aos últimos meses
func NewPaymentRepository(conn postgres.Queryer, months int) PaymentRepository {
	return &paymentRepository{
		conn:   conn,
		months: months,
		now:    time.Now,
	}
}

// paymentRow espelha a tabela; as colunas de fechamento aceitam os dois formatos exportados
type paymentRow struct {
	Month                  string
	NewCashPaidInFull      float64
	NewCashInstallments    float64
	ByProduct              []byte
	TotalCashCollected     sql.NullFloat64
	HighTicketCloses       sql.NullInt64
	DiscountCloses         sql.NullInt64
	HighTicketPaidInFull   sql.NullInt64
	HighTicketInstallments sql.NullInt64
	DiscountPaidInFull     sql.NullInt64
	DiscountInstallments   sql.NullInt64
}

func (r *paymentRepository) GetMonthlyPayments(ctx context.Context) ([]domain.PaymentMonth, error) {
	query, args, err := monthlyPaymentsQuery(utils.LastMonths(r.now(), r.months))
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.PaymentMonth, 0, r.months)
	for rows.Next() {
		var row paymentRow
		err := rows.Scan(
			&row.Month,
			&row.NewCashPaidInFull,
			&row.NewCashInstallments,
			&row.ByProduct,
			&row.TotalCashCollected,
			&row.HighTicketCloses,
			&row.DiscountCloses,
			&row.HighTicketPaidInFull,
			&row.HighTicketInstallments,
			&row.DiscountPaidInFull,
			&row.DiscountInstallments,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamentos mensais: %w", err)
		}

		payment, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payments, nil
}

func monthlyPaymentsQuery(months []string) (string, []interface{}, error) {
	return squirrel.
		Select(
			"kmr.month",
			"kmr.new_cash_pif",
			"kmr.new_cash_installments",
			"kmr.by_product",
			"kmr.total_cash_collected",
			"kmr.high_ticket_closes",
			"kmr.discount_closes",
			"kmr.high_ticket_pif",
			"kmr.high_ticket_installments",
			"kmr.discount_pif",
			"kmr.discount_installments",
		).
		From(paymentTable).
		Where("kmr.month = ANY(?)", pq.Array(months)).
		OrderBy("kmr.month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (row paymentRow) toDomain() (domain.PaymentMonth, error) {
	payment := domain.PaymentMonth{
		Month: row.Month,
		NewCashCollected: domain.PaymentSplit{
			PaidInFull:   row.NewCashPaidInFull,
			Installments: row.NewCashInstallments,
		},
	}

	if len(row.ByProduct) > 0 {
		if err := json.Unmarshal(row.ByProduct, &payment.NewCashCollected.ByProduct); err != nil {
			return domain.PaymentMonth{}, fmt.Errorf("erro ao decodificar by_product do mês %s: %w", row.Month, err)
		}
	}

	if row.TotalCashCollected.Valid {
		total := row.TotalCashCollected.Float64
		payment.TotalCashCollected = &total
	}

	if row.HighTicketCloses.Valid || row.DiscountCloses.Valid {
		payment.Closes = &domain.PaymentCloses{
			HighTicket: int(row.HighTicketCloses.Int64),
			Discount:   int(row.DiscountCloses.Int64),
		}
	}

	if row.HighTicketPaidInFull.Valid || row.HighTicketInstallments.Valid {
		payment.HighTicketCloses = &domain.CloseSplit{
			PaidInFull:   int(row.HighTicketPaidInFull.Int64),
			Installments: int(row.HighTicketInstallments.Int64),
		}
	}

	if row.DiscountPaidInFull.Valid || row.DiscountInstallments.Valid {
		payment.DiscountCloses = &domain.CloseSplit{
			PaidInFull:   int(row.DiscountPaidInFull.Int64),
			Installments: int(row.DiscountInstallments.Int64),
		}
	}

	return payment, nil
}
