package repository

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
)

func TestMonthlyQueries(t *testing.T) {
	months := []string{"2025-05", "2025-06"}

	tests := []struct {
		name     string
		build    func([]string) (string, []interface{}, error)
		expected string
	}{
		{
			name:     "Agendamentos filtrados pela janela de meses",
			build:    monthlyCallsQuery,
			expected: "SELECT cmc.month, cmc.calls_booked, cmc.calls_accepted, cmc.calls_showed, cmc.youtube_views, cmc.youtube_unique_views, cmc.unique_visitors FROM cal_monthly_calls cmc WHERE cmc.month = ANY($1) ORDER BY cmc.month ASC",
		},
		{
			name:     "Pagamentos filtrados pela janela de meses",
			build:    monthlyPaymentsQuery,
			expected: "SELECT kmr.month, kmr.new_cash_pif, kmr.new_cash_installments, kmr.by_product, kmr.total_cash_collected, kmr.high_ticket_closes, kmr.discount_closes, kmr.high_ticket_pif, kmr.high_ticket_installments, kmr.discount_pif, kmr.discount_installments FROM kajabi_monthly_revenue kmr WHERE kmr.month = ANY($1) ORDER BY kmr.month ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build(months)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
			require.Len(t, args, 1)
			assert.Equal(t, pq.Array(months), args[0])
		})
	}
}

func TestCallBookingRow_ToDomain(t *testing.T) {
	tests := []struct {
		name     string
		row      callBookingRow
		validate func(t *testing.T, call domain.CallBookingMonth)
	}{
		{
			name: "Colunas opcionais preenchidas",
			row: callBookingRow{
				Month:              "2025-06",
				CallsBooked:        55,
				CallsAccepted:      48,
				YouTubeViews:       25000,
				UniqueVisitors:     5800,
				CallsShowed:        sql.NullInt64{Int64: 44, Valid: true},
				YouTubeUniqueViews: sql.NullInt64{Int64: 20000, Valid: true},
			},
			validate: func(t *testing.T, call domain.CallBookingMonth) {
				assert.Equal(t, 44, call.CallsShowed)
				require.NotNil(t, call.YouTubeUniqueViews)
				assert.Equal(t, 20000, *call.YouTubeUniqueViews)
			},
		},
		{
			name: "Visualizações únicas ausentes ficam nil",
			row:  callBookingRow{Month: "2025-06", CallsBooked: 55, CallsAccepted: 48, YouTubeViews: 25000},
			validate: func(t *testing.T, call domain.CallBookingMonth) {
				assert.Nil(t, call.YouTubeUniqueViews)
				assert.Zero(t, call.CallsShowed)
				assert.Equal(t, 55, call.CallsBooked)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.row.toDomain())
		})
	}
}

func TestPaymentRow_ToDomain(t *testing.T) {
	tests := []struct {
		name     string
		row      paymentRow
		validate func(t *testing.T, payment domain.PaymentMonth, err error)
	}{
		{
			name: "Formato com closes agregados e by_product",
			row: paymentRow{
				Month:               "2025-06",
				NewCashPaidInFull:   25000,
				NewCashInstallments: 10000,
				ByProduct:           []byte(`{"high_ticket_coaching": 25000, "self_paced_course": 10000}`),
				TotalCashCollected:  sql.NullFloat64{Float64: 45000, Valid: true},
				HighTicketCloses:    sql.NullInt64{Int64: 6, Valid: true},
				DiscountCloses:      sql.NullInt64{Int64: 3, Valid: true},
			},
			validate: func(t *testing.T, payment domain.PaymentMonth, err error) {
				require.NoError(t, err)
				require.NotNil(t, payment.Closes)
				assert.Equal(t, 6, payment.Closes.HighTicket)
				assert.Equal(t, 3, payment.Closes.Discount)
				assert.Nil(t, payment.HighTicketCloses)
				require.NotNil(t, payment.TotalCashCollected)
				assert.Equal(t, 45000.0, *payment.TotalCashCollected)
				assert.Equal(t, 10000.0, payment.NewCashCollected.ByProduct["self_paced_course"])
			},
		},
		{
			name: "Formato com closes separados por forma de pagamento",
			row: paymentRow{
				Month:                  "2025-06",
				NewCashPaidInFull:      25000,
				HighTicketPaidInFull:   sql.NullInt64{Int64: 4, Valid: true},
				HighTicketInstallments: sql.NullInt64{Int64: 2, Valid: true},
				DiscountPaidInFull:     sql.NullInt64{Int64: 1, Valid: true},
			},
			validate: func(t *testing.T, payment domain.PaymentMonth, err error) {
				require.NoError(t, err)
				assert.Nil(t, payment.Closes)
				assert.Nil(t, payment.TotalCashCollected)
				assert.Nil(t, payment.NewCashCollected.ByProduct)
				require.NotNil(t, payment.HighTicketCloses)
				assert.Equal(t, 6, payment.HighTicketCloses.Total())
				require.NotNil(t, payment.DiscountCloses)
				assert.Equal(t, 1, payment.DiscountCloses.Total())
			},
		},
		{
			name: "by_product inválido retorna erro",
			row:  paymentRow{Month: "2025-06", ByProduct: []byte(`[1,2`)},
			validate: func(t *testing.T, payment domain.PaymentMonth, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "2025-06")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := tt.row.toDomain()
			tt.validate(t, payment, err)
		})
	}
}
