package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFunnel(t *testing.T) {
	tests := []struct {
		name     string
		record   MonthlyRecord
		validate func(t *testing.T, stages []FunnelStage)
	}{
		{
			name: "Conversão relativa à etapa anterior",
			record: MonthlyRecord{
				Month:         "2025-06",
				VideoViews:    25000,
				SiteVisitors:  5800,
				CallsBooked:   55,
				CallsAccepted: 48,
				Closes:        Closes{HighTicket: 6, Discount: 3},
			},
			validate: func(t *testing.T, stages []FunnelStage) {
				require.Len(t, stages, 5)
				assert.Equal(t, StageVideoViews, stages[0].Stage)
				assert.Zero(t, stages[0].ConversionRate)
				assert.Equal(t, 23.2, stages[1].ConversionRate)
				assert.Equal(t, 76.8, stages[1].DropoffRate)
				assert.Equal(t, 0.95, stages[2].ConversionRate)
				assert.Equal(t, 87.27, stages[3].ConversionRate)
				assert.Equal(t, 12.73, stages[3].DropoffRate)
				assert.Equal(t, 9, stages[4].Count)
				assert.Equal(t, 18.75, stages[4].ConversionRate)
			},
		},
		{
			name:   "Etapa anterior zerada não divide por zero",
			record: MonthlyRecord{Month: "2025-06", VideoViews: 0, SiteVisitors: 10},
			validate: func(t *testing.T, stages []FunnelStage) {
				assert.Zero(t, stages[1].ConversionRate)
				assert.Zero(t, stages[1].DropoffRate)
				assert.Zero(t, stages[2].ConversionRate)
				assert.Equal(t, 100.0, stages[2].DropoffRate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildFunnel(tt.record))
		})
	}
}

func TestAllocateByCountry(t *testing.T) {
	tests := []struct {
		name     string
		totals   FunnelTotals
		shares   []CountryShare
		validate func(t *testing.T, breakdown []CountryBreakdown)
	}{
		{
			name:   "Distribuição padrão preserva os totais",
			totals: FunnelTotals{Leads: 100, CallsBooked: 30, Revenue: 50000},
			shares: DefaultCountryShares,
			validate: func(t *testing.T, breakdown []CountryBreakdown) {
				require.Len(t, breakdown, len(DefaultCountryShares))

				us := breakdown[0]
				assert.Equal(t, "US", us.Country)
				assert.Equal(t, 65, us.Leads)
				assert.Equal(t, 20, us.CallsBooked)
				assert.Equal(t, 16, us.CallsAccepted)
				assert.Equal(t, 32500.0, us.Revenue)
				assert.Equal(t, 500.0, us.ConversionRate)

				leads, calls, revenue := 0, 0, 0.0
				for _, item := range breakdown {
					leads += item.Leads
					calls += item.CallsBooked
					revenue += item.Revenue
				}
				assert.Equal(t, 100, leads)
				assert.Equal(t, 30, calls)
				assert.Equal(t, 50000.0, revenue)

				last := breakdown[len(breakdown)-1]
				assert.Equal(t, "BR", last.Country)
				assert.Equal(t, 2, last.Leads)
				assert.Equal(t, 0, last.CallsBooked)
			},
		},
		{
			name:   "Resto negativo é zerado",
			totals: FunnelTotals{Leads: 10},
			shares: []CountryShare{{Code: "A", Share: 0.6}, {Code: "B", Share: 0.6}, {Code: "C", Share: 0.2}},
			validate: func(t *testing.T, breakdown []CountryBreakdown) {
				assert.Equal(t, 6, breakdown[0].Leads)
				assert.Equal(t, 6, breakdown[1].Leads)
				assert.Equal(t, 0, breakdown[2].Leads)
				assert.Zero(t, breakdown[2].ConversionRate)
			},
		},
		{
			name:   "Totais zerados",
			totals: FunnelTotals{},
			shares: DefaultCountryShares,
			validate: func(t *testing.T, breakdown []CountryBreakdown) {
				for _, item := range breakdown {
					assert.Zero(t, item.Leads)
					assert.Zero(t, item.Revenue)
					assert.Zero(t, item.ConversionRate)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AllocateByCountry(tt.totals, tt.shares))
		})
	}
}

func TestUpstreamError(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("erro ao buscar pagamentos: %w", NewUpstreamError("payments", cause))

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrMalformedInput)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "payments", upstream.Source)
	assert.Equal(t, "upstream unavailable: payments: connection reset", upstream.Error())
}

func TestPipelineReport(t *testing.T) {
	var nilReport *PipelineReport
	nilReport.Add(FallbackMissingMonth, "2025-01", "")
	assert.Zero(t, nilReport.Count())
	assert.Empty(t, nilReport.CountByKind())

	report := NewPipelineReport()
	report.Add(FallbackMissingMonth, "2025-01", "")
	report.Add(FallbackMissingMonth, "2025-02", "")
	report.Add(FallbackLikeCountInvalid, "vid-1", "abc")

	assert.Equal(t, 3, report.Count())
	assert.Equal(t, map[FallbackKind]int{FallbackMissingMonth: 2, FallbackLikeCountInvalid: 1}, report.CountByKind())
}

func TestMonthlyMetricChanges_JSON(t *testing.T) {
	value := 25.0

	empty, err := json.Marshal(MonthlyMetricChanges{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(empty))

	filled, err := json.Marshal(MonthlyMetricChanges{TotalCashCollected: &value})
	require.NoError(t, err)
	assert.Contains(t, string(filled), `"totalCashCollected":25`)
	assert.Contains(t, string(filled), `"totalCallsBooked":null`)
}
