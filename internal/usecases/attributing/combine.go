package attributing

import (
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
)

// Combine junta cada vídeo à sua atribuição. As métricas por view usam as views da atribuição,
// as mesmas somadas no total mensal, e ficam em 0 quando elas são 0.
func Combine(videos []domain.VideoRecord, attributions []domain.VideoAttribution) []domain.CombinedVideoData {
	byVideo := make(map[string]domain.VideoAttribution, len(attributions))
	for _, a := range attributions {
		byVideo[a.VideoID] = a
	}

	combined := make([]domain.CombinedVideoData, 0, len(videos))
	for _, video := range videos {
		a := byVideo[video.VideoID]

		item := domain.CombinedVideoData{
			VideoRecord:         video,
			ViewCount:           a.ViewCount,
			SurrogateViews:      a.SurrogateViews,
			LeadsGenerated:      a.LeadsGenerated,
			CallsBooked:         a.CallsBooked,
			CallsAccepted:       a.CallsAccepted,
			ClosedDeals:         a.ClosedDeals,
			PaidInFullDeals:     a.PaidInFullDeals,
			InstallmentDeals:    a.InstallmentDeals,
			Revenue:             a.Revenue,
			PaidInFullRevenue:   a.PaidInFullRevenue,
			InstallmentsRevenue: a.InstallmentsRevenue,
		}

		if a.ViewCount > 0 {
			item.RevenuePerView = a.Revenue / float64(a.ViewCount)
			item.ViewToCloseRate = float64(a.ClosedDeals) / float64(a.ViewCount) * 100
		}

		combined = append(combined, item)
	}

	return combined
}

// TopPerformer devolve o vídeo com maior receita; em caso de empate fica o primeiro
func TopPerformer(combined []domain.CombinedVideoData) *domain.CombinedVideoData {
	if len(combined) == 0 {
		return nil
	}

	top := 0
	for i := range combined {
		if combined[i].Revenue > combined[top].Revenue {
			top = i
		}
	}

	best := combined[top]
	return &best
}

// Totals soma leads, chamadas e receita de todos os vídeos
func Totals(attributions []domain.VideoAttribution) domain.FunnelTotals {
	var totals domain.FunnelTotals
	for _, a := range attributions {
		totals.Leads += a.LeadsGenerated
		totals.CallsBooked += a.CallsBooked
		totals.Revenue += a.Revenue
	}
	return totals
}
