// Package reconciling mantém os totais mensais de views coerentes com a atribuição por vídeo
package reconciling

import (
	"math"

	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
)

// Reconcile reparte os vídeos em len(monthly) faixas contíguas por posição e sobrescreve,
// em cada mês, VideoViews com a soma das views da faixa e UniqueVideoViews com 80% dela.
// Altera monthly no lugar. A faixa i vai de floor(i*n/m) até floor((i+1)*n/m), sem olhar a
// data de publicação dos vídeos. Com qualquer uma das listas vazia nada é alterado.
func Reconcile(monthly []domain.MonthlyRecord, perVideo []domain.VideoAttribution) {
	m, n := len(monthly), len(perVideo)
	if m == 0 || n == 0 {
		return
	}

	for i := range monthly {
		start, end := Bucket(i, n, m)

		sum := 0
		for _, a := range perVideo[start:end] {
			sum = addViews(sum, a.ViewCount)
		}

		monthly[i].VideoViews = sum
		monthly[i].UniqueVideoViews = int(math.Floor(float64(sum) * domain.UniqueViewsRatio))
	}
}

// Bucket devolve o intervalo [start, end) de vídeos atribuído ao mês i
func Bucket(i, videos, months int) (int, int) {
	return i * videos / months, (i + 1) * videos / months
}

// addViews soma views saturando em math.MaxInt
func addViews(sum, views int) int {
	if views <= 0 {
		return sum
	}
	if sum > math.MaxInt-views {
		return math.MaxInt
	}
	return sum + views
}
