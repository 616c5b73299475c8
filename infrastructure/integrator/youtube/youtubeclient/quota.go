package youtubeclient

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Custo em unidades de cota de cada endpoint
const (
	SearchCost     = 100
	VideoListCost  = 1
	quotaDayLayout = "2006-01-02"
)

var ErrQuotaExceeded = errors.New("cota diária da YouTube Data API esgotada")

// QuotaTracker controla o consumo diário de cota. O contador zera quando a data do relógio muda.
type QuotaTracker struct {
	mu    sync.Mutex
	limit int
	used  int
	day   string
	now   func() time.Time
}

func NewQuotaTracker(limit int, now func() time.Time) *QuotaTracker {
	if now == nil {
		now = time.Now
	}
	return &QuotaTracker{limit: limit, now: now}
}

// Consume reserva unidades de cota ou retorna ErrQuotaExceeded sem consumir nada
func (q *QuotaTracker) Consume(units int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.resetIfNewDay()

	if q.used+units > q.limit {
		return fmt.Errorf("%w: usadas %d de %d, necessárias %d", ErrQuotaExceeded, q.used, q.limit, units)
	}

	q.used += units
	return nil
}

func (q *QuotaTracker) Used() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.resetIfNewDay()
	return q.used
}

func (q *QuotaTracker) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.resetIfNewDay()
	return q.limit - q.used
}

func (q *QuotaTracker) resetIfNewDay() {
	today := q.now().Format(quotaDayLayout)
	if q.day != today {
		q.day = today
		q.used = 0
	}
}
