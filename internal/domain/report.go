package domain

type FallbackKind string

const (
	FallbackMonthMismatch       FallbackKind = "month_mismatch"
	FallbackMissingMonth        FallbackKind = "missing_month"
	FallbackInvalidMonth        FallbackKind = "invalid_month"
	FallbackDuplicateMonth      FallbackKind = "duplicate_month"
	FallbackUniqueViewsDerived  FallbackKind = "unique_views_derived"
	FallbackCountClamped        FallbackKind = "count_clamped"
	FallbackCashTotalRecomputed FallbackKind = "cash_total_recomputed"
	FallbackViewCountSurrogate  FallbackKind = "view_count_surrogate"
	FallbackLikeCountInvalid    FallbackKind = "like_count_invalid"
)

// Fallback registra um valor substituído durante o processamento
type Fallback struct {
	Kind   FallbackKind `json:"kind"`
	Key    string       `json:"key"`
	Detail string       `json:"detail,omitempty"`
}

// PipelineReport acumula os fallbacks de uma execução. Um *PipelineReport nil ignora os registros.
type PipelineReport struct {
	Fallbacks []Fallback `json:"fallbacks"`
}

func NewPipelineReport() *PipelineReport {
	return &PipelineReport{Fallbacks: []Fallback{}}
}

func (r *PipelineReport) Add(kind FallbackKind, key, detail string) {
	if r == nil {
		return
	}
	r.Fallbacks = append(r.Fallbacks, Fallback{Kind: kind, Key: key, Detail: detail})
}

func (r *PipelineReport) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Fallbacks)
}

func (r *PipelineReport) CountByKind() map[FallbackKind]int {
	counts := make(map[FallbackKind]int)
	if r == nil {
		return counts
	}
	for _, f := range r.Fallbacks {
		counts[f.Kind]++
	}
	return counts
}
