package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable indica que uma fonte externa (vídeos, agendamentos, pagamentos) falhou
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrMalformedInput indica um registro de origem fora do formato esperado
	ErrMalformedInput = errors.New("malformed input")
)

// UpstreamError carrega a mensagem da fonte que falhou
type UpstreamError struct {
	Source  string
	Message string
	Err     error
}

func NewUpstreamError(source string, err error) *UpstreamError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}

	return &UpstreamError{
		Source:  source,
		Message: msg,
		Err:     err,
	}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrUpstreamUnavailable, e.Source, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}
