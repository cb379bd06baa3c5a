package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/merging"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
)

var (
	ErrMissingDataFile = errors.New("nenhum arquivo de dados informado (use --data ou DASHBOARD_DATA_FILE)")
	ErrUnknownFormat   = errors.New("formato de relatório desconhecido")
)

// CommandError associa um erro de comando ao código de erro da aplicação
type CommandError struct {
	Code string
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func newCommandError(code string, err error) *CommandError {
	return &CommandError{Code: code, Err: err}
}

// errorCode classifica o erro para o código estável da aplicação
func errorCode(err error) string {
	var commandErr *CommandError
	if errors.As(err, &commandErr) {
		return commandErr.Code
	}

	var mergeErr *merging.MergeError
	if errors.As(err, &mergeErr) && mergeErr.Code != "" {
		return mergeErr.Code
	}

	switch {
	case errors.Is(err, merging.ErrInvalidJSON):
		return appErrors.ErrInvalidJSON
	case errors.Is(err, merging.ErrNotObject):
		return appErrors.ErrNotObject
	default:
		return appErrors.ErrInternal
	}
}

// writeError escreve o erro em JSON e devolve o código de saída do processo
func writeError(w io.Writer, err error) int {
	var details any
	var mergeErr *merging.MergeError
	if errors.As(err, &mergeErr) {
		details = map[string]string{"kind": string(mergeErr.Kind)}
	}

	appErr := appErrors.FromError(err, errorCode(err))
	return appErrors.WriteError(w, appErr.Code, appErr.Message, details)
}
