package merging

import (
	"errors"
	"fmt"
)

// Erros que bloqueiam um merge. São os únicos: problemas em campos
// individuais viram avisos e nunca impedem a aceitação do documento.
var (
	ErrInvalidJSON = errors.New("invalid JSON document")
	ErrNotObject   = errors.New("JSON document is not an object")
)

// ErrorKind classifica a falha do merge
type ErrorKind string

const (
	KindSyntax    ErrorKind = "syntax"
	KindNotObject ErrorKind = "not_object"
)

// MergeError é um erro com contexto adicional para o merge
type MergeError struct {
	Err     error     // Erro base
	Kind    ErrorKind // Tipo da falha
	Code    string    // Código de erro da aplicação
	Details string    // Mensagem original do parser
}

// Error implementa a interface error
func (e *MergeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError cria um novo MergeError
func NewMergeError(err error, kind ErrorKind, code string, details string) *MergeError {
	return &MergeError{
		Err:     err,
		Kind:    kind,
		Code:    code,
		Details: details,
	}
}

// WarningReason identifica por que um campo foi ignorado ou convertido
type WarningReason string

const (
	ReasonUnknownField WarningReason = "unknown_field"
	ReasonNotObject    WarningReason = "not_object"
	ReasonNotArray     WarningReason = "not_array"
	ReasonWrongLength  WarningReason = "wrong_length"
	ReasonNotNumeric   WarningReason = "not_numeric"
	ReasonTruncated    WarningReason = "truncated"
	ReasonNotText      WarningReason = "not_text"
	ReasonNotBoolean   WarningReason = "not_boolean"
)

// FieldWarning registra um campo que caiu na política leniente: foi
// ignorado (valor anterior mantido) ou convertido para o valor padrão
type FieldWarning struct {
	Field   string        `json:"field"`
	Reason  WarningReason `json:"reason"`
	Details string        `json:"details,omitempty"`
}

func (w FieldWarning) String() string {
	if w.Details == "" {
		return fmt.Sprintf("%s: %s", w.Field, w.Reason)
	}
	return fmt.Sprintf("%s: %s (%s)", w.Field, w.Reason, w.Details)
}
