package appErrors

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da aplicação
const (
	// Erros de validação do documento (1000-1999)
	ErrInvalidJSON      = "VAL_001" // Documento JSON com erro de sintaxe
	ErrNotObject        = "VAL_002" // Documento JSON não é um objeto
	ErrInvalidArgument  = "VAL_003" // Argumento de linha de comando inválido
	ErrInvalidReportFmt = "VAL_004" // Formato de relatório desconhecido

	// Erros de entrada e saída (3000-3999)
	ErrReadInput   = "IO_001" // Falha ao ler arquivo ou entrada padrão
	ErrWriteOutput = "IO_002" // Falha ao escrever a saída

	// Erros internos (5000-5999)
	ErrInternal      = "SRV_001" // Erro interno
	ErrConfiguration = "SRV_002" // Erro ao carregar configuração
)

// Mapeamento de códigos de erro para código de saída do processo
var exitCodeMap = map[string]int{
	ErrInvalidJSON:      2,
	ErrNotObject:        2,
	ErrInvalidArgument:  64,
	ErrInvalidReportFmt: 64,
	ErrReadInput:        66,
	ErrWriteOutput:      74,
	ErrInternal:         1,
	ErrConfiguration:    78,
}

// AppError representa um erro padronizado da aplicação
type AppError struct {
	Code    string `json:"code"`              // Código de erro estável
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func (e AppError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// ExitCode retorna o código de saída do processo para o código de erro
func ExitCode(code string) int {
	status, exists := exitCodeMap[code]
	if !exists {
		return 1
	}
	return status
}

// WriteError escreve o erro padronizado em JSON no writer informado
// e devolve o código de saída correspondente
func WriteError(w io.Writer, code string, message string, details any) int {
	appErr := AppError{
		Code:    code,
		Message: message,
		Details: details,
	}

	_ = json.NewEncoder(w).Encode(appErr)
	return ExitCode(code)
}

// FromError cria um erro da aplicação a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro padronizado
func FromError(err error, code string) AppError {
	if err == nil {
		return AppError{
			Code:    ErrInternal,
			Message: "Erro desconhecido",
		}
	}

	return AppError{
		Code:    code,
		Message: err.Error(),
	}
}
