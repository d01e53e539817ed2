package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnauthorized            = NewAppError("UNAUTHORIZED", "Não autorizado", http.StatusUnauthorized)
	ErrBadRequest              = NewAppError("BAD_REQUEST", "Requisição inválida", http.StatusBadRequest)
	ErrSectorNotFound          = NewAppError("SECTOR_NOT_FOUND", "Setor não encontrado", http.StatusNotFound)
	ErrServiceCategoryNotFound = NewAppError("CATEGORY_NOT_FOUND", "Categoria de serviço não encontrada", http.StatusNotFound)
	ErrSubCategoryNotFound     = NewAppError("SUBCATEGORY_NOT_FOUND", "Subcategoria não encontrada", http.StatusNotFound)
	ErrReorderPersistence      = NewAppError("REORDER_PERSISTENCE_ERROR", "Não foi possível salvar a nova ordem", http.StatusInternalServerError)
	ErrReorderInFlight         = NewAppError("REORDER_IN_PROGRESS", "Já existe uma reordenação em andamento", http.StatusConflict)
	ErrMappingGap              = NewAppError("MAPPING_GAP", "Nível sem tipo de atributo no mapeamento da categoria", http.StatusUnprocessableEntity)
	ErrInvalidMapping          = NewAppError("INVALID_LEVEL_MAPPING", "Mapeamento de níveis inválido", http.StatusBadRequest)
	ErrDepthInUse              = NewAppError("CONFLICT", "Existem subcategorias abaixo da nova profundidade", http.StatusConflict)
	ErrRateLimited             = NewAppError("RATE_LIMIT_EXCEEDED", "Muitas requisicoes. Tente novamente em alguns minutos.", http.StatusTooManyRequests)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// FromError converte qualquer erro no AppError correspondente, incluindo os erros de
// reordenação e de mapeamento de níveis.
func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	var persistErr *ordering.ReorderPersistenceError
	if errors.As(err, &persistErr) {
		return ErrReorderPersistence.WithError(err).WithDetails(map[string]interface{}{
			"updates": len(persistErr.Updates),
		})
	}
	if errors.Is(err, ordering.ErrReorderInFlight) {
		return ErrReorderInFlight.WithError(err)
	}
	if errors.Is(err, ordering.ErrIndexOutOfRange) {
		return NewValidationError("index", "posição fora da lista").WithError(err)
	}

	var gapErr *taxonomy.MappingGapError
	if errors.As(err, &gapErr) {
		return ErrMappingGap.WithError(err).WithDetails(map[string]interface{}{
			"level": gapErr.Level,
		})
	}
	var mappingErr *taxonomy.MappingError
	if errors.As(err, &mappingErr) {
		return ErrInvalidMapping.WithError(err).WithDetails(map[string]interface{}{
			"level":  mappingErr.Level,
			"reason": mappingErr.Reason,
		})
	}
	var depthErr *taxonomy.DepthError
	if errors.As(err, &depthErr) {
		return NewValidationError("level", fmt.Sprintf("profundidade deve estar entre %d e %d", taxonomy.MinDepth, taxonomy.MaxDepth)).WithError(err)
	}
	var placementErr *taxonomy.PlacementError
	if errors.As(err, &placementErr) {
		return ErrInvalidMapping.WithError(err).WithDetails(map[string]interface{}{
			"level":  placementErr.Level,
			"reason": placementErr.Reason,
		})
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Requisição cancelada pelo cliente", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Erro desconhecido", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

func NewDatabaseError(err error) *AppError {
	return WrapError(err, "DATABASE_ERROR", "Erro ao executar operação no banco de dados", http.StatusInternalServerError)
}

func NewConflictError(resource string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    fmt.Sprintf("%s já existe", resource),
		StatusCode: http.StatusConflict,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		translatedField := translateFieldName(fieldErr.Field())
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translatedField,
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Erro de validação nos campos",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func translateFieldName(field string) string {
	fieldLower := strings.ToLower(field)
	fieldMap := map[string]string{
		"name":                 "nome",
		"slug":                 "slug",
		"description":          "descrição",
		"icon":                 "ícone",
		"order":                "ordem",
		"level":                "nível",
		"attributetype":        "tipo de atributo",
		"categorylevelmapping": "mapeamento de níveis",
		"sectorid":             "setor",
		"categoryid":           "categoria",
		"parentid":             "categoria pai",
		"oldindex":             "posição de origem",
		"newindex":             "posição de destino",
		"items":                "itens",
		"isactive":             "ativo",
	}
	if translated, ok := fieldMap[fieldLower]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", fieldName)
	case "min":
		return fmt.Sprintf("%s deve ter no mínimo %s", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s deve ser menor ou igual a %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um dos valores: %s", fieldName, fe.Param())
	case "dive":
		return fmt.Sprintf("%s contém itens inválidos", fieldName)
	case "attributetype":
		return fmt.Sprintf("%s deve ser um de: serviceType, size, frequency, make, model, brand", fieldName)
	case "ulid":
		return fmt.Sprintf("%s deve ser um ULID válido", fieldName)
	default:
		return fmt.Sprintf("Validação '%s' falhou para %s", fe.Tag(), fieldName)
	}
}
