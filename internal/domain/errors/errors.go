package errors

import "errors"

// Authorization errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrUnauthenticated = errors.New("error.unauthenticated")
	ErrForbidden       = errors.New("error.forbidden")
	ErrProfileNotFound = errors.New("error.profile_not_found")
	ErrNotOwner        = errors.New("error.not_owner")
)

// Business errors
var (
	ErrValidation      = errors.New("error.validation")
	ErrNotFound        = errors.New("error.not_found")
	ErrConflict        = errors.New("error.conflict")
	ErrUpstream        = errors.New("error.upstream")
	ErrUserNotFound    = errors.New("error.user_not_found")
	ErrProfileExists   = errors.New("error.profile_exists")
	ErrWrongRole       = errors.New("error.wrong_role")
	ErrAlreadySaved    = errors.New("error.already_saved")
	ErrNoBillingClient = errors.New("error.no_billing_customer")
	ErrInvalidWebhook  = errors.New("error.invalid_webhook")
	ErrProgramInUse    = errors.New("error.program_in_use")
	ErrInvalidImage    = errors.New("error.invalid_image")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation      = "/problems/validation-error"
	ProblemTypeNotFound        = "/problems/not-found"
	ProblemTypeProfileNotFound = "/problems/profile-not-found"
	ProblemTypeConflict        = "/problems/conflict"
	ProblemTypeUnauthorized    = "/problems/unauthorized"
	ProblemTypeForbidden       = "/problems/forbidden"
	ProblemTypeUpstream        = "/problems/upstream-failure"
	ProblemTypeInternal        = "/problems/internal-error"
	ProblemTypeBadRequest      = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Field   string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação para um campo
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Type:    ProblemTypeValidation,
		Title:   "error.validation.title",
		Message: message,
		Field:   field,
		Err:     ErrValidation,
	}
}

// NewNotFoundError cria um erro de recurso inexistente
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Type:    ProblemTypeNotFound,
		Title:   "error.not_found.title",
		Message: resource,
		Err:     ErrNotFound,
	}
}

// NewConflictError cria um erro de conflito com o estado atual
func NewConflictError(cause error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeConflict,
		Title:   "error.conflict.title",
		Message: cause.Error(),
		Err:     errors.Join(ErrConflict, cause),
	}
}

// NewUpstreamError cria um erro de falha em provedor externo
func NewUpstreamError(provider string, cause error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeUpstream,
		Title:   "error.upstream.title",
		Message: provider,
		Err:     errors.Join(ErrUpstream, cause),
	}
}

// NewProfileNotFoundError indica que o papel exige um perfil ainda não criado
func NewProfileNotFoundError(role string) *DomainError {
	return &DomainError{
		Type:    ProblemTypeProfileNotFound,
		Title:   "error.profile_not_found.title",
		Message: role,
		Err:     ErrProfileNotFound,
	}
}

// NewForbiddenError cria um erro de permissão com a causa específica
func NewForbiddenError(cause error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeForbidden,
		Title:   "error.forbidden.title",
		Message: cause.Error(),
		Err:     errors.Join(ErrForbidden, cause),
	}
}
