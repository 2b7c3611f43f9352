package http

import (
	"errors"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/handlers/dto"
)

// operation identifica a operação nos logs de erro
type operation struct {
	entity string
	id     string
	action string
}

func op(entity, id, action string) operation {
	return operation{entity: entity, id: id, action: action}
}

// respondError mapeia o erro para um status fixo e um problema RFC 7807.
// Detalhes de erros 5xx nunca saem do servidor.
func respondError(c *gin.Context, logger ports.Logger, o operation, err error) {
	response := problemFor(c, err)
	log := ports.ForOperation(logger, o.entity, o.id, o.action)

	if response.Status >= http.StatusInternalServerError {
		log.Error("request failed", "status", response.Status, "path", c.FullPath(), "error", err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	} else {
		log.Debug("request rejected", "status", response.Status, "path", c.FullPath(), "error", err)
	}

	dto.AbortWithProblem(c, response)
}

func problemFor(c *gin.Context, err error) dto.ErrorResponse {
	var domainErr *domainerrors.DomainError
	hasDomainErr := errors.As(err, &domainErr)

	switch {
	case errors.Is(err, domainerrors.ErrUnauthenticated):
		return dto.NewErrorResponseI18n(c, domainerrors.ProblemTypeUnauthorized,
			"error.unauthorized.title", "error.unauthorized.detail", http.StatusUnauthorized)

	case errors.Is(err, domainerrors.ErrInvalidWebhook):
		return dto.NewErrorResponseI18n(c, domainerrors.ProblemTypeBadRequest,
			"error.bad_request.title", domainerrors.ErrInvalidWebhook.Error(), http.StatusBadRequest)

	case errors.Is(err, domainerrors.ErrProfileNotFound):
		role := ""
		if hasDomainErr {
			role = domainErr.Message
		}
		return dto.NewErrorResponseI18n(c, domainerrors.ProblemTypeProfileNotFound,
			"error.profile_not_found.title", "error.profile_not_found.detail", http.StatusNotFound,
			map[string]interface{}{"Role": role})

	case errors.Is(err, domainerrors.ErrForbidden):
		detail := "error.forbidden.detail"
		if hasDomainErr && domainErr.Message != domainerrors.ErrForbidden.Error() {
			detail = domainErr.Message
		}
		return dto.NewErrorResponseI18n(c, domainerrors.ProblemTypeForbidden,
			"error.forbidden.title", detail, http.StatusForbidden)

	case errors.Is(err, domainerrors.ErrValidation):
		response := dto.ValidationErrorResponseI18n(c, nil)
		if hasDomainErr {
			response.Errors = []dto.ValidationError{{
				Field:   domainErr.Field,
				Message: dto.T(c, domainErr.Message),
			}}
		}
		return response

	case errors.Is(err, domainerrors.ErrNotFound):
		resource := "Resource"
		if hasDomainErr {
			resource = domainErr.Message
		}
		return dto.NewErrorResponseI18n(c, domainerrors.ProblemTypeNotFound,
			"error.not_found.title", "error.not_found.detail", http.StatusNotFound,
			map[string]interface{}{"Resource": resource})

	case errors.Is(err, domainerrors.ErrConflict):
		detail := "error.conflict.detail"
		if hasDomainErr {
			detail = domainErr.Message
		}
		return dto.NewErrorResponseI18n(c, domainerrors.ProblemTypeConflict,
			"error.conflict.title", detail, http.StatusConflict)

	case errors.Is(err, domainerrors.ErrUpstream):
		return dto.NewErrorResponseI18n(c, domainerrors.ProblemTypeUpstream,
			"error.upstream.title", "error.upstream.detail", http.StatusInternalServerError)
	}

	return dto.NewErrorResponseI18n(c, domainerrors.ProblemTypeInternal,
		"error.internal.title", "error.internal.detail", http.StatusInternalServerError)
}

// Recovery responde pânicos com o problema interno em application/problem+json.
// O sentrygin registrado depois já reporta o pânico antes de repassá-lo.
func Recovery(logger ports.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		dto.AbortWithProblem(c, dto.NewErrorResponseI18n(c, domainerrors.ProblemTypeInternal,
			"error.internal.title", "error.internal.detail", http.StatusInternalServerError))
	})
}
