package handler

import (
	"net/http"

	"github.com/656yash/adwise/internal/domain"
	"github.com/656yash/adwise/pkg/apiErrors"
	"github.com/656yash/adwise/pkg/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("falha ao codificar resposta")
	}
}

// writeServiceError converte erros de validação em 400 e o restante em 500 com mensagem genérica
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		logger.WithFields(log.Fields{
			"field": validationErr.Field,
			"error": validationErr.Error(),
		}).Warn("parâmetro inválido")

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Error(), map[string]string{
			"field": validationErr.Field,
		})
		return
	}

	if errors.Is(err, domain.ErrInvalidSortField) || errors.Is(err, domain.ErrInvalidSortOrder) || errors.Is(err, domain.ErrInvalidPagination) {
		logger.WithError(err).Warn("parâmetro inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, errors.Cause(err).Error(), nil)
		return
	}

	logger.WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}
