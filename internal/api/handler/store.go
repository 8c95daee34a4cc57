package handler

import (
	"net/http"

	"github.com/656yash/adwise/pkg/log"
)

// StoreStatusProvider expõe o estado da coleta de estatísticas da base
type StoreStatusProvider interface {
	GetStatus() map[string]any
	TriggerManualSync()
}

func GetStoreStatus(provider StoreStatusProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		writeJSON(w, logger, http.StatusOK, provider.GetStatus())
	})
}

// RefreshStoreStats dispara uma coleta fora do agendamento e responde sem aguardar
func RefreshStoreStats(provider StoreStatusProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("store: coleta manual de estatísticas solicitada")

		provider.TriggerManualSync()

		writeJSON(w, logger, http.StatusAccepted, map[string]string{
			"message": "Coleta de estatísticas iniciada",
		})
	})
}
