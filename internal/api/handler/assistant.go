package handler

import (
	"net/http"

	"github.com/656yash/adwise/internal/domain"
	"github.com/656yash/adwise/internal/usecases/assisting"
	"github.com/656yash/adwise/pkg/apiErrors"
	"github.com/656yash/adwise/pkg/log"
)

// Limite do corpo aceito em /assistant/chat
const maxChatBodyBytes = 64 << 10

func PostAssistantChat(assistant assisting.Assistant) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.ChatRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBodyBytes)).Decode(&req); err != nil {
			logger.WithError(err).Warn("assistant: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		reply, err := assistant.Reply(r.Context(), &req)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao gerar resposta do assistente")
			return
		}

		logger.WithField("source", reply.Source).Info("assistant: resposta enviada")

		writeJSON(w, logger, http.StatusOK, reply)
	})
}

func GetAssistantStatus(assistant assisting.Assistant) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, assistant.Status(r.Context()))
	})
}
