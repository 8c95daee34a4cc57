package domain

import (
	"fmt"
	"strings"
)

type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage é um turno da conversa com o assistente
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatRequest é o corpo de /assistant/chat
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

// Validate exige mensagem não vazia e papéis conhecidos no histórico
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return NewValidationError(ErrInvalidMessage, "message", "a mensagem é obrigatória")
	}

	for i, msg := range r.History {
		if msg.Role != ChatRoleUser && msg.Role != ChatRoleAssistant {
			return NewValidationError(ErrInvalidMessage, fmt.Sprintf("history[%d].role", i), "use user ou assistant")
		}
	}

	return nil
}

type ReplySource string

const (
	ReplySourceRule     ReplySource = "rule"
	ReplySourceRemote   ReplySource = "remote"
	ReplySourceFallback ReplySource = "fallback"
)

// ChatReply é a resposta do assistente. Source vale "rule:<nome>", "remote" ou "fallback".
type ChatReply struct {
	ID     string `json:"id"`
	Reply  string `json:"reply"`
	Source string `json:"source"`
}

// AssistantStatus informa se a integração externa está configurada. Valid fica
// nulo quando não há chave para conferir.
type AssistantStatus struct {
	Configured bool   `json:"configured"`
	Model      string `json:"model"`
	Valid      *bool  `json:"valid"`
}
