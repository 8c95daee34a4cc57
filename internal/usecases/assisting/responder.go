// Package assisting responde às perguntas do chat do painel
package assisting

import (
	"context"
	"strings"

	"github.com/656yash/adwise/internal/domain"
	"github.com/656yash/adwise/pkg/log"
	"github.com/656yash/adwise/pkg/metrics"
	"github.com/656yash/adwise/pkg/utils"
	"github.com/pkg/errors"
)

// ChatCompleter envia a conversa ao provedor externo. A chave é passada a cada
// chamada porque pode mudar entre uma requisição e outra.
type ChatCompleter interface {
	Complete(ctx context.Context, apiKey string, messages []domain.ChatMessage) (string, error)
	Verify(ctx context.Context, apiKey string) error
}

type Assistant interface {
	Reply(ctx context.Context, req *domain.ChatRequest) (*domain.ChatReply, error)
	Status(ctx context.Context) domain.AssistantStatus
}

type Config struct {
	Model        string
	HistoryLimit int
}

type Responder struct {
	rules       []Rule
	credentials *Credentials
	completer   ChatCompleter
	config      Config
	metrics     *metrics.Metrics
}

func NewResponder(
	credentials *Credentials,
	completer ChatCompleter,
	cfg Config,
	m *metrics.Metrics,
) *Responder {
	return &Responder{
		rules:       DefaultRules(),
		credentials: credentials,
		completer:   completer,
		config:      cfg,
		metrics:     m,
	}
}

// Reply avalia as regras em ordem, depois o provedor externo e por fim a resposta genérica.
// Falhas do provedor nunca chegam ao cliente.
func (r *Responder) Reply(ctx context.Context, req *domain.ChatRequest) (*domain.ChatReply, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da mensagem")
	}

	text, source, ruleName := r.respond(ctx, req)

	if r.metrics != nil {
		r.metrics.RecordAssistantReply(source)
	}

	reply := &domain.ChatReply{
		ID:     id,
		Reply:  text,
		Source: string(source),
	}
	if source == domain.ReplySourceRule {
		reply.Source = string(source) + ":" + ruleName
	}

	return reply, nil
}

// Status informa a configuração atual. Com uma chave presente, ela é conferida
// no provedor e o resultado vai em Valid.
func (r *Responder) Status(ctx context.Context) domain.AssistantStatus {
	status := domain.AssistantStatus{
		Configured: r.credentials.Configured(),
		Model:      r.config.Model,
	}

	apiKey := r.credentials.Get()
	if apiKey == "" || r.completer == nil {
		return status
	}

	valid := true
	if err := r.completer.Verify(ctx, apiKey); err != nil {
		log.ForContext(ctx).WithError(err).Warn("assistant: chave do provedor externo recusada")
		valid = false
	}
	status.Valid = &valid

	return status
}

func (r *Responder) respond(ctx context.Context, req *domain.ChatRequest) (string, domain.ReplySource, string) {
	logger := log.ForContext(ctx)
	message := strings.ToLower(req.Message)

	for _, rule := range r.rules {
		if rule.Match(message) {
			logger.WithField("rule", rule.Name).Debug("assistant: regra encontrada")
			return rule.Reply, domain.ReplySourceRule, rule.Name
		}
	}

	apiKey := r.credentials.Get()
	if apiKey == "" || r.completer == nil {
		return defaultReply(req.Message), domain.ReplySourceFallback, ""
	}

	text, err := r.completer.Complete(ctx, apiKey, r.buildMessages(req))
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("resposta vazia do provedor")
	}
	if err != nil {
		logger.WithError(err).Warn("assistant: falha no provedor externo, usando resposta padrão")
		return defaultReply(req.Message), domain.ReplySourceFallback, ""
	}

	return text, domain.ReplySourceRemote, ""
}

// buildMessages monta prompt de sistema, histórico recente e a nova mensagem
func (r *Responder) buildMessages(req *domain.ChatRequest) []domain.ChatMessage {
	history := req.History
	if limit := r.config.HistoryLimit; limit >= 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	messages := make([]domain.ChatMessage, 0, len(history)+2)
	messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleUser, Content: req.Message})

	return messages
}
