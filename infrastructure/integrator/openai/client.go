// Package openai integra o assistente com a API de chat completions
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/656yash/adwise/internal/config"
	"github.com/656yash/adwise/internal/domain"
	goopenai "github.com/sashabaranov/go-openai"
)

var ErrEmptyResponse = errors.New("nenhuma resposta do provedor de chat")

type Client struct {
	cfg        config.OpenAI
	httpClient *http.Client
}

func NewClient(cfg config.OpenAI) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Complete envia a conversa e devolve o conteúdo da primeira escolha.
// O cliente é montado a cada chamada com a chave vigente.
func (c *Client) Complete(ctx context.Context, apiKey string, messages []domain.ChatMessage) (string, error) {
	resp, err := c.newClient(apiKey).CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    toChatCompletionMessages(messages),
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao chamar o provedor de chat: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// Verify confere a chave listando os modelos do provedor, sem gastar tokens
func (c *Client) Verify(ctx context.Context, apiKey string) error {
	if _, err := c.newClient(apiKey).ListModels(ctx); err != nil {
		return fmt.Errorf("erro ao validar chave no provedor de chat: %w", err)
	}
	return nil
}

func (c *Client) newClient(apiKey string) *goopenai.Client {
	clientConfig := goopenai.DefaultConfig(apiKey)
	if c.cfg.BaseURL != "" {
		clientConfig.BaseURL = c.cfg.BaseURL
	}
	clientConfig.HTTPClient = c.httpClient

	return goopenai.NewClientWithConfig(clientConfig)
}

func toChatCompletionMessages(messages []domain.ChatMessage) []goopenai.ChatCompletionMessage {
	result := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := goopenai.ChatMessageRoleUser
		switch msg.Role {
		case domain.ChatRoleSystem:
			role = goopenai.ChatMessageRoleSystem
		case domain.ChatRoleAssistant:
			role = goopenai.ChatMessageRoleAssistant
		}

		result = append(result, goopenai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	return result
}
