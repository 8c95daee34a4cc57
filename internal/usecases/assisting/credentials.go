package assisting

import (
	"strings"
	"sync"
)

// Credentials guarda a chave do provedor de chat. É consultada antes de cada chamada
// externa e pode ser trocada em tempo de execução.
//
// Set e Clear permitem rotacionar ou revogar a chave sem reiniciar o processo.
// Hoje nenhuma rota as expõe, a chave vem de OPENAI_API_KEY na inicialização.
type Credentials struct {
	mu     sync.RWMutex
	apiKey string
}

func NewCredentials(apiKey string) *Credentials {
	return &Credentials{apiKey: strings.TrimSpace(apiKey)}
}

func (c *Credentials) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

func (c *Credentials) Set(apiKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = strings.TrimSpace(apiKey)
}

func (c *Credentials) Clear() {
	c.Set("")
}

func (c *Credentials) Configured() bool {
	return c.Get() != ""
}
