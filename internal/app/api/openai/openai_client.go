package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds the client shared by the transcription and speech
// collaborators. An empty baseURL keeps the public endpoint.
func NewClient(apiKey string, baseURL string) *openai.Client {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return openai.NewClientWithConfig(clientConfig)
}
