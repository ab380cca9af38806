package factory

import (
	"fmt"

	"github.com/bibincs/hackathonchatbot/pkg/llm"
	"github.com/bibincs/hackathonchatbot/pkg/llm/azure"
	"github.com/bibincs/hackathonchatbot/pkg/llm/ollama"
)

type AzureSettings struct {
	Endpoint   string
	ApiKey     string
	ApiVersion string
	Deployment string
}

func NewLLMProvider(providerType, modelName, ollamaBaseURL string, azureSettings AzureSettings) (llm.LLMProvider, error) {
	switch providerType {
	case "azure":
		if azureSettings.Endpoint == "" || azureSettings.ApiKey == "" {
			return nil, fmt.Errorf("azure provider requires endpoint and api key")
		}
		return azure.NewAzureProvider(
			azureSettings.Endpoint,
			azureSettings.ApiKey,
			azureSettings.ApiVersion,
			azureSettings.Deployment,
		), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
