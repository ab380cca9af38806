package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AzureProvider implements EmbeddingProvider against an Azure OpenAI
// embeddings deployment (e.g. text-embedding-ada-002)
type AzureProvider struct {
	Endpoint   string
	ApiKey     string
	ApiVersion string
	Deployment string
	Client     *http.Client
}

var _ EmbeddingProvider = &AzureProvider{}

func NewAzureProvider(endpoint, apiKey, apiVersion, deployment string) *AzureProvider {
	if apiVersion == "" {
		apiVersion = "2023-12-01-preview"
	}
	return &AzureProvider{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		ApiKey:     apiKey,
		ApiVersion: apiVersion,
		Deployment: deployment,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type azureEmbeddingRequest struct {
	Input string `json:"input"`
}

type azureEmbeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

func (p *AzureProvider) Generate(text string) ([]float32, error) {
	reqBody := azureEmbeddingRequest{Input: text}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"%s/openai/deployments/%s/embeddings?api-version=%s",
		p.Endpoint, p.Deployment, p.ApiVersion,
	)

	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("azure embedding error: status %d, body %s", res.StatusCode, string(resByte))
	}

	var parsed azureEmbeddingResponse
	if err := json.Unmarshal(resByte, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("azure embedding response carried no data")
	}

	values := make([]float32, len(parsed.Data[0].Embedding))
	for i, v := range parsed.Data[0].Embedding {
		values[i] = float32(v)
	}

	return NormalizeVector(values), nil
}
