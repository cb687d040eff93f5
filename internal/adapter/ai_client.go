package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/models"
)

type aiClient struct {
	client *utils.HTTPClient
	cfg    config.AI

	logger *logger.Logger
}

// NewAIClient constructs the resty implementation of [AIClient]. Defaults
// missing from cfg (model, max tokens, temperature) fall back to the
// config package defaults.
func NewAIClient(cfg config.AI, logger *logger.Logger) AIClient {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = config.DefaultAIModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = config.DefaultAIMaxTokens
	}
	if cfg.Temperature == nil {
		t := config.DefaultAITemperature
		cfg.Temperature = &t
	}

	return &aiClient{
		client: utils.NewHTTPClient("", cfg.RequestTimeout),
		cfg:    cfg,
		logger: logger,
	}
}

type completionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	MaxTokens   int                  `json:"max_tokens"`
	Temperature float64              `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *struct {
		TotalTokens *int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete implements [AIClient]. It POSTs
// {model, messages, max_tokens, temperature} to the configured endpoint with
// the customerId, Content-Type and Authorization headers.
func (a *aiClient) Complete(ctx context.Context, messages []models.ChatMessage, override models.AIRequestConfig) (models.AIResponse, error) {
	log := logger.FromContext(ctx)
	body := a.requestBody(messages, override)

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("customerId", a.cfg.CustomerID).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", a.cfg.Authorization).
		SetBody(body).
		Post(a.cfg.Endpoint)
	if err != nil {
		log.Err(err).Str("func", "*aiClient.Complete").Str("model", body.Model).Msg("AI request transport error")
		return models.AIResponse{}, fmt.Errorf("%w: %w", ErrAIRequestFailed, err)
	}

	if !resp.IsSuccess() {
		log.Error().
			Str("func", "*aiClient.Complete").
			Int("status", resp.StatusCode()).
			Str("model", body.Model).
			Msg("AI endpoint returned an error status")
		return models.AIResponse{}, fmt.Errorf("%w: %d %s", ErrAIRequestFailed, resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	var completion completionResponse
	if err = json.Unmarshal(resp.Body(), &completion); err != nil {
		log.Err(err).Str("func", "*aiClient.Complete").Msg("AI endpoint returned a malformed body")
		return models.AIResponse{}, fmt.Errorf("%w: malformed completion body: %w", ErrAIRequestFailed, err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == nil {
		log.Error().Str("func", "*aiClient.Complete").Msg("AI completion has no choices")
		return models.AIResponse{}, fmt.Errorf("%w: completion has no content", ErrAIRequestFailed)
	}

	result := models.AIResponse{
		Content: *completion.Choices[0].Message.Content,
		Model:   body.Model,
	}
	if completion.Usage != nil {
		result.Tokens = completion.Usage.TotalTokens
	}

	log.Debug().
		Str("func", "*aiClient.Complete").
		Str("model", result.Model).
		Int("content_length", len(result.Content)).
		Msg("AI completion received")
	return result, nil
}

func (a *aiClient) requestBody(messages []models.ChatMessage, override models.AIRequestConfig) completionRequest {
	body := completionRequest{
		Model:       a.cfg.DefaultModel,
		Messages:    messages,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: *a.cfg.Temperature,
	}
	if override.Model != nil {
		body.Model = *override.Model
	}
	if override.MaxTokens != nil {
		body.MaxTokens = *override.MaxTokens
	}
	if override.Temperature != nil {
		body.Temperature = *override.Temperature
	}
	return body
}
