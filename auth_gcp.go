package main

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

// GeminiClient reads board photos through Gemini on Vertex AI.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// GeminiConfig selects the Vertex AI project, region and model. Empty
// region and model fall back to the defaults.
type GeminiConfig struct {
	ProjectID string
	Region    string
	Model     string
}

// NewGeminiClient creates a client using Application Default Credentials.
// Set GOOGLE_APPLICATION_CREDENTIALS to the service account key file path.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("gemini: project id required")
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  cfg.ProjectID,
		Location: cfg.Region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: cfg.Model,
	}, nil
}

// Model is the Gemini model used for imports.
func (g *GeminiClient) Model() string { return g.modelName }

// Close releases resources held by the client.
func (g *GeminiClient) Close() error {
	return nil
}
