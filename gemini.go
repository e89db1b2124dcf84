package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const importPrompt = `This photo shows a chess-variant board diagram.

Extract the board as JSON in the following format:
{
  "title": "<caption printed near the board, or empty>",
  "width": <number of files>,
  "height": <number of ranks>,
  "cells": [
    ["", "WhiteRook", "", ...],
    ...
  ]
}

Rules:
- "cells" lists the ranks from the top of the photo down; each rank lists its files left to right.
- An empty square is "".
- A piece is its color followed by its name in PascalCase, e.g. "WhiteKnight", "BlackKing", "WhiteDragonHorse".
- A square that is not part of the board (cut corners, side columns) is "  " (two spaces).
- Reply ONLY with the JSON, without commentary or markdown.`

// ImportDiagram sends a photo of a board to Gemini Flash and returns the
// extracted diagram bound to variant. The diagram is validated but not stored.
func (g *GeminiClient) ImportDiagram(ctx context.Context, imageData []byte, mimeType, variant string) (*Diagram, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: importPrompt},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: imageData}},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.1)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}
	return parseImportedDiagram(text, variant)
}

func parseImportedDiagram(text, variant string) (*Diagram, error) {
	var d Diagram
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return nil, fmt.Errorf("parse diagram JSON: %w\nraw response: %s", err, text)
	}
	d.ID = ""
	d.Variant = variant
	if strings.TrimSpace(d.Title) == "" {
		d.Title = "Imported diagram"
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
