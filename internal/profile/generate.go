// Package profile generates the free-text job-profile narrative shown above
// the ranked talent list. It is a passthrough collaborator: the narrative
// never feeds back into the scoring math, and runs proceed without it when
// no API key is configured.
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/kartika/talent-match-intel/internal/types"
)

const narrativeModel = "gemini-1.5-flash"

// Generator wraps the Gemini client used for the narrative.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a narrative generator.
func NewGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Generator{client: client}, nil
}

// Close releases resources held by the generator.
func (g *Generator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Generate produces the job-profile narrative for a vacancy.
func (g *Generator) Generate(ctx context.Context, role types.RoleInput) (string, error) {
	model := g.client.GenerativeModel(narrativeModel)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(role)))
	if err != nil {
		return "", fmt.Errorf("failed to generate job profile: %w", err)
	}

	return extractText(resp)
}

// BuildPrompt renders the narrative prompt for a vacancy. The section list
// mirrors the profile layout the dashboard displays.
func BuildPrompt(role types.RoleInput) string {
	var sb strings.Builder
	sb.WriteString("Generate an actionable job profile for:\n")
	sb.WriteString(fmt.Sprintf("Role: %s\n", role.RoleName))
	sb.WriteString(fmt.Sprintf("Level: %s\n", role.JobLevel))
	sb.WriteString(fmt.Sprintf("Purpose: %s\n\n", role.RolePurpose))
	sb.WriteString("Include: Job Overview, Key Responsibilities, Core Competencies, Success Attributes, Assessment Focus.")
	return sb.String()
}

// extractText extracts text from a Gemini API response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
