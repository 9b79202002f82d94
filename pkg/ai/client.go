// pkg/ai/client.go

package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"farmassist/entities"
)

var ErrNotConfigured = errors.New("llm api key not configured")

// Apology is returned when the model answers with no content.
const Apology = "I apologize, but I was unable to generate a response. Could you please try rephrasing your question?"

type Client interface {
	// Reply answers a farmer's message. kbCtx holds knowledge base excerpts and may be empty.
	Reply(ctx context.Context, p *entities.FarmerProfile, message, kbCtx string) (string, error)
}

// SystemPrompt describes the farmer to the model. A nil profile renders defaults.
func SystemPrompt(p *entities.FarmerProfile, kbCtx string) string {
	if p == nil {
		p = &entities.FarmerProfile{}
	}
	or := func(s, def string) string {
		if strings.TrimSpace(s) == "" {
			return def
		}
		return s
	}
	var b strings.Builder
	b.WriteString("You are an expert AI farming assistant helping farmers with their agricultural questions.\n\n")
	b.WriteString("Farmer Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", or(p.Name, "Unknown"))
	fmt.Fprintf(&b, "- Farm Size: %s\n", or(p.FarmSize, "Unknown"))
	fmt.Fprintf(&b, "- Location: %s\n", or(p.Location, "Unknown"))
	fmt.Fprintf(&b, "- Experience: %s\n", or(p.Experience, "Unknown"))
	fmt.Fprintf(&b, "- Crops: %s\n", or(strings.Join(p.CropTypes, ", "), "Various"))
	fmt.Fprintf(&b, "- Main Challenges: %s\n", or(strings.Join(p.MainChallenges, ", "), "General farming"))
	if p.SoilType != "" {
		fmt.Fprintf(&b, "- Soil: %s\n", p.SoilType)
	}
	if p.IrrigationType != "" {
		fmt.Fprintf(&b, "- Irrigation: %s\n", p.IrrigationType)
	}
	b.WriteString("\nProvide practical, actionable farming advice tailored to this farmer's specific situation. ")
	b.WriteString("Be conversational, helpful, and focus on solutions. Keep responses concise but informative.")
	if kbCtx = strings.TrimSpace(kbCtx); kbCtx != "" {
		b.WriteString("\n\nReference notes (use if relevant, do not copy at length):\n")
		b.WriteString(kbCtx)
	}
	return b.String()
}
