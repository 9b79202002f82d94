// pkg/ai/mock_client.go

package ai

import (
	"context"
	"strings"

	"farmassist/entities"
)

type mockClient struct{}

// NewMock answers from a fixed set of farming tips. Used when no API key is set.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Reply(_ context.Context, _ *entities.FarmerProfile, message, _ string) (string, error) {
	return BasicAdvice(message), nil
}

var basicAnswers = struct {
	wheat, corn, tomatoes, crops, pest, weather, soil, market, general string
}{
	wheat:    "Wheat farming requires proper soil preparation and timing. Consider soil testing for optimal fertilizer application. Plant in early spring for best yields.",
	corn:     "Corn benefits from nitrogen-rich soil. Monitor for pests like corn borers. Ensure adequate spacing between plants for maximum growth.",
	tomatoes: "Tomatoes need well-drained soil and consistent watering. Use stakes or cages for support. Watch for blight and other diseases.",
	crops:    "Consider crop rotation to maintain soil health. Each crop has specific nutrient requirements and growing seasons.",
	pest:     "Integrated Pest Management (IPM) is recommended. Use beneficial insects, crop rotation, and targeted treatments only when necessary.",
	weather:  "Monitor weather forecasts closely. Consider drought-resistant varieties if water is limited. Proper drainage is crucial during heavy rains.",
	soil:     "Regular soil testing is essential. Maintain proper pH levels and organic matter content. Consider cover crops to improve soil health.",
	market:   "Diversify your crops to reduce market risk. Stay informed about commodity prices and consider direct-to-consumer sales for better margins.",
	general:  "Farming success comes from careful planning, soil management, and adapting to local conditions. Consider consulting with local agricultural extension services.",
}

// BasicAdvice picks a canned tip by keyword, first match wins.
func BasicAdvice(message string) string {
	q := strings.ToLower(message)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}
	switch {
	case has("wheat", "grain"):
		return basicAnswers.wheat
	case has("corn", "maize"):
		return basicAnswers.corn
	case has("tomato"):
		return basicAnswers.tomatoes
	case has("crop rotation", "which crop", "what crop"):
		return basicAnswers.crops
	case has("pest", "bug", "insect"):
		return basicAnswers.pest
	case has("weather", "rain", "drought"):
		return basicAnswers.weather
	case has("soil", "fertilizer"):
		return basicAnswers.soil
	case has("price", "market", "sell"):
		return basicAnswers.market
	default:
		return basicAnswers.general
	}
}
