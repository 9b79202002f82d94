// Package chat answers farmer questions from their own data, the knowledge
// base and the language model, and keeps the conversation history.
package chat

import "errors"

var ErrEmptyMessage = errors.New("message is required")

type Suggestions struct {
	Questions []string `json:"questions"`
	Quick     []string `json:"quick"`
}

// StarterSuggestions are shown before the first message.
func StarterSuggestions() Suggestions {
	return Suggestions{
		Questions: []string{
			"What crops should I plant this season?",
			"How often should I water my tomatoes?",
			"How do I deal with pest problems naturally?",
			"What are the current market prices for crops?",
			"How does weather affect my crop yield?",
			"What's the best soil preparation method?",
		},
		Quick: []string{
			"Best crops for my climate?",
			"Watering schedule tips?",
			"Natural pest control?",
			"Current crop prices?",
			"Weather impact on farming?",
			"Soil preparation guide?",
			"Irrigation best practices?",
			"Seasonal farming tips?",
			"Crop rotation benefits?",
			"Fertilizer recommendations?",
		},
	}
}
