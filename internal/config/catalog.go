package config

import "slices"

var builtinOpenAIModels = []Model{
	{
		ID:          "elia-gpt-4.1",
		Name:        "gpt-4.1",
		DisplayName: "GPT-4.1",
		Provider:    ProviderOpenAI,
		Product:     "ChatGPT",
		Description: "Flagship GPT model for complex tasks.",
		Temperature: 0.7,
	},
	{
		ID:          "elia-gpt-4o",
		Name:        "gpt-4o",
		DisplayName: "GPT-4o",
		Provider:    ProviderOpenAI,
		Product:     "ChatGPT",
		Description: "Fast, intelligent, flexible GPT model.",
		Temperature: 0.7,
	},
	{
		ID:          "elia-o4-mini",
		Name:        "o4-mini",
		DisplayName: "o4-mini",
		Provider:    ProviderOpenAI,
		Product:     "ChatGPT",
		Description: "Faster, more affordable reasoning model",
		Temperature: 1.0,
	},
}

var builtinAnthropicModels = []Model{
	{
		ID:          "elia-claude-3-7-sonnet-20250219",
		Name:        "claude-3-7-sonnet-20250219",
		DisplayName: "Claude 3.7 Sonnet",
		Provider:    ProviderAnthropic,
		Product:     "Claude 3.7",
		Description: "Anthropic's most intelligent model with extended thinking capabilities",
		Temperature: 1.0,
	},
	{
		ID:          "elia-claude-3-5-sonnet-20241022",
		Name:        "claude-3-5-sonnet-20241022",
		DisplayName: "Claude 3.5 Sonnet",
		Provider:    ProviderAnthropic,
		Product:     "Claude 3.5 Sonnet",
		Description: "Anthropic's previous most intelligent model.",
		Temperature: 1.0,
	},
	{
		ID:          "elia-claude-3-5-haiku-20241022",
		Name:        "claude-3-5-haiku-20241022",
		DisplayName: "Claude 3.5 Haiku",
		Provider:    ProviderAnthropic,
		Product:     "Claude 3.5 Haiku",
		Description: "Anthropic's fastest and most cost-effective model.",
		Temperature: 1.0,
	},
}

var builtinGoogleModels = []Model{
	{
		ID:          "elia-gemini-2.5-pro-preview-05-06",
		Name:        "gemini-2.5-pro-preview-05-06",
		DisplayName: "Gemini 2.5 Pro Preview",
		Provider:    ProviderGoogle,
		Product:     "Gemini",
		Description: "Google's most powerful thinking model.",
		Temperature: 1.0,
	},
	{
		ID:          "elia-gemini-2.5-flash-preview-05-20",
		Name:        "gemini-2.5-flash-preview-05-20",
		DisplayName: "Gemini 2.5 Flash Preview",
		Provider:    ProviderGoogle,
		Product:     "Gemini",
		Description: "Google's first hybrid reasoning model with thinking budgets.",
		Temperature: 1.0,
	},
}

// BuiltinOpenAIModels returns the OpenAI models shipped with the app.
func BuiltinOpenAIModels() []Model { return slices.Clone(builtinOpenAIModels) }

// BuiltinAnthropicModels returns the Anthropic models shipped with the app.
func BuiltinAnthropicModels() []Model { return slices.Clone(builtinAnthropicModels) }

// BuiltinGoogleModels returns the Google models shipped with the app.
func BuiltinGoogleModels() []Model { return slices.Clone(builtinGoogleModels) }

// BuiltinModels returns every builtin model, OpenAI first, then Anthropic,
// then Google.
func BuiltinModels() []Model {
	return slices.Concat(
		builtinOpenAIModels,
		builtinAnthropicModels,
		builtinGoogleModels,
	)
}
