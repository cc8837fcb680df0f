package services

import (
	"fmt"
	"strings"
)

// HealthDisclaimer is embedded in every health-domain prompt so the model
// keeps its answers advisory rather than diagnostic.
const HealthDisclaimer = "Always remind the user to consult a qualified healthcare professional and avoid definitive medical claims."

// User-facing disclaimer lines prefixed onto the final responses of the
// sensitive skills.
const (
	ResultDisclaimerHealth    = "Disclaimer: This is AI-generated information and not a substitute for professional medical advice."
	ResultDisclaimerMental    = "Disclaimer: This advice is not a substitute for professional mental health support."
	ResultDisclaimerEmergency = "Emergency Disclaimer: These instructions are for immediate first aid only. Always call emergency services or seek professional medical help immediately in any serious emergency."
)

// PromptBuilder assembles the per-skill prompts. All builders are pure:
// identical input yields an identical prompt string.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func (pb *PromptBuilder) BuildHealthCheckPrompt(query string) string {
	return fmt.Sprintf(`You are a knowledgeable and cautious health assistant.
Provide helpful and accurate answers, and include fewer than 5 clear steps to handle the situation. Keep it short and simple.
%s

User query: %s`, HealthDisclaimer, normalizeQuery(query))
}

func (pb *PromptBuilder) BuildKnowledgePrompt(query string) string {
	return fmt.Sprintf(`You are an AI-powered knowledge assistant generating in-depth explanations, summaries, or definitions on any topic.

Explain the following in detail:
%s`, normalizeQuery(query))
}

func (pb *PromptBuilder) BuildDietAndNutritionPrompt(query string) string {
	return fmt.Sprintf(`You are a helpful diet and nutrition expert.
Give recommendations on diet plans, nutritional advice, and healthy eating tailored to the user's query.
Include practical tips and friendly encouragement, in fewer than 6 short steps.
%s

User query: %s`, HealthDisclaimer, normalizeQuery(query))
}

func (pb *PromptBuilder) BuildMentalHealthPrompt(query string) string {
	return fmt.Sprintf(`You are a compassionate mental health assistant.
Respond empathetically, provide coping strategies, and helpful resources.
Encourage the user to consult a mental health professional if needed.
%s

User query: %s`, HealthDisclaimer, normalizeQuery(query))
}

func (pb *PromptBuilder) BuildEmergencyPrompt(query string) string {
	return fmt.Sprintf(`You are an expert emergency responder providing clear and concise instructions.
Given the type of emergency provided, give step-by-step guidance on what to do immediately.
Include safety precautions and remind the user to call emergency services if needed.
%s

Emergency type: %s

Please provide instructions suitable for a layperson to follow.`, HealthDisclaimer, normalizeQuery(query))
}

func (pb *PromptBuilder) BuildExerciseAndFitnessPrompt(query string) string {
	return fmt.Sprintf(`You are a knowledgeable fitness coach.
Suggest suitable exercises, workout routines, and recovery advice based on the user's input.
Mention any necessary precautions.
%s

User query: %s`, HealthDisclaimer, normalizeQuery(query))
}

func (pb *PromptBuilder) BuildDocumentQAPrompt(docText, question string) string {
	return fmt.Sprintf(`You are provided context extracted from a user-uploaded document.

Document content:
%s

Based on the above document, answer the following question:
%s`, strings.TrimSpace(docText), normalizeQuery(question))
}

func normalizeQuery(query string) string {
	return strings.TrimSpace(query)
}
