package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func queryBuilders(pb *PromptBuilder) map[string]func(string) string {
	return map[string]func(string) string{
		"health_check":           pb.BuildHealthCheckPrompt,
		"ask_knowledge":          pb.BuildKnowledgePrompt,
		"diet_and_nutrition":     pb.BuildDietAndNutritionPrompt,
		"mental_health_support":  pb.BuildMentalHealthPrompt,
		"emergency_instructions": pb.BuildEmergencyPrompt,
		"exercise_and_fitness":   pb.BuildExerciseAndFitnessPrompt,
	}
}

func TestPromptBuildersIncludeQuery(t *testing.T) {
	pb := NewPromptBuilder()
	query := "how do I treat a sprained ankle"

	for name, build := range queryBuilders(pb) {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, build(query), query)
		})
	}
}

func TestHealthDomainPromptsIncludeDisclaimer(t *testing.T) {
	pb := NewPromptBuilder()

	healthBuilders := map[string]func(string) string{
		"health_check":           pb.BuildHealthCheckPrompt,
		"diet_and_nutrition":     pb.BuildDietAndNutritionPrompt,
		"mental_health_support":  pb.BuildMentalHealthPrompt,
		"emergency_instructions": pb.BuildEmergencyPrompt,
		"exercise_and_fitness":   pb.BuildExerciseAndFitnessPrompt,
	}

	for name, build := range healthBuilders {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, build("any query"), HealthDisclaimer)
		})
	}
}

func TestKnowledgePromptHasNoDisclaimer(t *testing.T) {
	pb := NewPromptBuilder()

	assert.NotContains(t, pb.BuildKnowledgePrompt("what is entropy"), HealthDisclaimer)
}

func TestPromptBuildersAreDeterministic(t *testing.T) {
	pb := NewPromptBuilder()
	query := "is intermittent fasting safe"

	for name, build := range queryBuilders(pb) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, build(query), build(query))
		})
	}

	docText := "The warranty covers two years."
	question := "How long is the warranty?"
	assert.Equal(t,
		pb.BuildDocumentQAPrompt(docText, question),
		pb.BuildDocumentQAPrompt(docText, question),
	)
}

func TestPromptBuildersTrimWhitespace(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildHealthCheckPrompt("   what helps a migraine   ")
	assert.Contains(t, prompt, "User query: what helps a migraine")
}

func TestDocumentQAPromptIncludesContextAndQuestion(t *testing.T) {
	pb := NewPromptBuilder()
	docText := "The rent is due on the first of every month."
	question := "When is the rent due?"

	prompt := pb.BuildDocumentQAPrompt(docText, question)

	assert.Contains(t, prompt, docText)
	assert.Contains(t, prompt, question)
}
