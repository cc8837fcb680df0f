package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/models"
)

// SkillService dispatches a named skill invocation through its pipeline:
// (decode document →) build prompt → call model. Invocations are
// independent; the service holds no mutable state.
type SkillService interface {
	Dispatch(ctx context.Context, name models.SkillName, req *models.SkillRequest) (string, error)
	Skills() []models.SkillInfo
}

type skillService struct {
	parser      DocumentParserService
	prompts     *PromptBuilder
	llm         CompletionClient
	maxDocChars int
	callTimeout time.Duration
}

func NewSkillService(
	parser DocumentParserService,
	llm CompletionClient,
	maxDocChars int,
	callTimeout time.Duration,
) SkillService {
	return &skillService{
		parser:      parser,
		prompts:     NewPromptBuilder(),
		llm:         llm,
		maxDocChars: maxDocChars,
		callTimeout: callTimeout,
	}
}

var skillCatalog = []models.SkillInfo{
	{Name: models.SkillHealthCheck, Description: "Answer health queries with quick action steps and a medical disclaimer"},
	{Name: models.SkillUploadAndQA, Description: "Answer a question from an uploaded base64-encoded PDF or DOCX document"},
	{Name: models.SkillAskKnowledge, Description: "Generate in-depth explanations, summaries, or definitions on any topic"},
	{Name: models.SkillDietAndNutrition, Description: "Personalized diet plans, nutritional info, and healthy eating tips"},
	{Name: models.SkillMentalHealthSupport, Description: "Empathetic coping strategies and resources for mental well-being"},
	{Name: models.SkillEmergencyInstructions, Description: "Step-by-step first-aid instructions for common emergencies"},
	{Name: models.SkillExerciseAndFitness, Description: "Exercise suggestions, fitness routines, and recovery tips"},
}

// Skills implements SkillService.
func (s *skillService) Skills() []models.SkillInfo {
	skills := make([]models.SkillInfo, len(skillCatalog))
	copy(skills, skillCatalog)
	return skills
}

// Dispatch implements SkillService.
func (s *skillService) Dispatch(ctx context.Context, name models.SkillName, req *models.SkillRequest) (string, error) {
	if req == nil {
		req = &models.SkillRequest{}
	}

	switch name {
	case models.SkillHealthCheck:
		return s.answerQuery(ctx, req, s.prompts.BuildHealthCheckPrompt, ResultDisclaimerHealth)
	case models.SkillAskKnowledge:
		return s.answerQuery(ctx, req, s.prompts.BuildKnowledgePrompt, "")
	case models.SkillDietAndNutrition:
		return s.answerQuery(ctx, req, s.prompts.BuildDietAndNutritionPrompt, "")
	case models.SkillMentalHealthSupport:
		return s.answerQuery(ctx, req, s.prompts.BuildMentalHealthPrompt, ResultDisclaimerMental)
	case models.SkillEmergencyInstructions:
		return s.answerQuery(ctx, req, s.prompts.BuildEmergencyPrompt, ResultDisclaimerEmergency)
	case models.SkillExerciseAndFitness:
		return s.answerQuery(ctx, req, s.prompts.BuildExerciseAndFitnessPrompt, "")
	case models.SkillUploadAndQA:
		return s.documentQA(ctx, req)
	default:
		return "", models.SkillErrorf(models.ErrInvalidRequest, "unknown skill: %q", name)
	}
}

func (s *skillService) answerQuery(
	ctx context.Context,
	req *models.SkillRequest,
	build func(string) string,
	disclaimer string,
) (string, error) {
	if strings.TrimSpace(req.Query) == "" {
		return "", models.NewSkillError(models.ErrInvalidRequest, "query is required")
	}

	result, err := s.complete(ctx, build(req.Query))
	if err != nil {
		return "", err
	}

	if disclaimer != "" {
		return disclaimer + "\n\n" + result, nil
	}
	return result, nil
}

func (s *skillService) documentQA(ctx context.Context, req *models.SkillRequest) (string, error) {
	if req.DocBase64 == "" {
		return "", models.NewSkillError(models.ErrInvalidRequest, "doc_base64 is required")
	}
	if req.FileType == "" {
		return "", models.NewSkillError(models.ErrInvalidRequest, "file_type is required")
	}
	if strings.TrimSpace(req.Question) == "" {
		return "", models.NewSkillError(models.ErrInvalidRequest, "question is required")
	}

	text, err := s.parser.ExtractText(req.DocBase64, req.FileType)
	if err != nil {
		return "", err
	}

	if s.maxDocChars > 0 && utf8.RuneCountInString(text) > s.maxDocChars {
		return "", models.SkillErrorf(models.ErrContentTooLarge,
			"extracted document text exceeds the %d character limit", s.maxDocChars)
	}

	return s.complete(ctx, s.prompts.BuildDocumentQAPrompt(text, req.Question))
}

func (s *skillService) complete(ctx context.Context, prompt string) (string, error) {
	if s.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}

	result, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		var skillErr *models.SkillError
		if errors.As(err, &skillErr) {
			return "", err
		}
		return "", models.SkillErrorf(models.ErrModelUnavailable, "completion request failed: %v", err)
	}

	return result, nil
}
