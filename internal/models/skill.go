package models

// SkillName identifies one of the fixed set of skills the server exposes.
type SkillName string

const (
	SkillHealthCheck           SkillName = "health_check"
	SkillUploadAndQA           SkillName = "upload_and_qa"
	SkillAskKnowledge          SkillName = "ask_knowledge"
	SkillDietAndNutrition      SkillName = "diet_and_nutrition"
	SkillMentalHealthSupport   SkillName = "mental_health_support"
	SkillEmergencyInstructions SkillName = "emergency_instructions"
	SkillExerciseAndFitness    SkillName = "exercise_and_fitness"
)

// Supported document type tags for upload_and_qa.
const (
	FileTypePDF  = "pdf"
	FileTypeDOCX = "docx"
)

// SkillRequest carries the fields a skill invocation may use. Every skill
// requires Query except upload_and_qa, which requires DocBase64, FileType
// and Question instead.
type SkillRequest struct {
	Query     string `json:"query,omitempty"`
	DocBase64 string `json:"doc_base64,omitempty"`
	FileType  string `json:"file_type,omitempty"`
	Question  string `json:"question,omitempty"`
}

type SkillResponse struct {
	Result string `json:"result"`
}

type ErrorResponse struct {
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
}

type SkillInfo struct {
	Name        SkillName `json:"name"`
	Description string    `json:"description"`
}

type AboutResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

type ValidateResponse struct {
	Number string `json:"number"`
}
