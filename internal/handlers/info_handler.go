package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/models"
)

const (
	ServerName    = "AI Knowledge, Document Q&A & Health Assistant"
	ServerVersion = "1.0.0"

	serverDescription = "A versatile assistant API: a knowledge assistant for explanations and summaries, " +
		"document Q&A over uploaded PDF and DOCX files, and health support tools covering general health " +
		"queries, diet and nutrition, mental health, first-aid emergency instructions, and fitness guidance. " +
		"Health-related answers are informational only and do not replace professional medical advice."
)

// InfoHandler serves the server metadata endpoints.
type InfoHandler struct {
	ownerNumber string
}

func NewInfoHandler(ownerNumber string) *InfoHandler {
	return &InfoHandler{
		ownerNumber: ownerNumber,
	}
}

func (h *InfoHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/about", h.HandleAbout)
	api.Get("/validate", h.HandleValidate)
}

func (h *InfoHandler) HandleAbout(c *fiber.Ctx) error {
	return c.JSON(models.AboutResponse{
		Name:        ServerName,
		Description: serverDescription,
		Version:     ServerVersion,
	})
}

// HandleValidate returns the configured owner contact number, used by the
// calling agent runtime to verify server ownership.
func (h *InfoHandler) HandleValidate(c *fiber.Ctx) error {
	if h.ownerNumber == "" {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			ErrorKind: string(models.ErrInvalidRequest),
			Message:   "owner number is not configured",
		})
	}

	return c.JSON(models.ValidateResponse{Number: h.ownerNumber})
}
