package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/models"
	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/services"
)

type SkillHandler struct {
	skills services.SkillService
}

func NewSkillHandler(skills services.SkillService) *SkillHandler {
	return &SkillHandler{
		skills: skills,
	}
}

// RegisterRoutes wires one POST route per exposed skill plus the listing
// endpoint. The route set is built from the skill catalog, so adding a skill
// to the catalog is enough to expose it.
func (h *SkillHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/skills", h.HandleListSkills)

	for _, info := range h.skills.Skills() {
		name := info.Name
		api.Post("/skills/"+string(name), h.handleSkill(name))
	}
}

func (h *SkillHandler) HandleListSkills(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"skills": h.skills.Skills(),
	})
}

func (h *SkillHandler) handleSkill(name models.SkillName) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()
		c.Set("X-Request-ID", requestID)

		var req models.SkillRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, models.NewSkillError(models.ErrInvalidRequest, "invalid request payload"))
		}

		result, err := h.skills.Dispatch(c.UserContext(), name, &req)
		if err != nil {
			log.Printf("⚠️  Skill %s request %s failed: %v", name, requestID, err)
			return writeError(c, err)
		}

		return c.JSON(models.SkillResponse{Result: result})
	}
}

func writeError(c *fiber.Ctx, err error) error {
	kind := models.KindOf(err)
	if kind == "" {
		kind = models.ErrModelUnavailable
	}

	return c.Status(statusForKind(kind)).JSON(models.ErrorResponse{
		ErrorKind: string(kind),
		Message:   err.Error(),
	})
}

func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.ErrInvalidRequest, models.ErrUnsupportedFormat:
		return fiber.StatusBadRequest
	case models.ErrDecode:
		return fiber.StatusUnprocessableEntity
	case models.ErrContentTooLarge:
		return fiber.StatusRequestEntityTooLarge
	case models.ErrModelUnavailable:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
