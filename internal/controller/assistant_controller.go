package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bibincs/hackathonchatbot/internal/dto"
	"github.com/bibincs/hackathonchatbot/internal/pkg/serverutils"
	"github.com/bibincs/hackathonchatbot/internal/service"
)

const sessionHeader = "X-Session-Id"

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Scan(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	GetItinerary(ctx *fiber.Ctx) error
	RemoveItineraryEntry(ctx *fiber.Ctx) error
	ResetSession(ctx *fiber.Ctx) error
	GetDirections(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService  service.IAssistantService
	directionsService service.IDirectionsService
}

func NewAssistantController(
	assistantService service.IAssistantService,
	directionsService service.IDirectionsService,
) IAssistantController {
	return &assistantController{
		assistantService:  assistantService,
		directionsService: directionsService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("scan", c.Scan)
	h.Post("ask", c.Ask)
	h.Get("itinerary", c.GetItinerary)
	h.Delete("itinerary/entry", c.RemoveItineraryEntry)
	h.Delete("session", c.ResetSession)
	h.Get("directions", c.GetDirections)
}

// sessionID returns the caller's session id, minting one for callers that
// haven't got one yet. The id travels in the X-Session-Id header both ways.
func sessionID(ctx *fiber.Ctx) string {
	id := strings.TrimSpace(ctx.Get(sessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set(sessionHeader, id)
	return id
}

func (c *assistantController) Scan(ctx *fiber.Ctx) error {
	var req dto.ScanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Scan(ctx.Context(), sessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success scan boarding pass", res))
}

// Ask replies with the frontend's chat contract: {"assistant": "..."} on
// success, {"error": "..."} on failure, without the standard envelope.
func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		var fiberErr *fiber.Error
		if e, ok := err.(*fiber.Error); ok {
			fiberErr = e
		} else {
			fiberErr = fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	res, err := c.assistantService.Ask(ctx.Context(), sessionID(ctx), &req)
	if err != nil {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(res)
}

func (c *assistantController) GetItinerary(ctx *fiber.Ctx) error {
	res := c.assistantService.GetItinerary(sessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success get itinerary", res))
}

func (c *assistantController) RemoveItineraryEntry(ctx *fiber.Ctx) error {
	var req dto.RemoveItineraryEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.assistantService.RemoveItineraryEntry(sessionID(ctx), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success remove itinerary entry", c.assistantService.GetItinerary(sessionID(ctx))))
}

func (c *assistantController) ResetSession(ctx *fiber.Ctx) error {
	c.assistantService.ResetSession(sessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse[any]("Success reset session", nil))
}

// GetDirections redirects to the wayfinder map. Waypoints arrive as a
// comma-separated "dst" query parameter of location codes.
func (c *assistantController) GetDirections(ctx *fiber.Ctx) error {
	var waypoints []string
	if raw := ctx.Query("dst"); raw != "" {
		waypoints = strings.Split(raw, ",")
	}
	return ctx.Redirect(c.directionsService.BuildDirectionsURL(waypoints), fiber.StatusFound)
}
