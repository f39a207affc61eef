package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/brightkid/brightkid/brightkid/database/repositories"
	"github.com/brightkid/brightkid/brightkid/logger"
	"github.com/brightkid/brightkid/brightkid/services"
	"github.com/gofiber/fiber/v2"
)

// App bundles the services the HTTP layer exposes. Export is nil when
// Spaces is not configured; the endpoint reports it as unavailable.
type App struct {
	Children  repositories.ChildRepository
	Progress  *services.ProgressService
	Dashboard *services.DashboardService
	Catalog   *services.CatalogService
	Export    *services.ExportService
	Version   string
}

func (a *App) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", a.health)
	api.Post("/children", a.createChild)
	api.Get("/parents/:parentId/children", a.listChildren)
	api.Post("/children/:id/events", a.recordEvent)
	api.Get("/children/:id/dashboard", a.dashboard)
	api.Post("/children/:id/export", a.exportSnapshot)
	api.Get("/achievements", a.achievements)
}

func (a *App) health(c *fiber.Ctx) error {
	return sendSuccess(c, http.StatusOK, fiber.Map{"version": a.Version}, "ok")
}

type createChildRequest struct {
	ParentID  int64  `json:"parentId"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	BirthYear int    `json:"birthYear"`
}

func (a *App) createChild(c *fiber.Ctx) error {
	var req createChildRequest
	if err := c.BodyParser(&req); err != nil {
		return sendBadRequest(c, "invalid request body")
	}
	if req.ParentID <= 0 || req.Name == "" {
		return sendBadRequest(c, "parentId and name are required")
	}

	child := &models.Child{
		ParentID:  req.ParentID,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		BirthYear: req.BirthYear,
	}
	if err := a.Children.Create(c.Context(), child); err != nil {
		logger.LogError("Failed to create child", err)
		return sendInternalServerError(c, "failed to create child")
	}
	return sendSuccess(c, http.StatusCreated, child, "child created")
}

func (a *App) listChildren(c *fiber.Ctx) error {
	parentID, err := strconv.ParseInt(c.Params("parentId"), 10, 64)
	if err != nil {
		return sendBadRequest(c, "invalid parent id")
	}

	children, err := a.Children.ListByParent(c.Context(), parentID)
	if err != nil {
		logger.LogError("Failed to list children", err)
		return sendInternalServerError(c, "failed to list children")
	}
	return sendSuccess(c, http.StatusOK, children, "")
}

type recordEventRequest struct {
	Kind string         `json:"kind"`
	Meta map[string]any `json:"meta"`
}

type recordEventResponse struct {
	EventID         *int64   `json:"eventId,omitempty"`
	Deduped         bool     `json:"deduped"`
	PointsAwarded   int      `json:"pointsAwarded"`
	NewAchievements []string `json:"newAchievements"`
}

func (a *App) recordEvent(c *fiber.Ctx) error {
	childID, ok := a.resolveChild(c)
	if !ok {
		return nil
	}

	var req recordEventRequest
	if err := c.BodyParser(&req); err != nil {
		return sendBadRequest(c, "invalid request body")
	}

	result, err := a.Progress.RecordEvent(c.Context(), services.RecordEventInput{
		ChildID: childID,
		Kind:    req.Kind,
		Meta:    req.Meta,
	})
	if err != nil {
		if errors.Is(err, services.ErrUnknownEventKind) {
			return sendBadRequest(c, "unknown event kind: "+req.Kind)
		}
		logger.LogError("Failed to record event", err, slog.Int64("child_id", childID))
		return sendInternalServerError(c, "failed to record event")
	}

	resp := recordEventResponse{
		Deduped:         result.Deduped,
		PointsAwarded:   result.PointsAwarded,
		NewAchievements: result.NewAchievements,
	}
	if resp.NewAchievements == nil {
		resp.NewAchievements = []string{}
	}
	if result.Event != nil {
		resp.EventID = &result.Event.ID
	}

	status := http.StatusCreated
	message := "event recorded"
	if result.Deduped {
		status = http.StatusOK
		message = "event already recorded today"
	}
	return sendSuccess(c, status, resp, message)
}

func (a *App) dashboard(c *fiber.Ctx) error {
	childID, ok := a.resolveChild(c)
	if !ok {
		return nil
	}

	dashboard, err := a.Dashboard.Assemble(c.Context(), childID)
	if err != nil {
		logger.LogError("Failed to assemble dashboard", err, slog.Int64("child_id", childID))
		return sendInternalServerError(c, "failed to assemble dashboard")
	}
	return sendSuccess(c, http.StatusOK, dashboard, "")
}

func (a *App) exportSnapshot(c *fiber.Ctx) error {
	if a.Export == nil {
		return sendError(c, http.StatusServiceUnavailable, "EXPORT_DISABLED", "snapshot export is not configured")
	}

	childID, ok := a.resolveChild(c)
	if !ok {
		return nil
	}

	key, err := a.Export.ExportSnapshot(c.Context(), childID)
	if err != nil {
		logger.LogError("Failed to export snapshot", err, slog.Int64("child_id", childID))
		return sendInternalServerError(c, "failed to export snapshot")
	}
	return sendSuccess(c, http.StatusOK, fiber.Map{"key": key}, "snapshot exported")
}

func (a *App) achievements(c *fiber.Ctx) error {
	definitions, err := a.Catalog.Search(c.Context(), c.Query("q"))
	if err != nil {
		logger.LogError("Failed to search achievements", err)
		return sendInternalServerError(c, "failed to load achievements")
	}
	return sendSuccess(c, http.StatusOK, definitions, "")
}

// resolveChild parses the :id param and verifies the child exists. On
// failure it writes the error response itself and returns false.
func (a *App) resolveChild(c *fiber.Ctx) (int64, bool) {
	childID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		_ = sendBadRequest(c, "invalid child id")
		return 0, false
	}

	if _, err := a.Children.GetByID(c.Context(), childID); err != nil {
		var notFound *repositories.NotFoundError
		if errors.As(err, &notFound) {
			_ = sendNotFound(c, "child not found")
			return 0, false
		}
		logger.LogError("Failed to load child", err, slog.Int64("child_id", childID))
		_ = sendInternalServerError(c, "failed to load child")
		return 0, false
	}
	return childID, true
}
