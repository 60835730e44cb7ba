package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gongguscout/gonggu-scout/app/dto"
	"github.com/gongguscout/gonggu-scout/app/middleware"
	businessflow "github.com/gongguscout/gonggu-scout/business_flow"
	"github.com/gongguscout/gonggu-scout/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type InfluencerHandlerInterface interface {
	Search(c fiber.Ctx) error
	GetByID(c fiber.Ctx) error
	Export(c fiber.Ctx) error
}

type InfluencerHandler struct {
	flow      businessflow.InfluencerFlow
	validator *validator.Validate
}

func NewInfluencerHandler(flow businessflow.InfluencerFlow) InfluencerHandlerInterface {
	return &InfluencerHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

func (h *InfluencerHandler) ErrorResponse(c fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(dto.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// parseSearchRequest parses and validates query parameters. Numeric bounds
// are rejected outright when non-numeric instead of silently defaulting.
func (h *InfluencerHandler) parseSearchRequest(c fiber.Ctx) (*dto.SearchInfluencersRequest, string) {
	req := &dto.SearchInfluencersRequest{
		Category: c.Query("category"),
		SortBy:   c.Query("sortBy", dto.SortByEngagement),
	}

	numericParams := []struct {
		name string
		dst  **int64
	}{
		{"minFollowers", &req.MinFollowers},
		{"maxFollowers", &req.MaxFollowers},
		{"minReelsView", &req.MinReelsView},
		{"maxReelsView", &req.MaxReelsView},
	}
	for _, p := range numericParams {
		v := c.Query(p.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, "Invalid " + p.name + ": must be an integer"
		}
		*p.dst = &parsed
	}

	if err := h.validator.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return nil, getValidationErrorMessage(errs[0])
		}
		return nil, "Invalid search parameters"
	}

	return req, ""
}

// Search filters the influencer directory
// @Summary Search Influencers
// @Tags Influencers
// @Produce json
// @Param category query string false "Category tag, or 'all'"
// @Param minFollowers query int false "Minimum follower count"
// @Param maxFollowers query int false "Maximum follower count"
// @Param minReelsView query int false "Minimum average reels view"
// @Param maxReelsView query int false "Maximum average reels view"
// @Param sortBy query string false "engagement | followers | recent"
// @Success 200 {object} dto.SearchInfluencersResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/influencers [get]
func (h *InfluencerHandler) Search(c fiber.Ctx) error {
	req, validationMsg := h.parseSearchRequest(c)
	if validationMsg != "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, validationMsg)
	}

	ctx := h.createRequestContext(c, "/api/influencers")
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	middleware.CountSearch(req.SortBy)

	res, err := h.flow.Search(ctx, req, metadata)
	if err != nil {
		log.Println("Search influencers failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search influencers")
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// GetByID returns a single influencer with display derivations
// @Summary Get Influencer By ID
// @Tags Influencers
// @Produce json
// @Param id path int true "Influencer ID"
// @Success 200 {object} dto.GetInfluencerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/influencers/{id} [get]
func (h *InfluencerHandler) GetByID(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid influencer ID")
	}

	ctx := h.createRequestContext(c, "/api/influencers/"+idStr)
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	res, err := h.flow.GetByID(ctx, uint(id), metadata)
	if err != nil {
		if businessflow.IsInvalidInfluencerID(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid influencer ID")
		}
		if businessflow.IsInfluencerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Influencer not found")
		}
		log.Println("Get influencer failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch influencer")
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// Export downloads the filtered directory as a spreadsheet
// @Summary Export Influencers
// @Tags Influencers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param category query string false "Category tag, or 'all'"
// @Param sortBy query string false "engagement | followers | recent"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/influencers/export [get]
func (h *InfluencerHandler) Export(c fiber.Ctx) error {
	req, validationMsg := h.parseSearchRequest(c)
	if validationMsg != "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, validationMsg)
	}

	ctx := h.createRequestContext(c, "/api/influencers/export")
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	buf, err := h.flow.Export(ctx, req, metadata)
	if err != nil {
		log.Println("Export influencers failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export influencers")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="influencers.xlsx"`)
	return c.Status(fiber.StatusOK).Send(buf)
}

func (h *InfluencerHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, utils.DefaultRequestTimeout)
}

func (h *InfluencerHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
