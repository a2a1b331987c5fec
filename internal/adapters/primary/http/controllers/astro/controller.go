package astro

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/dasha"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/usecase"
)

const kindBadRequest = "bad_request"

type Controller struct {
	AstroUseCase usecase.IAstroUseCase
	Log          *slog.Logger
}

func New(astroUseCase usecase.IAstroUseCase, log *slog.Logger) *Controller {
	return &Controller{
		AstroUseCase: astroUseCase,
		Log:          log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.POST("/charts", c.computeChart)
	api.POST("/dasha", c.computeDasha)
	api.POST("/matching", c.computeMatching)
	api.GET("/transits", c.getTransits)
}

func (c *Controller) computeChart(ctx *gin.Context) {
	var req BirthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, err)
		return
	}

	chart, err := c.AstroUseCase.ComputeChart(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, chart)
}

func (c *Controller) computeDasha(ctx *gin.Context) {
	var query DashaQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.badRequest(ctx, err)
		return
	}
	var req BirthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, err)
		return
	}

	reqCtx := ctx.Request.Context()
	chart, err := c.AstroUseCase.ComputeChart(reqCtx, req.ToDomain())
	if err != nil {
		c.fail(ctx, err)
		return
	}

	root, err := c.AstroUseCase.ComputeDasha(reqCtx, chart, dasha.Options{
		Depth: query.Depth,
		Mode:  dasha.Mode(query.Mode),
	})
	if err != nil {
		c.fail(ctx, err)
		return
	}

	moon, _ := chart.Nakshatra(domain.Moon)
	ctx.JSON(http.StatusOK, DashaResponse{Moon: moon, Dasha: root})
}

func (c *Controller) computeMatching(ctx *gin.Context) {
	var req MatchingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, err)
		return
	}

	res, err := c.AstroUseCase.ComputeMatching(
		ctx.Request.Context(),
		req.Boy.ToDomain(),
		req.Girl.ToDomain(),
		domain.DoshaReference(req.DoshaReference),
	)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (c *Controller) getTransits(ctx *gin.Context) {
	var query TransitsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.badRequest(ctx, err)
		return
	}

	var (
		chart *domain.Chart
		err   error
	)
	if query.At == "" {
		chart, err = c.AstroUseCase.CachedTransits(ctx.Request.Context())
	} else {
		// формат уже проверен валидатором datetime
		at, _ := time.Parse(time.RFC3339, query.At)
		chart, err = c.AstroUseCase.ComputeTransits(ctx.Request.Context(), at)
	}
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, chart)
}

func (c *Controller) badRequest(ctx *gin.Context, err error) {
	c.Log.WarnContext(ctx.Request.Context(), "failed to bind request",
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{Kind: kindBadRequest, Message: err.Error()}})
}

// fail переводит ошибку ядра в HTTP-статус
func (c *Controller) fail(ctx *gin.Context, err error) {
	status := StatusFor(err)
	kind := domain.Kind(err)
	if errors.Is(err, dasha.ErrInvalidOptions) {
		kind = kindBadRequest
	}

	reqCtx := ctx.Request.Context()
	if status >= http.StatusInternalServerError {
		c.Log.ErrorContext(reqCtx, "computation failed", "path", ctx.FullPath(), "kind", kind, "error", err)
	} else {
		c.Log.WarnContext(reqCtx, "computation rejected", "path", ctx.FullPath(), "kind", kind, "error", err)
	}

	message := err.Error()
	if kind == "internal" {
		message = "internal server error"
	}
	ctx.JSON(status, ErrorResponse{Error: ErrorBody{Kind: kind, Message: message}})
}

func StatusFor(err error) int {
	switch {
	case domain.IsInvalidDate(err), domain.IsInvalidLocation(err), errors.Is(err, dasha.ErrInvalidOptions):
		return http.StatusBadRequest
	case domain.IsEphemerisUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
