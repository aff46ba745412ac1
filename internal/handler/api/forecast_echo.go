package api

import (
	"errors"

	models "TrendCast/internal/domain/models"
	"TrendCast/internal/usecase"
	xhttp "TrendCast/pkg/http"
	xlogger "TrendCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ForecastEchoHandler exposes the ensemble engine to the visualization
// collaborator: forecast points with confidence bands for charting, and
// the weight breakdown for the contribution legend.
type ForecastEchoHandler struct {
	logger     *xlogger.Logger
	ens        *usecase.EnsembleForecaster
	maxHorizon int
}

func NewForecastEchoHandler(logger *xlogger.Logger, ens *usecase.EnsembleForecaster, maxHorizon int) *ForecastEchoHandler {
	return &ForecastEchoHandler{logger: logger, ens: ens, maxHorizon: maxHorizon}
}

func (h *ForecastEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/forecast", h.ForecastSeries)
	g.GET("/forecast", h.ForecastSymbol)
	g.GET("/weights", h.Weights)
}

// ForecastSeries forecasts over a caller-supplied series. The series
// must be positive closes in ascending day order; cadence is the
// caller's guarantee.
func (h *ForecastEchoHandler) ForecastSeries(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if h.maxHorizon > 0 && req.Horizon > h.maxHorizon {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestErrorf("horizon exceeds maximum of %d", h.maxHorizon))
	}

	out, err := h.ens.Forecast(req.Prices, req.Horizon, usecase.ForecastOptions{
		SentimentMode:       models.SentimentMode(req.SentimentMode),
		SentimentMultiplier: req.SentimentMultiplier,
		VolatilityFactor:    req.VolatilityFactor,
		Seed:                req.Seed,
		IncludeComponents:   req.IncludeComponents,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidHorizon) || errors.Is(err, usecase.ErrEmptySeries) {
			return xhttp.BadRequestResponse(c, xhttp.BadRequestError(err.Error()))
		}
		h.logger.Error("forecast usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, out)
}

type symbolForecastResponse struct {
	Symbol   string                  `json:"symbol"`
	Horizon  int                     `json:"horizon"`
	History  []models.PricePoint     `json:"history"`
	Forecast models.EnsembleForecast `json:"forecast"`
}

// ForecastSymbol loads the symbol's history from the configured store
// and forecasts over it.
func (h *ForecastEchoHandler) ForecastSymbol(c echo.Context) error {
	req := &models.SymbolForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if h.maxHorizon > 0 && req.Horizon > h.maxHorizon {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestErrorf("horizon exceeds maximum of %d", h.maxHorizon))
	}

	history, out, err := h.ens.ForecastSymbol(c.Request().Context(), req.Symbol, req.Horizon, usecase.ForecastOptions{
		SentimentMode:       models.SentimentMode(req.SentimentMode),
		SentimentMultiplier: req.SentimentMultiplier,
		Seed:                req.Seed,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmptySeries) {
			return xhttp.NotFoundResponse(c, xhttp.NotFoundError("no history for symbol "+req.Symbol))
		}
		h.logger.Error("symbol forecast usecase error",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, symbolForecastResponse{
		Symbol:   req.Symbol,
		Horizon:  req.Horizon,
		History:  history,
		Forecast: out,
	})
}

// Weights reports the default model set's normalized contribution
// percentages. Pure function of configuration, no forecast involved.
func (h *ForecastEchoHandler) Weights(c echo.Context) error {
	req := &models.WeightsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, usecase.DefaultWeightBreakdown(models.SentimentMode(req.SentimentMode)))
}
