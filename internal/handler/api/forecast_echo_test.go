package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendCast/internal/domain/models"
	"TrendCast/internal/services/synth"
	"TrendCast/internal/usecase"
	xlogger "TrendCast/pkg/logger"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestHandler(t *testing.T) (*ForecastEchoHandler, *echo.Echo) {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	store := synth.NewStore(synth.Config{BasePrice: 100, Days: 90, Drift: 0.001, Volatility: 0.01, Seed: 7})
	ens := usecase.NewEnsembleForecaster(store, nil, nil, 90, map[string]float64{"ACME": 0.9}, 1.0)

	h := NewForecastEchoHandler(l, ens, 365)
	e := echo.New()
	h.RegisterRoutes(e)
	return h, e
}

func do(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	var r *strings.Reader
	if body == "" {
		r = strings.NewReader("")
	} else {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestForecastSeries(t *testing.T) {
	_, e := newTestHandler(t)

	body := `{"prices":[100,101,102,101,103,104,105],"horizon":7,"seed":42}`
	rec, env := do(e, http.MethodPost, "/api/forecast", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusOK, env.Status)

	var out models.EnsembleForecast
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Len(t, out.Points, 7)
	assert.Len(t, out.Weights, 5)
	assert.Empty(t, out.Components)
	for d, p := range out.Points {
		assert.Equal(t, d, p.DayOffset)
		assert.LessOrEqual(t, p.LowerBound, p.UpperBound)
	}
}

func TestForecastSeriesDefaultsHorizon(t *testing.T) {
	_, e := newTestHandler(t)

	rec, env := do(e, http.MethodPost, "/api/forecast", `{"prices":[100,101,102],"seed":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out models.EnsembleForecast
	require.NoError(t, json.Unmarshal(env.Data, &out))
	// Horizon defaults to 7 when omitted.
	assert.Len(t, out.Points, 7)
}

func TestForecastSeriesIncludesComponents(t *testing.T) {
	_, e := newTestHandler(t)

	body := `{"prices":[100,101,102],"horizon":5,"seed":1,"include_components":true}`
	rec, env := do(e, http.MethodPost, "/api/forecast", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var out models.EnsembleForecast
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Len(t, out.Components, 5)
	for _, c := range out.Components {
		assert.Len(t, c.Path, 5)
	}
}

func TestForecastSeriesValidation(t *testing.T) {
	_, e := newTestHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty prices", `{"prices":[],"horizon":7}`},
		{"non-positive price", `{"prices":[100,-1],"horizon":7}`},
		{"negative horizon", `{"prices":[100],"horizon":-1}`},
		{"horizon too large", `{"prices":[100],"horizon":9999}`},
		{"bad sentiment mode", `{"prices":[100],"horizon":7,"sentiment_mode":"oracle"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, env := do(e, http.MethodPost, "/api/forecast", tc.body)
			assert.Equal(t, http.StatusBadRequest, env.Status)
		})
	}
}

func TestForecastSeriesHorizonCap(t *testing.T) {
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	ens := usecase.NewEnsembleForecaster(nil, nil, nil, 90, nil, 1.0)
	h := NewForecastEchoHandler(l, ens, 30)
	e := echo.New()
	h.RegisterRoutes(e)

	_, env := do(e, http.MethodPost, "/api/forecast", `{"prices":[100],"horizon":31}`)
	assert.Equal(t, http.StatusBadRequest, env.Status)
}

func TestForecastSymbol(t *testing.T) {
	_, e := newTestHandler(t)

	rec, env := do(e, http.MethodGet, "/api/forecast?symbol=ACME&horizon=7&seed=42", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, http.StatusOK, env.Status)

	var out struct {
		Symbol   string                  `json:"symbol"`
		Horizon  int                     `json:"horizon"`
		History  []models.PricePoint     `json:"history"`
		Forecast models.EnsembleForecast `json:"forecast"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "ACME", out.Symbol)
	assert.Equal(t, 7, out.Horizon)
	assert.Len(t, out.History, 90)
	assert.Len(t, out.Forecast.Points, 7)
}

func TestForecastSymbolRequiresSymbol(t *testing.T) {
	_, e := newTestHandler(t)
	_, env := do(e, http.MethodGet, "/api/forecast?horizon=7", "")
	assert.Equal(t, http.StatusBadRequest, env.Status)
}

func TestWeights(t *testing.T) {
	_, e := newTestHandler(t)

	rec, env := do(e, http.MethodGet, "/api/weights", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []models.WeightContribution
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Len(t, out, 5)

	sum := 0.0
	for _, wc := range out {
		sum += wc.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-6)
}

func TestWeightsRejectsBadMode(t *testing.T) {
	_, e := newTestHandler(t)
	_, env := do(e, http.MethodGet, "/api/weights?mode=oracle", "")
	assert.Equal(t, http.StatusBadRequest, env.Status)
}
