package models

// Requests for forecast HTTP endpoints. Defined in domain for consistency and reuse.

type ForecastRequest struct {
	Prices              []float64 `json:"prices" validate:"required,min=1,dive,gt=0"`
	Horizon             int       `json:"horizon" default:"7" validate:"gte=1,lte=365"`
	VolatilityFactor    float64   `json:"volatility_factor" default:"1.0" validate:"gt=0"`
	SentimentMode       string    `json:"sentiment_mode" default:"stochastic" validate:"oneof=exogenous stochastic"`
	SentimentMultiplier float64   `json:"sentiment_multiplier" default:"1.0" validate:"gt=0"`
	Seed                int64     `json:"seed" validate:"gte=0"`
	IncludeComponents   bool      `json:"include_components"`
}

type SymbolForecastRequest struct {
	Symbol              string  `query:"symbol" json:"symbol" validate:"required"`
	Horizon             int     `query:"horizon" json:"horizon" default:"7" validate:"gte=1,lte=365"`
	SentimentMode       string  `query:"mode" json:"mode" default:"stochastic" validate:"oneof=exogenous stochastic"`
	SentimentMultiplier float64 `query:"multiplier" json:"multiplier" default:"1.0" validate:"gt=0"`
	Seed                int64   `query:"seed" json:"seed" validate:"gte=0"`
}

type WeightsRequest struct {
	SentimentMode string `query:"mode" json:"mode" default:"stochastic" validate:"oneof=exogenous stochastic"`
}
