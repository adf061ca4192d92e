package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/leaguecentral/stats-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// ConfigStore persists the dashboard's configured league ID.
type ConfigStore interface {
	LeagueID(ctx context.Context) (string, error)
	SetLeagueID(ctx context.Context, leagueID string) error
}

type Config struct {
	Port        logic.SeasonDataPort
	ConfigStore ConfigStore
	Logger      *zap.Logger
	// Services
	Chain       logic.ChainService
	Aggregation logic.AggregationService
	TeamMetrics logic.MetricsService
}

type Handler struct {
	port        logic.SeasonDataPort
	configStore ConfigStore
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	chain       logic.ChainService
	aggregation logic.AggregationService
	teamMetrics logic.MetricsService
}

func New(cfg Config) *Handler {
	return &Handler{
		port:        cfg.Port,
		configStore: cfg.ConfigStore,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		chain:       cfg.Chain,
		aggregation: cfg.Aggregation,
		teamMetrics: cfg.TeamMetrics,
	}
}
