package service

import (
	"log/slog"

	"shuvoedward/Theology_project/internal/cache"
	"shuvoedward/Theology_project/internal/data"
)

// Service contains all business logic services
type Service struct {
	Theology *TheologyService
	Link     *LinkService
	Import   *ImportService
}

// NewServices creates all services with their dependencies
// Centralize service creation
func NewServices(
	models data.Models,
	logger *slog.Logger,
	redisClient *cache.RedisClient,
) *Service {
	return &Service{
		Theology: NewTheologyService(
			models.Entries,
			models.ScriptureIndex,
			redisClient,
			logger,
		),
		Link: NewLinkService(
			models.Entries,
			logger,
		),
		Import: NewImportService(
			models.Imports,
			redisClient,
			logger,
		),
	}
}
