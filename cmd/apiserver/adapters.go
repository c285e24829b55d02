package main

import (
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/neo4j"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/interfaces/http/handlers"
)

// healthChecks maps every readiness-probed dependency to its check.
func healthChecks(graphDriver *neo4j.Driver, redisClient *redis.Client) map[string]handlers.HealthCheck {
	return map[string]handlers.HealthCheck{
		"neo4j": graphDriver.HealthCheck,
		"redis": redisClient.Ping,
	}
}

//Personal.AI order the ending
