package college

import (
	"github.com/collegefinder/api/services"
	"github.com/collegefinder/api/utils/cache"
)

// CollegeHandler handles catalog, like and compare requests
type CollegeHandler struct {
	colleges  *services.CollegeService
	relations *services.RelationService
	cache     *cache.RedisCache // nil when redis is unavailable
	baseURL   string
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(colleges *services.CollegeService, relations *services.RelationService, redisCache *cache.RedisCache, baseURL string) *CollegeHandler {
	return &CollegeHandler{
		colleges:  colleges,
		relations: relations,
		cache:     redisCache,
		baseURL:   baseURL,
	}
}
