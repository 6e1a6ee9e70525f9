package service

import (
	"context"
	"sync"
	"time"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// SettingsRepository defines the interface for the singleton settings document
type SettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, req *model.UpdateSettingsRequest) (*model.SiteSettings, error)
}

// SettingsService handles site settings and caches the maintenance flag so
// the gate in front of every page load does not hit the database each time.
type SettingsService struct {
	settingsRepo SettingsRepository
	cacheTTL     time.Duration

	mu       sync.RWMutex
	cached   *model.SiteSettings
	cachedAt time.Time
}

// SettingsServiceConfig holds configuration for the settings service
type SettingsServiceConfig struct {
	SettingsRepo SettingsRepository
	CacheTTL     time.Duration
}

// NewSettingsService creates a new settings service
func NewSettingsService(cfg SettingsServiceConfig) *SettingsService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SettingsService{
		settingsRepo: cfg.SettingsRepo,
		cacheTTL:     ttl,
	}
}

// Get returns the settings document, creating it with defaults on first read
func (s *SettingsService) Get(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.store(settings)
	return settings, nil
}

// Update applies a partial settings update and refreshes the cache, so a
// maintenance toggle takes effect without waiting for the TTL.
func (s *SettingsService) Update(ctx context.Context, req *model.UpdateSettingsRequest) (*model.SiteSettings, error) {
	settings, err := s.settingsRepo.Update(ctx, req)
	if err != nil {
		return nil, err
	}
	s.store(settings)
	return settings, nil
}

// Cached returns the settings from cache when fresh, falling back to a
// database read. An error with a stale cache present returns the stale
// value; the maintenance gate fails open rather than taking the site down.
func (s *SettingsService) Cached(ctx context.Context) (*model.SiteSettings, error) {
	s.mu.RLock()
	cached, cachedAt := s.cached, s.cachedAt
	s.mu.RUnlock()

	if cached != nil && time.Since(cachedAt) < s.cacheTTL {
		return cached, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if cached != nil {
			return cached, nil
		}
		return nil, err
	}
	s.store(settings)
	return settings, nil
}

func (s *SettingsService) store(settings *model.SiteSettings) {
	s.mu.Lock()
	s.cached = settings
	s.cachedAt = time.Now()
	s.mu.Unlock()
}
