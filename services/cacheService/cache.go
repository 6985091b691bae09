package cacheService

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"valueScoutBot/models"
	"valueScoutBot/models/external"
	"valueScoutBot/services/statsService"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// FixtureFeed lists upcoming fixtures for one sport feed key.
type FixtureFeed interface {
	ListFixtures(feedKey string) ([]external.Fixture, error)
}

// OddsFeed fetches odds for one fixture restricted to a bookmaker batch.
type OddsFeed interface {
	FetchOdds(feedKey, fixtureID string, markets, bookmakers []string) ([]external.RawOddsRecord, error)
}

// Cache owns one snapshot per sport and runs the refresh cycles that replace
// them. It is the single writer; readers only ever get copies.
type Cache struct {
	db       *gorm.DB
	rdb      *redis.Client
	fixtures FixtureFeed
	odds     OddsFeed
	stats    statsService.AveragesFeed

	mu          sync.RWMutex
	snapshots   map[string]*models.CacheSnapshot
	refreshing  map[string]bool
	configs     map[string]*models.SportConfig
	subscribers []func(models.CacheSnapshot)
}

func New(db *gorm.DB, rdb *redis.Client, fixtures FixtureFeed, odds OddsFeed, stats statsService.AveragesFeed, cfgs []models.SportConfig) *Cache {
	c := &Cache{
		db:         db,
		rdb:        rdb,
		fixtures:   fixtures,
		odds:       odds,
		stats:      stats,
		snapshots:  make(map[string]*models.CacheSnapshot),
		refreshing: make(map[string]bool),
		configs:    make(map[string]*models.SportConfig),
	}

	for i := range cfgs {
		cfg := cfgs[i]
		c.configs[cfg.Sport] = &cfg
		if snap := c.restoreSnapshot(cfg.Sport); snap != nil {
			c.snapshots[cfg.Sport] = snap
		} else {
			c.snapshots[cfg.Sport] = &models.CacheSnapshot{Sport: cfg.Sport, State: models.StateIdle}
		}
	}
	return c
}

// Sports returns the configured sport names.
func (c *Cache) Sports() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sports := make([]string, 0, len(c.configs))
	for sport := range c.configs {
		sports = append(sports, sport)
	}
	return sports
}

// Config returns the configuration for one sport.
func (c *Cache) Config(sport string) (models.SportConfig, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cfg, ok := c.configs[sport]
	if !ok {
		return models.SportConfig{}, false
	}
	return *cfg, true
}

// GetSnapshot returns a copy of the current snapshot for one sport.
func (c *Cache) GetSnapshot(sport string) (models.CacheSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.snapshots[sport]
	if !ok {
		return models.CacheSnapshot{}, false
	}
	return *snap, true
}

// Status returns the lightweight refresh status for one sport.
func (c *Cache) Status(sport string) (models.RefreshStatus, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.snapshots[sport]
	if !ok {
		return models.RefreshStatus{}, false
	}
	return models.RefreshStatus{
		Sport:        sport,
		LastUpdated:  snap.LastUpdated,
		IsRefreshing: c.refreshing[sport],
		ErrorMessage: snap.ErrorMessage,
		Progress:     snap.Progress,
	}, true
}

// OnSnapshotChange registers a callback invoked with a snapshot copy on
// every publish: progress updates, errors, and completed swaps.
func (c *Cache) OnSnapshotChange(fn func(models.CacheSnapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// RefreshAsync triggers a refresh without waiting for it.
func (c *Cache) RefreshAsync(sport string) {
	go func() {
		if err := c.Refresh(sport); err != nil {
			log.Printf("refresh %s: %v", sport, err)
		}
	}()
}

// RefreshAll triggers a refresh of every configured sport.
func (c *Cache) RefreshAll() {
	for _, sport := range c.Sports() {
		c.RefreshAsync(sport)
	}
}

// publish stores a new snapshot pointer and fans it out to subscribers.
func (c *Cache) publish(snap *models.CacheSnapshot) {
	c.mu.Lock()
	c.snapshots[snap.Sport] = snap
	subs := make([]func(models.CacheSnapshot), len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(*snap)
	}
}

// clearProgress drops the progress record without notifying subscribers.
func (c *Cache) clearProgress(sport string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, ok := c.snapshots[sport]
	if !ok || snap.Progress == nil {
		return
	}
	next := *snap
	next.Progress = nil
	c.snapshots[sport] = &next
}

func snapshotKey(sport string) string {
	return fmt.Sprintf("valuescout:snapshot:%s", sport)
}

// persistSnapshot writes the snapshot to Redis so a restart can serve the
// last good data immediately. Best effort only.
func (c *Cache) persistSnapshot(snap *models.CacheSnapshot) {
	if c.rdb == nil {
		return
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("snapshot marshal failed for %s: %v", snap.Sport, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := c.rdb.Set(ctx, snapshotKey(snap.Sport), payload, 0).Err(); err != nil {
			log.Printf("snapshot persist failed for %s: %v", snap.Sport, err)
		}
	}()
}

func (c *Cache) restoreSnapshot(sport string) *models.CacheSnapshot {
	if c.rdb == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	payload, err := c.rdb.Get(ctx, snapshotKey(sport)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("snapshot restore failed for %s: %v", sport, err)
		}
		return nil
	}

	var snap models.CacheSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		log.Printf("snapshot restore failed for %s: %v", sport, err)
		return nil
	}
	snap.State = models.StateIdle
	snap.Progress = nil
	return &snap
}
