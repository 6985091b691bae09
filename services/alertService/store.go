package alertService

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"valueScoutBot/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	redisKeyTTL  = 7 * 24 * time.Hour
	writeTimeout = 3 * time.Second
	readTimeout  = time.Second
)

// Store holds tracked-bet lifecycle state. Reads are cache-first: in-memory
// map, then Redis, then the database. A failing Redis or database never
// blocks the read path; the in-memory map is the fallback of record.
type Store struct {
	db  *gorm.DB
	rdb *redis.Client

	mu  sync.RWMutex
	mem map[string]models.TrackedBet
}

func NewStore(db *gorm.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		mem: make(map[string]models.TrackedBet),
	}
}

func redisBetKey(key string) string {
	return fmt.Sprintf("valuescout:trackedbet:%s", key)
}

// Get returns the last known lifecycle record for a bet key, or nil when the
// key has never alerted.
func (s *Store) Get(key string) *models.TrackedBet {
	s.mu.RLock()
	if bet, ok := s.mem[key]; ok {
		s.mu.RUnlock()
		return &bet
	}
	s.mu.RUnlock()

	if bet := s.getRedis(key); bet != nil {
		s.remember(*bet)
		return bet
	}

	if s.db != nil {
		var bet models.TrackedBet
		err := s.db.Where("bet_key = ?", key).First(&bet).Error
		if err == nil {
			s.remember(bet)
			return &bet
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("tracked bet read failed for %s: %v", key, err)
		}
	}
	return nil
}

// GetByID resolves a bet from the numeric id carried in a button CustomID.
func (s *Store) GetByID(id uint) *models.TrackedBet {
	s.mu.RLock()
	for _, bet := range s.mem {
		if bet.ID == id {
			s.mu.RUnlock()
			copied := bet
			return &copied
		}
	}
	s.mu.RUnlock()

	if s.db != nil {
		var bet models.TrackedBet
		if err := s.db.First(&bet, id).Error; err == nil {
			s.remember(bet)
			return &bet
		}
	}
	return nil
}

// Save writes a bet synchronously to the database (assigning its id on
// create) and best-effort to Redis. Persistence failures are logged; the
// in-memory record always lands.
func (s *Store) Save(bet *models.TrackedBet) {
	if s.db != nil {
		if err := s.db.Save(bet).Error; err != nil {
			log.Printf("tracked bet save failed for %s: %v", bet.BetKey, err)
		}
	}
	s.remember(*bet)
	s.writeRedis(bet)
}

// SaveAsync updates the in-memory record immediately and flushes to the
// database and Redis on a bounded background task. A slow or failed write
// never blocks the caller.
func (s *Store) SaveAsync(bet *models.TrackedBet) {
	s.remember(*bet)

	copied := *bet
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if s.db != nil {
			if err := s.db.WithContext(ctx).Save(&copied).Error; err != nil {
				log.Printf("tracked bet async save failed for %s: %v", copied.BetKey, err)
			}
		}
		s.writeRedis(&copied)
	}()
}

// Discard removes a record that should never have persisted: memory
// immediately, the database and Redis on a bounded background task.
func (s *Store) Discard(bet *models.TrackedBet) {
	s.mu.Lock()
	delete(s.mem, bet.BetKey)
	s.mu.Unlock()

	copied := *bet
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if s.db != nil && copied.ID != 0 {
			if err := s.db.WithContext(ctx).Unscoped().Delete(&copied).Error; err != nil {
				log.Printf("tracked bet discard failed for %s: %v", copied.BetKey, err)
			}
		}
		if s.rdb != nil {
			if err := s.rdb.Del(ctx, redisBetKey(copied.BetKey)).Err(); err != nil && err != redis.Nil {
				log.Printf("tracked bet redis delete failed for %s: %v", copied.BetKey, err)
			}
		}
	}()
}

func (s *Store) remember(bet models.TrackedBet) {
	s.mu.Lock()
	s.mem[bet.BetKey] = bet
	s.mu.Unlock()
}

func (s *Store) getRedis(key string) *models.TrackedBet {
	if s.rdb == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	payload, err := s.rdb.Get(ctx, redisBetKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("tracked bet redis read failed for %s: %v", key, err)
		}
		return nil
	}

	var bet models.TrackedBet
	if err := json.Unmarshal(payload, &bet); err != nil {
		log.Printf("tracked bet redis decode failed for %s: %v", key, err)
		return nil
	}
	return &bet
}

func (s *Store) writeRedis(bet *models.TrackedBet) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(bet)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.rdb.Set(ctx, redisBetKey(bet.BetKey), payload, redisKeyTTL).Err(); err != nil {
		log.Printf("tracked bet redis write failed for %s: %v", bet.BetKey, err)
	}
}
