package utils

import (
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"sync"

	"github.com/MadhavMendiratta/vit/internals/models"

	"gorm.io/gorm"
)

const epochRowID = 1

// EpochStore is the sole writer of the server-wide token epoch. The value
// lives in a single-row table so it survives restarts and is shared by every
// instance pointed at the same database; the cached copy makes Current() a
// memory read.
type EpochStore struct {
	db      *gorm.DB
	mu      sync.RWMutex
	version int
	persist bool
}

// NewEpochStore loads the persisted epoch, or initializes one on first boot.
// If the table is unreachable it degrades to an in-memory epoch, which means
// every restart invalidates all prior tokens. That is acceptable: sessions
// die early rather than a boot failure.
func NewEpochStore(db *gorm.DB) *EpochStore {
	s := &EpochStore{db: db}

	var row models.TokenEpoch
	err := db.First(&row, epochRowID).Error
	switch {
	case err == nil:
		s.version = row.Version
		s.persist = true
		log.Printf("Loaded existing token epoch: %d", s.version)
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.version = randomEpoch()
		if createErr := db.Create(&models.TokenEpoch{ID: epochRowID, Version: s.version}).Error; createErr != nil {
			log.Printf("Token epoch not persisted, sessions will not survive restarts: %v", createErr)
		} else {
			s.persist = true
		}
		log.Printf("Generated new token epoch: %d", s.version)
	default:
		s.version = randomEpoch()
		log.Printf("Token epoch store unavailable (%v), using in-memory epoch %d", err, s.version)
	}

	return s
}

func randomEpoch() int {
	max := big.NewInt(10000)
	n, _ := rand.Int(rand.Reader, max)
	return int(n.Int64())
}

// Current returns the cached epoch.
func (s *EpochStore) Current() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// InvalidateAll replaces the epoch with a fresh random value, failing every
// previously issued token on its next validation. The new value is always
// different from the old one.
func (s *EpochStore) InvalidateAll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := randomEpoch()
	for next == s.version {
		next = randomEpoch()
	}

	if s.persist {
		if err := s.db.Model(&models.TokenEpoch{}).Where("id = ?", epochRowID).Update("version", next).Error; err != nil {
			return s.version, err
		}
	}

	s.version = next
	log.Printf("All sessions invalidated, new token epoch: %d", next)
	return next, nil
}
