// Package scoring keeps a game's best score in sync with storage.
package scoring

import (
	"github.com/charmbracelet/log"
)

// HighScoreStore persists best scores by key and records finished runs.
type HighScoreStore interface {
	LoadHighScore(key string) (int, error)
	SaveHighScore(key string, score int) error
	SaveScore(gameID string, score int) (int64, error)
}

// Keeper tracks the best score for one game. Storage is best-effort:
// failures are logged and play continues with the in-memory value.
type Keeper struct {
	store  HighScoreStore
	gameID string
	key    string
	high   int
	logger *log.Logger
}

// NewKeeper creates a Keeper. A nil store keeps scores in memory only.
func NewKeeper(store HighScoreStore, gameID, key string, logger *log.Logger) *Keeper {
	return &Keeper{
		store:  store,
		gameID: gameID,
		key:    key,
		logger: logger.WithPrefix("scoring"),
	}
}

// Load reads the persisted best score and returns it.
func (k *Keeper) Load() int {
	if k.store == nil {
		return k.high
	}
	high, err := k.store.LoadHighScore(k.key)
	if err != nil {
		k.logger.Warn("load high score", "key", k.key, "error", err)
		return k.high
	}
	k.high = max(k.high, high)
	return k.high
}

// Submit records a finished run. It returns true when score is a new best.
// Zero-point runs are not recorded.
func (k *Keeper) Submit(score int) bool {
	if score <= 0 {
		return false
	}
	if k.store != nil {
		if _, err := k.store.SaveScore(k.gameID, score); err != nil {
			k.logger.Warn("save score", "game", k.gameID, "error", err)
		}
	}
	if score <= k.high {
		return false
	}

	k.high = score
	if k.store != nil {
		if err := k.store.SaveHighScore(k.key, score); err != nil {
			k.logger.Warn("save high score", "key", k.key, "error", err)
		}
	}
	return true
}

// High returns the best score known to the keeper.
func (k *Keeper) High() int { return k.high }

// Key returns the persistence key.
func (k *Keeper) Key() string { return k.key }
