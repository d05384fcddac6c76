package scoring

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

type fakeStore struct {
	high    map[string]int
	runs    []int
	loadErr error
	saveErr error
}

func (f *fakeStore) LoadHighScore(key string) (int, error) {
	return f.high[key], f.loadErr
}

func (f *fakeStore) SaveHighScore(key string, score int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.high[key] = max(f.high[key], score)
	return nil
}

func (f *fakeStore) SaveScore(_ string, score int) (int64, error) {
	f.runs = append(f.runs, score)
	return int64(len(f.runs)), nil
}

func quiet() *log.Logger { return log.New(io.Discard) }

func TestKeeperSubmit(t *testing.T) {
	store := &fakeStore{high: map[string]int{"k": 50}}
	k := NewKeeper(store, "paddle_bricks", "k", quiet())

	if got := k.Load(); got != 50 {
		t.Fatalf("Load() = %d, expected 50", got)
	}

	tests := []struct {
		score   int
		newBest bool
		high    int
	}{
		{0, false, 50},
		{30, false, 50},
		{80, true, 80},
		{80, false, 80},
		{120, true, 120},
	}
	for _, tc := range tests {
		if got := k.Submit(tc.score); got != tc.newBest {
			t.Errorf("Submit(%d) = %v, expected %v", tc.score, got, tc.newBest)
		}
		if k.High() != tc.high {
			t.Errorf("after Submit(%d) High = %d, expected %d", tc.score, k.High(), tc.high)
		}
	}
	if store.high["k"] != 120 {
		t.Errorf("stored high = %d, expected 120", store.high["k"])
	}
	if len(store.runs) != 4 {
		t.Errorf("recorded %d runs, expected 4", len(store.runs))
	}
}

func TestKeeperStoreFailures(t *testing.T) {
	store := &fakeStore{
		high:    map[string]int{},
		loadErr: errors.New("disk gone"),
		saveErr: errors.New("disk gone"),
	}
	k := NewKeeper(store, "helix", "HelixDrop:highScore", quiet())

	if got := k.Load(); got != 0 {
		t.Errorf("Load() on failure = %d, expected 0", got)
	}
	if !k.Submit(10) || k.High() != 10 {
		t.Errorf("failed save should still update the in-memory high, got %d", k.High())
	}
}

func TestKeeperWithoutStore(t *testing.T) {
	k := NewKeeper(nil, "helix", "HelixDrop:highScore", quiet())
	k.Submit(5)
	if k.Load() != 5 {
		t.Errorf("in-memory keeper lost its high score")
	}
}

func TestKeeperWithSQLite(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	k := NewKeeper(store, "paddle_targets", "@PlayfulDiscovery:highScore", quiet())
	k.Load()
	k.Submit(42)

	again := NewKeeper(store, "paddle_targets", "@PlayfulDiscovery:highScore", quiet())
	if got := again.Load(); got != 42 {
		t.Errorf("reloaded high = %d, expected 42", got)
	}
}
