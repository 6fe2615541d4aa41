package session

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/fiasco/internal/kv"
)

// BestKey is the store key holding the best WPM.
const BestKey = "best_wpm"

// BestScore is the persisted WPM high-water mark.
type BestScore struct {
	store kv.Store
}

// NewBestScore returns a BestScore backed by store.
func NewBestScore(store kv.Store) *BestScore {
	return &BestScore{store: store}
}

// Load returns the stored best. Missing, malformed, non-finite or negative
// values read as zero.
func (b *BestScore) Load(ctx context.Context) (int, error) {
	raw, ok, err := b.store.Get(ctx, BestKey)
	if err != nil {
		return 0, fmt.Errorf("failed to read best score: %w", err)
	}
	if !ok {
		return 0, nil
	}
	return parseBest(raw), nil
}

// Record stores wpm if it beats the stored best and reports whether it did.
func (b *BestScore) Record(ctx context.Context, wpm int) (bool, error) {
	current, err := b.Load(ctx)
	if err != nil {
		return false, err
	}
	if wpm <= current {
		return false, nil
	}
	if err := b.store.Set(ctx, BestKey, strconv.Itoa(wpm)); err != nil {
		return false, fmt.Errorf("failed to write best score: %w", err)
	}
	return true, nil
}

func parseBest(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return 0
	}
	return int(v)
}
