package qd

import (
	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// KnowledgeBase tracks, for every tile, how many copies remain unseen by the
// player holding a hand. A partial sequence is only completable if the
// knowledge base still has a live copy of a tile that would complete it;
// once all 4 copies of that tile are visible elsewhere, the wait is dead and
// the deficiency search does not credit it as completable. Pairs are not
// checked against the knowledge base: a pair always counts as a pair.
type KnowledgeBase struct {
	remaining count.TileCount
}

// NewKnowledgeBase derives remaining wall copies from everything the player
// can see: their own hand, concealed and called.
func NewKnowledgeBase(hand count.HandCount) KnowledgeBase {
	remaining := count.New(tile.All)
	for _, t := range tile.All {
		remaining.Set(t, 4-hand.Get(t))
	}
	return KnowledgeBase{remaining: remaining}
}

// IsLive reports whether at least one copy of t is still unseen.
func (kb KnowledgeBase) IsLive(t tile.Tile) bool {
	return kb.remaining.Get(t) > 0
}
