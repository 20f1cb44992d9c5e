// Package service wires the calculator to its transports: it builds the
// request handler both natsworker and wssession dispatch to, and runs the
// serve command's resources through their shared lifecycle.
package service

import (
	"context"

	"github.com/taeho-gwon/mahjong-shanten/internal/analysisstore"
	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/handnotation"
	"github.com/taeho-gwon/mahjong-shanten/internal/logx"
	"github.com/taeho-gwon/mahjong-shanten/internal/memocache"
	"github.com/taeho-gwon/mahjong-shanten/internal/shanten"
	"github.com/taeho-gwon/mahjong-shanten/internal/transport/natsworker"
)

// Analyzer answers AnalyzeRequests, memoizing results behind cache and
// persisting every fresh computation to store.
type Analyzer struct {
	cache *memocache.AnalysisCache
	store analysisstore.Repository
}

func NewAnalyzer(cache *memocache.AnalysisCache, store analysisstore.Repository) *Analyzer {
	return &Analyzer{cache: cache, store: store}
}

// Handle is the natsworker.Handler / wssession handler both transports use.
func (a *Analyzer) Handle(req natsworker.AnalyzeRequest) natsworker.AnalyzeResponse {
	ctx := context.Background()

	var cached natsworker.AnalyzeResponse
	if hit, err := a.cache.GetJSON(ctx, req.HandCode, &cached); err == nil && hit {
		return cached
	}

	tiles, err := handnotation.ParseHandCode(req.HandCode)
	if err != nil {
		return natsworker.AnalyzeResponse{Error: err.Error()}
	}
	hand, err := count.CreateFromHand(tiles, nil, nil)
	if err != nil {
		return natsworker.AnalyzeResponse{Error: err.Error()}
	}

	resp := natsworker.AnalyzeResponse{Shanten: shanten.Shanten(hand, nil)}
	ukeireTotal := 0
	if hand.Total() == 14 {
		for _, opt := range shanten.CalculateEfficiency(hand, nil) {
			resp.Discards = append(resp.Discards, opt.Discard.String())
			resp.UkeireCount = append(resp.UkeireCount, opt.UkeireCount)
			ukeireTotal += opt.UkeireCount
		}
	}

	if err := a.cache.SetJSON(ctx, req.HandCode, resp); err != nil {
		logx.Warn("service: caching result for %q: %v", req.HandCode, err)
	}
	if a.store != nil {
		record := analysisstore.NewAnalysisRecord(req.HandCode, resp.Shanten, ukeireTotal)
		if err := a.store.Save(ctx, record); err != nil {
			logx.Warn("service: persisting analysis for %q: %v", req.HandCode, err)
		}
	}
	return resp
}
