// Package usecase implements the business logic for the pairs feature.
package usecase

import (
	"context"
	"fmt"
	"sort"

	"lpclass_backend/internal/feature/pairs/domain"
	"lpclass_backend/internal/feature/pairs/domain/entity"
)

// DefaultTopN is the number of pairs shown on the page.
const DefaultTopN = 8

// PairRepository abstracts the market-data source for DEX pairs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PairRepository interface {
	ListPairs(ctx context.Context, chain string) ([]entity.Pair, error)
}

// PairsUsecase ranks pairs of a chain by 24h volume.
type PairsUsecase struct {
	repo  PairRepository
	chain string
	topN  int
}

// NewPairsUsecase creates a PairsUsecase for chain. A topN <= 0 uses DefaultTopN.
func NewPairsUsecase(repo PairRepository, chain string, topN int) *PairsUsecase {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &PairsUsecase{repo: repo, chain: chain, topN: topN}
}

// TopPairs returns the pairs with the highest 24h volume.
// Pairs without 24h volume are dropped; equal volumes keep their upstream order.
// Any repository failure is reported as domain.ErrDataUnavailable.
func (u *PairsUsecase) TopPairs(ctx context.Context) (entity.TopPairs, error) {
	pairs, err := u.repo.ListPairs(ctx, u.chain)
	if err != nil {
		return entity.TopPairs{}, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, err)
	}
	return RankByVolume(pairs, u.topN), nil
}

// RankByVolume filters, sorts and truncates pairs. The input slice is not modified.
func RankByVolume(pairs []entity.Pair, topN int) entity.TopPairs {
	ranked := make([]entity.Pair, 0, len(pairs))
	for _, p := range pairs {
		if p.Volume24h > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Volume24h > ranked[j].Volume24h
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	var total float64
	for _, p := range ranked {
		total += p.Volume24h
	}
	return entity.TopPairs{Pairs: ranked, TotalVolume24h: total}
}
