package perftests

import (
	"fmt"
	"testing"

	bidding "live-auction/internal/biddingService"
	"live-auction/internal/broadcast"
	"live-auction/internal/catalog"
	model "live-auction/internal/models"
	"live-auction/internal/repository"
)

const adminUser = "Ocean"

// catalogOf describes numItems items split into full categories
func catalogOf(numItems int) model.CategoryConfig {
	cfg := model.CategoryConfig{}
	for i := 0; numItems > 0; i++ {
		n := min(numItems, catalog.MaxCount)
		cfg = append(cfg, model.Category{Name: fmt.Sprintf("Cat%d", i), Count: n})
		numItems -= n
	}
	return cfg
}

// setupService creates an auction service with numItems items, all active
func setupService(tb testing.TB, numItems int) (*bidding.AuctionService, *broadcast.Hub) {
	tb.Helper()

	hub := broadcast.NewHub(broadcast.DefaultBufferSize)
	svc := bidding.NewAuctionService(repository.NewMemoryUserRepo(adminUser), hub, catalogOf(numItems))
	if err := svc.StartAllAuctions(adminUser); err != nil {
		tb.Fatalf("failed to start auctions: %v", err)
	}
	return svc, hub
}

// drain consumes an observer's events until its queue is closed
func drain(sub *broadcast.Subscriber) <-chan int {
	done := make(chan int, 1)
	go func() {
		n := 0
		for range sub.Events() {
			n++
		}
		done <- n
	}()
	return done
}
