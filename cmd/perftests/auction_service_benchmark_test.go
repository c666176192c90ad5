package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"
)

// Benchmark 1: PlaceBid - Isolated Items (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	svc, _ := setupService(b, b.N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidder := fmt.Sprintf("user_%d", i)
		amount := int64(50 + rand.Intn(100))
		if _, err := svc.PlaceBid(i+1, bidder, "pw", amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Item (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedItem(b *testing.B) {
	svc, _ := setupService(b, 1)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := fmt.Sprintf("user_parallel_%d", rnd.Intn(1000))
			next := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(1, bidder, "pw", next)
		}
	})
}

// Benchmark 3: PlaceBid with live observers receiving every update
func Benchmark_PlaceBid_WithObservers(b *testing.B) {
	for _, observers := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("observers_%d", observers), func(b *testing.B) {
			svc, hub := setupService(b, 10)
			for i := 0; i < observers; i++ {
				drain(svc.Connect())
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = svc.PlaceBid(i%10+1, "bidder", "pw", int64(i+1))
			}

			b.StopTimer()
			hub.Close()
		})
	}
}

// Benchmark 4: Snapshot - Concurrent reads of the whole catalog
func Benchmark_Snapshot_Concurrent(b *testing.B) {
	svc, _ := setupService(b, 96)

	for j := 0; j < 100; j++ {
		_, _ = svc.PlaceBid(j%96+1, fmt.Sprintf("user_%d", j), "pw", int64(50+j))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if snap := svc.Snapshot(); len(snap.Items) != 96 {
				b.Fatalf("unexpected item count %d", len(snap.Items))
			}
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedItem(b *testing.B) {
	svc, _ := setupService(b, 1)

	for j := 0; j < 50; j++ {
		_, _ = svc.PlaceBid(1, fmt.Sprintf("user_seed_%d", j), "pw", int64(50+j*2))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 150

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			if rnd.Intn(10) < 3 {
				bidder := fmt.Sprintf("user_writer_%d", rnd.Intn(1000))
				next := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.PlaceBid(1, bidder, "pw", next)
				continue
			}
			if _, err := svc.Item(1); err != nil {
				b.Fatalf("read error: %v", err)
			}
		}
	})
}
