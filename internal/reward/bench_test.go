package reward

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/Ycine_Go/internal/catalog"
	"github.com/osse101/Ycine_Go/internal/database/memory"
	"github.com/osse101/Ycine_Go/internal/domain"
)

// seedCompleted creates n accounts that have each completed VID1
func seedCompleted(b *testing.B, store *memory.Store, n int) []string {
	b.Helper()
	ctx := context.Background()
	now := time.Now()
	ids := make([]string, n)
	for i := range ids {
		acc := domain.NewAccount(fmt.Sprintf("bench-%d", i), fmt.Sprintf("bench%d", i), fmt.Sprintf("BENCH-%06d", i), now)
		acc.RecordProgress("VID1", 20, true, now)
		if _, _, err := store.CreateAccountIfAbsent(ctx, acc); err != nil {
			b.Fatal(err)
		}
		ids[i] = acc.ID
	}
	return ids
}

func BenchmarkClaim(b *testing.B) {
	store := memory.NewStore(catalog.DefaultVideos())
	svc := NewService(store, store, domain.DefaultRevenueSplit(), nil, nil)
	ids := seedCompleted(b, store, b.N)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Claim(ctx, ids[i], "VID1"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRevenueSplit(b *testing.B) {
	split := domain.DefaultRevenueSplit()
	value := decimal.NewFromInt(1000)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = split.Compute(value)
	}
}
