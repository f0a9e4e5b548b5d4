package ports

import (
	"context"

	"euchre/internal/app"
)

// HandArchive persists finished hands.
type HandArchive interface {
	// SaveHand stores record. Implementations must not modify it.
	SaveHand(ctx context.Context, record app.HandRecord) error
}

// HandHistory reads archived hands back.
type HandHistory interface {
	// RecentHands returns up to n of the newest hands, oldest first.
	RecentHands(ctx context.Context, n int64) ([]app.HandRecord, error)
}
