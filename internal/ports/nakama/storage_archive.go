package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"euchre/internal/app"
	"euchre/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// storageWriter is the part of runtime.NakamaModule the archive uses.
type storageWriter interface {
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// StorageArchive implements ports.HandArchive with Nakama storage objects
// owned by the system user, one object per hand keyed by hand ID.
type StorageArchive struct {
	nk storageWriter
}

// NewStorageArchive creates a new storage-backed archive.
func NewStorageArchive(nk runtime.NakamaModule) *StorageArchive {
	return &StorageArchive{nk: nk}
}

// SaveHand writes record as a publicly readable, server-owned object.
func (a *StorageArchive) SaveHand(ctx context.Context, record app.HandRecord) error {
	if record.ID == "" {
		return fmt.Errorf("hand record has no id")
	}
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal hand record: %w", err)
	}

	writes := []*runtime.StorageWrite{
		{
			Collection:      HandsCollection,
			Key:             record.ID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_PUBLIC_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}
	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to archive hand %s: %w", record.ID, err)
	}
	return nil
}

var _ ports.HandArchive = (*StorageArchive)(nil)
