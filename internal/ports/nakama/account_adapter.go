package nakama

import (
	"context"

	"euchre/internal/ports"
)

// accountUpdater is the part of runtime.NakamaModule used for profiles.
type accountUpdater interface {
	AccountUpdateId(ctx context.Context, userID, username string, metadata map[string]interface{}, displayName, timezone, location, langTag, avatarUrl string) error
}

// AccountAdapter writes generated player names to Nakama accounts.
type AccountAdapter struct {
	nk accountUpdater
}

var _ ports.AccountPort = (*AccountAdapter)(nil)

func NewAccountAdapter(nk accountUpdater) *AccountAdapter {
	return &AccountAdapter{nk: nk}
}

// UpdateProfile sets username and display name. Empty timezone, location,
// language and avatar leave those fields unchanged.
func (a *AccountAdapter) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	return a.nk.AccountUpdateId(ctx, userID, username, nil, displayName, "", "", "", "")
}
