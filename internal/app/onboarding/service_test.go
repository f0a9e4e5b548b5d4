package onboarding

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

type fakeAccountPort struct {
	updateErr error
	calls     []profileCall
}

type profileCall struct {
	userID      string
	username    string
	displayName string
}

func (f *fakeAccountPort) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	f.calls = append(f.calls, profileCall{userID: userID, username: username, displayName: displayName})
	return f.updateErr
}

func TestOnboardNewUser_SetsDisplayName(t *testing.T) {
	accounts := &fakeAccountPort{}
	service := NewService(accounts, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr != nil {
		t.Fatalf("Expected no profile update error, got %v", result.ProfileUpdateErr)
	}
	if len(accounts.calls) != 1 {
		t.Fatalf("Expected 1 profile update, got %d", len(accounts.calls))
	}
	call := accounts.calls[0]
	if call.userID != "user-1" || call.displayName != result.DisplayName || call.username != result.DisplayName {
		t.Fatalf("Unexpected profile update %+v for result %+v", call, result)
	}
}

func TestOnboardNewUser_ProfileErrorIsNotFatal(t *testing.T) {
	accounts := &fakeAccountPort{updateErr: errors.New("boom")}
	service := NewService(accounts, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr == nil {
		t.Fatalf("Expected profile update error to be reported")
	}
}

func TestOnboardNewUser_RequiresConfiguration(t *testing.T) {
	if _, err := NewService(nil, nil).OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatalf("Expected error without account port")
	}
	if _, err := NewService(&fakeAccountPort{}, nil).OnboardNewUser(context.Background(), ""); err == nil {
		t.Fatalf("Expected error without user id")
	}
}

func TestGenerateFriendlyName_IsDeterministicForSeed(t *testing.T) {
	a := NewService(&fakeAccountPort{}, rand.New(rand.NewSource(7))).generateFriendlyName()
	b := NewService(&fakeAccountPort{}, rand.New(rand.NewSource(7))).generateFriendlyName()
	if a != b {
		t.Fatalf("Expected same name for same seed, got %q and %q", a, b)
	}
	if strings.ContainsAny(a, " \t") {
		t.Fatalf("Expected name without spaces, got %q", a)
	}
}
