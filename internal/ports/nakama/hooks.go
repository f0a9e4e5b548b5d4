package nakama

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"euchre/internal/app/onboarding"

	"github.com/form3tech-oss/jwt-go"
	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

var errBadSessionToken = errors.New("malformed session token")

type onboarder interface {
	OnboardNewUser(ctx context.Context, userID string) (onboarding.Result, error)
}

// sessionClaims are the fields read from a Nakama session token.
type sessionClaims struct {
	UserID   string
	Username string
}

// AfterAuthenticateDevice names accounts created by device authentication.
func AfterAuthenticateDevice(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error {
	if out == nil || !out.Created {
		return nil
	}
	return onboardSession(ctx, logger, onboarding.NewService(NewAccountAdapter(nk), nil), out)
}

func onboardSession(ctx context.Context, logger runtime.Logger, svc onboarder, out *api.Session) error {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		claims, err := parseSessionClaims(out.Token)
		if err != nil {
			logger.Error("AfterAuthenticateDevice: %v", err)
			return err
		}
		userID = claims.UserID
	}

	result, err := svc.OnboardNewUser(ctx, userID)
	if err != nil {
		logger.Error("AfterAuthenticateDevice: onboarding %s failed: %v", userID, err)
		return err
	}
	if result.ProfileUpdateErr != nil {
		// The account exists either way; keep the default name.
		logger.Warn("AfterAuthenticateDevice: could not name %s: %v", userID, result.ProfileUpdateErr)
		return nil
	}
	logger.Info("AfterAuthenticateDevice: %s joins as %s", userID, result.DisplayName)
	return nil
}

// parseSessionClaims reads the claims of a session token without checking
// its signature. The token was just issued by the server itself.
func parseSessionClaims(token string) (sessionClaims, error) {
	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return sessionClaims{}, fmt.Errorf("%w: %v", errBadSessionToken, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return sessionClaims{}, fmt.Errorf("%w: unexpected claims %T", errBadSessionToken, parsed.Claims)
	}
	userID, _ := claims["uid"].(string)
	if userID == "" {
		return sessionClaims{}, fmt.Errorf("%w: no uid claim", errBadSessionToken)
	}
	username, _ := claims["usn"].(string)
	return sessionClaims{UserID: userID, Username: username}, nil
}
