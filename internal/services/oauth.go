package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/repositories"
)

// OAuthLinker finds or creates the permanent user behind a provider account.
type OAuthLinker struct {
	tx       TxManager
	users    UserWriter
	accounts OAuthAccountStore
}

func NewOAuthLinker(tx TxManager, users UserWriter, accounts OAuthAccountStore) *OAuthLinker {
	return &OAuthLinker{tx: tx, users: users, accounts: accounts}
}

// FindOrCreate returns the identity linked to (provider, profile.ID), creating
// user, profile and link in one transaction on first login. Losing a
// concurrent first login re-reads the winner's link.
func (l *OAuthLinker) FindOrCreate(ctx context.Context, provider models.Provider, profile *models.OAuthProfile) (*models.Identity, error) {
	identity, err := l.accounts.GetIdentity(ctx, provider, profile.ID)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	var email, avatar *string
	if profile.Email != "" {
		email = &profile.Email
	}
	if profile.Avatar != "" {
		avatar = &profile.Avatar
	}
	nickname := profile.Nickname
	if nickname == "" && email != nil {
		nickname = defaultNickname(*email)
	}
	if nickname == "" {
		nickname = strings.ToLower(string(provider)) + "_" + profile.ID
	}
	nickname = clampNickname(nickname)

	err = l.tx.WithTx(ctx, func(ctx context.Context) error {
		user, err := l.users.CreateUser(ctx, email, models.RoleUser)
		if err != nil {
			return err
		}
		if err := l.users.CreateProfile(ctx, user.ID, nickname, avatar); err != nil {
			return err
		}
		if err := l.accounts.Create(ctx, user.ID, provider, profile.ID, email); err != nil {
			return err
		}
		identity = &models.Identity{UUID: user.UUID, Role: user.Role}
		return nil
	})
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return l.reread(ctx, provider, profile.ID)
	}
	if err != nil {
		logger.Log.Errorw("failed to link oauth account", "provider", provider, "provider_id", profile.ID, "error", err)
		return nil, err
	}

	logger.Log.Infow("oauth account linked", "provider", provider, "provider_id", profile.ID, "uuid", identity.UUID)
	return identity, nil
}

// reread resolves a unique violation raised while linking. When no link
// exists for the pair, the collision was on the email of another user.
func (l *OAuthLinker) reread(ctx context.Context, provider models.Provider, providerID string) (*models.Identity, error) {
	identity, err := l.accounts.GetIdentity(ctx, provider, providerID)
	if errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Warnw("oauth email already belongs to another user", "provider", provider, "provider_id", providerID)
		return nil, ErrEmailAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	logger.Log.Infow("oauth account created concurrently, reusing", "provider", provider, "provider_id", providerID)
	return identity, nil
}
