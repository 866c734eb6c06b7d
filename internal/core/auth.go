package core

import (
	"context"
	"errors"
	"fmt"

	"cartrack/internal/repository"
	"cartrack/internal/session"
	tokenIssuer "cartrack/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

// Login verifies the credentials and opens a session holding the identity
// projection. The returned token references the session by id only.
func (t *Tracker) Login(ctx context.Context, username, password string) (string, session.Identity, error) {
	user, err := t.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", session.Identity{}, ErrInvalidCredentials
		}
		return "", session.Identity{}, fmt.Errorf("get user by username: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", session.Identity{}, ErrInvalidCredentials
	}

	identity := userToIdentity(user)

	sess, err := t.sessions.Create(identity, t.sessionTTL)
	if err != nil {
		return "", session.Identity{}, fmt.Errorf("create session: %w", err)
	}

	token := t.tokens.Generate(tokenIssuer.SessionInfo{
		SessionID:  sess.ID,
		Expiration: t.sessionTTL,
	})
	signed, err := t.tokens.Sign(token)
	if err != nil {
		t.sessions.Delete(sess.ID)
		return "", session.Identity{}, fmt.Errorf("signing token: %w", err)
	}

	t.logs.Infow("user logged in", "userId", user.ID, "username", user.Username)

	return signed, identity, nil
}

// Logout destroys the session. Unknown sessions are ignored.
func (t *Tracker) Logout(ctx context.Context, token string) error {
	sessionID, err := t.tokens.Validate(token)
	if err != nil {
		return ErrUnauthenticated
	}

	t.sessions.Delete(sessionID)
	return nil
}

// Resolve turns an inbound token into the session it references. The
// identity always comes from the server-side store, never from the token.
func (t *Tracker) Resolve(ctx context.Context, token string) (session.Session, error) {
	sessionID, err := t.tokens.Validate(token)
	if err != nil {
		return session.Session{}, ErrUnauthenticated
	}

	sess, err := t.sessions.Get(sessionID)
	if err != nil {
		return session.Session{}, ErrUnauthenticated
	}

	return sess, nil
}
