package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cartrack/internal/repository"
	"cartrack/internal/session"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

const maxProfilePictureBytes = 5 << 20

var imageContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// CreateUser hashes the supplied password and persists a new user. The
// username must not be taken.
func (t *Tracker) CreateUser(ctx context.Context, msg CreateUserMessage) (UserRecord, error) {
	_, err := t.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return UserRecord{}, ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return UserRecord{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcryptCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	role := msg.Role
	if role == "" {
		role = repository.RoleUser
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		PasswordHash: string(hash),
		Role:         role,
		Name:         msg.Name,
		Email:        msg.Email,
	}

	if err := t.repo.CreateUser(ctx, user); err != nil {
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user created", "userId", user.ID, "username", user.Username, "role", user.Role)

	return userToRecord(user), nil
}

// UpdateUser merges the patch into the stored record. An absent or empty
// password leaves the stored hash untouched; a non-empty one is re-hashed.
func (t *Tracker) UpdateUser(ctx context.Context, id string, patch UserPatch) (UserRecord, error) {
	user, err := t.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user: %w", err)
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil && strings.TrimSpace(*patch.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return UserRecord{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := t.repo.UpdateUser(ctx, user); err != nil {
		return UserRecord{}, fmt.Errorf("update user: %w", err)
	}

	return userToRecord(user), nil
}

// DeleteUser removes the user. An admin cannot delete their own account.
func (t *Tracker) DeleteUser(ctx context.Context, actor session.Identity, id string) error {
	if actor.ID == id {
		return ErrForbidden
	}

	err := t.repo.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	t.logs.Infow("user deleted", "userId", id, "actorId", actor.ID)
	return nil
}

// UploadProfilePicture stores the image and points the user's profile
// picture at it. Only the user themselves or an admin may do this; when the
// actor is the subject the session's cached identity is refreshed too.
func (t *Tracker) UploadProfilePicture(ctx context.Context, sess session.Session, userID string, file Upload) (UserRecord, error) {
	actor := sess.Identity
	if !actor.IsAdmin() && actor.ID != userID {
		return UserRecord{}, ErrForbidden
	}

	if file.Size > maxProfilePictureBytes {
		return UserRecord{}, ErrFileTooLarge
	}
	if _, ok := imageContentTypes[file.ContentType]; !ok {
		return UserRecord{}, ErrUnsupportedFileType
	}

	user, err := t.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user: %w", err)
	}

	ref, err := t.blobs.Put(ctx, strings.ToLower(filepath.Ext(file.Filename)), file.Content)
	if err != nil {
		return UserRecord{}, fmt.Errorf("store profile picture: %w", err)
	}

	user.ProfilePicture = ref
	if err := t.repo.UpdateUser(ctx, user); err != nil {
		return UserRecord{}, fmt.Errorf("update user: %w", err)
	}

	if actor.ID == userID {
		if err := t.sessions.Update(sess.ID, userToIdentity(user)); err != nil {
			t.logs.Errorw("failed to refresh session identity", "error", err, "sessionId", sess.ID)
		}
	}

	return userToRecord(user), nil
}

func (t *Tracker) GetUser(ctx context.Context, id string) (UserRecord, error) {
	user, err := t.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user: %w", err)
	}
	return userToRecord(user), nil
}

func (t *Tracker) ListUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := t.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = userToRecord(u)
	}
	return records, nil
}
