package core

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrUnauthenticated error = errors.New("not authenticated")
var ErrForbidden error = errors.New("operation not allowed")
var ErrUserNotFound error = errors.New("user not found")
var ErrVehicleNotFound error = errors.New("vehicle not found")
var ErrConfigNotFound error = errors.New("config entry not found")
var ErrDuplicateUsername error = errors.New("username already exists")
var ErrDuplicateVIN error = errors.New("a vehicle with this VIN already exists")
var ErrInvalidCategory error = errors.New("invalid photo category")
var ErrFileTooLarge error = errors.New("file exceeds the size limit")
var ErrUnsupportedFileType error = errors.New("unsupported file type")
var ErrNoRecipient error = errors.New("vehicle has no notifiable assigned user")

// Tracker holds the business rules for users, vehicles, attachments and
// reference config, on top of the repository, blob store and session store.
type Tracker struct {
	logs       *zap.SugaredLogger
	repo       Repository
	blobs      BlobStore
	sessions   SessionStore
	tokens     TokenIssuer
	notifier   Notifier
	sessionTTL time.Duration

	// vehicleLocks serializes read-modify-write cycles on a vehicle's
	// attachment lists so concurrent appends cannot drop entries. Entries
	// are reference-counted and removed once the last holder unlocks, so
	// the map does not grow with the set of vehicle ids ever touched.
	locksMu      sync.Mutex
	vehicleLocks map[string]*vehicleLock
}

type vehicleLock struct {
	mu   sync.Mutex
	refs int
}

func NewTracker(
	logger *zap.SugaredLogger,
	repo Repository,
	blobs BlobStore,
	sessions SessionStore,
	tokens TokenIssuer,
	notifier Notifier,
	sessionTTL time.Duration,
) *Tracker {
	return &Tracker{
		logs:         logger,
		repo:         repo,
		blobs:        blobs,
		sessions:     sessions,
		tokens:       tokens,
		notifier:     notifier,
		sessionTTL:   sessionTTL,
		vehicleLocks: make(map[string]*vehicleLock),
	}
}

func (t *Tracker) lockVehicle(id string) func() {
	t.locksMu.Lock()
	l, ok := t.vehicleLocks[id]
	if !ok {
		l = &vehicleLock{}
		t.vehicleLocks[id] = l
	}
	l.refs++
	t.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		t.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.vehicleLocks, id)
		}
		t.locksMu.Unlock()
	}
}
