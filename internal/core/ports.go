package core

import (
	"context"
	"io"
	"time"

	"cartrack/internal/notify"
	"cartrack/internal/repository"
	"cartrack/internal/session"

	"github.com/golang-jwt/jwt"

	tokenIssuer "cartrack/pkg/token"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUser(ctx context.Context, id string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateUser(ctx context.Context, user repository.User) error
	UpdateUser(ctx context.Context, user repository.User) error
	DeleteUser(ctx context.Context, id string) error
	GetAllUsers(ctx context.Context) ([]repository.User, error)

	GetVehicle(ctx context.Context, id string) (repository.Vehicle, error)
	GetVehicleByVIN(ctx context.Context, vin string) (repository.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle repository.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle repository.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error
	GetAllVehicles(ctx context.Context) ([]repository.Vehicle, error)
	GetVehiclesByUser(ctx context.Context, userID string) ([]repository.Vehicle, error)

	GetConfig(ctx context.Context, key string) (repository.Config, error)
	SetConfig(ctx context.Context, key string, value []byte) (repository.Config, error)
	GetAllConfig(ctx context.Context) ([]repository.Config, error)
}

//counterfeiter:generate -o fake -fake-name BlobStore . BlobStore
type BlobStore interface {
	Put(ctx context.Context, ext string, src io.Reader) (string, error)
}

//counterfeiter:generate -o fake -fake-name SessionStore . SessionStore
type SessionStore interface {
	Create(identity session.Identity, ttl time.Duration) (session.Session, error)
	Get(id string) (session.Session, error)
	Update(id string, identity session.Identity) error
	Delete(id string)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.SessionInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (string, error)
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	VehicleUpdated(ctx context.Context, to string, update notify.VehicleUpdate) error
}
