package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cartrack/internal/db"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrVehicleNotFound error = errors.New("vehicle not found")
var ErrConfigNotFound error = errors.New("config entry not found")

// seedAdminHash is the bcrypt hash of the initial admin password.
const seedAdminHash = "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK"

type TrackingRepository struct {
	db Storage
}

func NewTrackingRepository(db Storage) *TrackingRepository {
	return &TrackingRepository{
		db: db,
	}
}

func (r *TrackingRepository) MigrateAndSeed(ctx context.Context) error {

	err := r.db.MigrateTable(&User{}, &Vehicle{}, &Config{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "Admin",
			PasswordHash: seedAdminHash,
			Role:         RoleAdmin,
			Name:         "Administrator",
			Email:        "admin@cartrack.local",
		},
	}
	if err = r.db.SeedTable(ctx, &users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	configs := make([]Config, 0, len(seedConfig))
	for _, key := range []string{"makes", "models", "destinations"} {
		raw, err := json.Marshal(seedConfig[key])
		if err != nil {
			return fmt.Errorf("marshal %q seed value: %w", key, err)
		}
		configs = append(configs, Config{
			ID:    uuid.NewString(),
			Key:   key,
			Value: JSONValue(raw),
		})
	}
	if err = r.db.SeedTable(ctx, &configs); err != nil {
		return fmt.Errorf("seed config: %w", err)
	}

	return nil
}

var seedConfig = map[string]any{
	"makes": []string{"Toyota", "Honda", "Ford", "Chevrolet", "BMW", "Mercedes", "Nissan", "Hyundai"},
	"models": map[string][]string{
		"Toyota":    {"Camry", "Corolla", "RAV4", "Highlander"},
		"Honda":     {"Accord", "Civic", "CR-V", "Pilot"},
		"Ford":      {"F-150", "Mustang", "Explorer", "Edge"},
		"Chevrolet": {"Silverado", "Malibu", "Equinox", "Tahoe"},
		"BMW":       {"3 Series", "5 Series", "X3", "X5"},
		"Mercedes":  {"C-Class", "E-Class", "GLE", "GLC"},
		"Nissan":    {"Altima", "Rogue", "Sentra", "Pathfinder"},
		"Hyundai":   {"Elantra", "Sonata", "Tucson", "Santa Fe"},
	},
	"destinations": []string{"Dubai", "Jeddah", "Riyadh", "Kuwait", "Doha", "Abu Dhabi", "Muscat", "Manama"},
}

// Users

func (r *TrackingRepository) GetUser(ctx context.Context, id string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

func (r *TrackingRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

func (r *TrackingRepository) CreateUser(ctx context.Context, user User) error {
	if err := r.db.Insert(ctx, &user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *TrackingRepository) UpdateUser(ctx context.Context, user User) error {
	if err := r.db.Save(ctx, &user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// DeleteUser removes the user and clears any vehicle assignments pointing at
// it, so no dangling references survive the delete.
func (r *TrackingRepository) DeleteUser(ctx context.Context, id string) error {
	var assigned []Vehicle
	if err := r.db.GetAllBy(ctx, "assigned_to_user_id", id, &assigned); err != nil {
		return fmt.Errorf("get assigned vehicles: %w", err)
	}

	for i := range assigned {
		assigned[i].AssignedToUserID = nil
		if err := r.db.Save(ctx, &assigned[i]); err != nil {
			return fmt.Errorf("clear vehicle assignment: %w", err)
		}
	}

	err := r.db.DeleteBy(ctx, "id", id, &User{})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *TrackingRepository) GetAllUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := r.db.GetAll(ctx, &users); err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	return users, nil
}

// Vehicles

func (r *TrackingRepository) GetVehicle(ctx context.Context, id string) (Vehicle, error) {
	var vehicle Vehicle
	err := r.db.GetOneBy(ctx, "id", id, &vehicle)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Vehicle{}, ErrVehicleNotFound
		}
		return Vehicle{}, fmt.Errorf("get vehicle by id: %w", err)
	}
	return vehicle, nil
}

func (r *TrackingRepository) GetVehicleByVIN(ctx context.Context, vin string) (Vehicle, error) {
	var vehicle Vehicle
	err := r.db.GetOneBy(ctx, "vin", vin, &vehicle)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Vehicle{}, ErrVehicleNotFound
		}
		return Vehicle{}, fmt.Errorf("get vehicle by vin: %w", err)
	}
	return vehicle, nil
}

func (r *TrackingRepository) CreateVehicle(ctx context.Context, vehicle Vehicle) error {
	if err := r.db.Insert(ctx, &vehicle); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

func (r *TrackingRepository) UpdateVehicle(ctx context.Context, vehicle Vehicle) error {
	if err := r.db.Save(ctx, &vehicle); err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

func (r *TrackingRepository) DeleteVehicle(ctx context.Context, id string) error {
	err := r.db.DeleteBy(ctx, "id", id, &Vehicle{})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}

func (r *TrackingRepository) GetAllVehicles(ctx context.Context) ([]Vehicle, error) {
	vehicles := []Vehicle{}
	if err := r.db.GetAll(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("get all vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *TrackingRepository) GetVehiclesByUser(ctx context.Context, userID string) ([]Vehicle, error) {
	vehicles := []Vehicle{}
	if err := r.db.GetAllBy(ctx, "assigned_to_user_id", userID, &vehicles); err != nil {
		return nil, fmt.Errorf("get vehicles by user: %w", err)
	}
	return vehicles, nil
}

// Config

func (r *TrackingRepository) GetConfig(ctx context.Context, key string) (Config, error) {
	var cfg Config
	err := r.db.GetOneBy(ctx, "key", key, &cfg)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Config{}, ErrConfigNotFound
		}
		return Config{}, fmt.Errorf("get config by key: %w", err)
	}
	return cfg, nil
}

// SetConfig upserts the value stored under key.
func (r *TrackingRepository) SetConfig(ctx context.Context, key string, value []byte) (Config, error) {
	existing, err := r.GetConfig(ctx, key)
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return Config{}, err
	}

	if errors.Is(err, ErrConfigNotFound) {
		cfg := Config{
			ID:    uuid.NewString(),
			Key:   key,
			Value: JSONValue(value),
		}
		if err := r.db.Insert(ctx, &cfg); err != nil {
			return Config{}, fmt.Errorf("create config: %w", err)
		}
		return cfg, nil
	}

	existing.Value = JSONValue(value)
	if err := r.db.Save(ctx, &existing); err != nil {
		return Config{}, fmt.Errorf("update config: %w", err)
	}
	return existing, nil
}

func (r *TrackingRepository) GetAllConfig(ctx context.Context) ([]Config, error) {
	configs := []Config{}
	if err := r.db.GetAll(ctx, &configs); err != nil {
		return nil, fmt.Errorf("get all config: %w", err)
	}
	return configs, nil
}
