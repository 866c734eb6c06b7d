package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cartrack/internal/repository"
)

func (t *Tracker) GetConfig(ctx context.Context, key string) (ConfigEntry, error) {
	cfg, err := t.repo.GetConfig(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrConfigNotFound) {
			return ConfigEntry{}, ErrConfigNotFound
		}
		return ConfigEntry{}, fmt.Errorf("get config: %w", err)
	}

	return ConfigEntry{Key: cfg.Key, Value: json.RawMessage(cfg.Value)}, nil
}

// AllConfig returns the reference data flattened to a key→value map.
func (t *Tracker) AllConfig(ctx context.Context) (map[string]json.RawMessage, error) {
	configs, err := t.repo.GetAllConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all config: %w", err)
	}

	out := make(map[string]json.RawMessage, len(configs))
	for _, cfg := range configs {
		out[cfg.Key] = json.RawMessage(cfg.Value)
	}
	return out, nil
}

// SetConfig upserts the raw JSON value stored under key. Value shape is the
// caller's responsibility.
func (t *Tracker) SetConfig(ctx context.Context, key string, value json.RawMessage) (ConfigEntry, error) {
	cfg, err := t.repo.SetConfig(ctx, key, value)
	if err != nil {
		return ConfigEntry{}, fmt.Errorf("set config: %w", err)
	}

	t.logs.Infow("config updated", "key", key)

	return ConfigEntry{Key: cfg.Key, Value: json.RawMessage(cfg.Value)}, nil
}
