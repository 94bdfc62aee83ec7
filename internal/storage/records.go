package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ReadJSON loads the record under key and decodes it into a T.
// An absent key yields the zero value and no error. A record that cannot be
// decoded yields the zero value and an error wrapping ErrCorrupt, so callers
// can choose to treat it as empty.
func ReadJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T

	data, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return v, nil
		}
		return v, fmt.Errorf("reading %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(data), &v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return v, nil
}

// WriteJSON encodes v and stores it under key
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
