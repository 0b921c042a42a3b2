package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/platform/logger"
	"github.com/xonadon/xonadon-api/internal/store"
)

// Compile-time check that ApartmentStore implements store.ApartmentStore.
var _ store.ApartmentStore = (*ApartmentStore)(nil)

// maxTxRetries bounds optimistic transaction retries under contention.
const maxTxRetries = 32

// ApartmentStore keeps apartments as JSON documents in Redis.
type ApartmentStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewApartmentStore creates a store on an existing client. All keys are
// namespaced by prefix. If logger is nil, the default logger is used.
func NewApartmentStore(client *redis.Client, prefix string, logger *slog.Logger) *ApartmentStore {
	if client == nil {
		panic("redis client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ApartmentStore{
		client: client,
		prefix: prefix,
		logger: logger.With(slog.String("component", "redis_apartment_store")),
	}
}

func (s *ApartmentStore) apartmentKey(id string) string {
	return s.prefix + "apartment:" + id
}

func (s *ApartmentStore) indexKey() string {
	return s.prefix + "apartments"
}

// Create implements store.ApartmentStore.
func (s *ApartmentStore) Create(ctx context.Context, apartment *domain.Apartment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if apartment == nil {
		return fmt.Errorf("%w: apartment is nil", store.ErrInvalidEntity)
	}
	if err := apartment.Validate(); err != nil {
		log.Warn("apartment validation failed during create",
			slog.String("apartment_id", apartment.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	data, err := encode(apartment)
	if err != nil {
		return err
	}

	key := s.apartmentKey(apartment.ID)
	created, err := s.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		log.Error("failed to create apartment",
			slog.String("apartment_id", apartment.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create apartment: %w", err)
	}
	if !created {
		return store.ErrApartmentExists
	}

	if err := s.client.SAdd(ctx, s.indexKey(), apartment.ID).Err(); err != nil {
		// An unindexed document is invisible to List but still blocks its
		// ID, so the create is undone.
		if delErr := s.client.Del(ctx, key).Err(); delErr != nil {
			log.Error("failed to remove unindexed apartment",
				slog.String("apartment_id", apartment.ID),
				slog.String("error", delErr.Error()))
		}
		return fmt.Errorf("failed to index apartment: %w", err)
	}

	log.Debug("apartment created",
		slog.String("apartment_id", apartment.ID),
		slog.Int("rooms", len(apartment.Rooms)))
	return nil
}

// GetByID implements store.ApartmentStore.
func (s *ApartmentStore) GetByID(ctx context.Context, id string) (*domain.Apartment, error) {
	data, err := s.client.Get(ctx, s.apartmentKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("failed to get apartment: %w", err)
	}
	return decode(data)
}

// List implements store.ApartmentStore.
func (s *ApartmentStore) List(ctx context.Context) ([]*domain.Apartment, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list apartment ids: %w", err)
	}

	out := make([]*domain.Apartment, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.apartmentKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load apartments: %w", err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Indexed but deleted concurrently.
			continue
		}
		a, err := decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete implements store.ApartmentStore.
func (s *ApartmentStore) Delete(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.apartmentKey(id))
		pipe.SRem(ctx, s.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete apartment: %w", err)
	}
	if del.Val() == 0 {
		return store.ErrApartmentNotFound
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("apartment deleted",
		slog.String("apartment_id", id))
	return nil
}

// AddRoom implements store.ApartmentStore.
func (s *ApartmentStore) AddRoom(ctx context.Context, apartmentID string, room domain.Room) error {
	err := s.update(ctx, apartmentID, func(a *domain.Apartment) error {
		if err := a.AddRoom(room); err != nil {
			if errors.Is(err, domain.ErrDuplicateRoomID) {
				return store.ErrRoomExists
			}
			return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("room added",
		slog.String("apartment_id", apartmentID),
		slog.String("room_id", room.ID))
	return nil
}

// RemoveRoom implements store.ApartmentStore.
func (s *ApartmentStore) RemoveRoom(ctx context.Context, apartmentID, roomID string) error {
	err := s.update(ctx, apartmentID, func(a *domain.Apartment) error {
		if !a.RemoveRoom(roomID) {
			return store.ErrRoomNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("room removed",
		slog.String("apartment_id", apartmentID),
		slog.String("room_id", roomID))
	return nil
}

// update applies fn to the stored apartment inside an optimistic
// transaction, retrying when another writer changed the key first.
func (s *ApartmentStore) update(ctx context.Context, id string, fn func(a *domain.Apartment) error) error {
	key := s.apartmentKey(id)

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return store.ErrApartmentNotFound
			}
			return err
		}

		apartment, err := decode(data)
		if err != nil {
			return err
		}
		if err := fn(apartment); err != nil {
			return err
		}

		updated, err := encode(apartment)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return fmt.Errorf("%w: apartment %s changed concurrently too many times", store.ErrTransactionFailed, id)
}

func encode(a *domain.Apartment) ([]byte, error) {
	data, err := json.Marshal(a.Clone())
	if err != nil {
		return nil, fmt.Errorf("failed to encode apartment: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*domain.Apartment, error) {
	var a domain.Apartment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode apartment: %w", err)
	}
	return a.Clone(), nil
}
