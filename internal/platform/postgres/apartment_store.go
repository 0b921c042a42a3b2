package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/platform/logger"
	"github.com/xonadon/xonadon-api/internal/store"
)

// Ensure PostgresApartmentStore implements store.ApartmentStore interface
var _ store.ApartmentStore = (*PostgresApartmentStore)(nil)

const roomColumns = `id, name, width, height, cutouts, segments, partitions`

// PostgresApartmentStore implements store.ApartmentStore on PostgreSQL.
type PostgresApartmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresApartmentStore creates a store backed by db. db may be a pool
// (*sql.DB), in which case multi-statement operations run in their own
// transaction, or an existing *sql.Tx, in which case they join it.
// If logger is nil, a default logger will be used.
func NewPostgresApartmentStore(db store.DBTX, logger *slog.Logger) *PostgresApartmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresApartmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "apartment_store")),
	}
}

// inTx runs fn in a transaction when the store holds a pool, or directly on
// the caller's transaction otherwise.
func (s *PostgresApartmentStore) inTx(ctx context.Context, fn func(ctx context.Context, q store.DBTX) error) error {
	if beginner, ok := s.db.(store.TxBeginner); ok {
		return store.RunInTransaction(ctx, beginner, func(ctx context.Context, tx *sql.Tx) error {
			return fn(ctx, tx)
		})
	}
	return fn(ctx, s.db)
}

// Create implements store.ApartmentStore.Create.
func (s *PostgresApartmentStore) Create(ctx context.Context, apartment *domain.Apartment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if apartment == nil {
		return fmt.Errorf("%w: apartment is nil", store.ErrInvalidEntity)
	}
	if err := apartment.Validate(); err != nil {
		log.Warn("apartment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("apartment_id", apartment.ID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err := s.inTx(ctx, func(ctx context.Context, q store.DBTX) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO apartments (id, name) VALUES ($1, $2)`,
			apartment.ID, apartment.Name)
		if err != nil {
			if IsUniqueViolation(err) {
				return store.ErrApartmentExists
			}
			return MapError(err)
		}

		for i, room := range apartment.Rooms {
			if err := insertRoom(ctx, q, apartment.ID, i, room); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrApartmentExists) {
			log.Error("failed to create apartment",
				slog.String("error", err.Error()),
				slog.String("apartment_id", apartment.ID))
		}
		return err
	}

	log.Info("apartment created",
		slog.String("apartment_id", apartment.ID),
		slog.Int("rooms", len(apartment.Rooms)))
	return nil
}

// GetByID implements store.ApartmentStore.GetByID.
func (s *PostgresApartmentStore) GetByID(ctx context.Context, id string) (*domain.Apartment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var apartment domain.Apartment
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM apartments WHERE id = $1`, id,
	).Scan(&apartment.ID, &apartment.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("apartment not found", slog.String("apartment_id", id))
			return nil, store.ErrApartmentNotFound
		}
		log.Error("failed to get apartment",
			slog.String("error", err.Error()),
			slog.String("apartment_id", id))
		return nil, MapError(err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE apartment_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	apartment.Rooms = []domain.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		apartment.Rooms = append(apartment.Rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return &apartment, nil
}

// List implements store.ApartmentStore.List.
func (s *PostgresApartmentStore) List(ctx context.Context) ([]*domain.Apartment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM apartments ORDER BY name COLLATE "C", id COLLATE "C"`)
	if err != nil {
		log.Error("failed to list apartments", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	apartments := []*domain.Apartment{}
	byID := make(map[string]*domain.Apartment)
	for rows.Next() {
		a := &domain.Apartment{Rooms: []domain.Room{}}
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			_ = rows.Close()
			return nil, MapError(err)
		}
		apartments = append(apartments, a)
		byID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, MapError(err)
	}
	_ = rows.Close()

	if len(apartments) == 0 {
		return apartments, nil
	}

	roomRows, err := s.db.QueryContext(ctx,
		`SELECT apartment_id, `+roomColumns+` FROM rooms ORDER BY apartment_id, position`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = roomRows.Close() }()

	for roomRows.Next() {
		var apartmentID string
		room, err := scanRoom(roomRows, &apartmentID)
		if err != nil {
			return nil, err
		}
		if a, ok := byID[apartmentID]; ok {
			a.Rooms = append(a.Rooms, room)
		}
	}
	if err := roomRows.Err(); err != nil {
		return nil, MapError(err)
	}

	return apartments, nil
}

// Delete implements store.ApartmentStore.Delete. Rooms are removed by the
// ON DELETE CASCADE constraint.
func (s *PostgresApartmentStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM apartments WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete apartment",
			slog.String("error", err.Error()),
			slog.String("apartment_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrApartmentNotFound); err != nil {
		return err
	}

	log.Info("apartment deleted", slog.String("apartment_id", id))
	return nil
}

// AddRoom implements store.ApartmentStore.AddRoom. The apartment row is
// locked so concurrent appends receive distinct positions.
func (s *PostgresApartmentStore) AddRoom(ctx context.Context, apartmentID string, room domain.Room) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := room.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err := s.inTx(ctx, func(ctx context.Context, q store.DBTX) error {
		var locked string
		err := q.QueryRowContext(ctx,
			`SELECT id FROM apartments WHERE id = $1 FOR UPDATE`, apartmentID,
		).Scan(&locked)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrApartmentNotFound
			}
			return MapError(err)
		}

		var next int
		err = q.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position), -1) + 1 FROM rooms WHERE apartment_id = $1`, apartmentID,
		).Scan(&next)
		if err != nil {
			return MapError(err)
		}

		return insertRoom(ctx, q, apartmentID, next, room)
	})
	if err != nil {
		log.Debug("failed to add room",
			slog.String("error", err.Error()),
			slog.String("apartment_id", apartmentID),
			slog.String("room_id", room.ID))
		return err
	}

	log.Info("room added",
		slog.String("apartment_id", apartmentID),
		slog.String("room_id", room.ID))
	return nil
}

// RemoveRoom implements store.ApartmentStore.RemoveRoom. Positions of the
// remaining rooms are left as they are, which keeps their relative order.
func (s *PostgresApartmentStore) RemoveRoom(ctx context.Context, apartmentID, roomID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM rooms WHERE apartment_id = $1 AND id = $2`, apartmentID, roomID)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrRoomNotFound); err != nil {
		var exists bool
		if qErr := s.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM apartments WHERE id = $1)`, apartmentID,
		).Scan(&exists); qErr != nil {
			return MapError(qErr)
		}
		if !exists {
			return store.ErrApartmentNotFound
		}
		return err
	}

	log.Info("room removed",
		slog.String("apartment_id", apartmentID),
		slog.String("room_id", roomID))
	return nil
}

func insertRoom(ctx context.Context, q store.DBTX, apartmentID string, position int, room domain.Room) error {
	cutouts, err := marshalList(room.Cutouts)
	if err != nil {
		return err
	}
	segments, err := marshalList(room.Segments)
	if err != nil {
		return err
	}
	partitions, err := marshalList(room.Partitions)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO rooms (apartment_id, id, position, name, width, height, cutouts, segments, partitions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, apartmentID, room.ID, position, room.Name, room.Width, room.Height, cutouts, segments, partitions)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrRoomExists
		}
		return MapError(err)
	}
	return nil
}

// scanRoom reads one room row. Extra destinations are scanned before the
// room columns.
func scanRoom(rows *sql.Rows, prefix ...any) (domain.Room, error) {
	var (
		room                           domain.Room
		cutouts, segments, partitions []byte
	)

	dest := append(prefix,
		&room.ID, &room.Name, &room.Width, &room.Height,
		&cutouts, &segments, &partitions)
	if err := rows.Scan(dest...); err != nil {
		return domain.Room{}, MapError(err)
	}

	if err := json.Unmarshal(cutouts, &room.Cutouts); err != nil {
		return domain.Room{}, fmt.Errorf("failed to decode cutouts of room %s: %w", room.ID, err)
	}
	if err := json.Unmarshal(segments, &room.Segments); err != nil {
		return domain.Room{}, fmt.Errorf("failed to decode segments of room %s: %w", room.ID, err)
	}
	if err := json.Unmarshal(partitions, &room.Partitions); err != nil {
		return domain.Room{}, fmt.Errorf("failed to decode partitions of room %s: %w", room.ID, err)
	}

	return room.Clone(), nil
}

// marshalList encodes a slice as a JSON array, writing nil as [].
func marshalList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode room details: %w", err)
	}
	return string(b), nil
}
