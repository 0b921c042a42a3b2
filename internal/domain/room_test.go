package domain

import (
	"errors"
	"testing"
)

func validRoom() Room {
	return Room{
		ID:     "room-1",
		Name:   "Kitchen",
		Width:  4,
		Height: 5,
		Cutouts: []Cutout{
			{ID: "door", X: 0, Y: 0, Width: 1, Height: 2},
		},
		Segments: []Segment{
			{ID: "north", Length: 4},
		},
		Partitions: []Partition{
			{ID: "p1", Position: 1.5, Orientation: OrientationVertical},
		},
	}
}

func TestRoomValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(r *Room)
		wantErr error
	}{
		{
			name:   "valid room",
			mutate: func(r *Room) {},
		},
		{
			name:    "empty ID",
			mutate:  func(r *Room) { r.ID = "" },
			wantErr: ErrInvalidID,
		},
		{
			name:    "negative width",
			mutate:  func(r *Room) { r.Width = -1 },
			wantErr: ErrNegativeDimension,
		},
		{
			name:    "negative height",
			mutate:  func(r *Room) { r.Height = -0.5 },
			wantErr: ErrNegativeDimension,
		},
		{
			name:    "cutout without ID",
			mutate:  func(r *Room) { r.Cutouts[0].ID = "" },
			wantErr: ErrInvalidID,
		},
		{
			name:    "negative cutout",
			mutate:  func(r *Room) { r.Cutouts[0].Width = -1 },
			wantErr: ErrNegativeDimension,
		},
		{
			name:    "negative segment",
			mutate:  func(r *Room) { r.Segments[0].Length = -2 },
			wantErr: ErrNegativeDimension,
		},
		{
			name:    "unknown orientation",
			mutate:  func(r *Room) { r.Partitions[0].Orientation = "diagonal" },
			wantErr: ErrInvalidOrientation,
		},
		{
			name: "cutout outside room bounds is accepted",
			mutate: func(r *Room) {
				r.Cutouts[0].X = 100
				r.Cutouts[0].Width = 50
			},
		},
		{
			name:   "zero-sized room is accepted",
			mutate: func(r *Room) { r.Width, r.Height = 0, 0 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			room := validRoom()
			tc.mutate(&room)

			err := room.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRoomClone(t *testing.T) {
	t.Parallel()

	original := validRoom()
	clone := original.Clone()

	clone.Cutouts[0].Width = 99
	clone.Segments[0].Length = 99
	clone.Partitions[0].Position = 99

	if original.Cutouts[0].Width != 1 {
		t.Error("Modifying the clone's cutouts changed the original")
	}
	if original.Segments[0].Length != 4 {
		t.Error("Modifying the clone's segments changed the original")
	}
	if original.Partitions[0].Position != 1.5 {
		t.Error("Modifying the clone's partitions changed the original")
	}

	empty := Room{ID: "bare"}.Clone()
	if empty.Cutouts == nil || empty.Segments == nil || empty.Partitions == nil {
		t.Error("Clone should replace nil slices with empty slices")
	}
}
