package domain

// Apartment is an ordered collection of rooms over which totals are
// aggregated.
type Apartment struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Rooms []Room `json:"rooms"`
}

// NewApartment creates an empty apartment with the given ID and name.
// Returns an error if validation fails.
func NewApartment(id, name string) (*Apartment, error) {
	apartment := &Apartment{
		ID:    id,
		Name:  name,
		Rooms: []Room{},
	}

	if err := apartment.Validate(); err != nil {
		return nil, err
	}

	return apartment, nil
}

// Validate checks the apartment and every room it holds.
func (a *Apartment) Validate() error {
	if a.ID == "" {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	seen := make(map[string]struct{}, len(a.Rooms))
	for i := range a.Rooms {
		if err := a.Rooms[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[a.Rooms[i].ID]; dup {
			return NewValidationError("rooms."+a.Rooms[i].ID, "appears more than once", ErrDuplicateRoomID)
		}
		seen[a.Rooms[i].ID] = struct{}{}
	}

	return nil
}

// FindRoom returns the room with the given ID.
func (a *Apartment) FindRoom(id string) (Room, bool) {
	for _, r := range a.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// AddRoom validates the room and appends it to the apartment.
// Returns ErrDuplicateRoomID if a room with the same ID already exists.
func (a *Apartment) AddRoom(room Room) error {
	if err := room.Validate(); err != nil {
		return err
	}

	if _, exists := a.FindRoom(room.ID); exists {
		return NewValidationError("rooms."+room.ID, "already exists", ErrDuplicateRoomID)
	}

	a.Rooms = append(a.Rooms, room.Clone())
	return nil
}

// RemoveRoom removes the room with the given ID, keeping the order of the
// remaining rooms. It reports whether a room was removed.
func (a *Apartment) RemoveRoom(id string) bool {
	kept := a.Rooms[:0]
	removed := false
	for _, r := range a.Rooms {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	a.Rooms = kept
	return removed
}

// Clone returns a deep copy of the apartment.
func (a *Apartment) Clone() *Apartment {
	out := &Apartment{
		ID:    a.ID,
		Name:  a.Name,
		Rooms: make([]Room, 0, len(a.Rooms)),
	}
	for _, r := range a.Rooms {
		out.Rooms = append(out.Rooms, r.Clone())
	}
	return out
}
