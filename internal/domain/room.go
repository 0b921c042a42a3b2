package domain

// Orientation is the direction of an internal partition wall.
type Orientation string

// Possible orientation values
const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// IsValid reports whether o is a known orientation.
func (o Orientation) IsValid() bool {
	return o == OrientationVertical || o == OrientationHorizontal
}

// Cutout is a rectangular region carved out of a room's surface, such as a
// door or a window. X and Y locate it inside the room; they do not take part
// in area formulas and are not checked against the room bounds.
type Cutout struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Segment is a wall run measured by its length in meters.
// It is reserved for linear measurements and is not used by area formulas.
type Segment struct {
	ID     string  `json:"id"`
	Length float64 `json:"length"`
}

// Partition is an internal dividing wall, positioned in meters from the
// reference wall.
type Partition struct {
	ID          string      `json:"id"`
	Position    float64     `json:"position"`
	Orientation Orientation `json:"orientation"`
}

// Room is a rectangular surface with embedded cutouts, segments and
// partitions. Width and Height are its outer footprint in meters.
type Room struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Cutouts    []Cutout    `json:"cutouts"`
	Segments   []Segment   `json:"segments"`
	Partitions []Partition `json:"partitions"`
}

// Validate checks the room before it is stored.
//
// This is collaborator-side validation: IDs must be present, dimensions must
// be non-negative and partitions must have a known orientation. Geometric
// consistency (cutouts inside the room, overlapping cutouts) is not checked.
// The area functions never call Validate; they propagate whatever numbers
// they are given.
func (r *Room) Validate() error {
	if r.ID == "" {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if r.Width < 0 {
		return NewValidationError("width", "cannot be negative", ErrNegativeDimension)
	}

	if r.Height < 0 {
		return NewValidationError("height", "cannot be negative", ErrNegativeDimension)
	}

	for _, c := range r.Cutouts {
		if c.ID == "" {
			return NewValidationError("cutouts.id", "cannot be empty", ErrInvalidID)
		}
		if c.Width < 0 || c.Height < 0 {
			return NewValidationError("cutouts."+c.ID, "cannot have negative size", ErrNegativeDimension)
		}
	}

	for _, s := range r.Segments {
		if s.ID == "" {
			return NewValidationError("segments.id", "cannot be empty", ErrInvalidID)
		}
		if s.Length < 0 {
			return NewValidationError("segments."+s.ID, "cannot have negative length", ErrNegativeDimension)
		}
	}

	for _, p := range r.Partitions {
		if p.ID == "" {
			return NewValidationError("partitions.id", "cannot be empty", ErrInvalidID)
		}
		if !p.Orientation.IsValid() {
			return NewValidationError("partitions."+p.ID, "must be vertical or horizontal", ErrInvalidOrientation)
		}
	}

	return nil
}

// Clone returns a deep copy of the room. Nil slices become empty slices so
// the copy always serializes as JSON arrays.
func (r Room) Clone() Room {
	out := r
	out.Cutouts = append(make([]Cutout, 0, len(r.Cutouts)), r.Cutouts...)
	out.Segments = append(make([]Segment, 0, len(r.Segments)), r.Segments...)
	out.Partitions = append(make([]Partition, 0, len(r.Partitions)), r.Partitions...)
	return out
}
