package api

import (
	"github.com/xonadon/xonadon-api/internal/domain"
)

// CutoutDTO is a door, window or other opening in a room.
type CutoutDTO struct {
	ID     string  `json:"id,omitempty" validate:"max=64"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"        validate:"gte=0"`
	Height float64 `json:"height"       validate:"gte=0"`
}

// SegmentDTO is a wall run.
type SegmentDTO struct {
	ID     string  `json:"id,omitempty" validate:"max=64"`
	Length float64 `json:"length"       validate:"gte=0"`
}

// PartitionDTO is an internal dividing wall.
type PartitionDTO struct {
	ID          string  `json:"id,omitempty" validate:"max=64"`
	Position    float64 `json:"position"     validate:"gte=0"`
	Orientation string  `json:"orientation"  validate:"required,oneof=vertical horizontal"`
}

// RoomDTO is the wire form of a room, used in requests and responses.
type RoomDTO struct {
	ID         string         `json:"id,omitempty" validate:"max=64"`
	Name       string         `json:"name"         validate:"max=100"`
	Width      float64        `json:"width"        validate:"gte=0"`
	Height     float64        `json:"height"       validate:"gte=0"`
	Cutouts    []CutoutDTO    `json:"cutouts"      validate:"dive"`
	Segments   []SegmentDTO   `json:"segments"     validate:"dive"`
	Partitions []PartitionDTO `json:"partitions"   validate:"dive"`
}

// ApartmentDTO is the wire form of an apartment.
type ApartmentDTO struct {
	ID    string    `json:"id,omitempty" validate:"max=64"`
	Name  string    `json:"name"         validate:"max=100"`
	Rooms []RoomDTO `json:"rooms"        validate:"dive"`
}

// CreateApartmentRequest defines the payload of POST /api/apartments.
type CreateApartmentRequest struct {
	ID    string    `json:"id,omitempty" validate:"max=64"`
	Name  string    `json:"name"         validate:"required,max=100"`
	Rooms []RoomDTO `json:"rooms"        validate:"dive"`
}

// CalculateRoomRequest defines the payload of POST /api/calculate/room.
// An empty Weather selects the configured default.
type CalculateRoomRequest struct {
	Room    RoomDTO `json:"room"`
	Weather string  `json:"weather,omitempty"`
}

// CalculateApartmentRequest defines the payload of POST /api/calculate/apartment.
// An empty Weather selects the configured default.
type CalculateApartmentRequest struct {
	Apartment ApartmentDTO `json:"apartment"`
	Weather   string       `json:"weather,omitempty"`
}

// ApartmentListItem is one entry of the apartment list.
type ApartmentListItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RoomCount int    `json:"room_count"`
}

// ApartmentListResponse is the response of GET /api/apartments.
type ApartmentListResponse struct {
	Apartments []ApartmentListItem `json:"apartments"`
}

// toDomainRoom converts a room DTO into a domain room.
func toDomainRoom(dto RoomDTO) domain.Room {
	room := domain.Room{
		ID:         dto.ID,
		Name:       dto.Name,
		Width:      dto.Width,
		Height:     dto.Height,
		Cutouts:    make([]domain.Cutout, 0, len(dto.Cutouts)),
		Segments:   make([]domain.Segment, 0, len(dto.Segments)),
		Partitions: make([]domain.Partition, 0, len(dto.Partitions)),
	}
	for _, c := range dto.Cutouts {
		room.Cutouts = append(room.Cutouts, domain.Cutout(c))
	}
	for _, s := range dto.Segments {
		room.Segments = append(room.Segments, domain.Segment(s))
	}
	for _, p := range dto.Partitions {
		room.Partitions = append(room.Partitions, domain.Partition{
			ID:          p.ID,
			Position:    p.Position,
			Orientation: domain.Orientation(p.Orientation),
		})
	}
	return room
}

// toDomainApartment converts an apartment DTO into a domain apartment.
func toDomainApartment(id, name string, rooms []RoomDTO) domain.Apartment {
	apartment := domain.Apartment{
		ID:    id,
		Name:  name,
		Rooms: make([]domain.Room, 0, len(rooms)),
	}
	for _, r := range rooms {
		apartment.Rooms = append(apartment.Rooms, toDomainRoom(r))
	}
	return apartment
}

// roomToDTO converts a domain room into its wire form.
func roomToDTO(room domain.Room) RoomDTO {
	dto := RoomDTO{
		ID:         room.ID,
		Name:       room.Name,
		Width:      room.Width,
		Height:     room.Height,
		Cutouts:    make([]CutoutDTO, 0, len(room.Cutouts)),
		Segments:   make([]SegmentDTO, 0, len(room.Segments)),
		Partitions: make([]PartitionDTO, 0, len(room.Partitions)),
	}
	for _, c := range room.Cutouts {
		dto.Cutouts = append(dto.Cutouts, CutoutDTO(c))
	}
	for _, s := range room.Segments {
		dto.Segments = append(dto.Segments, SegmentDTO(s))
	}
	for _, p := range room.Partitions {
		dto.Partitions = append(dto.Partitions, PartitionDTO{
			ID:          p.ID,
			Position:    p.Position,
			Orientation: string(p.Orientation),
		})
	}
	return dto
}

// apartmentToDTO converts a domain apartment into its wire form.
func apartmentToDTO(apartment *domain.Apartment) ApartmentDTO {
	dto := ApartmentDTO{
		ID:    apartment.ID,
		Name:  apartment.Name,
		Rooms: make([]RoomDTO, 0, len(apartment.Rooms)),
	}
	for _, r := range apartment.Rooms {
		dto.Rooms = append(dto.Rooms, roomToDTO(r))
	}
	return dto
}
