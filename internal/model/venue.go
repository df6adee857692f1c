package model

// Venue is a bookable physical space. Venues are static reference data
// seeded once at startup; they are not created through user flows.
//
// Fields:
//  ID       – stable identifier referenced by reservations.
//  Name     – display name, unique.
//  Capacity – maximum number of participants the venue holds.
type Venue struct {
	ID       string `json:"id"`       // venues.id
	Name     string `json:"name"`     // venues.name
	Capacity int    `json:"capacity"` // venues.capacity
}
