package models

// Movie is a plain value describing what is screened; it is never persisted
// on its own, its fields are denormalized into each Showing.
type Movie struct {
	Name     string
	AgeGroup int
}

// Showing is the persisted screening record. ReservedSeat holds the uid of
// every user that booked a seat, in reservation order.
type Showing struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	AgeGroup        int      `json:"age_group"`
	ShowingCapacity int      `json:"showing_capacity"`
	Price           int      `json:"price"`
	ShowingTime     string   `json:"showing_time"`
	ReservedSeat    []string `json:"reserved_seat"`
}

// SeatsLeft returns the number of unreserved seats.
func (s *Showing) SeatsLeft() int {
	return s.ShowingCapacity - len(s.ReservedSeat)
}

// IsFull reports whether every seat has been reserved.
func (s *Showing) IsFull() bool {
	return len(s.ReservedSeat) >= s.ShowingCapacity
}
