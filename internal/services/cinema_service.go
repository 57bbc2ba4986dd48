package services

import (
	"github.com/google/uuid"
	ptime "github.com/yaa110/go-persian-calendar"
	"go.uber.org/zap"

	"github.com/fazeleardestani/cinema-ticket/internal/models"
	"github.com/fazeleardestani/cinema-ticket/internal/storage"
	"github.com/fazeleardestani/cinema-ticket/internal/utils"
)

// CinemaService is the showing catalog: creation, the active-showing query,
// and seat reservation bookkeeping.
type CinemaService struct {
	store    *storage.Store[models.Showing]
	showings []models.Showing
}

// NewCinemaService loads the showing collection from the given store.
func NewCinemaService(store *storage.Store[models.Showing]) *CinemaService {
	return &CinemaService{
		store:    store,
		showings: store.Load(),
	}
}

// FindShowing returns the showing with the given id.
func (s *CinemaService) FindShowing(id string) (*models.Showing, error) {
	for i := range s.showings {
		if s.showings[i].ID == id {
			return &s.showings[i], nil
		}
	}
	return nil, ErrShowingNotFound
}

// CreateShowing adds a showing for the movie. The showing time must parse as
// a Persian date-time ("YYYY-M-D HH:MM").
func (s *CinemaService) CreateShowing(movie models.Movie, capacity, price int, showingTime string) (*models.Showing, error) {
	if _, err := utils.ParseDateTime(showingTime); err != nil {
		zap.L().Warn("showing time does not match the expected format",
			zap.String("showing_time", showingTime), zap.Error(err))
		return nil, ErrInvalidDate
	}

	showing := models.Showing{
		ID:              uuid.New().String(),
		Name:            movie.Name,
		AgeGroup:        movie.AgeGroup,
		ShowingCapacity: capacity,
		Price:           price,
		ShowingTime:     showingTime,
		ReservedSeat:    []string{},
	}
	s.showings = append(s.showings, showing)
	if err := s.store.Save(s.showings); err != nil {
		return nil, err
	}
	return &s.showings[len(s.showings)-1], nil
}

// ActiveShowings lists showings that still have free seats and are scheduled
// strictly in the future. A record whose time no longer parses is skipped and
// logged so one corrupt record cannot break the listing.
func (s *CinemaService) ActiveShowings() []models.Showing {
	now := ptime.Now().Time()

	active := make([]models.Showing, 0, len(s.showings))
	for _, showing := range s.showings {
		showingTime, err := utils.ParseDateTime(showing.ShowingTime)
		if err != nil {
			zap.L().Warn("skipping showing with unparseable time",
				zap.String("id", showing.ID), zap.String("showing_time", showing.ShowingTime))
			continue
		}
		if showing.IsFull() || !showingTime.Time().After(now) {
			continue
		}
		active = append(active, showing)
	}
	return active
}

// ReserveSeat appends the user to the showing's reservation list. The
// capacity is re-checked here, so a stale listing cannot reserve past it.
func (s *CinemaService) ReserveSeat(showingID, userUID string) error {
	showing, err := s.FindShowing(showingID)
	if err != nil {
		return err
	}
	if showing.IsFull() {
		zap.L().Warn("showing has no seats left",
			zap.String("id", showingID), zap.String("movie", showing.Name))
		return ErrShowingFull
	}

	showing.ReservedSeat = append(showing.ReservedSeat, userUID)
	return s.store.Save(s.showings)
}

// UpdateShowing rewrites all mutable fields of an existing showing.
func (s *CinemaService) UpdateShowing(id string, movie models.Movie, capacity, price int, showingTime string) error {
	if _, err := utils.ParseDateTime(showingTime); err != nil {
		zap.L().Warn("showing time does not match the expected format",
			zap.String("showing_time", showingTime), zap.Error(err))
		return ErrInvalidDate
	}

	showing, err := s.FindShowing(id)
	if err != nil {
		return err
	}
	showing.Name = movie.Name
	showing.AgeGroup = movie.AgeGroup
	showing.ShowingCapacity = capacity
	showing.Price = price
	showing.ShowingTime = showingTime
	return s.store.Save(s.showings)
}
