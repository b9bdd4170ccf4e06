package query

import (
	"time"

	"venuereport/database"
	"venuereport/models"
	"venuereport/utils"
)

// Service answers read queries over a loaded dataset.
type Service struct {
	data *database.Dataset
}

func NewService(data *database.Dataset) *Service {
	return &Service{data: data}
}

// Days lists every distinct UTC day present in the dataset, in order of
// first appearance.
func (s *Service) Days() []models.Day {
	seen := make(map[int64]struct{})
	days := make([]models.Day, 0)

	s.data.Each(func(o models.Order) {
		start := utils.DayStart(o.Time)
		key := start.Unix()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		days = append(days, models.Day{
			StartTimestamp: key,
			Desc:           start.Format(time.RFC3339),
		})
	})
	return days
}

// Venues lists one entry per distinct venue id. When orders disagree on the
// name, the first one wins.
func (s *Service) Venues() []models.Venue {
	seen := make(map[string]struct{})
	venues := make([]models.Venue, 0)

	s.data.Each(func(o models.Order) {
		if _, ok := seen[o.VenueID]; ok {
			return
		}
		seen[o.VenueID] = struct{}{}
		venues = append(venues, models.Venue{ID: o.VenueID, Name: o.VenueName.Venue})
	})
	return venues
}

// Orders lists orders with the venue name flattened. An empty venueID
// returns every order.
func (s *Service) Orders(venueID string) []models.OrderView {
	orders := make([]models.OrderView, 0)

	s.data.Each(func(o models.Order) {
		if venueID == "" || o.VenueID == venueID {
			orders = append(orders, o.View())
		}
	})
	return orders
}
