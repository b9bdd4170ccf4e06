package report

import (
	"context"
	"time"

	"venuereport/database"
	"venuereport/models"
	"venuereport/utils"
)

// Service runs the report pipeline: validate, aggregate, format, dispatch.
type Service struct {
	data          *database.Dataset
	dispatcher    *Dispatcher
	filterByVenue bool
}

// NewService builds a report service. When filterByVenue is false the
// requested venue id is ignored and reports cover every venue.
func NewService(data *database.Dataset, dispatcher *Dispatcher, filterByVenue bool) *Service {
	return &Service{data: data, dispatcher: dispatcher, filterByVenue: filterByVenue}
}

// SendReport computes the report for req.DayStart and mails it to req.Email.
// It blocks until the mailer returns.
func (s *Service) SendReport(ctx context.Context, req models.SendReportRequest) models.Result {
	email, err := utils.NormalizeEmail(req.Email)
	if err != nil {
		return models.Result{Success: false, Msg: "Invalid email address"}
	}
	if req.DayStart == nil {
		return models.Result{Success: false, Msg: "dayStart is required"}
	}

	dayStart := time.Unix(int64(*req.DayStart), 0).UTC()

	venueID := ""
	if s.filterByVenue {
		venueID = req.VenueID
	}
	r := ComputeWindow(s.data, dayStart, venueID)

	log.Debugf("report for %s (venue filter %q): %+v", dayStart.Format(time.RFC3339), venueID, r)
	return s.dispatcher.Send(ctx, email, r, dayStart)
}
