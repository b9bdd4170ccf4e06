package handlers

import (
	"context"

	"github.com/op/go-logging"

	"venuereport/models"
)

var log = logging.MustGetLogger("log")

// Queries is the read surface served by the query handlers.
type Queries interface {
	Days() []models.Day
	Venues() []models.Venue
	Orders(venueID string) []models.OrderView
}

// Reporter runs a report request end to end.
type Reporter interface {
	SendReport(ctx context.Context, req models.SendReportRequest) models.Result
}

// Handler adapts the query and report services to HTTP.
type Handler struct {
	queries  Queries
	reporter Reporter
	entries  int
}

// New builds a Handler. entries is the dataset size reported by /healthz.
func New(queries Queries, reporter Reporter, entries int) *Handler {
	return &Handler{queries: queries, reporter: reporter, entries: entries}
}
