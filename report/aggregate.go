package report

import (
	"time"

	"venuereport/database"
	"venuereport/models"
	"venuereport/utils"
)

// ComputeWindow aggregates the orders placed strictly inside the 24h window
// that opens at dayStart. Both ends of the window are exclusive. An empty
// venueID aggregates across all venues.
func ComputeWindow(data *database.Dataset, dayStart time.Time, venueID string) models.Report {
	start := dayStart.Unix()
	end := utils.DayEnd(dayStart).Unix()

	var r models.Report
	data.Each(func(o models.Order) {
		if o.Time <= start || o.Time >= end {
			return
		}
		if venueID != "" && o.VenueID != venueID {
			return
		}
		r.OrdersCount++
		r.TotalTurnover += o.SumTotal
		r.TotalTips += o.TipSum
	})
	return r
}
