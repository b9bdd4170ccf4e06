package models

// Report holds the aggregate figures for one day window.
type Report struct {
	OrdersCount   int     `json:"ordersCount"`
	TotalTurnover float64 `json:"totalTurnover"`
	TotalTips     float64 `json:"totalTips"`
}

// Result is the outcome of a report request.
type Result struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

// SendReportRequest is the body of a report request.
type SendReportRequest struct {
	Email    string        `json:"email"`
	DayStart *UnixTimestamp `json:"dayStart"`
	VenueID  string        `json:"venueId"`
}
