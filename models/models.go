package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// --- Orders ---

// VenueName is the nested venue record carried by every order.
type VenueName struct {
	Venue string `json:"venue"`
}

// Order is a single transaction as stored in the data file.
type Order struct {
	Time      int64     `json:"time"`
	SumTotal  float64   `json:"sumTotal"`
	TipSum    float64   `json:"tipSum"`
	VenueID   string    `json:"venueId"`
	VenueName VenueName `json:"venueName"`
}

// OrderView is the outward shape of an order, with the venue name flattened.
type OrderView struct {
	Time      int64   `json:"time"`
	SumTotal  float64 `json:"sumTotal"`
	TipSum    float64 `json:"tipSum"`
	VenueID   string  `json:"venueId"`
	VenueName string  `json:"venueName"`
}

// View projects the order into its outward shape.
func (o Order) View() OrderView {
	return OrderView{
		Time:      o.Time,
		SumTotal:  o.SumTotal,
		TipSum:    o.TipSum,
		VenueID:   o.VenueID,
		VenueName: o.VenueName.Venue,
	}
}

// --- Venues & Days ---

type Venue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Day struct {
	StartTimestamp int64  `json:"startTimestamp"`
	Desc           string `json:"desc"`
}

// --- Timestamps ---

// millisThreshold separates second timestamps from millisecond ones.
// 1e11 seconds is roughly the year 5138.
const millisThreshold = 100_000_000_000

// UnixTimestamp accepts a JSON number or a numeric string.
// Values in milliseconds are normalised to seconds.
type UnixTimestamp int64

func (t *UnixTimestamp) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" || raw == "" {
		return fmt.Errorf("timestamp is required")
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	v, err := ParseUnixTimestamp(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseUnixTimestamp parses an integer timestamp in seconds or milliseconds.
func ParseUnixTimestamp(raw string) (UnixTimestamp, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("timestamp %q out of range", raw)
	}
	if err != nil {
		// Accept "1.5e9" style numbers coming from loosely typed clients.
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) {
			return 0, fmt.Errorf("invalid timestamp %q", raw)
		}
		// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("timestamp %q out of range", raw)
		}
		n = int64(f)
	}
	if n >= millisThreshold || n <= -millisThreshold {
		n /= 1000
	}
	return UnixTimestamp(n), nil
}
