package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/op/go-logging"

	"venuereport/models"
)

var log = logging.MustGetLogger("log")

// DataFormatError reports a data file that is not a JSON array of orders.
type DataFormatError struct {
	Path string
	Err  error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("corrupt data file %s: %v", e.Path, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// Dataset is the immutable snapshot of all orders, in file order.
// It is safe for concurrent use because nothing writes to it after Load.
type Dataset struct {
	orders []models.Order
}

// NewDataset copies orders into a new snapshot.
func NewDataset(orders []models.Order) *Dataset {
	cp := make([]models.Order, len(orders))
	copy(cp, orders)
	return &Dataset{orders: cp}
}

// Len returns the number of orders in the snapshot.
func (d *Dataset) Len() int {
	return len(d.orders)
}

// Each calls fn for every order in file order.
func (d *Dataset) Each(fn func(models.Order)) {
	for _, o := range d.orders {
		fn(o)
	}
}

// Load reads and parses the data file at path. The root element must be an
// array; anything else is a *DataFormatError.
func Load(path string) (*Dataset, error) {
	log.Infof("reading data file: %s", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	data, err := Parse(raw)
	if err != nil {
		if dfe, ok := err.(*DataFormatError); ok {
			dfe.Path = path
		}
		return nil, err
	}

	log.Infof("successfully read %d entries from data file", data.Len())
	return data, nil
}

// Parse decodes a JSON array of orders.
func Parse(raw []byte) (*Dataset, error) {
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) {
		return nil, &DataFormatError{Err: fmt.Errorf("invalid JSON")}
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &DataFormatError{Err: fmt.Errorf("array expected as root element")}
	}

	var orders []models.Order
	if err := json.Unmarshal(trimmed, &orders); err != nil {
		return nil, &DataFormatError{Err: err}
	}
	return &Dataset{orders: orders}, nil
}
