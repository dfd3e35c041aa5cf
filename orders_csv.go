package profit

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DecodeOrders reads a courier CSV export into order rows. The first record
// is the header; every following record becomes an OrderRow keyed by the
// trimmed header names. Ragged rows are tolerated (missing trailing fields
// are simply absent), and rows whose every field is blank are dropped.
func DecodeOrders(r io.Reader) ([]OrderRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []OrderRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read csv record: %w", err)
		}

		row := make(OrderRow, len(header))
		blank := true
		for i, field := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = field
			if strings.TrimSpace(field) != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadOrders reads order rows from a CSV file on disk.
func LoadOrders(path string) ([]OrderRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open orders file %q: %w", path, err)
	}
	defer f.Close()
	rows, err := DecodeOrders(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode orders file %q: %w", path, err)
	}
	return rows, nil
}
