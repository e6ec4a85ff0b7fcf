package catalogue

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aerocircuit/breitling/geo"
	"github.com/aerocircuit/breitling/station"
)

// Sentinel errors for the catalogue package.
var (
	// ErrMissingColumn indicates a required CSV column header was not found.
	ErrMissingColumn = errors.New("catalogue: missing required column")

	// ErrEmptyFile indicates the CSV had a header row but no data rows.
	ErrEmptyFile = errors.New("catalogue: no station rows found")
)

// requiredColumns are the CSV header names LoadCSV looks up by name, in any
// column order.
var requiredColumns = []string{"name", "lon", "lat", "fuel_capable", "night_accessible"}

// LoadCSV reads a station catalogue from r: one header row naming the
// columns "name", "lon", "lat", "fuel_capable", "night_accessible" (in any
// order, case-insensitive), followed by one data row per station.
// fuel_capable and night_accessible accept "yes"/"no", "y"/"n",
// "true"/"false" or "1"/"0" (case-insensitive) and any other form
// strconv.ParseBool accepts; an empty cell reads as false.
// Station.Index is assigned by row order, starting at 0.
func LoadCSV(r io.Reader) ([]station.Station, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("catalogue: read header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	indices := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		idx, ok := colIndex[col]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		indices[col] = idx
	}

	var stations []station.Station
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalogue: read row %d: %w", row, err)
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[indices["lon"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("catalogue: row %d: parse lon: %w", row, err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(record[indices["lat"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("catalogue: row %d: parse lat: %w", row, err)
		}
		fuelCapable, err := parseBool(record[indices["fuel_capable"]])
		if err != nil {
			return nil, fmt.Errorf("catalogue: row %d: parse fuel_capable: %w", row, err)
		}
		nightAccessible, err := parseBool(record[indices["night_accessible"]])
		if err != nil {
			return nil, fmt.Errorf("catalogue: row %d: parse night_accessible: %w", row, err)
		}

		stations = append(stations, station.Station{
			Index:           row,
			Location:        geo.Location{Lon: lon, Lat: lat},
			Name:            strings.TrimSpace(record[indices["name"]]),
			FuelCapable:     fuelCapable,
			NightAccessible: nightAccessible,
		})
		row++
	}

	if len(stations) == 0 {
		return nil, ErrEmptyFile
	}
	return stations, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true, nil
	case "false", "0", "no", "n", "":
		return false, nil
	default:
		return strconv.ParseBool(s)
	}
}
