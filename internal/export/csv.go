// Package export writes historical series as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// Header is the CSV column order.
var Header = []string{"date", "tavg", "tmin", "tmax", "prcp", "wspd", "pres"}

// WriteCSV writes the header and one row per record. Missing measurements
// are written as empty cells.
func WriteCSV(w io.Writer, series weather.HistoricalSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, rec := range series {
		row := []string{
			rec.Date.Format(weather.DateLayout),
			cell(rec.TempMean),
			cell(rec.TempMin),
			cell(rec.TempMax),
			cell(rec.Precipitation),
			cell(rec.WindSpeed),
			cell(rec.Pressure),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %s: %w", row[0], err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func cell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FileName returns weather_data_<city>_<YYYYMMDD>.csv for the export date.
func FileName(city string, at time.Time) string {
	slug := strings.ToLower(strings.Join(strings.Fields(city), "_"))
	if slug == "" {
		slug = "location"
	}
	return fmt.Sprintf("weather_data_%s_%s.csv", slug, at.Format("20060102"))
}
