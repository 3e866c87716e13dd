package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CSVFilename returns the CSV artifact name for a run timestamp.
func CSVFilename(timestamp string) string {
	return "weather_data_" + timestamp + ".csv"
}

// WriteCSV serializes the table to dir/weather_data_{timestamp}.csv: a
// header row plus one row per city in report order. An existing file of the
// same name is overwritten. Returns the written path.
func (t Table) WriteCSV(dir, timestamp string) (string, error) {
	path := filepath.Join(dir, CSVFilename(timestamp))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header()); err != nil {
		f.Close()
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range t.rows {
		record := []string{
			r.City,
			formatMetric(r.TemperatureC),
			formatMetric(r.TemperatureF),
			formatMetric(r.WindSpeedMS),
			formatMetric(r.WindSpeedMPH),
			formatPercent(r.HumidityPct),
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close csv: %w", err)
	}
	return path, nil
}

// ReadCSV parses a file produced by WriteCSV back into a Table.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("read csv: empty file")
	}
	if got, want := strings.Join(records[0], ","), strings.Join(Header(), ","); got != want {
		return Table{}, fmt.Errorf("read csv: unexpected header %q", got)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(Header()) {
			return Table{}, fmt.Errorf("read csv: row %d has %d fields", i+1, len(record))
		}
		vals := make([]float64, 5)
		for j, s := range record[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Table{}, fmt.Errorf("read csv: row %d column %s: %w", i+1, Header()[j+1], err)
			}
			vals[j] = v
		}
		rows = append(rows, Row{
			City:         record[0],
			TemperatureC: vals[0],
			TemperatureF: vals[1],
			WindSpeedMS:  vals[2],
			WindSpeedMPH: vals[3],
			HumidityPct:  vals[4],
		})
	}
	return Table{rows: rows}, nil
}

// formatMetric renders a measurement with at least one decimal place, so
// whole-number readings still read as measurements ("20.0", "11.1847").
func formatMetric(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatPercent renders relative humidity, which the API reports in whole
// percent ("60").
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
