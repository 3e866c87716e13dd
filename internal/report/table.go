package report

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"weatherreport/internal/client"
)

// msToMPH converts metres per second to miles per hour.
const msToMPH = 2.23694

// Row is one city's assembled metrics: the fetched values plus the derived
// Fahrenheit and mph columns.
type Row struct {
	City         string
	TemperatureC float64
	TemperatureF float64
	WindSpeedMS  float64
	WindSpeedMPH float64
	HumidityPct  float64
}

// Table is the assembled dataset, one row per successfully fetched city,
// in catalog order.
type Table struct {
	rows []Row
}

// Header returns the fixed column order shared by the CSV writer and reader.
func Header() []string {
	return []string{"city", "temperature_c", "temperature_f", "wind_speed_ms", "wind_speed_mph", "humidity_pct"}
}

// Assemble folds fetched samples into a Table, deriving the Fahrenheit and
// mph columns. Row order equals input order; no sorting, no filtering.
func Assemble(samples []client.Sample) Table {
	rows := make([]Row, len(samples))
	for i, s := range samples {
		rows[i] = Row{
			City:         s.City,
			TemperatureC: s.TemperatureC,
			TemperatureF: s.TemperatureC*9/5 + 32,
			WindSpeedMS:  s.WindSpeedMS,
			WindSpeedMPH: s.WindSpeedMS * msToMPH,
			HumidityPct:  s.HumidityPct,
		}
	}
	return Table{rows: rows}
}

// Rows returns the rows in report order.
func (t Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.rows)
}

// ByTemperature returns a copy of the rows ranked hottest to coldest.
// The table itself is not reordered.
func (t Table) ByTemperature() []Row {
	rows := t.copyRows()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TemperatureC > rows[j].TemperatureC
	})
	return rows
}

// ByHumidity returns a copy of the rows ranked driest to most humid.
func (t Table) ByHumidity() []Row {
	rows := t.copyRows()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].HumidityPct < rows[j].HumidityPct
	})
	return rows
}

// WarmCities returns the rows with temperature strictly above minC,
// preserving report order.
func (t Table) WarmCities(minC float64) []Row {
	var warm []Row
	for _, r := range t.rows {
		if r.TemperatureC > minC {
			warm = append(warm, r)
		}
	}
	return warm
}

func (t Table) copyRows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// ColumnStats describes one numeric column across all rows.
type ColumnStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summary holds per-column statistics over the fetched (non-derived) metrics.
type Summary struct {
	TemperatureC ColumnStats
	WindSpeedMS  ColumnStats
	HumidityPct  ColumnStats
}

// Summarize computes count, mean, sample standard deviation, min and max
// for the temperature, wind speed and humidity columns. Zero value on an
// empty table.
func (t Table) Summarize() Summary {
	if len(t.rows) == 0 {
		return Summary{}
	}
	temps := make([]float64, len(t.rows))
	winds := make([]float64, len(t.rows))
	hums := make([]float64, len(t.rows))
	for i, r := range t.rows {
		temps[i] = r.TemperatureC
		winds[i] = r.WindSpeedMS
		hums[i] = r.HumidityPct
	}
	return Summary{
		TemperatureC: columnStats(temps),
		WindSpeedMS:  columnStats(winds),
		HumidityPct:  columnStats(hums),
	}
}

func columnStats(xs []float64) ColumnStats {
	cs := ColumnStats{
		Count: len(xs),
		Mean:  stat.Mean(xs, nil),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
	}
	// Sample stddev is undefined for a single observation.
	if len(xs) > 1 {
		cs.StdDev = stat.StdDev(xs, nil)
	}
	return cs
}
