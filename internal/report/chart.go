package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ChartFilename returns the PNG artifact name for a run timestamp.
func ChartFilename(timestamp string) string {
	return "weather_plot_" + timestamp + ".png"
}

// RenderChart draws the two-panel report image: a temperature bar chart on
// the left and a grouped humidity/wind-speed bar chart on the right, one
// bar (or group) per city in report order. The image is written to
// dir/weather_plot_{timestamp}.png, overwriting any existing file.
// Returns the written path.
func (t Table) RenderChart(dir, timestamp string) (string, error) {
	if len(t.rows) == 0 {
		return "", fmt.Errorf("render chart: empty table")
	}

	names := make([]string, len(t.rows))
	temps := make(plotter.Values, len(t.rows))
	hums := make(plotter.Values, len(t.rows))
	winds := make(plotter.Values, len(t.rows))
	for i, r := range t.rows {
		names[i] = r.City
		temps[i] = r.TemperatureC
		hums[i] = r.HumidityPct
		winds[i] = r.WindSpeedMS
	}

	tempPanel, err := temperaturePanel(names, temps)
	if err != nil {
		return "", err
	}
	condPanel, err := conditionsPanel(names, hums, winds)
	if err != nil {
		return "", err
	}

	img := vgimg.New(vg.Points(850), vg.Points(340))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: 2,
		PadX:      vg.Points(15),
		PadLeft:   vg.Points(5),
		PadRight:  vg.Points(5),
		PadTop:    vg.Points(5),
		PadBottom: vg.Points(5),
	}
	plots := [][]*plot.Plot{{tempPanel, condPanel}}
	canvases := plot.Align(plots, tiles, dc)
	plots[0][0].Draw(canvases[0][0])
	plots[0][1].Draw(canvases[0][1])

	path := filepath.Join(dir, ChartFilename(timestamp))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close chart: %w", err)
	}
	return path, nil
}

func temperaturePanel(names []string, temps plotter.Values) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Current Temperature"
	p.Y.Label.Text = "Temperature (°C)"

	bars, err := plotter.NewBarChart(temps, vg.Points(24))
	if err != nil {
		return nil, fmt.Errorf("temperature bars: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(2)

	p.Add(bars)
	p.NominalX(names...)
	p.X.Label.Text = "City"
	return p, nil
}

func conditionsPanel(names []string, hums, winds plotter.Values) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Humidity and Wind Speed"
	p.Y.Label.Text = "Humidity (%) / Wind speed (m/s)"

	w := vg.Points(12)
	humBars, err := plotter.NewBarChart(hums, w)
	if err != nil {
		return nil, fmt.Errorf("humidity bars: %w", err)
	}
	humBars.LineStyle.Width = 0
	humBars.Color = plotutil.Color(0)
	humBars.Offset = -w / 2

	windBars, err := plotter.NewBarChart(winds, w)
	if err != nil {
		return nil, fmt.Errorf("wind bars: %w", err)
	}
	windBars.LineStyle.Width = 0
	windBars.Color = plotutil.Color(1)
	windBars.Offset = w / 2

	p.Add(humBars, windBars)
	p.Legend.Add("Humidity (%)", humBars)
	p.Legend.Add("Wind speed (m/s)", windBars)
	p.Legend.Top = true
	p.NominalX(names...)
	p.X.Label.Text = "City"
	return p, nil
}
