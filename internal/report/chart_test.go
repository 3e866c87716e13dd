package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderChart_WritesPNG(t *testing.T) {
	table := Assemble(sampleSet())

	dir := t.TempDir()
	path, err := table.RenderChart(dir, "20260830_120000")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "weather_plot_20260830_120000.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestRenderChart_SingleCity(t *testing.T) {
	table := Assemble(sampleSet()[:1])

	path, err := table.RenderChart(t.TempDir(), "20260830_120000")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderChart_EmptyTable(t *testing.T) {
	table := Assemble(nil)

	_, err := table.RenderChart(t.TempDir(), "20260830_120000")
	assert.Error(t, err)
}

func TestArtifactFilenames_ShareTimestamp(t *testing.T) {
	const ts = "20260830_142530"
	assert.Equal(t, "weather_data_"+ts+".csv", CSVFilename(ts))
	assert.Equal(t, "weather_plot_"+ts+".png", ChartFilename(ts))
}
