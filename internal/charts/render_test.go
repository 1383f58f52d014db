package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/solar-site-backend-go/internal/models"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func sampleBars() models.BarChart {
	return models.BarChart{
		Title: "Top 3 Solar Suitability Rankings",
		XAxis: "Solar Access Score",
		YAxis: "Region",
		Bars: []models.BarPoint{
			{Label: "C", Value: 0.675},
			{Label: "A", Value: 0.6107},
			{Label: "B", Value: 0.2},
		},
	}
}

func sampleRadar() models.RadarChart {
	return models.RadarChart{
		Title:    "Region Profile vs Benchmark",
		RegionID: "B",
		Axes: []models.RadarAxis{
			{Metric: "Solar Irradiance", Selected: 3, Benchmark: 7},
			{Metric: "Grid Access", Selected: 80, Benchmark: 80},
			{Metric: "Electricity Cost", Selected: 0.05, Benchmark: 0.15},
			{Metric: "Infrastructure", Selected: 0.9, Benchmark: 0.9},
			{Metric: "Ruggedness", Missing: true, Benchmark: 4.8},
		},
	}
}

func TestRenderTopBar(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderTopBar(&buf, sampleBars(), FormatPNG, DefaultSize))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
	})

	t.Run("svg", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderTopBar(&buf, sampleBars(), FormatSVG, DefaultSize))
		assert.Contains(t, buf.String(), "<svg")
	})

	t.Run("empty chart", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderTopBar(&buf, models.BarChart{}, FormatPNG, DefaultSize)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderTopBar(&buf, sampleBars(), "gif", DefaultSize)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Zero(t, buf.Len())
	})
}

func TestRenderRadar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRadar(&buf, sampleRadar(), FormatPNG, DefaultSize))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	require.NoError(t, RenderRadar(&buf, sampleRadar(), FormatSVG, DefaultSize))
	assert.Contains(t, buf.String(), "<svg")

	err := RenderRadar(&buf, models.RadarChart{Axes: sampleRadar().Axes[:2]}, FormatPNG, DefaultSize)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestContentType(t *testing.T) {
	ct, err := ContentType(FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	ct, err = ContentType(FormatSVG)
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", ct)

	_, err = ContentType("pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
