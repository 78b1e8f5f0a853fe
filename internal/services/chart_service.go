package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"shelby-dashboard/internal/models"
)

// ErrNoChartData signals that a chart has nothing to plot after filtering
var ErrNoChartData = errors.New("no data points to chart")

const (
	chartWidth  = 900
	chartHeight = 420
)

var seriesPalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorRed,
	chart.ColorCyan,
	chart.ColorAlternateGray,
}

type chartService struct {
	processor SheetProcessorServiceInterface
	metrics   MetricsRecorderInterface
}

func NewChartService(processor SheetProcessorServiceInterface, metrics MetricsRecorderInterface) ChartServiceInterface {
	return &chartService{
		processor: processor,
		metrics:   metrics,
	}
}

// ParticipationChart plots participant counts over time, one series per event
func (s *chartService) ParticipationChart(ctx context.Context, filters models.TableFilters) ([]byte, error) {
	records, err := s.processor.Participation(ctx, filters)
	if err != nil {
		s.metrics.RecordChartRender("participation", "error")
		return nil, err
	}
	if len(records) == 0 {
		s.metrics.RecordChartRender("participation", "empty")
		return nil, ErrNoChartData
	}

	type eventSeries struct {
		times  []time.Time
		counts []float64
	}
	byEvent := make(map[string]*eventSeries)
	order := make([]string, 0)
	for _, record := range records {
		series, seen := byEvent[record.EventName]
		if !seen {
			series = &eventSeries{}
			byEvent[record.EventName] = series
			order = append(order, record.EventName)
		}
		series.times = append(series.times, record.Date)
		series.counts = append(series.counts, float64(record.ParticipantCount))
	}

	allSeries := make([]chart.Series, 0, len(order))
	for i, name := range order {
		series := byEvent[name]
		color := seriesPalette[i%len(seriesPalette)]
		// go-chart needs at least two X values per series
		if len(series.times) == 1 {
			series.times = append(series.times, series.times[0].Add(24*time.Hour))
			series.counts = append(series.counts, series.counts[0])
		}
		allSeries = append(allSeries, chart.TimeSeries{
			Name:    name,
			XValues: series.times,
			YValues: series.counts,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    3,
			},
		})
	}

	graph := chart.Chart{
		Title:      "Volunteer Participation Over Time",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 40}},
		YAxis:      chart.YAxis{Name: "Participants"},
		Series:     allSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return s.render("participation", graph.Render)
}

// AcresChart plots the cumulative acres cleaned running total
func (s *chartService) AcresChart(ctx context.Context, filters models.TableFilters) ([]byte, error) {
	records, err := s.processor.AcresTimeline(ctx, filters)
	if err != nil {
		s.metrics.RecordChartRender("acres", "error")
		return nil, err
	}
	if len(records) == 0 {
		s.metrics.RecordChartRender("acres", "empty")
		return nil, ErrNoChartData
	}

	times := make([]time.Time, 0, len(records))
	totals := make([]float64, 0, len(records))
	for _, record := range records {
		times = append(times, record.Date)
		totals = append(totals, record.CumulativeTotal)
	}
	if len(times) == 1 {
		times = append(times, times[0].Add(24*time.Hour))
		totals = append(totals, totals[0])
	}

	graph := chart.Chart{
		Title:      "Cumulative Acres Cleaned",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 40}},
		YAxis:      chart.YAxis{Name: "Acres"},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Cumulative acres",
				XValues: times,
				YValues: totals,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
					FillColor:   chart.ColorGreen.WithAlpha(60),
				},
			},
		},
	}

	return s.render("acres", graph.Render)
}

// PopularEventsChart renders the top events as a donut of participant share
func (s *chartService) PopularEventsChart(ctx context.Context) ([]byte, error) {
	events, err := s.processor.PopularEvents(ctx)
	if err != nil {
		s.metrics.RecordChartRender("popular_events", "error")
		return nil, err
	}
	if len(events) == 0 {
		s.metrics.RecordChartRender("popular_events", "empty")
		return nil, ErrNoChartData
	}

	values := make([]chart.Value, 0, len(events))
	for _, event := range events {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.0f%%)", event.EventName, event.PercentageShare),
			Value: float64(event.TotalParticipants),
		})
	}

	graph := chart.DonutChart{
		Title:  "Most Popular Events",
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}

	return s.render("popular_events", graph.Render)
}

// SatisfactionChart renders per-event satisfaction scores as bars
func (s *chartService) SatisfactionChart(ctx context.Context, filters models.TableFilters) ([]byte, error) {
	records, err := s.processor.Satisfaction(ctx, filters)
	if err != nil {
		s.metrics.RecordChartRender("satisfaction", "error")
		return nil, err
	}
	if len(records) == 0 {
		s.metrics.RecordChartRender("satisfaction", "empty")
		return nil, ErrNoChartData
	}

	// Average the score per event so repeated surveys collapse to one bar
	sums := make(map[string]float64)
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, record := range records {
		if _, seen := counts[record.EventName]; !seen {
			order = append(order, record.EventName)
		}
		sums[record.EventName] += record.SatisfactionScore
		counts[record.EventName]++
	}

	bars := make([]chart.Value, 0, len(order))
	for _, name := range order {
		bars = append(bars, chart.Value{
			Label: name,
			Value: round2(sums[name] / float64(counts[name])),
		})
	}

	graph := chart.BarChart{
		Title:      "Volunteer Satisfaction by Event",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 40}},
		BarWidth:   60,
		YAxis:      chart.YAxis{Name: "Score"},
		Bars:       bars,
	}

	return s.render("satisfaction", graph.Render)
}

func (s *chartService) render(name string, renderFn func(chart.RendererProvider, io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderFn(chart.PNG, &buf); err != nil {
		s.metrics.RecordChartRender(name, "error")
		return nil, fmt.Errorf("rendering %s chart: %w", name, err)
	}
	s.metrics.RecordChartRender(name, "success")
	return buf.Bytes(), nil
}
