package services

import (
	"errors"
	"fmt"
	"io"

	"github.com/jn607/UK-power-market-dashboard/internal/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const chartTimeFormat = "2006-01-02 15:04"

type ChartService struct{}

func NewChartService() (*ChartService, error) {
	return &ChartService{}, nil
}

// RenderPage writes the dashboard page: the generation mix, the carbon
// intensity series and, when the reconciliation produced any windows, the
// supply-demand balance.
func (s *ChartService) RenderPage(snapshot Snapshot, w io.Writer) error {
	if s == nil {
		return errors.New("chart service is nil")
	}
	if w == nil {
		return errors.New("writer is nil")
	}

	page := components.NewPage()
	page.PageTitle = "UK Power Market Dashboard"
	page.AddCharts(s.mixChart(snapshot.Wide), s.intensityChart(snapshot.Wide))
	if len(snapshot.Balance) > 0 {
		page.AddCharts(s.balanceChart(snapshot.Balance))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	return nil
}

func (s *ChartService) mixChart(rows []models.IntervalRow) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Generation Mix by Fuel Category"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Generation (MW)"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (Europe/London)"}),
	)

	line.SetXAxis(intervalLabels(rows))
	for _, category := range models.Categories() {
		data := make([]opts.LineData, 0, len(rows))
		for _, row := range rows {
			data = append(data, opts.LineData{Value: row.Mix.Value(category)})
		}
		line.AddSeries(string(category), data)
	}
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Stack: "generation"}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.6}),
	)

	return line
}

func (s *ChartService) intensityChart(rows []models.IntervalRow) *charts.Line {
	maxIntensity := 0.0
	data := make([]opts.LineData, 0, len(rows))
	for _, row := range rows {
		if row.CarbonIntensity == nil {
			// Zero-generation intervals stay as gaps in the series.
			data = append(data, opts.LineData{Value: nil})
			continue
		}
		if *row.CarbonIntensity > maxIntensity {
			maxIntensity = *row.CarbonIntensity
		}
		data = append(data, opts.LineData{Value: *row.CarbonIntensity})
	}

	yAxis := opts.YAxis{Name: "Carbon Intensity (g/kWh)"}
	if maxIntensity > 0 {
		yAxis.Min = 0
		yAxis.Max = maxIntensity * 1.1
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Estimated Carbon Intensity"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithYAxisOpts(yAxis),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (Europe/London)"}),
	)

	line.SetXAxis(intervalLabels(rows))
	line.AddSeries("CarbonIntensity", data)

	return line
}

func (s *ChartService) balanceChart(points []models.BalancePoint) *charts.Line {
	labels := make([]string, 0, len(points))
	data := make([]opts.LineData, 0, len(points))
	for _, point := range points {
		labels = append(labels, point.Window.Format(chartTimeFormat))
		data = append(data, opts.LineData{Value: point.SupplyMinusDemand})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Supply Minus Demand (Half-hourly)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Supply - Demand (MW)"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (Europe/London)"}),
	)

	line.SetXAxis(labels)
	line.AddSeries("SupplyMinusDemand", data)

	return line
}

func intervalLabels(rows []models.IntervalRow) []string {
	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.LocalTime.Format(chartTimeFormat))
	}
	return labels
}
