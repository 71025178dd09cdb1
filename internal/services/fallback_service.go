package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jn607/UK-power-market-dashboard/internal/models"

	"github.com/xuri/excelize/v2"
)

// FallbackService loads local copies of the two datasets when the network
// retrieval fails. The generation fallback is tabular (.csv or .xlsx); the
// demand fallback is JSON, either a bare array or an object with a `data` key.
type FallbackService struct{}

func NewFallbackService() (*FallbackService, error) {
	return &FallbackService{}, nil
}

func (s *FallbackService) LoadGeneration(path string) ([]models.GenerationReading, error) {
	if s == nil {
		return nil, errors.New("fallback service is nil")
	}
	if path == "" {
		return nil, errors.New("fallback path is empty")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadGenerationCSV(path)
	case ".xlsx":
		return loadGenerationXlsx(path)
	}

	return nil, fmt.Errorf("unsupported fallback format: %s", filepath.Ext(path))
}

func (s *FallbackService) LoadDemand(path string) ([]models.DemandForecastRecord, error) {
	if s == nil {
		return nil, errors.New("fallback service is nil")
	}
	if path == "" {
		return nil, errors.New("fallback path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("fallback file is empty")
	}

	// Some files store the records as a top-level array, others under `data`.
	if trimmed[0] == '{' {
		var envelope struct {
			Data []models.DemandForecastRecord `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("parse fallback: %w", err)
		}
		return envelope.Data, nil
	}

	var records []models.DemandForecastRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("parse fallback: %w", err)
	}

	return records, nil
}

func loadGenerationCSV(path string) ([]models.GenerationReading, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse fallback csv: %w", err)
	}

	return parseGenerationRows(rows)
}

func loadGenerationXlsx(path string) ([]models.GenerationReading, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		closeErr := workbook.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("close workbook: %w", closeErr)
		}
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		closeErr := workbook.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("close workbook: %w", closeErr)
		}
		return nil, fmt.Errorf("get rows for %s: %w", sheets[0], err)
	}

	if closeErr := workbook.Close(); closeErr != nil {
		return nil, fmt.Errorf("close workbook: %w", closeErr)
	}

	return parseGenerationRows(rows)
}

func parseGenerationRows(rows [][]string) ([]models.GenerationReading, error) {
	headerIndex, columns, err := findGenerationHeader(rows)
	if err != nil {
		return nil, err
	}

	var readings []models.GenerationReading
	for _, row := range rows[headerIndex+1:] {
		if rowIsEmpty(row) {
			continue
		}

		reading, err := parseGenerationRow(columns, row)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

func findGenerationHeader(rows [][]string) (int, map[string]int, error) {
	for index, row := range rows {
		columns := make(map[string]int, len(row))
		for i, cell := range row {
			columns[strings.TrimSpace(cell)] = i
		}

		_, hasStart := columns["startTime"]
		_, hasFuel := columns["fuelType"]
		if hasStart && hasFuel {
			return index, columns, nil
		}
	}

	return 0, nil, errors.New("header row not found")
}

func parseGenerationRow(columns map[string]int, row []string) (models.GenerationReading, error) {
	startTime, err := parseCellTime(columns, row, "startTime")
	if err != nil {
		return models.GenerationReading{}, err
	}

	publishTime, err := parseCellTime(columns, row, "publishTime")
	if err != nil {
		return models.GenerationReading{}, err
	}

	generation, err := parseCellFloat(columns, row, "generation")
	if err != nil {
		return models.GenerationReading{}, err
	}

	period := 0
	if value := cellValue(columns, row, "settlementPeriod"); value != "" {
		period, err = strconv.Atoi(value)
		if err != nil {
			return models.GenerationReading{}, fmt.Errorf("parse settlementPeriod %q: %w", value, err)
		}
	}

	return models.GenerationReading{
		Dataset:          cellValue(columns, row, "dataset"),
		PublishTime:      publishTime,
		StartTime:        startTime,
		SettlementDate:   cellValue(columns, row, "settlementDate"),
		SettlementPeriod: period,
		FuelType:         cellValue(columns, row, "fuelType"),
		Generation:       generation,
	}, nil
}

func cellValue(columns map[string]int, row []string, name string) string {
	index, ok := columns[name]
	if !ok || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func parseCellTime(columns map[string]int, row []string, name string) (time.Time, error) {
	value := cellValue(columns, row, name)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is empty", name)
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", name, value, err)
	}

	return parsed, nil
}

func parseCellFloat(columns map[string]int, row []string, name string) (float64, error) {
	value := cellValue(columns, row, name)
	if value == "" {
		return 0, fmt.Errorf("%s is empty", name)
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, value, err)
	}

	return parsed, nil
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
