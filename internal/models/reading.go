package models

import "time"

type GenerationReading struct {
	Dataset          string    `json:"dataset"`
	PublishTime      time.Time `json:"publishTime"`
	StartTime        time.Time `json:"startTime"`
	SettlementDate   string    `json:"settlementDate"`
	SettlementPeriod int       `json:"settlementPeriod"`
	FuelType         string    `json:"fuelType"`
	Generation       float64   `json:"generation"`
}

type DemandForecastRecord struct {
	Dataset          string    `json:"dataset"`
	PublishTime      time.Time `json:"publishTime"`
	StartTime        time.Time `json:"startTime"`
	SettlementDate   string    `json:"settlementDate"`
	SettlementPeriod int       `json:"settlementPeriod"`
	Boundary         string    `json:"boundary"`
	Demand           float64   `json:"demand"`
}
