package main

import (
	"encoding/json"
	"fmt"
	"os"
)

type Configuration struct {
	Verbosity       int       `json:"verbosity"`
	SignalFile      string    `json:"signal_file"`
	BackgroundFile  string    `json:"background_file"`
	SignalShift     float64   `json:"signal_shift"`     // seconds, applied while parsing the signal log
	BackgroundShift float64   `json:"background_shift"` // seconds, applied when merging the background run
	FileOut         string    `json:"file_out"`
	DetectorMapFile string    `json:"detector_map_file"`
	NoDB            bool      `json:"no_db"`
	Host            string    `json:"host"`
	User            string    `json:"user"`
	Passwd          string    `json:"pass"`
	DBName          string    `json:"dbname"`
	Geometry        int       `json:"geometry"`
	EnergyMin       float64   `json:"energy_min"` // keV
	EnergyMax       float64   `json:"energy_max"` // keV
	NumChannels     int       `json:"num_channels"`
	EnergyEdges     []float64 `json:"energy_edges"` // explicit edge table, overrides the geometric one
	NumWorkers      int       `json:"num_workers"`
	WriteData       bool      `json:"write_data"`
}

func LoadConfiguration(filename string) (Configuration, error) {
	var config Configuration

	// Set default values
	config.Verbosity = 0
	config.SignalShift = 0
	config.BackgroundShift = 0
	config.FileOut = "events.h5"
	config.NoDB = false
	config.Host = "geomdb.grb-sim.org"
	config.User = "simreader"
	config.Passwd = "readonly"
	config.DBName = "GEOMETRY"
	config.Geometry = 1
	config.EnergyMin = 4.5
	config.EnergyMax = 2000
	config.NumChannels = 128
	config.NumWorkers = 2
	config.WriteData = true

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func printConfiguration(config Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("Signal file: %s", config.SignalFile), "config")
	logger.Info(fmt.Sprintf("Background file: %s", config.BackgroundFile), "config")
	logger.Info(fmt.Sprintf("Signal shift: %g s", config.SignalShift), "config")
	logger.Info(fmt.Sprintf("Background shift: %g s", config.BackgroundShift), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Detector map file: %s", config.DetectorMapFile), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Geometry: %d", config.Geometry), "config")
	logger.Info(fmt.Sprintf("Energy range: [%g, %g] keV", config.EnergyMin, config.EnergyMax), "config")
	logger.Info(fmt.Sprintf("Number of channels: %d", config.NumChannels), "config")
	logger.Info(fmt.Sprintf("Explicit edges: %d", len(config.EnergyEdges)), "config")
	logger.Info(fmt.Sprintf("Number of workers: %d", config.NumWorkers), "config")
	logger.Info(fmt.Sprintf("Write data: %t", config.WriteData), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
}
