package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	sqlx "github.com/jmoiron/sqlx"

	simreader "github.com/grb-sim/simreader_go/pkg"
)

var dbConn *sqlx.DB
var configuration Configuration

var (
	logger         Logger
	VerbosityLevel int
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("error reading configuration file: %w", err)
		logger.Error(message.Error())
		return
	}
	simreader.SetConfiguration(simreader.Configuration{Verbosity: configuration.Verbosity})
	simreader.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		logger.Info(fmt.Sprintf("Reading configuration file: %s", *configFilename), "main")
		printConfiguration(configuration, logger)
	}

	if configuration.SignalFile == "" {
		logger.Error("no signal file configured")
		return
	}

	detectors, err := loadDetectors(configuration)
	if err != nil {
		message := fmt.Errorf("error loading detector map: %w", err)
		logger.Error(message.Error())
		return
	}

	table, err := buildChannelTable(configuration)
	if err != nil {
		message := fmt.Errorf("error building channel table: %w", err)
		logger.Error(message.Error())
		return
	}

	jobs := make(chan WorkerData, 2)
	results := make(chan WorkerResult, 2)
	for w := 1; w <= configuration.NumWorkers; w++ {
		go worker(w, detectors, jobs, results)
	}
	njobs := sendLogsToWorkers(jobs, configuration)

	var signal, background *simreader.SimulationRun
	for i := 0; i < njobs; i++ {
		result := <-results
		if result.Err != nil {
			message := fmt.Errorf("error parsing %s: %w", result.Filename, result.Err)
			logger.Error(message.Error())
			return
		}
		if result.Filename == configuration.SignalFile {
			signal = result.Run
		} else {
			background = result.Run
		}
	}

	if background != nil {
		signal.Merge(background, configuration.BackgroundShift)
	}

	stream := simreader.BuildEventStream(signal, table)
	logger.Info(fmt.Sprintf("Built event stream: %d events, %d channels",
		stream.NumEvents(), stream.NumChannels()), "main")

	if configuration.WriteData {
		writer, err := simreader.NewWriter(configuration.FileOut)
		if err != nil {
			message := fmt.Errorf("error creating output file: %w", err)
			logger.Error(message.Error())
			return
		}
		defer writer.Close()
		if err := writer.WriteRun(signal, stream); err != nil {
			message := fmt.Errorf("error writing output file: %w", err)
			logger.Error(message.Error())
			return
		}
	}
}

func loadDetectors(config Configuration) (simreader.DetectorMap, error) {
	if config.NoDB {
		return simreader.LoadDetectorMap(config.DetectorMapFile)
	}
	var err error
	dbConn, err = simreader.ConnectToDatabase(config.User, config.Passwd, config.Host, config.DBName)
	if err != nil {
		return nil, err
	}
	defer dbConn.Close()
	return simreader.GetDetectorsFromDB(dbConn, config.Geometry)
}

func buildChannelTable(config Configuration) (*simreader.EnergyChannelTable, error) {
	edges := config.EnergyEdges
	if len(edges) == 0 {
		var err error
		edges, err = simreader.GeometricEdges(config.EnergyMin, config.EnergyMax, config.NumChannels)
		if err != nil {
			return nil, err
		}
	}
	return simreader.NewEnergyChannelTable(edges)
}
