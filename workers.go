package main

import (
	"fmt"

	simreader "github.com/grb-sim/simreader_go/pkg"
)

type WorkerData struct {
	Filename string
	Shift    float64
}

type WorkerResult struct {
	Filename string
	Run      *simreader.SimulationRun
	Err      error
}

// Runs on different logs share no mutable state, so each worker parses its
// job independently. Merging the resulting runs stays single-threaded in
// main.
func worker(id int, detectors simreader.DetectorMap, jobs <-chan WorkerData, results chan<- WorkerResult) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("worker %d recovered from panic: %v", id, r)
			results <- WorkerResult{Err: err}
		}
	}()

	for job := range jobs {
		if VerbosityLevel > 0 {
			logger.Info(fmt.Sprintf("Worker %d parsing %s", id, job.Filename), "workers")
		}
		run, err := simreader.OpenRunFile(job.Filename, detectors, job.Shift)
		results <- WorkerResult{Filename: job.Filename, Run: run, Err: err}
	}
}

func sendLogsToWorkers(jobs chan<- WorkerData, config Configuration) int {
	njobs := 1
	jobs <- WorkerData{Filename: config.SignalFile, Shift: config.SignalShift}
	if config.BackgroundFile != "" {
		jobs <- WorkerData{Filename: config.BackgroundFile}
		njobs++
	}
	close(jobs)
	return njobs
}
