package config

import (
	"errors"
	"fmt"
	"time"
)

// Defaults used when neither the config file nor the environment sets a value.
const (
	NumElevators     = 3
	NumFloors        = 15
	MoveDuration     = 3 * time.Second
	DwellDuration    = 5 * time.Second
	PollInterval     = 1 * time.Second
	RequestInterval  = 30 * time.Second
	StatusInterval   = 1 * time.Second
	RandomRequests   = true
	DefaultEnvFile   = ".env"
	DefaultLogLevel  = "info"
	BottomFloor      = 1
	minFloorsAllowed = 2
)

// ElevatorSettings is the immutable system configuration read by the core packages.
type ElevatorSettings struct {
	NumElevators  int           `yaml:"count"`
	NumFloors     int           `yaml:"floors"`
	MoveDuration  time.Duration `yaml:"moveTime"`
	DwellDuration time.Duration `yaml:"stopTime"`
	PollInterval  time.Duration `yaml:"pollInterval"`
}

// RequestSettings drives the random traffic generator.
type RequestSettings struct {
	Random   bool          `yaml:"random"`
	Interval time.Duration `yaml:"interval"`
}

// StatusSettings drives the periodic status display.
type StatusSettings struct {
	Interval time.Duration `yaml:"interval"`
}

type Config struct {
	Elevators ElevatorSettings `yaml:"elevators"`
	Requests  RequestSettings  `yaml:"requests"`
	Status    StatusSettings   `yaml:"status"`
}

func Default() Config {
	return Config{
		Elevators: ElevatorSettings{
			NumElevators:  NumElevators,
			NumFloors:     NumFloors,
			MoveDuration:  MoveDuration,
			DwellDuration: DwellDuration,
			PollInterval:  PollInterval,
		},
		Requests: RequestSettings{
			Random:   RandomRequests,
			Interval: RequestInterval,
		},
		Status: StatusSettings{
			Interval: StatusInterval,
		},
	}
}

// Validate rejects configurations the simulator cannot start with.
func (c Config) Validate() error {
	var errs []error
	if err := c.Elevators.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Requests.Random && c.Requests.Interval <= 0 {
		errs = append(errs, fmt.Errorf("request interval must be positive, got %v", c.Requests.Interval))
	}
	if c.Status.Interval <= 0 {
		errs = append(errs, fmt.Errorf("status interval must be positive, got %v", c.Status.Interval))
	}
	return errors.Join(errs...)
}

func (s ElevatorSettings) Validate() error {
	var errs []error
	if s.NumElevators < 1 {
		errs = append(errs, fmt.Errorf("at least one elevator is required, got %d", s.NumElevators))
	}
	if s.NumFloors < minFloorsAllowed {
		errs = append(errs, fmt.Errorf("at least %d floors are required, got %d", minFloorsAllowed, s.NumFloors))
	}
	if s.MoveDuration <= 0 {
		errs = append(errs, fmt.Errorf("move time must be positive, got %v", s.MoveDuration))
	}
	if s.DwellDuration <= 0 {
		errs = append(errs, fmt.Errorf("stop time must be positive, got %v", s.DwellDuration))
	}
	if s.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll interval must be positive, got %v", s.PollInterval))
	}
	return errors.Join(errs...)
}
