package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvElevatorCount   = "ELEVATOR_COUNT"
	EnvElevatorFloors  = "ELEVATOR_FLOORS"
	EnvMoveTime        = "ELEVATOR_MOVE_TIME"
	EnvStopTime        = "ELEVATOR_STOP_TIME"
	EnvPollInterval    = "ELEVATOR_POLL_INTERVAL"
	EnvRandomRequests  = "REQUEST_RANDOM"
	EnvRequestInterval = "REQUEST_INTERVAL"
	EnvStatusInterval  = "STATUS_INTERVAL"
)

// Load builds the configuration from defaults, then the YAML file at path, then the
// dotenv file at envPath, then the process environment. Empty paths are skipped, and a
// missing dotenv file is not an error.
func Load(path, envPath string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	dotenv := map[string]string{}
	if envPath != "" {
		vars, err := godotenv.Read(envPath)
		switch {
		case err == nil:
			dotenv = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, fmt.Errorf("reading %s: %w", envPath, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error
	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			d, err := parseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	setInt(EnvElevatorCount, &cfg.Elevators.NumElevators)
	setInt(EnvElevatorFloors, &cfg.Elevators.NumFloors)
	setDuration(EnvMoveTime, &cfg.Elevators.MoveDuration)
	setDuration(EnvStopTime, &cfg.Elevators.DwellDuration)
	setDuration(EnvPollInterval, &cfg.Elevators.PollInterval)
	setBool(EnvRandomRequests, &cfg.Requests.Random)
	setDuration(EnvRequestInterval, &cfg.Requests.Interval)
	setDuration(EnvStatusInterval, &cfg.Status.Interval)

	return errors.Join(errs...)
}

// parseDuration accepts Go duration strings ("1500ms") and bare integers as seconds.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}
