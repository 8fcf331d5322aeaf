package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *WorkbenchConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Results.Dir == "" {
		return errors.New("results.dir is required")
	}

	if c.Results.Postgres.Enabled {
		if err := c.Results.Postgres.validate("results.postgres"); err != nil {
			return err
		}
	}

	if c.Defaults.Option.S0 <= 0 {
		return errors.New("defaults.option.s0 must be > 0")
	}
	if c.Defaults.Option.K <= 0 {
		return errors.New("defaults.option.k must be > 0")
	}
	if c.Defaults.Option.T <= 0 {
		return errors.New("defaults.option.t must be > 0")
	}
	if c.Defaults.Option.Sigma <= 0 {
		return errors.New("defaults.option.sigma must be > 0")
	}
	if c.Defaults.Simulation.NumPaths < 1 {
		return errors.New("defaults.simulation.num_paths must be >= 1")
	}
	if c.Defaults.Simulation.NumSteps < 1 {
		return errors.New("defaults.simulation.num_steps must be >= 1")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
