package config

// Default values for optional configuration fields.
const (
	DefaultServerPort = 8080
	DefaultResultsDir = "RESULTS"

	DefaultDBPort   = 5432
	DefaultDBSSL    = "prefer"
	DefaultMaxConns = 4
	DefaultMinConns = 1

	DefaultS0    = 100.0
	DefaultK     = 105.0
	DefaultT     = 1.0
	DefaultR     = 0.05
	DefaultSigma = 0.2

	DefaultNumPaths = 102_400
	DefaultNumSteps = 100
	DefaultSeed     = 42
)

func (c *WorkbenchConfig) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Results.Dir == "" {
		c.Results.Dir = DefaultResultsDir
	}
	applyDBDefaults(&c.Results.Postgres)

	// Option defaults
	if c.Defaults.Option.S0 == 0 {
		c.Defaults.Option.S0 = DefaultS0
	}
	if c.Defaults.Option.K == 0 {
		c.Defaults.Option.K = DefaultK
	}
	if c.Defaults.Option.T == 0 {
		c.Defaults.Option.T = DefaultT
	}
	if c.Defaults.Option.R == 0 {
		c.Defaults.Option.R = DefaultR
	}
	if c.Defaults.Option.Sigma == 0 {
		c.Defaults.Option.Sigma = DefaultSigma
	}

	// Simulation defaults
	if c.Defaults.Simulation.NumPaths == 0 {
		c.Defaults.Simulation.NumPaths = DefaultNumPaths
	}
	if c.Defaults.Simulation.NumSteps == 0 {
		c.Defaults.Simulation.NumSteps = DefaultNumSteps
	}
	if c.Defaults.Simulation.Seed == 0 {
		c.Defaults.Simulation.Seed = DefaultSeed
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSL
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
