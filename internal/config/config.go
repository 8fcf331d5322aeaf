package config

// WorkbenchConfig is the root configuration shared by the API server
// and the bench runner.
type WorkbenchConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Results  ResultsConfig  `yaml:"results"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// ResultsConfig holds result sink settings. The JSONL sink is always
// on; Postgres is opt-in.
type ResultsConfig struct {
	Dir      string   `yaml:"dir"`
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds a PostgreSQL connection.
type DBConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// DefaultsConfig holds the parameter defaults applied to experiment
// requests that leave fields unset.
type DefaultsConfig struct {
	Option     OptionDefaults     `yaml:"option"`
	Simulation SimulationDefaults `yaml:"simulation"`
}

// OptionDefaults mirrors pricer.OptionSpec.
type OptionDefaults struct {
	S0    float64 `yaml:"s0"`
	K     float64 `yaml:"k"`
	T     float64 `yaml:"t"`
	R     float64 `yaml:"r"`
	Sigma float64 `yaml:"sigma"`
}

// SimulationDefaults mirrors pricer.SimulationSpec.
type SimulationDefaults struct {
	NumPaths int    `yaml:"num_paths"`
	NumSteps int    `yaml:"num_steps"`
	Seed     uint64 `yaml:"seed"`
}
