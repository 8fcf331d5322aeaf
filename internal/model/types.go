package model

import (
	"time"

	"github.com/mhalvorsen/lsm-workbench/internal/sysinfo"
)

// Inputs is the full parameter set of one pricing call.
type Inputs struct {
	S0       float64 `json:"S0"`
	K        float64 `json:"K"`
	T        float64 `json:"T"`
	R        float64 `json:"r"`
	Sigma    float64 `json:"sigma"`
	NumPaths int     `json:"num_paths"`
	NumSteps int     `json:"num_steps"`
	Seed     uint64  `json:"seed"`
}

// Outputs holds what a pricing call produced.
type Outputs struct {
	Price  float64 `json:"price"`
	TimeMS float64 `json:"time_ms"`
}

// ResultRecord is one observation: a single (parameter set, backend)
// combination with its output and the environment it ran in. Records
// are append-only; writers never update them.
type ResultRecord struct {
	CaseName   string       `json:"case_name"`
	Backend    string       `json:"backend"`
	Timestamp  time.Time    `json:"timestamp_utc"`
	Inputs     Inputs       `json:"inputs"`
	Outputs    Outputs      `json:"outputs"`
	SystemInfo sysinfo.Info `json:"system_info"`
}
