package models

import (
	"encoding/json"
	"os"
)

// The Config struct carries run parameters for a validation run: the dataset
// location, the constant model inputs applied uniformly across records, and
// the result sink toggles. A caller that wants per-record rate or volatility
// sets them on each OptionQuote instead; the constants here are only the
// uniform fallback the adapter stamps onto every record.
type Config struct {
	Symbol         string `json:"symbol"`
	DataFile       string `json:"data_file"`
	UnderlyingFile string `json:"underlying_file"`

	RiskFreeRate float64 `json:"risk_free_rate"`
	Volatility   float64 `json:"volatility"`

	HistogramBins int `json:"histogram_bins"`

	LogStats        bool   `json:"log_stats"`
	LogResults      bool   `json:"log_results"`
	ResultsFile     string `json:"results_file"`
	LogCloudResults bool   `json:"log_cloud_results"`

	DBHost      string `json:"db_host"`
	DBPort      int    `json:"db_port"`
	DBUser      string `json:"db_user"`
	DBPassword  string `json:"db_password"`
	DBName      string `json:"db_name"`
	CloudSecret string `json:"cloud_secret"`
}

// A Secret holds database credentials loaded from AWS secrets or a local file.
type Secret struct {
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Loads a config from a file.
func LoadConfig(fileName string) (config Config) {
	file, _ := os.ReadFile(fileName)
	_ = json.Unmarshal(file, &config)
	return
}

// DefaultConfig returns the constant-parameter setup used by the reference
// dataset: an annualized risk-free rate of 6.85% and a historical volatility
// of 14.50%.
func DefaultConfig() Config {
	return Config{
		RiskFreeRate:  0.0685,
		Volatility:    0.1450,
		HistogramBins: 50,
		ResultsFile:   "results.csv",
		DBHost:        "localhost",
		DBPort:        5432,
		DBName:        "pramana",
	}
}
