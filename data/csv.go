// Package data loads validated option quotes from CSV files and postgres.
// All parsing and cleaning lives here; the engine only ever sees quotes
// whose fields already hold finite numbers.
package data

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pramanalabs/pramana/logger"
	"github.com/pramanalabs/pramana/models"
)

// quoteRow is one raw CSV record before cleaning. Everything is read as a
// string so that one malformed cell drops one row instead of aborting the
// whole file. Option_Typut is a header typo present in the source dataset.
type quoteRow struct {
	Date        string `csv:"Date"`
	ExpiryDate  string `csv:"Expiry_Date"`
	SpotClose   string `csv:"Nifty_Close"`
	StrikePrice string `csv:"Strike_Price"`
	OptionType  string `csv:"Option_Type"`
	OptionTyput string `csv:"Option_Typut"`
	OptionClose string `csv:"Option_Close"`
}

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"02-Jan-2006",
}

// LoadQuotes reads an option-chain CSV and returns the rows that survive
// cleaning as validated quotes. The run's constant rate and volatility from
// cfg are stamped onto every quote; rows with unparseable dates or numbers
// are dropped and counted here, because downstream nothing is allowed to
// drop records silently.
func LoadQuotes(csvFile string, cfg models.Config) []*models.OptionQuote {
	dataFile, err := os.OpenFile(csvFile, os.O_RDONLY, os.ModePerm)
	if err != nil {
		panic(err)
	}
	defer dataFile.Close()

	gocsv.SetHeaderNormalizer(strings.TrimSpace)
	var rows []*quoteRow
	if err := gocsv.UnmarshalFile(dataFile, &rows); err != nil {
		panic(err)
	}

	quotes := make([]*models.OptionQuote, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		quote, ok := cleanRow(row, cfg)
		if !ok {
			dropped++
			continue
		}
		quotes = append(quotes, quote)
	}
	logger.Infof("Loaded %v quotes from %v (%v rows dropped in cleaning)\n", len(quotes), csvFile, dropped)
	return quotes
}

// cleanRow turns a raw CSV row into a validated quote. The kind value is
// normalized but deliberately not restricted to call/put here; an unknown
// kind is a per-record failure the engine must count, not a row the adapter
// may hide.
func cleanRow(row *quoteRow, cfg models.Config) (*models.OptionQuote, bool) {
	date, ok := parseDate(row.Date)
	if !ok {
		return nil, false
	}
	expiry, ok := parseDate(row.ExpiryDate)
	if !ok {
		return nil, false
	}
	spot, ok := parseNumber(row.SpotClose)
	if !ok || spot <= 0 {
		return nil, false
	}
	strike, ok := parseNumber(row.StrikePrice)
	if !ok || strike <= 0 {
		return nil, false
	}
	observed, ok := parseNumber(row.OptionClose)
	if !ok {
		return nil, false
	}

	kind := strings.ToLower(strings.TrimSpace(row.OptionType))
	if kind == "" {
		kind = strings.ToLower(strings.TrimSpace(row.OptionTyput))
	}
	if kind == "" {
		return nil, false
	}
	// NSE chains say CE/PE where the engine says call/put. Anything else is
	// passed through for the engine to count as an invalid kind.
	switch kind {
	case "ce", "call", "c":
		kind = string(models.Call)
	case "pe", "put", "p":
		kind = string(models.Put)
	}

	days := expiry.Sub(date).Hours() / 24
	return &models.OptionQuote{
		Symbol:        cfg.Symbol,
		Timestamp:     date.UnixMilli(),
		Expiry:        expiry.UnixMilli(),
		Spot:          spot,
		Strike:        strike,
		TimeToExpiry:  days / 365.0,
		Rate:          cfg.RiskFreeRate,
		Volatility:    cfg.Volatility,
		Kind:          models.OptionKind(kind),
		ObservedPrice: observed,
	}, true
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseNumber(value string) (float64, bool) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// LoadBars reads underlying closes from a CSV file, for historical
// volatility estimation.
func LoadBars(csvFile string) []*models.Bar {
	dataFile, err := os.OpenFile(csvFile, os.O_RDONLY, os.ModePerm)
	if err != nil {
		panic(err)
	}
	defer dataFile.Close()

	var bars []*models.Bar
	if err := gocsv.UnmarshalFile(dataFile, &bars); err != nil {
		panic(err)
	}
	return bars
}
