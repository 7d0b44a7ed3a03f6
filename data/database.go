package data

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/pramanalabs/pramana/models"
)

func connect(cfg models.Config) *sqlx.DB {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := sqlx.Connect("postgres", psqlInfo)
	if err != nil {
		log.Fatal(err)
	}
	return db
}

// GetQuotes fetches validated option quotes for a symbol between two
// timestamps from the option_quotes table. The constant rate and volatility
// from cfg are stamped onto every quote so a database run prices with the
// same inputs as a CSV run.
func GetQuotes(cfg models.Config, symbol string, startTimestamp time.Time, endTimestamp time.Time) []*models.OptionQuote {
	db := connect(cfg)
	defer db.Close()

	quotes := []*models.OptionQuote{}
	cmd := fmt.Sprintf("select symbol, timestamp, expiry, spot, strike, timetoexpiry, kind, observedprice from option_quotes where symbol = '%s' and timestamp >= '%d' and timestamp <= '%d';",
		symbol, startTimestamp.Unix()*1000, endTimestamp.Unix()*1000)
	err := db.Select(&quotes, cmd)
	if err != nil {
		log.Fatal(err)
	}

	if len(quotes) == 0 {
		log.Fatal("There doesn't seem to be any data for ", symbol, " in the database. Maybe it was your start and end dates?")
	}

	for _, quote := range quotes {
		quote.Rate = cfg.RiskFreeRate
		quote.Volatility = cfg.Volatility
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Timestamp < quotes[j].Timestamp })
	return quotes
}

// GetBars fetches underlying closes for a symbol from the bars table, oldest
// first, for historical volatility estimation.
func GetBars(cfg models.Config, symbol string, numBars int) []*models.Bar {
	db := connect(cfg)
	defer db.Close()

	bars := []*models.Bar{}
	cmd := fmt.Sprintf("select timestamp, close from bars where symbol = '%s' order by timestamp desc limit %d;", symbol, numBars)
	err := db.Select(&bars, cmd)
	if err != nil {
		log.Fatal(err)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Timestamp < bars[j].Timestamp })
	return bars
}
