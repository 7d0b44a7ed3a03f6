package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pramanalabs/pramana/models"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func setupConfig() models.Config {
	cfg := models.DefaultConfig()
	cfg.Symbol = "NIFTY"
	return cfg
}

func TestLoadQuotes(t *testing.T) {
	csv := "Date,Expiry_Date,Nifty_Close,Strike_Price,Option_Type,Option_Close\n" +
		"2022-01-03,2022-01-27,17625.70,17600,CE,245.35\n" +
		"2022-01-03,2022-01-27,17625.70,17600,PE,180.10\n" +
		"2022-01-03,2022-01-27,17625.70,17800,CE,0\n"
	quotes := LoadQuotes(writeTempCSV(t, csv), setupConfig())

	if len(quotes) != 3 {
		t.Fatalf("loaded %v quotes, want 3", len(quotes))
	}
	q := quotes[0]
	if q.Symbol != "NIFTY" {
		t.Errorf("symbol = %q, want NIFTY from the config", q.Symbol)
	}
	if q.Spot != 17625.70 || q.Strike != 17600 {
		t.Errorf("spot/strike = %v/%v", q.Spot, q.Strike)
	}
	if q.Kind != models.Call {
		t.Errorf("kind = %q, want CE normalized to call", q.Kind)
	}
	// 24 calendar days to expiry.
	want := 24.0 / 365
	if q.TimeToExpiry != want {
		t.Errorf("time to expiry = %v, want %v", q.TimeToExpiry, want)
	}
	if q.Rate != 0.0685 || q.Volatility != 0.1450 {
		t.Errorf("rate/vol = %v/%v, want the config constants stamped on", q.Rate, q.Volatility)
	}
	if quotes[2].ObservedPrice != 0 {
		t.Error("a zero observed price is a valid quote and must survive cleaning")
	}
}

func TestLoadQuotesHeaderTypo(t *testing.T) {
	// The source dataset ships with Option_Typut instead of Option_Type.
	csv := "Date,Expiry_Date,Nifty_Close,Strike_Price,Option_Typut,Option_Close\n" +
		"2022-01-03,2022-01-27,17625.70,17600,PE,180.10\n"
	quotes := LoadQuotes(writeTempCSV(t, csv), setupConfig())

	if len(quotes) != 1 {
		t.Fatalf("loaded %v quotes, want 1", len(quotes))
	}
	if quotes[0].Kind != models.Put {
		t.Errorf("kind = %q, want PE normalized to put via the typo header", quotes[0].Kind)
	}
}

func TestLoadQuotesDropsUnparseableRows(t *testing.T) {
	csv := "Date,Expiry_Date,Nifty_Close,Strike_Price,Option_Type,Option_Close\n" +
		"2022-01-03,2022-01-27,17625.70,17600,CE,245.35\n" +
		"not-a-date,2022-01-27,17625.70,17600,CE,245.35\n" +
		"2022-01-03,2022-01-27,,17600,CE,245.35\n" +
		"2022-01-03,2022-01-27,17625.70,oops,CE,245.35\n" +
		"2022-01-03,2022-01-27,17625.70,17600,,245.35\n" +
		"2022-01-03,2022-01-27,-1,17600,CE,245.35\n"
	quotes := LoadQuotes(writeTempCSV(t, csv), setupConfig())

	if len(quotes) != 1 {
		t.Errorf("loaded %v quotes, want only the clean row to survive", len(quotes))
	}
}

func TestLoadQuotesKeepsUnknownKinds(t *testing.T) {
	// An unknown but present kind is the engine's failure to count, not the
	// adapter's row to hide.
	csv := "Date,Expiry_Date,Nifty_Close,Strike_Price,Option_Type,Option_Close\n" +
		"2022-01-03,2022-01-27,17625.70,17600,XX,245.35\n"
	quotes := LoadQuotes(writeTempCSV(t, csv), setupConfig())

	if len(quotes) != 1 {
		t.Fatalf("loaded %v quotes, want 1", len(quotes))
	}
	if quotes[0].Kind != models.OptionKind("xx") {
		t.Errorf("kind = %q, want the unknown value passed through", quotes[0].Kind)
	}
}

func TestLoadBars(t *testing.T) {
	csv := "timestamp,close\n" +
		"1641168000000,17625.70\n" +
		"1641254400000,17805.25\n"
	path := filepath.Join(t.TempDir(), "underlying.csv")
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	bars := LoadBars(path)
	if len(bars) != 2 {
		t.Fatalf("loaded %v bars, want 2", len(bars))
	}
	if bars[1].Close != 17805.25 {
		t.Errorf("close = %v, want 17805.25", bars[1].Close)
	}
}
