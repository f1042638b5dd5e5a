package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"cryptoquote/pkg/utils"
)

// Queries a running cryptoquote server for every catalog entry in a few
// currencies and prints the price of each pair.

var currencies = []string{"USD", "EUR", "GBP"}

type CatalogEntry struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"display_name"`
}

type Catalog struct {
	ReferenceCurrency string         `json:"reference_currency"`
	Entries           []CatalogEntry `json:"entries"`
}

type Quote struct {
	Cryptocurrency string `json:"cryptocurrency"`
	Currency       string `json:"currency"`
	Snapshot       struct {
		Price     string `json:"PRICE"`
		Change24h string `json:"CHANGE24HOUR"`
	} `json:"snapshot"`
}

func main() {
	utils.LoadEnv()
	baseURL := utils.GetEnv("CRYPTOQUOTE_API", "http://localhost:8080/api")

	var catalog Catalog
	if err := getJSON(baseURL+"/catalog?limit=5", &catalog); err != nil {
		log.Fatalf("Failed to fetch catalog: %v", err)
	}
	fmt.Printf("Top %d by market cap (%s)\n", len(catalog.Entries), catalog.ReferenceCurrency)

	for _, e := range catalog.Entries {
		for _, cur := range currencies {
			q := url.Values{"fsym": {e.Symbol}, "tsym": {cur}}
			var quote Quote
			if err := getJSON(baseURL+"/quote?"+q.Encode(), &quote); err != nil {
				fmt.Printf("%-6s %-4s error: %v\n", e.Symbol, cur, err)
				continue
			}
			fmt.Printf("%-6s %-4s %-18s %s\n", e.Symbol, cur, quote.Snapshot.Price, quote.Snapshot.Change24h)
		}
	}
}

func getJSON(target string, out any) error {
	resp, err := http.Get(target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
