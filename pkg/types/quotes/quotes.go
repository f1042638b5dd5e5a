package quotes

import (
	"bytes"
	"context"
	"encoding/json"
)

//go:generate mockgen -package=mocks -destination=mocks/quotes.go -source=quotes.go Fetcher,Renderer

const (
	TitlePrice      = "The price is"
	TitleChange24h  = "24 Hour Change"
	TitleHighDay    = "Highest Price of the Day"
	TitleLowDay     = "Lowest Price of the Day"
	TitleLastUpdate = "Last Update"
)

// CatalogEntry is one selectable cryptocurrency.
type CatalogEntry struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"display_name"`
}

// DisplayValue holds a display field exactly as the API sent it. JSON strings
// are unquoted, any other JSON value keeps its literal text.
type DisplayValue string

func (v *DisplayValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = DisplayValue(s)
		return nil
	}
	*v = DisplayValue(data)
	return nil
}

func (v DisplayValue) String() string {
	return string(v)
}

// Snapshot is the display-ready quote for one pair.
type Snapshot struct {
	Price      DisplayValue `json:"PRICE"`
	Change24h  DisplayValue `json:"CHANGE24HOUR"`
	HighDay    DisplayValue `json:"HIGHDAY"`
	LowDay     DisplayValue `json:"LOWDAY"`
	LastUpdate DisplayValue `json:"LASTUPDATE"`
}

type Card struct {
	Title string `json:"title"`
	Data  string `json:"data"`
}

// Cards returns the five summary cards in display order.
func (s Snapshot) Cards() []Card {
	return []Card{
		{Title: TitlePrice, Data: s.Price.String()},
		{Title: TitleChange24h, Data: s.Change24h.String()},
		{Title: TitleHighDay, Data: s.HighDay.String()},
		{Title: TitleLowDay, Data: s.LowDay.String()},
		{Title: TitleLastUpdate, Data: s.LastUpdate.String()},
	}
}

type Fetcher interface {
	FetchCatalog(ctx context.Context, limit int, referenceCurrency string) ([]CatalogEntry, error)
	FetchQuote(ctx context.Context, cryptocurrency, currency string) (Snapshot, error)
}

// Renderer is the output side of the widget. Implementations must be safe for
// concurrent use.
type Renderer interface {
	RenderCatalog(entries []CatalogEntry)
	ShowLoader()
	RenderQuote(snapshot Snapshot)
	ShowNotice(message string)
	HideNotice()
}

var (
	SampleCatalog = []CatalogEntry{
		{Symbol: "BTC", DisplayName: "Bitcoin"},
		{Symbol: "ETH", DisplayName: "Ethereum"},
	}
	SampleSnapshot = Snapshot{
		Price:      "$ 50,000.12",
		Change24h:  "$ 1,204.55",
		HighDay:    "$ 50,990.00",
		LowDay:     "$ 48,100.40",
		LastUpdate: "Just now",
	}
)
