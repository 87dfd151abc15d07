package tickerindex

import (
	"errors"
	"fmt"
	"log/slog"
)

// Entry is one catalog row: a ticker and the company name it trades under.
type Entry struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// Match is the nearest catalog entry to a query. Distance is cosine
// distance: 0 for an exact embedding match, growing toward 1 as the texts
// share fewer trigrams.
type Match struct {
	Ticker   string  `json:"ticker"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

// Index answers nearest-name queries over an in-memory embedded catalog.
// Entries are embedded once at construction; lookups are read-only full
// scans, safe for concurrent use.
type Index struct {
	entries []Entry
	vectors [][]float64
	logger  *slog.Logger
}

// NewIndex embeds every entry's "TICKER Name" text and builds the index.
func NewIndex(entries []Entry, logger *slog.Logger) (*Index, error) {
	if len(entries) == 0 {
		return nil, errors.New("ticker index needs at least one entry")
	}
	vectors := make([][]float64, len(entries))
	for i, e := range entries {
		if e.Ticker == "" {
			return nil, fmt.Errorf("catalog entry %d has no ticker", i)
		}
		vectors[i] = Embed(e.Ticker + " " + e.Name)
	}
	return &Index{
		entries: entries,
		vectors: vectors,
		logger:  logger.With("component", "ticker_index"),
	}, nil
}

// Len reports the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Nearest returns the single catalog entry whose embedded text is closest
// to the query. Queries that embed to nothing (empty or all whitespace) are
// an error.
func (ix *Index) Nearest(text string) (Match, error) {
	query := Embed(text)
	if isZero(query) {
		return Match{}, fmt.Errorf("cannot search for %q: no indexable text", text)
	}
	best := 0
	bestScore := -1.0
	for i, vec := range ix.vectors {
		if score := dot(query, vec); score > bestScore {
			bestScore = score
			best = i
		}
	}
	entry := ix.entries[best]
	ix.logger.Debug("ticker_search",
		"query", text,
		"ticker", entry.Ticker,
		"distance", 1-bestScore,
	)
	return Match{
		Ticker:   entry.Ticker,
		Name:     entry.Name,
		Distance: 1 - bestScore,
	}, nil
}
