package tickerindex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// catalogKey is the Redis hash holding the ticker catalog, field = ticker,
// value = company name.
const catalogKey = "tickers:catalog"

// Store loads the ticker catalog from Redis. An empty hash is seeded from
// the built-in catalog, so a fresh Redis serves the same entries a seedless
// deployment would.
type Store struct {
	client *redis.Client
	logger *slog.Logger
}

// NewStore connects to Redis and verifies the connection with a ping.
func NewStore(redisURL string, redisPassword string, logger *slog.Logger) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if redisPassword != "" {
		opt.Password = redisPassword
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Store{
		client: client,
		logger: logger.With("component", "ticker_store"),
	}, nil
}

// Load returns the catalog sorted by ticker, seeding Redis first when the
// hash is empty. Sorting keeps index construction deterministic across
// restarts regardless of hash iteration order.
func (s *Store) Load(ctx context.Context, seed []Entry) ([]Entry, error) {
	start := time.Now()
	fields, err := s.client.HGetAll(ctx, catalogKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis HGETALL failed: %w", err)
	}

	if len(fields) == 0 {
		if err := s.Seed(ctx, seed); err != nil {
			return nil, err
		}
		s.logger.Info("catalog_seeded", "entries", len(seed))
		entries := make([]Entry, len(seed))
		copy(entries, seed)
		sortEntries(entries)
		return entries, nil
	}

	entries := make([]Entry, 0, len(fields))
	for ticker, name := range fields {
		entries = append(entries, Entry{Ticker: ticker, Name: name})
	}
	sortEntries(entries)

	s.logger.Debug("catalog_loaded",
		"entries", len(entries),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return entries, nil
}

// Seed writes entries into the catalog hash.
func (s *Store) Seed(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("empty seed catalog")
	}
	pairs := make([]any, 0, len(entries)*2)
	for _, e := range entries {
		pairs = append(pairs, e.Ticker, e.Name)
	}
	if err := s.client.HSet(ctx, catalogKey, pairs...).Err(); err != nil {
		return fmt.Errorf("redis HSET failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Ticker < entries[j].Ticker
	})
}
