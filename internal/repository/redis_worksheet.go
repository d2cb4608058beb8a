package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/redis/go-redis/v9"
)

const worksheetKeyPrefix = "bossboard:worksheet:"

// redisSheet is the JSON document stored under a worksheet key.
type redisSheet struct {
	Header    []string   `json:"header"`
	Rows      [][]string `json:"rows"`
	UpdatedAt string     `json:"updated_at"`
}

// RedisWorkbook keeps each worksheet as one JSON value, so a write is a
// single SET and replaces the worksheet atomically.
type RedisWorkbook struct {
	client *redis.Client
}

// NewRedisWorkbook checks the connection before returning.
func NewRedisWorkbook(ctx context.Context, client *redis.Client) (*RedisWorkbook, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisWorkbook{client: client}, nil
}

func (w *RedisWorkbook) Read(ctx context.Context, name string) (*domain.Sheet, error) {
	data, err := w.client.Get(ctx, worksheetKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, worksheetNotFound(name)
		}
		return nil, fmt.Errorf("failed to get worksheet %q: %w", name, err)
	}

	var doc redisSheet
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal worksheet %q: %w", name, err)
	}
	return &domain.Sheet{Header: doc.Header, Rows: doc.Rows}, nil
}

func (w *RedisWorkbook) Write(ctx context.Context, name string, sheet *domain.Sheet) error {
	if err := validateWrite(name, sheet); err != nil {
		return err
	}
	data, err := json.Marshal(redisSheet{Header: sheet.Header, Rows: sheet.Rows, UpdatedAt: nowUTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal worksheet %q: %w", name, err)
	}
	if err := w.client.Set(ctx, worksheetKeyPrefix+name, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save worksheet %q: %w", name, err)
	}
	return nil
}

// Close closes the Redis client.
func (w *RedisWorkbook) Close() error {
	return w.client.Close()
}
