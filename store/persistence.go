package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Persistence is the key-value medium the store mirrors its state into. Every
// slice lives under one key; values are JSON except the site notice, which is
// stored raw. Subscribe reports keys written by other processes sharing the
// same medium so the store can reload — best-effort, last-writer-wins.
type Persistence interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Subscribe(ctx context.Context, fn func(key string))
	Close() error
}

const syncChannel = "roy_sync"

// RedisPersistence mirrors store state into Redis. Each Set also publishes
// "<instanceID> <key>" on the sync channel; subscribers drop their own
// messages so only foreign writes trigger a reload.
type RedisPersistence struct {
	client     *redis.Client
	instanceID string
}

func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func NewRedisPersistence(client *redis.Client) *RedisPersistence {
	return &RedisPersistence{client: client, instanceID: uuid.NewString()}
}

func (p *RedisPersistence) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := p.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return val, true, nil
}

func (p *RedisPersistence) Set(ctx context.Context, key, value string) error {
	if err := p.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	// Fire-and-forget: a lost sync message only delays another instance's
	// reload until the next write.
	p.client.Publish(ctx, syncChannel, p.instanceID+" "+key)
	return nil
}

func (p *RedisPersistence) Delete(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}
	p.client.Publish(ctx, syncChannel, p.instanceID+" "+key)
	return nil
}

func (p *RedisPersistence) Subscribe(ctx context.Context, fn func(key string)) {
	sub := p.client.Subscribe(ctx, syncChannel)
	go func() {
		defer sub.Close()
		for msg := range sub.Channel() {
			origin, key, ok := strings.Cut(msg.Payload, " ")
			if !ok || origin == p.instanceID {
				continue
			}
			fn(key)
		}
	}()
}

func (p *RedisPersistence) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// MemoryPersistence keeps everything in-process. Used by tests and when the
// server runs without a REDIS_ADDR; there is no cross-process sync to observe,
// so Subscribe only wires the callback for ExternalWrite.
type MemoryPersistence struct {
	mu   sync.Mutex
	data map[string]string
	fn   func(key string)
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{data: make(map[string]string)}
}

func (p *MemoryPersistence) Get(_ context.Context, key string) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	val, ok := p.data[key]
	return val, ok, nil
}

func (p *MemoryPersistence) Set(_ context.Context, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[key] = value
	return nil
}

func (p *MemoryPersistence) Delete(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.data, key)
	return nil
}

func (p *MemoryPersistence) Subscribe(_ context.Context, fn func(key string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fn = fn
}

// ExternalWrite simulates another process writing to the shared medium.
func (p *MemoryPersistence) ExternalWrite(key, value string) {
	p.mu.Lock()
	p.data[key] = value
	fn := p.fn
	p.mu.Unlock()
	if fn != nil {
		fn(key)
	}
}

func (p *MemoryPersistence) Close() error { return nil }
