package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	"github.com/redis/go-redis/v9"
)

const employeeKeyPrefix = "employees:"

// RedisEmployeeCache stores each manager's employee list as one JSON value.
// Redis failures are logged and treated as misses.
type RedisEmployeeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEmployeeCache(client *redis.Client, ttl time.Duration) employee.EmployeeCache {
	return &RedisEmployeeCache{client: client, ttl: ttl}
}

type cachedEmployee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	UserID       *string   `json:"user_id,omitempty"`
	ManagerName  string    `json:"manager_name"`
	ManagerEmail string    `json:"manager_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// Get implements employee.EmployeeCache.
func (c *RedisEmployeeCache) Get(ctx context.Context, managerEmail string) ([]employee.Employee, bool) {
	if c.client == nil || c.ttl <= 0 {
		return nil, false
	}
	val, err := c.client.Get(ctx, employeeKeyPrefix+managerEmail).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("employee cache read failed", "error", err)
		}
		return nil, false
	}

	var cached []cachedEmployee
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		slog.Warn("employee cache decode failed", "error", err)
		return nil, false
	}

	out := make([]employee.Employee, 0, len(cached))
	for _, e := range cached {
		out = append(out, employee.Employee{
			ID:           e.ID,
			Name:         e.Name,
			UserID:       e.UserID,
			ManagerName:  e.ManagerName,
			ManagerEmail: e.ManagerEmail,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out, true
}

// Set implements employee.EmployeeCache.
func (c *RedisEmployeeCache) Set(ctx context.Context, managerEmail string, employees []employee.Employee) {
	if c.client == nil || c.ttl <= 0 {
		return
	}
	cached := make([]cachedEmployee, 0, len(employees))
	for _, e := range employees {
		cached = append(cached, cachedEmployee{
			ID:           e.ID,
			Name:         e.Name,
			UserID:       e.UserID,
			ManagerName:  e.ManagerName,
			ManagerEmail: e.ManagerEmail,
			CreatedAt:    e.CreatedAt,
		})
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, employeeKeyPrefix+managerEmail, data, c.ttl).Err(); err != nil {
		slog.Warn("employee cache write failed", "error", err)
	}
}

// Invalidate implements employee.EmployeeCache.
func (c *RedisEmployeeCache) Invalidate(ctx context.Context, managerEmail string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, employeeKeyPrefix+managerEmail).Err(); err != nil {
		slog.Warn("employee cache invalidate failed", "error", err)
	}
}
