package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"loan-auditor/domain"
)

const defaultAuditKey = "loan-auditor:decisions"

// RedisAuditLog keeps the decision log in a Redis list so it survives a
// process restart. RPUSH preserves append order; reads LRANGE the whole
// list back.
type RedisAuditLog struct {
	client *redis.Client
	key    string
	ctx    context.Context
}

// NewRedisAuditLog connects to the given Redis address and stores
// decisions under the default audit key.
func NewRedisAuditLog(addr string) *RedisAuditLog {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisAuditLog{
		client: rdb,
		key:    defaultAuditKey,
		ctx:    context.Background(),
	}
}

// Append serializes the decision and pushes it onto the tail of the list.
func (l *RedisAuditLog) Append(decision domain.LoanDecision) error {
	payload, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("marshal decision %s: %w", decision.ID, err)
	}
	if err := l.client.RPush(l.ctx, l.key, payload).Err(); err != nil {
		return fmt.Errorf("append decision %s: %w", decision.ID, err)
	}
	return nil
}

// Decisions reads the full log back in insertion order.
func (l *RedisAuditLog) Decisions() ([]domain.LoanDecision, error) {
	raw, err := l.client.LRange(l.ctx, l.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}

	decisions := make([]domain.LoanDecision, 0, len(raw))
	for _, item := range raw {
		var d domain.LoanDecision
		if err := json.Unmarshal([]byte(item), &d); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		decisions = append(decisions, d)
	}
	return decisions, nil
}
