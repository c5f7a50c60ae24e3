package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// lockTTL bounds how long a crashed commit can hold the lock.
const lockTTL = 30 * time.Second

// RosterLockService serializes roster commits per period. Two
// concurrent saves for the same period must not interleave their
// delete-then-insert, so the commit path takes this lock first.
type RosterLockService struct {
	redisClient *redis.Client
}

func NewRosterLockService(redisClient *redis.Client) *RosterLockService {
	return &RosterLockService{redisClient: redisClient}
}

// Acquire takes the per-period lock. It returns false when another
// commit currently holds it.
func (s *RosterLockService) Acquire(ctx context.Context, periodID uuid.UUID) (bool, error) {
	return s.redisClient.SetNX(ctx, s.key(periodID), "locked", lockTTL).Result()
}

// Release frees the lock. Safe to call after a failed commit.
func (s *RosterLockService) Release(ctx context.Context, periodID uuid.UUID) error {
	return s.redisClient.Del(ctx, s.key(periodID)).Err()
}

func (s *RosterLockService) key(periodID uuid.UUID) string {
	return fmt.Sprintf("roster_commit_lock:%s", periodID.String())
}
