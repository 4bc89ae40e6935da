package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/laqshya/sports-facility-booking/internal/model"
)

const (
	sessionKeyPrefix = "session:"
	imageKeyPrefix   = "profile_image:"
)

// SessionRepo persists the current session and the per-account profile
// image blobs in the key-value store.  A session entry is the
// serialized account under a fixed per-account key; absence means
// logged out.
//
// When no Redis client is available (nil), the repo degrades to an
// in-process map, losing only restart survival.
type SessionRepo struct {
	rdb *redis.Client
	ttl time.Duration

	mu  sync.RWMutex
	mem map[string]string
}

// NewSessionRepo wraps the given client.  rdb may be nil.
func NewSessionRepo(rdb *redis.Client, ttl time.Duration) *SessionRepo {
	return &SessionRepo{rdb: rdb, ttl: ttl, mem: make(map[string]string)}
}

func (r *SessionRepo) set(ctx context.Context, key, val string, ttl time.Duration) error {
	if r.rdb != nil {
		return r.rdb.Set(ctx, key, val, ttl).Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mem[key] = val
	return nil
}

func (r *SessionRepo) get(ctx context.Context, key string) (string, bool, error) {
	if r.rdb != nil {
		v, err := r.rdb.Get(ctx, key).Result()
		if err == redis.Nil {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		return v, true, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.mem[key]
	return v, ok, nil
}

func (r *SessionRepo) del(ctx context.Context, key string) error {
	if r.rdb != nil {
		return r.rdb.Del(ctx, key).Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.mem, key)
	return nil
}

// Store records acc as the current session for its account id.
func (r *SessionRepo) Store(ctx context.Context, acc model.Account) error {
	body, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	return r.set(ctx, sessionKeyPrefix+acc.ID, string(body), r.ttl)
}

// Current returns the session account for accountID.  The boolean is
// false when no session exists.
func (r *SessionRepo) Current(ctx context.Context, accountID string) (model.Account, bool, error) {
	v, ok, err := r.get(ctx, sessionKeyPrefix+accountID)
	if err != nil || !ok {
		return model.Account{}, false, err
	}
	var acc model.Account
	if err := json.Unmarshal([]byte(v), &acc); err != nil {
		return model.Account{}, false, err
	}
	return acc, true, nil
}

// Clear removes the session for accountID.
func (r *SessionRepo) Clear(ctx context.Context, accountID string) error {
	return r.del(ctx, sessionKeyPrefix+accountID)
}

// StoreProfileImage saves a data-URI image blob for the account.
func (r *SessionRepo) StoreProfileImage(ctx context.Context, accountID, dataURI string) error {
	if dataURI == "" {
		return ErrValidation
	}
	// Image blobs never expire; absence falls back to a placeholder.
	return r.set(ctx, imageKeyPrefix+accountID, dataURI, 0)
}

// ProfileImage returns the stored image blob, or false when the caller
// should fall back to a placeholder.
func (r *SessionRepo) ProfileImage(ctx context.Context, accountID string) (string, bool, error) {
	return r.get(ctx, imageKeyPrefix+accountID)
}
