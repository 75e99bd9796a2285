// Package redis provides the Redis-backed token store for production use.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/ports"
)

// Hash field names, one per session field. The record is written with a
// single HSET so readers never observe a partially updated session.
const (
	fieldAccessToken  = "access_token"
	fieldRefreshToken = "refresh_token"
	fieldExpiresAt    = "expires_at"
	fieldOrgID        = "org_id"
	fieldUserID       = "user_id"
)

// TokenStore is a Redis-backed ports.TokenStore. Each browser session is
// one hash under prefix+sid with a retention TTL that outlives the access
// token, so the refresh token remains available after expiry.
type TokenStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewTokenStore creates a Redis token store with the default key prefix.
func NewTokenStore(client redis.UniversalClient, ttl time.Duration) *TokenStore {
	return NewTokenStoreWithPrefix(client, "token:", ttl)
}

// NewTokenStoreWithPrefix creates a Redis token store with a custom key prefix.
func NewTokenStoreWithPrefix(client redis.UniversalClient, prefix string, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, prefix: prefix, ttl: ttl}
}

var _ ports.TokenStore = (*TokenStore)(nil)

func (s *TokenStore) Save(ctx context.Context, sid string, sess domainauth.Session) error {
	if sid == "" {
		return errors.New("session id cannot be empty")
	}

	key := s.prefix + sid
	fields := map[string]any{
		fieldAccessToken:  sess.AccessToken,
		fieldRefreshToken: sess.RefreshToken,
		fieldExpiresAt:    strconv.FormatInt(sess.ExpiresAt, 10),
		fieldOrgID:        sess.OrgID,
		fieldUserID:       sess.UserID,
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

func (s *TokenStore) Get(ctx context.Context, sid string) (domainauth.Session, error) {
	if sid == "" {
		return domainauth.Session{}, ports.ErrNoSession
	}

	fields, err := s.client.HGetAll(ctx, s.prefix+sid).Result()
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("redis get session: %w", err)
	}
	if len(fields) == 0 {
		// HGETALL returns an empty map for missing keys, not redis.Nil.
		return domainauth.Session{}, ports.ErrNoSession
	}

	expiresAt, err := strconv.ParseInt(fields[fieldExpiresAt], 10, 64)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("parse session expiry: %w", err)
	}

	return domainauth.Session{
		AccessToken:  fields[fieldAccessToken],
		RefreshToken: fields[fieldRefreshToken],
		ExpiresAt:    expiresAt,
		OrgID:        fields[fieldOrgID],
		UserID:       fields[fieldUserID],
	}, nil
}

func (s *TokenStore) Clear(ctx context.Context, sid string) error {
	if sid == "" {
		return nil // Nothing to clear
	}
	return s.client.Del(ctx, s.prefix+sid).Err()
}
