package sessions

import (
	"carelink-web/internal/app/contracts"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type redisSessionStore struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewRedisSessionStore(redisRepository contracts.RedisRepository, ttl time.Duration) SessionStore {
	return &redisSessionStore{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func sessionKey(sessionID string) string {
	return constvars.SessionKeyPrefix + sessionID
}

func (s *redisSessionStore) Load(ctx context.Context, sessionID string) (State, error) {
	var state State

	data, err := s.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return state, exceptions.ErrRedisLoadSession(err)
	}
	if data == "" {
		return state, nil
	}

	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return State{}, exceptions.ErrParseSessionData(err)
	}
	return state, nil
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID string, state State) error {
	err := s.RedisRepository.Set(ctx, sessionKey(sessionID), state, s.TTL)
	if err != nil {
		return exceptions.ErrRedisStoreSession(err)
	}
	return nil
}

func (s *redisSessionStore) Purge(ctx context.Context, sessionID string) error {
	err := s.RedisRepository.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		return exceptions.ErrRedisPurgeSession(err)
	}
	return nil
}

func (s *redisSessionStore) DropToken(ctx context.Context, sessionID string) error {
	state, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if !state.Authenticated() {
		return nil
	}
	state.Token = ""
	return s.Save(ctx, sessionID, state)
}
