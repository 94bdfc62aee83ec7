package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gameportal/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.Namespace = "test"

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSetAndGet() {
	err := s.storage.Set(s.ctx, storage.KeyAccounts, `[{"id":"1"}]`)
	s.Require().NoError(err)

	v, err := s.storage.Get(s.ctx, storage.KeyAccounts)
	s.Require().NoError(err)
	s.Equal(`[{"id":"1"}]`, v)
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestRemove() {
	_ = s.storage.Set(s.ctx, storage.KeyCurrentSession, `{"id":"1"}`)

	err := s.storage.Remove(s.ctx, storage.KeyCurrentSession)
	s.Require().NoError(err)

	_, err = s.storage.Get(s.ctx, storage.KeyCurrentSession)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestRemoveMissingKeyIsNoop() {
	s.NoError(s.storage.Remove(s.ctx, "nonexistent"))
}

func (s *StorageSuite) TestKeysAreNamespaced() {
	_ = s.storage.Set(s.ctx, storage.KeyHistory, "[]")

	s.True(s.mini.Exists("gameportal:test:gamePortalHistory"))
	s.False(s.mini.Exists(storage.KeyHistory))
}

func (s *StorageSuite) TestNamespacesAreIsolated() {
	other := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), Config{Namespace: "other"})
	defer func() { _ = other.Close() }()

	_ = s.storage.Set(s.ctx, storage.KeyHistory, "[1]")

	_, err := other.Get(s.ctx, storage.KeyHistory)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestRecordsHaveNoTTL() {
	_ = s.storage.Set(s.ctx, storage.KeyAccounts, "[]")

	ttl := s.mini.TTL(recordKey("test", storage.KeyAccounts))
	s.Equal(time.Duration(0), ttl, "records should not expire")
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	_, err := New(Config{URL: "not-a-url"})
	s.Error(err)
}

func (s *StorageSuite) TestNewConnects() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()

	st, err := New(cfg)
	s.Require().NoError(err)
	defer func() { _ = st.Close() }()

	s.Require().NoError(st.Set(s.ctx, "k", "v"))
	v, err := st.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("v", v)
}
