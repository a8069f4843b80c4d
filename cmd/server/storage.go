package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-campaign-api/internal/config"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-campaign-api/internal/redis"
	combatsessions "github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions"
)

// storage is the session repository selected by config plus the Redis
// client when one was opened
type storage struct {
	repo   combatsessions.Repository
	redis  redisclient.Client
	closer io.Closer
}

func (s *storage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		slog.Warn("using in-memory storage, sessions are lost on restart")
		return &storage{repo: combatsessions.NewInMemory()}, nil

	case config.StorageRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
		}
		slog.Info("using redis storage", "addr", cfg.RedisAddr)
		return &storage{
			repo:   combatsessions.NewRedisRepository(client),
			redis:  client,
			closer: client,
		}, nil

	case config.StorageSQLite:
		repo, err := combatsessions.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		slog.Info("using sqlite storage", "path", cfg.SQLitePath)
		return &storage{repo: repo, closer: repo}, nil

	default:
		return nil, errors.InvalidArgumentf("unknown storage %q", cfg.Storage)
	}
}
