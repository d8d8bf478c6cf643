package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/ib-77/results/internal/tenant"
)

// Connect initializes a Redis client from URL or host:port input.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// Store keeps each user in a hash and indexes ids by address in sets.
type Store struct {
	client redis.UniversalClient
}

func NewStore(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

func userKey(id int) string { return "tenant:user:" + strconv.Itoa(id) }

func addressKey(zip, nr string) string { return "tenant:address:" + zip + ":" + nr }

func (s *Store) User(ctx context.Context, id int) (string, bool, error) {
	name, err := s.client.HGet(ctx, userKey(id), "name").Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (s *Store) SetUser(ctx context.Context, id int, name string) (bool, error) {
	key := userKey(id)
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if err := s.client.HSet(ctx, key, "name", name).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) UsersAtAddress(ctx context.Context, zip, nr string) ([]int, error) {
	members, err := s.client.SMembers(ctx, addressKey(zip, nr)).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, convErr := strconv.Atoi(m)
		if convErr != nil {
			return nil, fmt.Errorf("address index holds %q: %w", m, convErr)
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *Store) Seed(ctx context.Context, users []tenant.User) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, u := range users {
			p.HSetNX(ctx, userKey(u.ID), "name", u.Name)
			p.HSetNX(ctx, userKey(u.ID), "zip", u.Zip)
			p.HSetNX(ctx, userKey(u.ID), "house_nr", u.HouseNr)
			p.SAdd(ctx, addressKey(u.Zip, u.HouseNr), u.ID)
		}
		return nil
	})
	return err
}
