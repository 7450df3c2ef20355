// Package cachetest provides a cache.Client served from memory for tests.
package cachetest

import (
	"context"
	"fmt"
	"net"
	"sort"
	"sync"

	"github.com/redis/go-redis/v9"

	"learnhub/internal/cache"
)

// Store answers GET, SET and DEL in memory. Commands never reach the network.
type Store struct {
	mu   sync.Mutex
	data map[string]string
}

// New returns a cache client backed by a fresh Store.
func New() (*cache.Client, *Store) {
	s := &Store{data: map[string]string{}}
	rdb := redis.NewClient(&redis.Options{Addr: "memory:0"})
	rdb.AddHook(s)
	return cache.Wrap(rdb), s
}

// Keys returns the stored keys in order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) DialHook(next redis.DialHook) redis.DialHook {
	return func(context.Context, string, string) (net.Conn, error) {
		return nil, fmt.Errorf("cachetest: no network")
	}
}

func (s *Store) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (s *Store) ProcessHook(redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		args := cmd.Args()
		switch c := cmd.(type) {
		case *redis.StringCmd:
			v, ok := s.data[str(args[1])]
			if !ok {
				c.SetErr(redis.Nil)
				return redis.Nil
			}
			c.SetVal(v)
		case *redis.StatusCmd:
			if cmd.Name() == "set" {
				s.data[str(args[1])] = str(args[2])
			}
			c.SetVal("OK")
		case *redis.IntCmd:
			var n int64
			for _, k := range args[1:] {
				if _, ok := s.data[str(k)]; ok {
					delete(s.data, str(k))
					n++
				}
			}
			c.SetVal(n)
		default:
			err := fmt.Errorf("cachetest: unsupported command %s", cmd.Name())
			cmd.SetErr(err)
			return err
		}
		return nil
	}
}

func str(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
