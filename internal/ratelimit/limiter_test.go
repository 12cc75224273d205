package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter()
	l.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, "apply:job:user", 3, time.Minute), "attempt %d", i+1)
	}
	assert.False(t, l.Allow(ctx, "apply:job:user", 3, time.Minute))
	assert.True(t, l.Allow(ctx, "apply:job:other", 3, time.Minute), "keys are independent")

	current = current.Add(20 * time.Second)
	assert.True(t, l.Allow(ctx, "apply:job:user", 3, time.Minute), "one token refills every window/limit")
	assert.False(t, l.Allow(ctx, "apply:job:user", 3, time.Minute))
}

func TestMemoryLimiter_DegenerateInput(t *testing.T) {
	l := NewMemoryLimiter()
	assert.True(t, l.Allow(context.Background(), "", 1, time.Minute))
	assert.True(t, l.Allow(context.Background(), "k", 0, time.Minute))
	assert.True(t, l.Allow(context.Background(), "k", 1, 0))
}

func TestMemoryLimiter_SweepsIdleBuckets(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter()
	l.now = func() time.Time { return current }

	l.Allow(context.Background(), "a", 1, time.Second)
	current = current.Add(2 * time.Minute)
	l.Allow(context.Background(), "b", 1, time.Second)

	_, ok := l.buckets["a"]
	assert.False(t, ok)
	_, ok = l.buckets["b"]
	assert.True(t, ok)
}

func TestRedisLimiter_NilClientAllows(t *testing.T) {
	var l *RedisLimiter
	assert.True(t, l.Allow(context.Background(), "k", 1, time.Minute))
	assert.True(t, NewRedisLimiter(nil, nil).Allow(context.Background(), "k", 1, time.Minute))
}

// fakeScripter counts per key the way the fixed-window script does.
type fakeScripter struct {
	counts map[string]int64
	err    error
}

func (f *fakeScripter) run(ctx context.Context, keys []string, args ...interface{}) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.counts[keys[0]]++
	if f.counts[keys[0]] > int64(args[1].(int)) {
		cmd.SetVal(int64(0))
	} else {
		cmd.SetVal(int64(1))
	}
	return cmd
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(ctx, keys, args...)
}
func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(ctx, keys, args...)
}
func (f *fakeScripter) EvalRO(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(ctx, keys, args...)
}
func (f *fakeScripter) EvalShaRO(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(ctx, keys, args...)
}
func (f *fakeScripter) ScriptExists(ctx context.Context, _ ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceCmd(ctx)
}
func (f *fakeScripter) ScriptLoad(ctx context.Context, _ string) *redis.StringCmd {
	return redis.NewStringCmd(ctx)
}

func TestRedisLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	fake := &fakeScripter{counts: map[string]int64{}}
	l := NewRedisLimiter(fake, nil)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, "apply:j:u", 3, time.Minute))
	}
	assert.False(t, l.Allow(ctx, "apply:j:u", 3, time.Minute))
	assert.True(t, l.Allow(ctx, "apply:j:other", 3, time.Minute))
	assert.Equal(t, int64(4), fake.counts["surfjobs:ratelimit:apply:j:u"])
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	l := NewRedisLimiter(&fakeScripter{err: errors.New("connection refused")}, nil)
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(context.Background(), "apply:j:u", 1, time.Minute))
	}
}
