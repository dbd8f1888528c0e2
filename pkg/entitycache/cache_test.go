package entitycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "work-order:abc-123", Key("work-order", "abc-123"))
}

func TestGetCachesAfterFirstFetch(t *testing.T) {
	c := New()
	var fetches atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		fetches.Add(1)
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.Get(context.Background(), "k", fetch)
		assert.NoError(t, err)
		assert.Equal(t, "value", v)
	}
	assert.Equal(t, int32(1), fetches.Load())
}

func TestGetDeduplicatesConcurrentFetches(t *testing.T) {
	c := New()
	var fetches atomic.Int32
	gate := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		fetches.Add(1)
		<-gate
		return "value", nil
	}

	const callers = 20
	var wg sync.WaitGroup
	results := make([]any, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(context.Background(), "k", fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), fetches.Load(), "concurrent misses must share one fetch")
	for _, v := range results {
		assert.Equal(t, "value", v)
	}
}

func TestGetDoesNotCacheErrors(t *testing.T) {
	c := New()
	var fetches atomic.Int32
	boom := errors.New("boom")
	fetch := func(ctx context.Context) (any, error) {
		if fetches.Add(1) == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	_, err := c.Get(context.Background(), "k", fetch)
	assert.ErrorIs(t, err, boom)

	v, err := c.Get(context.Background(), "k", fetch)
	assert.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, int32(2), fetches.Load())
}

func TestInvalidateForcesRefetch(t *testing.T) {
	c := New()
	var fetches atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		return int(fetches.Add(1)), nil
	}

	v, _ := c.Get(context.Background(), "k", fetch)
	assert.Equal(t, 1, v)

	c.Invalidate("k")

	v, _ = c.Get(context.Background(), "k", fetch)
	assert.Equal(t, 2, v)
}

func TestPutOverridesFetch(t *testing.T) {
	c := New()
	c.Put("k", "stored")

	v, err := c.Get(context.Background(), "k", func(ctx context.Context) (any, error) {
		t.Fatal("fetch must not run for a populated key")
		return nil, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "stored", v)
}

func TestGetTyped(t *testing.T) {
	type detail struct{ Name string }
	c := New()

	v, err := GetTyped(context.Background(), c, Key("tool", "t1"), func(ctx context.Context) (detail, error) {
		return detail{Name: "torque wrench"}, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "torque wrench", v.Name)

	_, err = GetTyped(context.Background(), c, Key("tool", "t2"), func(ctx context.Context) (detail, error) {
		return detail{}, errors.New("not found")
	})
	assert.EqualError(t, err, "not found")
}
