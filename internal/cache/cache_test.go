package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficapi/internal/cache"
	"trafficapi/internal/domain"
)

var (
	jan1 = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 = time.Date(2015, 1, 2, 0, 0, 0, 0, time.UTC)
)

func TestNew_ValidSize(t *testing.T) {
	c, err := cache.New(10, time.Minute)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0, 0)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestKey(t *testing.T) {
	assert.Equal(t, "visits|2015-01-01|2015-01-02", cache.Key("visits", jan1, jan2))
	assert.NotEqual(t, cache.Key("visits", jan1, jan2), cache.Key("visits", jan1, jan1))
}

func TestGet_MissingKey(t *testing.T) {
	c, err := cache.New(10, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	val, found := c.Get("nonexistent")
	assert.False(t, found)
	assert.Nil(t, val)
}

func TestSetThenGet(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	key := cache.Key("visits", jan1, jan2)
	points := []domain.DataPoint{{Date: jan1, Value: 3}, {Date: jan2, Value: 4}}

	c.Set(key, points)
	c.Wait()

	val, found := c.Get(key)
	assert.True(t, found)
	assert.Equal(t, points, val)
}

func TestSetThenGet_EmptyResult(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	key := cache.Key("visits", jan1, jan2)
	c.Set(key, []domain.DataPoint{})
	c.Wait()

	val, found := c.Get(key)
	assert.True(t, found)
	assert.Empty(t, val)
}

func TestGet_ReturnsCopy(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	key := cache.Key("visits", jan1, jan1)
	points := []domain.DataPoint{{Date: jan1, Value: 3}}
	c.Set(key, points)
	c.Wait()

	points[0].Value = 100
	first, found := c.Get(key)
	require.True(t, found)
	first[0].Value = 200

	second, found := c.Get(key)
	require.True(t, found)
	assert.Equal(t, int64(3), second[0].Value)
}

func TestSet_Expires(t *testing.T) {
	c, err := cache.New(20, 20*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	key := cache.Key("visits", jan1, jan1)
	c.Set(key, []domain.DataPoint{{Date: jan1, Value: 1}})
	c.Wait()

	_, found := c.Get(key)
	require.True(t, found)

	time.Sleep(50 * time.Millisecond)
	_, found = c.Get(key)
	assert.False(t, found)
}

func TestStats_AfterOperations(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	c.Get("nonexistent")

	_, misses, _ = c.Stats()
	assert.Equal(t, uint64(1), misses)

	c.Set("key1", []domain.DataPoint{{Date: jan1, Value: 1}})
	c.Wait()
	c.Get("key1")

	hits, _, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, 0.5, ratio)
}
