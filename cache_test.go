package relay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecencyCacheGetPut(t *testing.T) {
	t.Parallel()

	c := newRecencyCache[string](3)

	_, ok := c.get("GET:/a")
	assert.False(t, ok)

	c.put("GET:/a", &Match[string]{Handler: "a"})
	m, ok := c.get("GET:/a")
	require.True(t, ok)
	assert.Equal(t, "a", m.Handler)
	assert.Equal(t, 1, c.len())
}

func TestRecencyCacheOverwrite(t *testing.T) {
	t.Parallel()

	c := newRecencyCache[string](3)
	c.put("GET:/a", &Match[string]{Handler: "old"})
	c.put("GET:/a", &Match[string]{Handler: "new"})

	m, ok := c.get("GET:/a")
	require.True(t, ok)
	assert.Equal(t, "new", m.Handler)
	assert.Equal(t, 1, c.len())
}

func TestRecencyCacheEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := newRecencyCache[string](3)
	c.put("GET:/a", &Match[string]{Handler: "a"})
	c.put("GET:/b", &Match[string]{Handler: "b"})
	c.put("GET:/c", &Match[string]{Handler: "c"})

	// Touch /a so /b becomes the oldest.
	_, ok := c.get("GET:/a")
	require.True(t, ok)

	c.put("GET:/d", &Match[string]{Handler: "d"})

	assert.Equal(t, 3, c.len())
	_, ok = c.get("GET:/b")
	assert.False(t, ok)

	for _, key := range []string{"GET:/a", "GET:/c", "GET:/d"} {
		_, ok := c.get(key)
		assert.True(t, ok, "expected %s to survive", key)
	}
}

func TestRecencyCacheCapacityNeverExceeded(t *testing.T) {
	t.Parallel()

	c := newRecencyCache[string](5)
	for i := 0; i < 100; i++ {
		c.put(fmt.Sprintf("GET:/p/%d", i), &Match[string]{Handler: "h"})
		assert.LessOrEqual(t, c.len(), 5)
	}
	assert.Equal(t, 5, c.len())

	// The five most recent keys are retained in full.
	for i := 95; i < 100; i++ {
		_, ok := c.get(fmt.Sprintf("GET:/p/%d", i))
		assert.True(t, ok)
	}
}

func TestRecencyCacheSingleEntry(t *testing.T) {
	t.Parallel()

	c := newRecencyCache[string](1)
	c.put("GET:/a", &Match[string]{Handler: "a"})
	c.put("GET:/b", &Match[string]{Handler: "b"})

	_, ok := c.get("GET:/a")
	assert.False(t, ok)
	m, ok := c.get("GET:/b")
	require.True(t, ok)
	assert.Equal(t, "b", m.Handler)
}
