package dotmap

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedGetters(t *testing.T) {
	id := uuid.New()
	m := New(map[string]any{
		"name":    "Ada",
		"port":    8080,
		"ratio":   0.5,
		"whole":   float64(3),
		"frac":    3.5,
		"debug":   "yes",
		"enabled": true,
		"started": "2024-06-01T12:00:00Z",
		"day":     "2024-06-01",
		"id":      id.String(),
		"rawid":   id,
	})

	t.Run("GetString", func(t *testing.T) {
		v, ok := m.GetString("name")
		require.True(t, ok)
		assert.Equal(t, "Ada", v)

		_, ok = m.GetString("port")
		assert.False(t, ok)
		_, ok = m.GetString("missing")
		assert.False(t, ok)
	})

	t.Run("GetInt", func(t *testing.T) {
		v, ok := m.GetInt("port")
		require.True(t, ok)
		assert.Equal(t, int64(8080), v)

		v, ok = m.GetInt("whole")
		require.True(t, ok)
		assert.Equal(t, int64(3), v)

		_, ok = m.GetInt("frac")
		assert.False(t, ok)
		_, ok = m.GetInt("name")
		assert.False(t, ok)
	})

	t.Run("GetFloat", func(t *testing.T) {
		v, ok := m.GetFloat("ratio")
		require.True(t, ok)
		assert.Equal(t, 0.5, v)

		v, ok = m.GetFloat("port")
		require.True(t, ok)
		assert.Equal(t, float64(8080), v)
	})

	t.Run("GetBool", func(t *testing.T) {
		v, ok := m.GetBool("enabled")
		require.True(t, ok)
		assert.True(t, v)

		v, ok = m.GetBool("debug")
		require.True(t, ok)
		assert.True(t, v)

		_, ok = m.GetBool("port")
		assert.False(t, ok)
	})

	t.Run("GetTime", func(t *testing.T) {
		v, ok := m.GetTime("started")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), v)

		v, ok = m.GetTime("day")
		require.True(t, ok)
		assert.Equal(t, 2024, v.Year())

		_, ok = m.GetTime("name")
		assert.False(t, ok)
	})

	t.Run("GetUUID", func(t *testing.T) {
		v, ok := m.GetUUID("id")
		require.True(t, ok)
		assert.Equal(t, id, v)

		v, ok = m.GetUUID("rawid")
		require.True(t, ok)
		assert.Equal(t, id, v)

		_, ok = m.GetUUID("name")
		assert.False(t, ok)
	})
}
