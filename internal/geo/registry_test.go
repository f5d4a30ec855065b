package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	regions := registry.Regions()
	assert.Len(t, regions, 18)
	assert.Equal(t, 18, registry.Len())

	// Declaration order is the canonical order.
	assert.Equal(t, "Central & Western District", regions[0].Name)
	assert.Equal(t, "Wan Chai", regions[1].Name)
	assert.Equal(t, "Islands District", regions[17].Name)

	// Regions returns a copy; mutating it must not affect the registry.
	regions[0].Name = "mutated"
	assert.Equal(t, "Central & Western District", registry.Regions()[0].Name)
}

func TestByName(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	region, ok := registry.ByName("Sha Tin")
	require.True(t, ok)
	assert.Equal(t, 22.3816, region.Latitude)
	assert.Equal(t, 114.1947, region.Longitude)

	_, ok = registry.ByName("Kowloon")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	t.Run("canonical district name", func(t *testing.T) {
		region, ok := registry.Resolve("Wong Tai Sin")
		require.True(t, ok)
		assert.Equal(t, "Wong Tai Sin", region.Name)
	})

	t.Run("station alias", func(t *testing.T) {
		region, ok := registry.Resolve("Happy Valley")
		require.True(t, ok)
		assert.Equal(t, "Wan Chai", region.Name)
	})

	t.Run("several aliases share a district", func(t *testing.T) {
		for _, station := range []string{"Yuen Long Park", "Lau Fau Shan", "Shek Kong"} {
			region, ok := registry.Resolve(station)
			require.True(t, ok, station)
			assert.Equal(t, "Yuen Long", region.Name)
		}
	})

	t.Run("reference station maps to its host district", func(t *testing.T) {
		region, ok := registry.Resolve("Hong Kong Observatory")
		require.True(t, ok)
		assert.Equal(t, "Central & Western District", region.Name)
	})

	t.Run("unknown place is a miss, not an error", func(t *testing.T) {
		_, ok := registry.Resolve("Victoria Peak")
		assert.False(t, ok)
	})
}
