package catch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		cats []Category
	}{
		{"empty", nil},
		{"missing id", []Category{{Name: "X", Size: 10}}},
		{"zero size", []Category{{ID: "x", Size: 0}}},
		{"duplicate", []Category{{ID: "x", Size: 10}, {ID: "x", Size: 12}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.cats)
			assert.Error(t, err)
		})
	}
}

func TestDefaultCatalogOrder(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, 20, c.Len())
	assert.Equal(t, "snails", c.At(0).ID)
	assert.Equal(t, "rabbits", c.At(c.Len()-1).ID)

	frog, idx, ok := c.Lookup("frogs")
	require.True(t, ok)
	assert.Equal(t, 18, idx)
	assert.Zero(t, frog.Speed)
	assert.True(t, frog.Behavior.Hops())
	assert.False(t, frog.Behavior.Wobbles())

	rabbit, _, _ := c.Lookup("rabbits")
	assert.True(t, rabbit.Behavior.Hops())
	assert.True(t, rabbit.Behavior.Wobbles())

	_, _, ok = c.Lookup("unicorns")
	assert.False(t, ok)
}

func TestCatalogCopiesInput(t *testing.T) {
	cats := []Category{{ID: "a", Size: 10}}
	c, err := NewCatalog(cats)
	require.NoError(t, err)
	cats[0].ID = "b"
	assert.Equal(t, "a", c.At(0).ID)
}
