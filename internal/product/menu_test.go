package product

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMenu_Price(t *testing.T) {
	m := DefaultMenu()

	tests := []struct {
		size     Size
		toppings int
		want     string
	}{
		{SizeSmall, 0, "10"},
		{SizeMedium, 2, "18"},
		{SizeLarge, 3, "24.5"},
	}
	for _, tt := range tests {
		got, err := m.Price(tt.size, tt.toppings)
		require.NoError(t, err)
		assert.True(t, got.Equal(dec(tt.want)), "size %v with %d toppings: got %s", tt.size, tt.toppings, got)
	}
}

func TestMenu_PriceRequiresSize(t *testing.T) {
	_, err := DefaultMenu().Price(SizeUnset, 1)
	assert.Error(t, err)
}

func TestMenu_QuoteSetsPrice(t *testing.T) {
	p, err := DefaultMenu().Quote(NewBuilder().Name("Custom").Size(SizeMedium).Toppings("Ham", "Olives"))
	require.NoError(t, err)

	assert.True(t, p.Price().Equal(dec("18")), "got %s", p.Price())
}

func TestSpec_roundTripKeepsFeatures(t *testing.T) {
	item := Wrap(basePizza(), ExtraCheese, SpecialPackaging)

	restored, err := FromSpec(ToSpec(item))
	require.NoError(t, err)

	assert.Equal(t, item.Name(), restored.Name())
	assert.True(t, item.Price().Equal(restored.Price()))
	assert.Equal(t, item.Features(), restored.Features())
	assert.Equal(t, item.Toppings(), restored.Toppings())
}

func TestSpec_encodesSizeAsLabel(t *testing.T) {
	s := ToSpec(basePizza())

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"size":"Medium"`)

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	var back Spec
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, SizeMedium, back.Size)
}

func TestFromSpec_rejectsUnknownFeature(t *testing.T) {
	_, err := FromSpec(Spec{Name: "X", Price: "1", Features: []string{"Gold Leaf"}})
	assert.Error(t, err)
}

func TestFromSpec_rejectsBadPrice(t *testing.T) {
	_, err := FromSpec(Spec{Name: "X", Price: "ten"})
	assert.Error(t, err)
}
