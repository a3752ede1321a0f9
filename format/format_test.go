package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/armory/battlenet"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite(t *testing.T) {
	data := map[string]any{"id": float64(72096), "name": "Ghost Iron Bar"}

	out, err := String(FormatJSON, data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":72096,"name":"Ghost Iron Bar"}`, out)

	out, err = String(FormatYAML, data)
	require.NoError(t, err)
	assert.YAMLEq(t, "id: 72096\nname: Ghost Iron Bar\n", out)

	// aliases accepted by ParseFormat encode the same way
	out, err = String(Format("yml"), data)
	require.NoError(t, err)
	assert.Equal(t, "id: 72096\nname: Ghost Iron Bar\n", out)
}

func TestFormatResources(t *testing.T) {
	out := NewConsoleFormatter().FormatResources([]battlenet.Resource{
		battlenet.ResourceCharacter,
		battlenet.ResourceRealm,
	})

	assert.Contains(t, out, "Resources (2)")
	assert.Contains(t, out, "/wow/character/:realm/:name  [requires: realm, name]")
	assert.Contains(t, out, "/wow/realm/status")
	assert.NotContains(t, out, "status  [requires")
}

func TestFormatRealmStatus(t *testing.T) {
	out := NewConsoleFormatter().FormatRealmStatus([]RegionRealms{
		{
			Region: battlenet.RegionUS,
			Realms: []battlenet.Realm{
				{Name: "Medivh", Type: "pve", Population: "high", Status: true},
				{Name: "Aegwynn", Type: "pvp", Population: "low", Status: false, Queue: true},
			},
		},
		{Region: battlenet.RegionEU, Err: errors.New("boom")},
	})

	assert.Contains(t, out, "US\n")
	assert.Contains(t, out, "├─ ✓ Medivh (PVE, high)")
	assert.Contains(t, out, "└─ ✗ Aegwynn (PVP, low, queue)")
	assert.Contains(t, out, "1 of 2 realms online")
	assert.True(t, strings.Contains(out, "EU\n"))
	assert.Contains(t, out, "✗ boom")
}
