package battlenet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "medivh", "medivh"},
		{"int", 72096, "72096"},
		{"int64", int64(9999999), "9999999"},
		{"whole float", float64(72096), "72096"},
		{"fractional float", 0.5, "0.5"},
		{"bool", true, "true"},
		{"string slice", []string{"guild", "feed", "items"}, "guild,feed,items"},
		{"region", RegionEU, "eu"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.value))
		})
	}
}

func TestBuildRequest(t *testing.T) {
	client, err := NewClient(Config{APIKey: "default-key"})
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		req, err := client.buildRequest(ResourceItem, Params{"id": 18803})
		require.NoError(t, err)
		assert.Equal(t, "https://us.api.battle.net/wow/item/18803", req.url)
		assert.Equal(t, RegionUS, req.region)
		assert.Equal(t, "default-key", req.query.Get("apikey"))
		assert.Equal(t, "en_US", req.query.Get("locale"))
		assert.Len(t, req.query, 2)
	})

	t.Run("unconsumed params go to the query", func(t *testing.T) {
		req, err := client.buildRequest(ResourceBattlePetStats, Params{
			"id":        258,
			"level":     25,
			"breedId":   5,
			"qualityId": 4,
			"region":    "eu",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://eu.api.battle.net/wow/battlePet/stats/258", req.url)
		assert.Equal(t, "25", req.query.Get("level"))
		assert.Equal(t, "5", req.query.Get("breedId"))
		assert.Equal(t, "4", req.query.Get("qualityId"))
		assert.False(t, req.query.Has("region"))
		assert.False(t, req.query.Has("id"))
	})

	t.Run("lowercase apikey wins over alias", func(t *testing.T) {
		req, err := client.buildRequest(ResourceRaces, Params{"apikey": "a", "apiKey": "b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, req.query["apikey"])
		assert.False(t, req.query.Has("apiKey"))
	})

	t.Run("reserved characters are escaped", func(t *testing.T) {
		req, err := client.buildRequest(ResourceGuild, Params{"realm": "Kul Tiras", "name": "a/b?c"})
		require.NoError(t, err)
		assert.Equal(t, "https://us.api.battle.net/wow/guild/Kul%20Tiras/a%2Fb%3Fc", req.url)
	})

	t.Run("caller params are not modified", func(t *testing.T) {
		params := Params{"realm": "medivh", "name": "yufa", "region": "eu", "apiKey": "x"}
		_, err := client.buildRequest(ResourceCharacter, params)
		require.NoError(t, err)
		assert.Equal(t, Params{"realm": "medivh", "name": "yufa", "region": "eu", "apiKey": "x"}, params)
	})

	t.Run("nil params", func(t *testing.T) {
		req, err := client.buildRequest(ResourceTalents, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://us.api.battle.net/wow/data/talents", req.url)
	})

	t.Run("nil values are left out of the query", func(t *testing.T) {
		req, err := client.buildRequest(ResourceItem, Params{"id": 18803, "fields": nil})
		require.NoError(t, err)
		assert.False(t, req.query.Has("fields"))
		assert.Len(t, req.query, 2)
	})

	t.Run("all missing placeholders are named", func(t *testing.T) {
		_, err := client.buildRequest(ResourceCharacter, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingPathParam)
		assert.Contains(t, err.Error(), "realm, name")
	})
}

func TestRedact(t *testing.T) {
	client, err := NewClient(Config{APIKey: "secret"})
	require.NoError(t, err)

	req, err := client.buildRequest(ResourceRealm, nil)
	require.NoError(t, err)

	out := redact(req.query)
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "apikey=REDACTED")
	assert.Equal(t, "secret", req.query.Get("apikey"))
}
