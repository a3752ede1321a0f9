package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/armory/battlenet"
	"github.com/s0up4200/armory/filter"
	"github.com/s0up4200/armory/format"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"realm=medivh", "name=yufa", "fields=guild,feed", "empty="})
	require.NoError(t, err)
	assert.Equal(t, battlenet.Params{
		"realm":  "medivh",
		"name":   "yufa",
		"fields": "guild,feed",
		"empty":  "",
	}, params)

	for _, bad := range []string{"realm", "=medivh"} {
		_, err := parseParams([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestNarrow(t *testing.T) {
	logger = zerolog.Nop()

	data := map[string]any{
		"realms": []any{
			map[string]any{"slug": "medivh", "status": true},
			map[string]any{"slug": "aegwynn", "status": false},
		},
	}

	out, err := narrow(data, "", nil)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	online, err := filter.NewExprCompiler().Compile(`status`)
	require.NoError(t, err)

	out, err = narrow(data, "realms", online)
	require.NoError(t, err)
	assert.Equal(t, []filter.Record{{"slug": "medivh", "status": true}}, out)

	_, err = narrow(data, "characters", nil)
	assert.Error(t, err)
}

func TestDescribeError(t *testing.T) {
	err := describeError(battlenet.ResourceGuild, &battlenet.ConfigError{
		Field: "guild", Reason: "name", Err: battlenet.ErrMissingPathParam,
	})
	assert.ErrorIs(t, err, battlenet.ErrMissingPathParam)
	assert.Contains(t, err.Error(), "required: realm, name")

	err = describeError(battlenet.ResourceItem, &battlenet.APIError{StatusCode: 403, Message: "Account Inactive"})
	assert.Contains(t, err.Error(), "API key rejected")

	err = describeError(battlenet.ResourceItem, &battlenet.APIError{StatusCode: 404, Message: "Item not found"})
	assert.True(t, strings.HasPrefix(err.Error(), "failed to fetch item"))
}

func TestFetchRealmGroups(t *testing.T) {
	logger = zerolog.Nop()

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wow/realm/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"realms":[
			{"name":"Medivh","slug":"medivh","population":"high","status":true},
			{"name":"Aegwynn","slug":"aegwynn","population":"low","status":false}
		]}`))
	}))
	defer server.Close()

	host := strings.TrimPrefix(server.URL, "https://")
	api, err := battlenet.NewClient(battlenet.Config{APIKey: "test-key"},
		battlenet.WithHosts(map[battlenet.Region]string{battlenet.RegionUS: host, battlenet.RegionEU: host}),
		battlenet.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	high, err := filter.NewExprCompiler().Compile(`population == "high"`)
	require.NoError(t, err)

	groups := fetchRealmGroups(context.Background(), api, []string{"us", "eu", "kr"}, high)
	require.Len(t, groups, 3)

	for _, g := range groups[:2] {
		require.NoError(t, g.Err)
		require.Len(t, g.Realms, 1)
		assert.Equal(t, "medivh", g.Realms[0].Slug)
	}
	assert.Equal(t, battlenet.Region("kr"), groups[2].Region)
	assert.ErrorIs(t, groups[2].Err, battlenet.ErrUnsupportedRegion)
	assert.Contains(t, groups[2].Error, "unsupported region")
}

func TestWriteOutputYAMLAlias(t *testing.T) {
	parsed, err := format.ParseFormat("yml")
	require.NoError(t, err)
	selectedFormat = parsed
	t.Cleanup(func() { selectedFormat = "" })

	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, map[string]any{"name": "Ghost Iron Bar"}))
	assert.Equal(t, "name: Ghost Iron Bar\n", buf.String())
}

func TestFetchRealmGroupsRedactsKey(t *testing.T) {
	var buf bytes.Buffer
	logger = zerolog.New(&buf)
	t.Cleanup(func() { logger = zerolog.Nop() })

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := strings.TrimPrefix(server.URL, "https://")
	api, err := battlenet.NewClient(battlenet.Config{APIKey: "test-key"},
		battlenet.WithHosts(map[battlenet.Region]string{battlenet.RegionUS: host}),
		battlenet.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	server.Close()

	groups := fetchRealmGroups(context.Background(), api, []string{"us"}, nil)
	require.Len(t, groups, 1)
	require.Error(t, groups[0].Err)

	assert.Contains(t, buf.String(), "Failed to fetch realm status")
	assert.NotContains(t, buf.String(), "test-key")
	assert.NotContains(t, groups[0].Error, "test-key")
}
