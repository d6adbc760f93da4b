package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRequired(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		doc := map[string]any{
			"account":        map[string]any{"username": "u", "password": "p"},
			"sender_address": "a@example.com",
			"status":         map[string]any{"send_status": true, "send_friends": false},
			"shop":           map[string]any{"buy_streak": false},
		}
		assert.NoError(t, verifyRequired(doc))
	})

	t.Run("nil document", func(t *testing.T) {
		err := verifyRequired(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "9 errors occurred")
		assert.Contains(t, err.Error(), "missing 'shop/buy_streak' in config file")
	})

	t.Run("null values count as present", func(t *testing.T) {
		doc := map[string]any{
			"account":        map[string]any{"username": nil, "password": nil},
			"sender_address": nil,
			"status":         map[string]any{"send_status": nil, "send_friends": nil},
			"shop":           map[string]any{"buy_streak": nil},
		}
		assert.NoError(t, verifyRequired(doc))
	})
}

func TestEmbeddedSchema(t *testing.T) {
	var root schemaNode
	require.NoError(t, json.Unmarshal(embeddedSchema, &root))

	assert.Equal(t, []string{"account", "sender_address", "status", "shop"}, root.Required)
	assert.Equal(t, []string{"username", "password"}, root.Properties["account"].Required)
	assert.Equal(t, []string{"send_status", "send_friends"}, root.Properties["status"].Required)
	assert.Equal(t, []string{"buy_streak"}, root.Properties["shop"].Required)
	assert.Empty(t, root.Properties["email"].Required)
	assert.Empty(t, root.Properties["remote"].Required)
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)

	// generated schema must agree with the embedded one on required keys
	data, err := json.Marshal(schema)
	require.NoError(t, err)

	var generated schemaNode
	require.NoError(t, json.Unmarshal(data, &generated))
	assert.ElementsMatch(t, []string{"account", "sender_address", "status", "shop"}, generated.Required)
	assert.ElementsMatch(t, []string{"username", "password"}, generated.Properties["account"].Required)
	assert.ElementsMatch(t, []string{"buy_streak"}, generated.Properties["shop"].Required)
}

func TestGenerateSchema_MatchesEmbedded(t *testing.T) {
	// embedded schema.json is produced by go generate and must not drift from Config
	data, err := json.MarshalIndent(GenerateSchema(), "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(embeddedSchema), string(data)+"\n")
}
