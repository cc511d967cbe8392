package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func runCatalog(t *testing.T, args ...string) map[string]json.RawMessage {
	t.Helper()
	t.Setenv("SOURCE_DRIVER", "none")
	t.Setenv("ENVIRONMENT", "production")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "absent.env"), "catalog"}, args...))
	require.NoError(t, cmd.Execute())

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	return resp
}

func TestCatalogCommandFallsBack(t *testing.T) {
	resp := runCatalog(t)

	assert.JSONEq(t, `"fallback"`, string(resp["source"]))
	assert.JSONEq(t, `"catalog"`, string(resp["query"]))
	var products []models.Product
	require.NoError(t, json.Unmarshal(resp["products"], &products))
	assert.Len(t, products, 6)
}

func TestCatalogCommandFeatured(t *testing.T) {
	resp := runCatalog(t, "--featured")

	var products []models.Product
	require.NoError(t, json.Unmarshal(resp["products"], &products))
	require.Len(t, products, 3)
	assert.Equal(t, "VELOCITY ELITE", products[0].ModelName)
}

func TestSetupRejectsServiceRoleKey(t *testing.T) {
	t.Setenv("SOURCE_DRIVER", "supabase")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "sb_secret_abc")

	_, err := setup(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
}
