package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/PolyglAI/PolyglAI/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	Info struct {
		Title   string `json:"title"`
		Version string `json:"version"`
	} `json:"info"`
	Paths map[string]map[string]struct {
		Summary     string   `json:"summary"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
	} `json:"paths"`
	Definitions map[string]struct {
		Properties map[string]json.RawMessage `json:"properties"`
	} `json:"definitions"`
}

func TestSwaggerDoc(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "PolyglAI Console API", doc.Info.Title)

	routes := map[string]string{
		"/api/v1/content/validate":                      "post",
		"/api/v1/translations":                          "post",
		"/api/v1/files/translations":                    "post",
		"/api/v1/languages/detect":                      "post",
		"/api/v1/moderation/records":                    "get",
		"/api/v1/moderation/records/{record_id}":        "get",
		"/api/v1/moderation/high-risk-users":            "get",
		"/api/v1/moderation/users/{user_id}/violations": "get",
		"/health":  "get",
		"/version": "get",
	}
	for path, method := range routes {
		op, ok := doc.Paths[path][method]
		require.True(t, ok, "%s %s", method, path)
		assert.NotEmpty(t, op.Summary, path)
		assert.Len(t, op.Tags, 1, path)
	}

	validate := doc.Paths["/api/v1/content/validate"]["post"]
	assert.Contains(t, validate.Description, "record_profanity")
	assert.Contains(t, doc.Definitions["response.HighRiskUsersOutput"].Properties, "scanned")
}
