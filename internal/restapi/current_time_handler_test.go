package restapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentTimeHandler(t *testing.T) {
	before := time.Now().UnixMilli()
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/current-time.json?key=TEST")
	after := time.Now().UnixMilli()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	entry := entryFrom(t, model)
	ts, ok := entry["time"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, int64(ts), before)
	assert.LessOrEqual(t, int64(ts), after)

	readable, ok := entry["readableTime"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, readable)
	assert.NoError(t, err)
}
