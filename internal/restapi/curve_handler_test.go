package restapi

import (
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
)

func TestCurveHandlerDefaults(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/curve.json?key=TEST&bmi=20")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFrom(t, model)
	assert.Equal(t, 20.0, entry["bmi"])
	assert.Equal(t, 3.0, entry["categoryId"])
	assert.Equal(t, "Green", entry["color"])
	assert.Equal(t, 50.0, entry["minHeight"])
	assert.Equal(t, 260.0, entry["maxHeight"])

	points, ok := entry["points"].([]interface{})
	require.True(t, ok)
	require.Len(t, points, 210)

	at170 := points[120].(map[string]interface{})
	assert.Equal(t, 170.0, at170["height"])
	assert.InDelta(t, 57.8, at170["weight"], 1e-9)

	encoded, ok := entry["encodedPoints"].(string)
	require.True(t, ok)
	assert.Equal(t, float64(len(encoded)), entry["length"])

	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	require.NoError(t, err)
	assert.Empty(t, rest)
	require.Len(t, coords, 210)
	assert.InDelta(t, 170.0, coords[120][0], 1e-5)
	assert.InDelta(t, 57.8, coords[120][1], 1e-5)
}

func TestCurveHandlerCustomRange(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/curve.json?key=TEST&bmi=30&minHeight=150&maxHeight=160")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFrom(t, model)
	points := entry["points"].([]interface{})
	require.Len(t, points, 10)
	assert.Equal(t, 150.0, points[0].(map[string]interface{})["height"])
	assert.Equal(t, 159.0, points[9].(map[string]interface{})["height"])
	assert.Equal(t, "Orange", entry["color"])
}

func TestCurveHandlerWithoutBMIDrawsZeroCurve(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/curve.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFrom(t, model)
	assert.Equal(t, 0.0, entry["bmi"])
	for _, p := range entry["points"].([]interface{}) {
		assert.Equal(t, 0.0, p.(map[string]interface{})["weight"])
	}
}

func TestCurveHandlerValidation(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		name  string
		query string
		field string
	}{
		{"bad bmi", "&bmi=x", "bmi"},
		{"bad min", "&minHeight=x", "minHeight"},
		{"inverted", "&minHeight=200&maxHeight=100", "maxHeight"},
		{"out of bounds", "&minHeight=0", "minHeight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				FieldErrors map[string][]string `json:"fieldErrors"`
			}
			resp := serveApiAndDecode(t, api, "/api/curve.json?key=TEST"+tt.query, &body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, body.FieldErrors[tt.field])
		})
	}
}

func TestCurveHandlerHugeBMI(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/curve.json?key=TEST&bmi=1e307")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFrom(t, model)
	assert.Equal(t, 7.0, entry["categoryId"])
	points := entry["points"].([]interface{})
	require.Len(t, points, 210)
	last := points[209].(map[string]interface{})["weight"].(float64)
	assert.False(t, math.IsInf(last, 0))
	assert.InDelta(t, 1e307*2.59*2.59, last, 1e293)
}
