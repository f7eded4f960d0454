package restapi

import (
	"net/http"

	"github.com/twpayne/go-polyline"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/models"
	"bmidash.org/internal/utils"
)

func (api *RestAPI) curveHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	value, fieldErrors := utils.ParseOptionalFloatParam(query, "bmi", nil)
	minHeight, fieldErrors := utils.ParseIntParam(query, "minHeight", bmi.DefaultHeightRange.Min, fieldErrors)
	maxHeight, fieldErrors := utils.ParseIntParam(query, "maxHeight", bmi.DefaultHeightRange.Max, fieldErrors)
	if len(fieldErrors) == 0 {
		fieldErrors = utils.ValidateHeightRange(minHeight, maxHeight)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	// An unset target draws the zero curve, same as the dashboard.
	target := 0.0
	if value != nil {
		target = *value
	}

	heights := bmi.HeightRange{Min: minHeight, Max: maxHeight}
	points := bmi.GenerateCurve(target, heights)

	coords := make([][]float64, 0, len(points))
	entryPoints := make([]models.CurvePoint, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Height, p.Weight})
		entryPoints = append(entryPoints, models.CurvePoint{Height: p.Height, Weight: p.Weight})
	}
	encoded := string(polyline.EncodeCoords(coords))

	category := bmi.Classify(target)
	entry := models.CurveEntry{
		BMI:           target,
		CategoryID:    category.Index,
		Color:         category.Color,
		MinHeight:     minHeight,
		MaxHeight:     maxHeight,
		Points:        entryPoints,
		EncodedPoints: encoded,
		Length:        len(encoded),
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewCategoryReferences(category.Index)))
}
