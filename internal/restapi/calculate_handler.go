package restapi

import (
	"net/http"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/models"
	"bmidash.org/internal/utils"
)

// calculateHandler mirrors the dashboard calculator: unset inputs are not an
// error and produce the placeholder text with status "missing".
func (api *RestAPI) calculateHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	height, fieldErrors := utils.ParseOptionalFloatParam(query, "height", nil)
	weight, fieldErrors := utils.ParseOptionalFloatParam(query, "weight", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result := bmi.Calculate(height, weight)
	entry := models.NewCalculationEntry(height, weight, result)

	references := models.NewEmptyReferences()
	if entry.CategoryID != nil {
		references = models.NewCategoryReferences(*entry.CategoryID)
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}
