package restapi

import (
	"net/http"

	"bmidash.org/internal/models"
	"bmidash.org/internal/utils"
)

func (api *RestAPI) classifyHandler(w http.ResponseWriter, r *http.Request) {
	value, fieldErrors := utils.ParseOptionalFloatParam(r.URL.Query(), "bmi", nil)
	if len(fieldErrors) == 0 && value == nil {
		fieldErrors["bmi"] = append(fieldErrors["bmi"], "bmi is required")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	entry := models.NewClassificationEntry(*value)
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewCategoryReferences(entry.CategoryID)))
}
