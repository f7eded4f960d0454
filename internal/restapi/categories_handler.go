package restapi

import (
	"net/http"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/models"
)

func (api *RestAPI) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	list := make([]models.CategoryReference, 0, len(bmi.Categories()))
	for _, c := range bmi.Categories() {
		list = append(list, models.NewCategoryReference(c))
	}
	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences()))
}
