package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/logging"
	"bmidash.org/internal/models"
)

// distributionHandler re-reads the reference dataset on every request.
func (api *RestAPI) distributionHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	values, err := api.Dataset.BMIValues(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	dist := bmi.Aggregate(values)
	logging.LogOperation(api.logger(r), "distribution_computed",
		slog.String("source", api.Dataset.Describe()),
		slog.Int("rows", dist.Total),
		slog.Duration("duration", time.Since(start)))

	api.sendResponse(w, r, models.NewListResponse(models.NewDistributionEntries(dist), models.NewAllCategoryReferences()))
}
