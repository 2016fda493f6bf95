package controllers

import (
	"net/http"

	"github.com/jobify-dev/jobs-api/models"
	"github.com/jobify-dev/jobs-api/repository"
	"github.com/jobify-dev/jobs-api/utils"
)

// ShowStatsHandler returns status counts and the last months of applications.
func ShowStatsHandler(jobs repository.JobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		counts, err := jobs.CountJobsByStatus(r.Context(), identity.UserID)
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		buckets, err := jobs.CountJobsByMonth(r.Context(), identity.UserID, models.StatsMonths)
		if err != nil {
			utils.WriteError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, models.StatsResponse{
			DefaultStats:        models.NewDefaultStats(counts),
			MonthlyApplications: models.NewMonthlyApplications(buckets),
		})
	}
}
