package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jobify-dev/jobs-api/middleware"
	"github.com/jobify-dev/jobs-api/models"
	"github.com/jobify-dev/jobs-api/repository"
	"github.com/jobify-dev/jobs-api/utils"
)

const (
	filterAll         = "all"
	msgEmptyJobFields = "Company or Position fields cannot be empty"
)

// requireIdentity returns the authenticated caller or writes a 401.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*models.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, utils.Unauthenticated(utils.MsgAuthInvalid))
	}
	return identity, ok
}

// jobNotFound hides whether a job is missing or owned by someone else.
func jobNotFound(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFound(fmt.Sprintf("No job with id %s", id))
	}
	return err
}

// parseJobQuery builds the owner-scoped listing query from search parameters.
func parseJobQuery(r *http.Request, ownerID string) (repository.JobQuery, error) {
	params := r.URL.Query()
	q := repository.NewJobQuery(ownerID).WithSearch(params.Get("search"))

	if raw := params.Get("status"); raw != "" && raw != filterAll {
		status, err := models.ParseJobStatus(raw)
		if err != nil {
			return q, utils.BadRequest(fmt.Sprintf("Invalid status value: %s", raw))
		}
		q = q.WithStatus(status)
	}
	if raw := params.Get("jobType"); raw != "" && raw != filterAll {
		jobType, err := models.ParseJobType(raw)
		if err != nil {
			return q, utils.BadRequest(fmt.Sprintf("Invalid jobType value: %s", raw))
		}
		q = q.WithJobType(jobType)
	}

	page, limit := utils.GetPaginationParams(r)
	return q.SortBy(repository.ParseJobSort(params.Get("sort"))).Paginate(page, limit), nil
}

// GetAllJobsHandler lists the caller's jobs with search, filters, sort and pagination.
func GetAllJobsHandler(jobs repository.JobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		q, err := parseJobQuery(r, identity.UserID)
		if err != nil {
			utils.WriteError(w, err)
			return
		}

		list, total, err := jobs.ListJobs(r.Context(), q)
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		if list == nil {
			list = []models.Job{}
		}

		utils.WriteJSON(w, http.StatusOK, models.JobsResponse{
			Jobs:       list,
			TotalJobs:  total,
			NumOfPages: utils.TotalPages(total, q.Limit()),
		})
	}
}

// GetJobHandler returns one of the caller's jobs.
func GetJobHandler(jobs repository.JobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		id := mux.Vars(r)["id"]

		job, err := jobs.GetJob(r.Context(), identity.UserID, id)
		if err != nil {
			utils.WriteError(w, jobNotFound(err, id))
			return
		}
		utils.WriteJSON(w, http.StatusOK, models.JobResponse{Job: job})
	}
}

// CreateJobHandler creates a job owned by the caller.
func CreateJobHandler(jobs repository.JobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var in models.JobInput
		if err := utils.DecodeJSON(r, &in); err != nil {
			utils.WriteError(w, err)
			return
		}
		if err := utils.Validate(in); err != nil {
			utils.WriteError(w, err)
			return
		}

		job := in.NewJob(identity.UserID)
		if err := jobs.CreateJob(r.Context(), job); err != nil {
			utils.WriteError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusCreated, models.JobResponse{Job: job})
	}
}

// UpdateJobHandler applies a partial update to one of the caller's jobs.
func UpdateJobHandler(jobs repository.JobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		id := mux.Vars(r)["id"]

		var upd models.JobUpdate
		if err := utils.DecodeJSON(r, &upd); err != nil {
			utils.WriteError(w, err)
			return
		}
		if upd.HasEmptyRequired() {
			utils.WriteError(w, utils.BadRequest(msgEmptyJobFields))
			return
		}
		if err := utils.Validate(upd); err != nil {
			utils.WriteError(w, err)
			return
		}

		job, err := jobs.UpdateJob(r.Context(), identity.UserID, id, upd)
		if err != nil {
			utils.WriteError(w, jobNotFound(err, id))
			return
		}
		utils.WriteJSON(w, http.StatusOK, models.JobResponse{Job: job})
	}
}

// DeleteJobHandler removes one of the caller's jobs.
func DeleteJobHandler(jobs repository.JobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		id := mux.Vars(r)["id"]

		if err := jobs.DeleteJob(r.Context(), identity.UserID, id); err != nil {
			utils.WriteError(w, jobNotFound(err, id))
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
