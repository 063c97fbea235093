package handlers

import (
	"net/http"

	"github.com/gigtrack-dev/gigtrack/internal/utils"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"github.com/gin-gonic/gin"
)

type JobRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
}

func (r JobRequest) toInput() validation.JobInput {
	return validation.JobInput{
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Duration:    r.Duration,
	}
}

// ListJobs serves the shared catalog; no authentication required.
func ListJobs(ctx *gin.Context) {
	jobs, err := store().ListJobs()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

func GetJob(ctx *gin.Context) {
	jobID, err := parseIDParam(ctx, "job_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	job, err := store().GetJob(jobID, nil)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, job)
}

func CreateJob(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var body JobRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	job, err := store().CreateJob(userID, body.toInput())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, job)
}

func UpdateJob(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	jobID, err := parseIDParam(ctx, "job_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	var body JobRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	job, err := store().UpdateJob(userID, jobID, body.toInput())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// RemoveJob deletes the acting user's orders for a job; the shared job
// record itself survives for other users.
func RemoveJob(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	jobID, err := parseIDParam(ctx, "job_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	snapshot, err := store().RemoveJobForUser(userID, jobID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Job removed from user successfully",
		"removed_job": snapshot,
	})
}

func GetJobOrders(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	jobID, err := parseIDParam(ctx, "job_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	job, orders, err := store().JobWithOrders(userID, jobID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"job":    job,
		"orders": orders,
	})
}
