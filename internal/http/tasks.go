package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/epistleapp/epistle/internal/entities"
	"github.com/epistleapp/epistle/internal/tasks"
)

// TasksController handles task queue management endpoints.
type TasksController struct {
	client *tasks.Client
}

func NewTasksController(client *tasks.Client) *TasksController {
	return &TasksController{client: client}
}

// PregenerateRequest is the request body for manual pregeneration.
type PregenerateRequest struct {
	Day      int               `json:"day" binding:"required"`
	Language entities.Language `json:"language"`
}

// RunPregenerate enqueues content pregeneration for a (day, language) pair.
// POST /api/tasks/pregenerate
func (tc *TasksController) RunPregenerate(c *gin.Context) {
	var req PregenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "day is required")
		return
	}
	if req.Day < 1 {
		respondBadRequest(c, "invalid day")
		return
	}
	if req.Language == "" {
		req.Language = entities.LanguageKorean
	}
	if !req.Language.Valid() {
		respondBadRequest(c, "unsupported language")
		return
	}

	ids, err := tc.client.Add(tasks.PregenerateTask{Day: req.Day, Language: req.Language}).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue pregeneration")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"task_id": ids[0],
		"message": "task enqueued",
	})
}

// GetTaskStatus returns the status of a specific task.
// GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
