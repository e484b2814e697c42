package handlers

import (
	"net/http"
	"time"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/service"
)

// PlannerHandler handles HTTP requests for tasks and the weekly schedule.
type PlannerHandler struct {
	planner service.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(planner service.PlannerService) *PlannerHandler {
	return &PlannerHandler{
		planner: planner,
	}
}

// TaskRequest is the payload for creating a task.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Subject     string     `json:"subject"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskResponse is a stored task.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Subject     string     `json:"subject"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ScheduleRequest is the payload for creating a schedule slot.
type ScheduleRequest struct {
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	DayOfWeek int    `json:"day_of_week"`
	Color     string `json:"color"`
}

// ScheduleResponse is a stored schedule slot.
type ScheduleResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	DayOfWeek int       `json:"day_of_week"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// ListTasks handles GET /api/tasks.
func (h *PlannerHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.planner.ListTasks(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to fetch tasks")
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, TaskResponse(t))
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}

// CreateTask handles POST /api/tasks.
func (h *PlannerHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid task body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid task data")
		return
	}

	task, err := h.planner.CreateTask(ctx, service.Task{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create task")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, TaskResponse(task))
}

// ListSchedules handles GET /api/schedules.
func (h *PlannerHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slots, err := h.planner.ListSchedules(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to fetch schedules")
		return
	}

	resp := make([]ScheduleResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, ScheduleResponse(s))
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}

// CreateSchedule handles POST /api/schedules.
func (h *PlannerHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ScheduleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid schedule body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid schedule data")
		return
	}

	slot, err := h.planner.CreateSchedule(ctx, service.Schedule{
		Title:     req.Title,
		Subject:   req.Subject,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		DayOfWeek: req.DayOfWeek,
		Color:     req.Color,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create schedule")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, ScheduleResponse(slot))
}
