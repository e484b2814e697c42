package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_planner_service.go -package=mocks -mock_names=PlannerService=MockPlannerService transcript-tutor/internal/service PlannerService

import (
	"context"
	"regexp"
	"strings"
	"time"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/storage"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// DefaultScheduleColor is used when a schedule slot has no color.
const DefaultScheduleColor = "#3B82F6"

const clockLayout = "15:04"

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Task is a study task.
type Task struct {
	ID          string
	Title       string
	Description string
	Subject     string
	Priority    string
	Status      string
	DueDate     *time.Time
	CreatedAt   time.Time
}

// Schedule is a recurring weekly study slot.
type Schedule struct {
	ID        string
	Title     string
	Subject   string
	StartTime string
	EndTime   string
	// DayOfWeek counts from Sunday (0) to Saturday (6).
	DayOfWeek int
	Color     string
	CreatedAt time.Time
}

// PlannerService manages study tasks and the weekly schedule.
type PlannerService interface {
	ListTasks(ctx context.Context) ([]Task, error)
	// CreateTask stores a task. Priority defaults to medium and status to pending.
	CreateTask(ctx context.Context, t Task) (Task, error)
	ListSchedules(ctx context.Context) ([]Schedule, error)
	// CreateSchedule stores a slot. Times are HH:MM and the slot must end after it starts.
	CreateSchedule(ctx context.Context, s Schedule) (Schedule, error)
}

// plannerService implements PlannerService.
type plannerService struct {
	tasks     storage.TaskStore
	schedules storage.ScheduleStore
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(tasks storage.TaskStore, schedules storage.ScheduleStore) PlannerService {
	return &plannerService{
		tasks:     tasks,
		schedules: schedules,
	}
}

func (s *plannerService) ListTasks(ctx context.Context) ([]Task, error) {
	records, err := s.tasks.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list tasks")
	}

	tasks := make([]Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, Task(r))
	}
	return tasks, nil
}

func (s *plannerService) CreateTask(ctx context.Context, t Task) (Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return Task{}, &ValidationError{Field: "title", Message: "Title is required"}
	}

	priority, ok := oneOf(t.Priority, PriorityMedium, PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent)
	if !ok {
		return Task{}, &ValidationError{Field: "priority", Message: "Priority must be low, medium, high or urgent"}
	}
	status, ok := oneOf(t.Status, StatusPending, StatusPending, StatusInProgress, StatusCompleted)
	if !ok {
		return Task{}, &ValidationError{Field: "status", Message: "Status must be pending, in_progress or completed"}
	}

	record := storage.TaskRecord{
		Title:       strings.TrimSpace(t.Title),
		Description: t.Description,
		Subject:     strings.TrimSpace(t.Subject),
		Priority:    priority,
		Status:      status,
		DueDate:     t.DueDate,
	}
	if err := s.tasks.Add(ctx, &record); err != nil {
		return Task{}, WrapError(err, "failed to create task")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "task created", "task_id", record.ID, "priority", priority)
	return Task(record), nil
}

func (s *plannerService) ListSchedules(ctx context.Context) ([]Schedule, error) {
	records, err := s.schedules.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list schedules")
	}

	schedules := make([]Schedule, 0, len(records))
	for _, r := range records {
		schedules = append(schedules, Schedule(r))
	}
	return schedules, nil
}

func (s *plannerService) CreateSchedule(ctx context.Context, sc Schedule) (Schedule, error) {
	if strings.TrimSpace(sc.Title) == "" {
		return Schedule{}, &ValidationError{Field: "title", Message: "Title is required"}
	}
	if sc.DayOfWeek < 0 || sc.DayOfWeek > 6 {
		return Schedule{}, &ValidationError{Field: "day_of_week", Message: "Day of week must be between 0 (Sunday) and 6 (Saturday)"}
	}

	start, err := time.Parse(clockLayout, strings.TrimSpace(sc.StartTime))
	if err != nil {
		return Schedule{}, &ValidationError{Field: "start_time", Message: "Start time must be HH:MM"}
	}
	end, err := time.Parse(clockLayout, strings.TrimSpace(sc.EndTime))
	if err != nil {
		return Schedule{}, &ValidationError{Field: "end_time", Message: "End time must be HH:MM"}
	}
	if !end.After(start) {
		return Schedule{}, &ValidationError{Field: "end_time", Message: "End time must be after start time"}
	}

	color := strings.TrimSpace(sc.Color)
	if color == "" {
		color = DefaultScheduleColor
	}
	if !colorPattern.MatchString(color) {
		return Schedule{}, &ValidationError{Field: "color", Message: "Color must be a hex value such as #3B82F6"}
	}

	record := storage.ScheduleRecord{
		Title:     strings.TrimSpace(sc.Title),
		Subject:   strings.TrimSpace(sc.Subject),
		StartTime: start.Format(clockLayout),
		EndTime:   end.Format(clockLayout),
		DayOfWeek: sc.DayOfWeek,
		Color:     color,
	}
	if err := s.schedules.Add(ctx, &record); err != nil {
		return Schedule{}, WrapError(err, "failed to create schedule")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "schedule slot created", "schedule_id", record.ID, "day_of_week", record.DayOfWeek)
	return Schedule(record), nil
}

// oneOf lower-cases value and reports whether it is one of allowed.
// An empty value yields def.
func oneOf(value, def string, allowed ...string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return def, true
	}
	for _, a := range allowed {
		if v == a {
			return v, true
		}
	}
	return "", false
}
