package task

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

// ============================================================================
// MOCKS
// ============================================================================

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListTasks(ctx context.Context, boardID string) ([]models.Task, error) {
	args := m.Called(ctx, boardID)
	tasks, _ := args.Get(0).([]models.Task)
	return tasks, args.Error(1)
}

func (m *mockAPI) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	args := m.Called(ctx, in)
	t, _ := args.Get(0).(*models.Task)
	return t, args.Error(1)
}

func (m *mockAPI) UpdateTask(ctx context.Context, id string, in models.TaskUpdate) (*models.Task, error) {
	args := m.Called(ctx, id, in)
	t, _ := args.Get(0).(*models.Task)
	return t, args.Error(1)
}

func (m *mockAPI) DeleteTask(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAPI) AssignTask(ctx context.Context, id, userID string) (*models.Task, error) {
	args := m.Called(ctx, id, userID)
	t, _ := args.Get(0).(*models.Task)
	return t, args.Error(1)
}

// recorder captures audit entries
type recorder struct {
	mu      sync.Mutex
	entries []models.ActivityInput
}

func (r *recorder) Record(e models.ActivityInput) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *recorder) actions() []models.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Action, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

func setup() (*mockAPI, *recorder, Service) {
	api := &mockAPI{}
	rec := &recorder{}
	return api, rec, NewService(api, rec)
}

var sample = models.Task{
	ID:       "t1",
	BoardID:  "b1",
	Title:    "Write docs",
	Status:   models.StatusTodo,
	Priority: models.PriorityMedium,
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreate_AppliesDefaults(t *testing.T) {
	api, rec, svc := setup()
	api.On("CreateTask", mock.Anything, models.TaskInput{
		BoardID:  "b1",
		Title:    "Write docs",
		Status:   models.StatusTodo,
		Priority: models.PriorityMedium,
	}).Return(&sample, nil).Once()

	task, err := svc.Create(context.Background(), CreateTaskRequest{BoardID: "b1", Title: "  Write docs  "})
	require.NoError(t, err)
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, []models.Action{models.ActionCreated}, rec.actions())
	api.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateTaskRequest
		want error
	}{
		{"missing board", CreateTaskRequest{Title: "x"}, ErrInvalidBoardID},
		{"empty title", CreateTaskRequest{BoardID: "b1", Title: " "}, ErrEmptyTitle},
		{"long title", CreateTaskRequest{BoardID: "b1", Title: strings.Repeat("a", 256)}, ErrTitleTooLong},
		{"bad status", CreateTaskRequest{BoardID: "b1", Title: "x", Status: "blocked"}, ErrInvalidStatus},
		{"bad priority", CreateTaskRequest{BoardID: "b1", Title: "x", Priority: "urgent"}, ErrInvalidPriority},
		{"bad due date", CreateTaskRequest{BoardID: "b1", Title: "x", DueDate: "31/12/2025"}, ErrInvalidDueDate},
		{"empty tag", CreateTaskRequest{BoardID: "b1", Title: "x", Tags: []string{"ok", " "}}, ErrEmptyTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, rec, svc := setup()
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			api.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
			assert.Empty(t, rec.actions())
		})
	}
}

func TestCreate_FailureNotAudited(t *testing.T) {
	api, rec, svc := setup()
	api.On("CreateTask", mock.Anything, mock.Anything).Return(nil, errors.New("Failed to create task"))

	_, err := svc.Create(context.Background(), CreateTaskRequest{BoardID: "b1", Title: "x"})
	assert.EqualError(t, err, "Failed to create task")
	assert.Empty(t, rec.actions())
}

// ============================================================================
// UPDATE / STATUS
// ============================================================================

func TestUpdate_StatusChangeAuditsTwice(t *testing.T) {
	api, rec, svc := setup()
	done := models.StatusDone
	api.On("UpdateTask", mock.Anything, "t1", models.TaskUpdate{Status: &done}).
		Return(&models.Task{ID: "t1", BoardID: "b1", Status: done}, nil).Once()

	task := sample
	_, err := svc.Update(context.Background(), UpdateTaskRequest{Task: &task, Status: &done})
	require.NoError(t, err)
	assert.Equal(t, []models.Action{models.ActionUpdated, models.ActionStatusChanged}, rec.actions())
}

func TestUpdate_NoChanges(t *testing.T) {
	api, _, svc := setup()
	task := sample
	_, err := svc.Update(context.Background(), UpdateTaskRequest{Task: &task})
	assert.ErrorIs(t, err, ErrNoChanges)
	api.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeStatus_SingleStatusOnlyUpdate(t *testing.T) {
	api, rec, svc := setup()
	inProgress := models.StatusInProgress
	api.On("UpdateTask", mock.Anything, "t1", models.TaskUpdate{Status: &inProgress}).
		Return(&models.Task{ID: "t1", Status: inProgress}, nil).Once()

	task := sample
	updated, err := svc.ChangeStatus(context.Background(), &task, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	api.AssertNumberOfCalls(t, "UpdateTask", 1)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, models.ActionStatusChanged, rec.entries[0].Action)
	assert.Equal(t, `Changed task "Write docs" status to in-progress`, rec.entries[0].Details)
}

func TestChangeStatus_Rejections(t *testing.T) {
	api, _, svc := setup()
	task := sample

	_, err := svc.ChangeStatus(context.Background(), &task, models.StatusTodo)
	assert.ErrorIs(t, err, ErrAlreadyInStatus)

	_, err = svc.ChangeStatus(context.Background(), &task, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.ChangeStatus(context.Background(), nil, models.StatusDone)
	assert.ErrorIs(t, err, ErrInvalidTaskID)

	api.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

// ============================================================================
// ASSIGN
// ============================================================================

func TestAssign_SameAssigneeMakesNoCall(t *testing.T) {
	api, rec, svc := setup()
	task := sample
	task.AssignedTo = "u1"

	_, err := svc.Assign(context.Background(), &task, &models.User{ID: "u1", Username: "ana"})
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	unassigned := sample
	_, err = svc.Assign(context.Background(), &unassigned, nil)
	assert.ErrorIs(t, err, ErrAlreadyAssigned, "unassigning an unassigned task")

	api.AssertNotCalled(t, "AssignTask", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, rec.actions())
}

func TestAssign_ChangesAssignee(t *testing.T) {
	api, rec, svc := setup()
	api.On("AssignTask", mock.Anything, "t1", "u2").
		Return(&models.Task{ID: "t1", AssignedTo: "u2"}, nil).Once()

	task := sample
	task.AssignedTo = "u1"
	updated, err := svc.Assign(context.Background(), &task, &models.User{ID: "u2", Username: "bo"})
	require.NoError(t, err)
	assert.Equal(t, "u2", updated.AssignedTo)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, models.ActionAssigned, rec.entries[0].Action)
	assert.Equal(t, `Assigned task "Write docs" to bo`, rec.entries[0].Details)
}

func TestAssign_Unassign(t *testing.T) {
	api, _, svc := setup()
	api.On("AssignTask", mock.Anything, "t1", "").Return(&models.Task{ID: "t1"}, nil).Once()

	task := sample
	task.AssignedTo = "u1"
	_, err := svc.Assign(context.Background(), &task, nil)
	require.NoError(t, err)
	api.AssertExpectations(t)
}

// ============================================================================
// DELETE / FIND
// ============================================================================

func TestDelete(t *testing.T) {
	api, rec, svc := setup()
	api.On("DeleteTask", mock.Anything, "t1").Return(nil).Once()

	task := sample
	require.NoError(t, svc.Delete(context.Background(), &task))
	assert.Equal(t, []models.Action{models.ActionDeleted}, rec.actions())
	assert.Equal(t, "b1", rec.entries[0].BoardID)
}

func TestFind(t *testing.T) {
	api, _, svc := setup()
	api.On("ListTasks", mock.Anything, "b1").Return([]models.Task{sample, {ID: "t2", BoardID: "b1"}}, nil)

	found, err := svc.Find(context.Background(), "b1", "t2")
	require.NoError(t, err)
	assert.Equal(t, "t2", found.ID)

	_, err = svc.Find(context.Background(), "b1", "missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

// ============================================================================
// DIALOGS
// ============================================================================

func TestAssignDialog_SameAssigneeStaysOpenWithoutCall(t *testing.T) {
	api, _, svc := setup()
	center := notify.NewCenter()
	reloads := 0
	d := NewAssignDialog(DialogDeps{Service: svc, Notifier: center, Reload: func(context.Context) error {
		reloads++
		return nil
	}})

	task := sample
	task.AssignedTo = "u1"
	require.NoError(t, d.Open(AssignFields{Task: task, Assignee: &models.User{ID: "u1"}}))

	assert.ErrorIs(t, d.Confirm(context.Background()), ErrAlreadyAssigned)
	assert.True(t, d.IsOpen())
	assert.Zero(t, reloads)
	api.AssertNotCalled(t, "AssignTask", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, notify.LevelError, center.All()[0].Level)
}

func TestAssignDialog_Success(t *testing.T) {
	api, _, svc := setup()
	api.On("AssignTask", mock.Anything, "t1", "u2").Return(&models.Task{ID: "t1", AssignedTo: "u2"}, nil).Once()

	center := notify.NewCenter()
	reloads := 0
	d := NewAssignDialog(DialogDeps{Service: svc, Notifier: center, Reload: func(context.Context) error {
		reloads++
		return nil
	}})

	require.NoError(t, d.Open(AssignFields{Task: sample, Assignee: &models.User{ID: "u2", Username: "bo"}}))
	require.NoError(t, d.Confirm(context.Background()))

	assert.Equal(t, 1, reloads)
	assert.False(t, d.IsOpen())
	assert.Equal(t, "Task assigned to bo", center.All()[0].Message)
}

func TestCreateDialog_FailureKeepsFields(t *testing.T) {
	api, _, svc := setup()
	api.On("CreateTask", mock.Anything, mock.Anything).Return(nil, errors.New("Failed to create task")).Once()

	center := notify.NewCenter()
	d := NewCreateDialog(DialogDeps{Service: svc, Notifier: center})

	require.NoError(t, d.Open(Fields{BoardID: "b1", Title: "Ship"}))
	require.Error(t, d.Confirm(context.Background()))

	assert.True(t, d.IsOpen())
	assert.Equal(t, "Ship", d.Fields().Title)
	assert.Equal(t, []notify.Notification{{Level: notify.LevelError, Message: "Failed to create task"}}, center.All())
	api.AssertNumberOfCalls(t, "CreateTask", 1)
}

func TestEditDialog_SendsAllFields(t *testing.T) {
	api, _, svc := setup()
	api.On("UpdateTask", mock.Anything, "t1", mock.MatchedBy(func(u models.TaskUpdate) bool {
		return u.Title != nil && *u.Title == "New title" &&
			u.Priority != nil && *u.Priority == models.PriorityHigh &&
			u.Status != nil && *u.Status == models.StatusTodo
	})).Return(&models.Task{ID: "t1", BoardID: "b1"}, nil).Once()

	d := NewEditDialog(DialogDeps{Service: svc, Notifier: notify.Discard})

	fields := FieldsFrom(&sample)
	fields.Title = "New title"
	fields.Priority = models.PriorityHigh
	require.NoError(t, d.Open(EditFields{Task: sample, Fields: fields}))
	require.NoError(t, d.Confirm(context.Background()))
	api.AssertExpectations(t)
}

func TestDeleteDialog(t *testing.T) {
	api, rec, svc := setup()
	api.On("DeleteTask", mock.Anything, "t1").Return(nil).Once()

	center := notify.NewCenter()
	d := NewDeleteDialog(DialogDeps{Service: svc, Notifier: center})
	require.NoError(t, d.Open(sample))
	require.NoError(t, d.Confirm(context.Background()))

	assert.Equal(t, "Your task has been deleted successfully.", center.All()[0].Message)
	assert.Equal(t, []models.Action{models.ActionDeleted}, rec.actions())
}
