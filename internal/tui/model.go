// Package tui is the interactive kanban board. Boards and tasks are read
// through cache stores that are reloaded after every write; tasks change
// status by drag and drop through the kanban engine, and every other write
// goes through a dialog controller.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/taskdeck/internal/app"
	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/kanban"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
	boardservice "github.com/thenoetrevino/taskdeck/internal/services/board"
	commentservice "github.com/thenoetrevino/taskdeck/internal/services/comment"
	taskservice "github.com/thenoetrevino/taskdeck/internal/services/task"
	"github.com/thenoetrevino/taskdeck/internal/tui/components"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// views holds the cache stores behind each page. The board and detail
// stores are replaced when another board or task is opened.
type views struct {
	api    cache.BoardReader
	boards *cache.Store[cache.BoardsSnapshot]

	mu        sync.Mutex
	boardID   string
	board     *cache.Store[cache.BoardSnapshot]
	taskID    string
	detail    *cache.Store[cache.TaskDetail]
	usernames map[string]string
}

func (v *views) openBoard(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.boardID = id
	v.board = cache.NewStore(cache.BoardView(v.api, id))
}

func (v *views) closeBoard() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.boardID = ""
	v.board = nil
}

func (v *views) currentBoard() (*cache.Store[cache.BoardSnapshot], string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.board, v.boardID
}

func (v *views) openDetail(api cache.TaskDetailReader, task models.Task) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.taskID = task.ID
	v.detail = cache.NewStore(cache.TaskDetailView(api, task))
}

func (v *views) currentDetail() (*cache.Store[cache.TaskDetail], string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.detail, v.taskID
}

func (v *views) setUsers(users []models.User) {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	v.mu.Lock()
	v.usernames = names
	v.mu.Unlock()
}

func (v *views) usernameMap() map[string]string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.usernames
}

// reloadBoard refreshes the open board, if any
func (v *views) reloadBoard(ctx context.Context) error {
	store, _ := v.currentBoard()
	if store == nil {
		return nil
	}
	return store.Reload(ctx)
}

// reloadDetail refreshes the open comment thread, if any
func (v *views) reloadDetail(ctx context.Context) error {
	store, _ := v.currentDetail()
	if store == nil {
		return nil
	}
	return store.Reload(ctx)
}

// dialogs are the mutation controllers of the board view
type dialogs struct {
	createBoard *dialog.Controller[boardservice.Fields]
	editBoard   *dialog.Controller[boardservice.Fields]
	deleteBoard *dialog.Controller[models.Board]
	createTask  *dialog.Controller[taskservice.Fields]
	editTask    *dialog.Controller[taskservice.EditFields]
	deleteTask  *dialog.Controller[models.Task]
	assignTask  *dialog.Controller[taskservice.AssignFields]
	addComment  *dialog.Controller[commentservice.AddFields]
}

// Model represents the application state for the TUI
type Model struct {
	ctx  context.Context
	app  *app.App
	keys keyMap

	views         *views
	dialogs       *dialogs
	engine        *kanban.Engine
	notifications *notify.Center

	uiState *state.UIState
	form    *state.FormState
	picker  *state.PickerState
	comment *state.FormState
}

// New creates the board view for a signed-in app
func New(ctx context.Context, a *app.App) Model {
	center := notify.NewCenter()
	v := &views{
		api:       a.API(),
		boards:    cache.NewStore(cache.BoardsView(a.API())),
		usernames: map[string]string{},
	}

	reloadBoards := func(ctx context.Context) error { return v.boards.Reload(ctx) }

	boardDeps := a.BoardDialogs(reloadBoards)
	boardDeps.Notifier = center
	taskDeps := a.TaskDialogs(v.reloadBoard)
	taskDeps.Notifier = center
	commentDeps := a.CommentDialogs(v.reloadDetail)
	commentDeps.Notifier = center

	components.InitStyles(&a.Config.ColorScheme)

	return Model{
		ctx:  ctx,
		app:  a,
		keys: newKeyMap(a.Config.KeyMappings),

		views: v,
		dialogs: &dialogs{
			createBoard: boardservice.NewCreateDialog(boardDeps),
			editBoard:   boardservice.NewEditDialog(boardDeps),
			deleteBoard: boardservice.NewDeleteDialog(boardDeps),
			createTask:  taskservice.NewCreateDialog(taskDeps),
			editTask:    taskservice.NewEditDialog(taskDeps),
			deleteTask:  taskservice.NewDeleteDialog(taskDeps),
			assignTask:  taskservice.NewAssignDialog(taskDeps),
			addComment:  commentservice.NewAddDialog(commentDeps),
		},
		engine:        kanban.NewEngine(a.TaskService, v.reloadBoard, center),
		notifications: center,

		uiState: state.NewUIState(),
	}
}

// Init loads the boards page and the user directory
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoards(), m.loadUsers())
}

// Run shows the board view until the user quits
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// ============================================================================
// SELECTION
// ============================================================================

// boardsSnapshot returns the boards page data, empty until loaded
func (m Model) boardsSnapshot() cache.BoardsSnapshot {
	snap, _ := m.views.boards.Get()
	return snap
}

// selectedBoard returns the highlighted board on the boards page
func (m Model) selectedBoard() *models.Board {
	boards := m.boardsSnapshot().Boards
	i := m.uiState.SelectedBoard()
	if i < 0 || i >= len(boards) {
		return nil
	}
	b := boards[i]
	return &b
}

// boardSnapshot returns the open board and whether it has loaded
func (m Model) boardSnapshot() (cache.BoardSnapshot, bool) {
	store, _ := m.views.currentBoard()
	if store == nil {
		return cache.BoardSnapshot{}, false
	}
	return store.Get()
}

// columns returns the tasks of the open board grouped per column
func (m Model) columns() [][]models.Task {
	snap, _ := m.boardSnapshot()
	return kanban.Group(snap.Tasks)
}

// currentColumn returns the selected column
func (m Model) currentColumn() kanban.Column {
	i := min(max(m.uiState.SelectedColumn(), 0), len(kanban.Columns)-1)
	return kanban.Columns[i]
}

// getCurrentTasks returns the tasks of the selected column.
// Returns an empty slice if the column has no tasks.
func (m Model) getCurrentTasks() []models.Task {
	cols := m.columns()
	i := m.uiState.SelectedColumn()
	if i < 0 || i >= len(cols) || cols[i] == nil {
		return []models.Task{}
	}
	return cols[i]
}

// getCurrentTask returns the selected task, or nil when the column is empty
func (m Model) getCurrentTask() *models.Task {
	tasks := m.getCurrentTasks()
	i := m.uiState.SelectedTask()
	if i < 0 || i >= len(tasks) {
		return nil
	}
	t := tasks[i]
	return &t
}

// clampSelection keeps the cursor on an existing task after a reload
func (m Model) clampSelection() {
	m.uiState.ClampSelection(m.currentColumn().Status, len(m.getCurrentTasks()))
}

// ensureTaskVisible scrolls the selected column to the selected task
func (m Model) ensureTaskVisible() {
	m.uiState.EnsureTaskVisible(m.currentColumn().Status, m.uiState.SelectedTask(),
		components.MaxVisibleTasks(m.uiState.ContentHeight()))
}
