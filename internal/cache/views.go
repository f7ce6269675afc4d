package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"golang.org/x/sync/errgroup"
)

// ErrBoardNotFound is returned when the board behind a view no longer exists.
// Views treat it as a signal to navigate away.
var ErrBoardNotFound = errors.New("board not found")

// BoardReader is what the board views need from the gateway
type BoardReader interface {
	ListBoards(ctx context.Context) ([]models.Board, error)
	GetBoard(ctx context.Context, id string) (*models.Board, error)
	ListTasks(ctx context.Context, boardID string) ([]models.Task, error)
}

// TaskDetailReader is what the task detail view needs from the gateway
type TaskDetailReader interface {
	ListComments(ctx context.Context, taskID string) ([]models.Comment, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// ============================================================================
// BOARD
// ============================================================================

// BoardSnapshot is a board together with all of its tasks
type BoardSnapshot struct {
	Board models.Board
	Tasks []models.Task
}

// BoardView loads one board and its tasks concurrently. Nothing is
// published unless both requests succeed.
func BoardView(api BoardReader, boardID string) Loader[BoardSnapshot] {
	return func(ctx context.Context) (BoardSnapshot, error) {
		var (
			board *models.Board
			tasks []models.Task
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			b, err := api.GetBoard(gctx, boardID)
			if err != nil {
				if errors.Is(err, gateway.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
				}
				return err
			}
			board = b
			return nil
		})
		g.Go(func() error {
			t, err := api.ListTasks(gctx, boardID)
			if err != nil {
				if errors.Is(err, gateway.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
				}
				return err
			}
			tasks = t
			return nil
		})

		if err := g.Wait(); err != nil {
			return BoardSnapshot{}, err
		}
		return BoardSnapshot{Board: *board, Tasks: tasks}, nil
	}
}

// ============================================================================
// BOARD LIST
// ============================================================================

// BoardsSnapshot is the board list with the number of tasks on each board
type BoardsSnapshot struct {
	Boards     []models.Board
	TaskCounts map[string]int
}

// BoardsView loads every board, then counts tasks per board with one
// request per board.
func BoardsView(api BoardReader) Loader[BoardsSnapshot] {
	return func(ctx context.Context) (BoardsSnapshot, error) {
		boards, tasks, err := loadBoardsWithTasks(ctx, api)
		if err != nil {
			return BoardsSnapshot{}, err
		}

		counts := make(map[string]int, len(boards))
		for _, b := range boards {
			counts[b.ID] = 0
		}
		for _, t := range tasks {
			counts[t.BoardID]++
		}
		return BoardsSnapshot{Boards: boards, TaskCounts: counts}, nil
	}
}

// ============================================================================
// DASHBOARD
// ============================================================================

// DashboardSnapshot is every board and every task the user can see
type DashboardSnapshot struct {
	Boards []models.Board
	Tasks  []models.Task
}

// DashboardView lists the boards, then fans out one task request per board.
// Any failure fails the whole load.
func DashboardView(api BoardReader) Loader[DashboardSnapshot] {
	return func(ctx context.Context) (DashboardSnapshot, error) {
		boards, tasks, err := loadBoardsWithTasks(ctx, api)
		if err != nil {
			return DashboardSnapshot{}, err
		}
		return DashboardSnapshot{Boards: boards, Tasks: tasks}, nil
	}
}

// loadBoardsWithTasks returns the boards and the tasks of all of them,
// concatenated in board order.
func loadBoardsWithTasks(ctx context.Context, api BoardReader) ([]models.Board, []models.Task, error) {
	boards, err := api.ListBoards(ctx)
	if err != nil {
		return nil, nil, err
	}

	perBoard := make([][]models.Task, len(boards))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range boards {
		g.Go(func() error {
			tasks, err := api.ListTasks(gctx, b.ID)
			if err != nil {
				return err
			}
			perBoard[i] = tasks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var all []models.Task
	for _, tasks := range perBoard {
		all = append(all, tasks...)
	}
	return boards, all, nil
}

// ============================================================================
// TASK DETAIL
// ============================================================================

// TaskDetail is a task with its comments and the users referenced by them
type TaskDetail struct {
	Task     models.Task
	Assignee *models.User
	Comments []models.Comment
	Authors  map[string]models.User
}

// AuthorName returns the username of a comment author, or "Unknown User"
func (d TaskDetail) AuthorName(userID string) string {
	if u, ok := d.Authors[userID]; ok {
		return u.Username
	}
	return "Unknown User"
}

// TaskDetailView loads the comments on task and resolves the assignee and
// comment authors. User lookups that fail are left out.
func TaskDetailView(api TaskDetailReader, task models.Task) Loader[TaskDetail] {
	return func(ctx context.Context) (TaskDetail, error) {
		comments, err := api.ListComments(ctx, task.ID)
		if err != nil {
			return TaskDetail{}, err
		}

		ids := make(map[string]struct{})
		for _, c := range comments {
			ids[c.UserID] = struct{}{}
		}
		if task.AssignedTo != "" {
			ids[task.AssignedTo] = struct{}{}
		}

		var (
			mu      sync.Mutex
			authors = make(map[string]models.User, len(ids))
			wg      sync.WaitGroup
		)
		for id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				u, err := api.GetUser(ctx, id)
				if err != nil {
					return
				}
				mu.Lock()
				authors[id] = *u
				mu.Unlock()
			}()
		}
		wg.Wait()

		detail := TaskDetail{Task: task, Comments: comments, Authors: authors}
		if u, ok := authors[task.AssignedTo]; ok {
			detail.Assignee = &u
		}
		return detail, nil
	}
}
