package board

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

// ============================================================================
// MOCK API
// ============================================================================

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListBoards(ctx context.Context) ([]models.Board, error) {
	args := m.Called(ctx)
	boards, _ := args.Get(0).([]models.Board)
	return boards, args.Error(1)
}

func (m *mockAPI) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Board)
	return b, args.Error(1)
}

func (m *mockAPI) CreateBoard(ctx context.Context, in models.BoardInput) (*models.Board, error) {
	args := m.Called(ctx, in)
	b, _ := args.Get(0).(*models.Board)
	return b, args.Error(1)
}

func (m *mockAPI) UpdateBoard(ctx context.Context, id string, in models.BoardUpdate) (*models.Board, error) {
	args := m.Called(ctx, id, in)
	b, _ := args.Get(0).(*models.Board)
	return b, args.Error(1)
}

func (m *mockAPI) DeleteBoard(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAPI) ListActivities(ctx context.Context, boardID string) ([]models.Activity, error) {
	args := m.Called(ctx, boardID)
	acts, _ := args.Get(0).([]models.Activity)
	return acts, args.Error(1)
}

// ============================================================================
// SERVICE
// ============================================================================

func TestCreate_TrimsAndSends(t *testing.T) {
	api := &mockAPI{}
	api.On("CreateBoard", mock.Anything, models.BoardInput{Name: "Roadmap", Description: "Q3 plans"}).
		Return(&models.Board{ID: "b1", Name: "Roadmap"}, nil).Once()

	svc := NewService(api)
	b, err := svc.Create(context.Background(), CreateBoardRequest{Name: "  Roadmap ", Description: " Q3 plans "})

	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
	api.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateBoardRequest
		want error
	}{
		{"empty name", CreateBoardRequest{Name: "   "}, ErrEmptyName},
		{"long name", CreateBoardRequest{Name: strings.Repeat("x", 101)}, ErrNameTooLong},
		{"long description", CreateBoardRequest{Name: "ok", Description: strings.Repeat("x", 501)}, ErrDescriptionTooLong},
		{"duplicate member", CreateBoardRequest{Name: "ok", Members: []string{"u1", "u1"}}, ErrDuplicateMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAPI{}
			_, err := NewService(api).Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			api.AssertNotCalled(t, "CreateBoard", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdate_OnlySetFields(t *testing.T) {
	api := &mockAPI{}
	api.On("UpdateBoard", mock.Anything, "b1", mock.MatchedBy(func(u models.BoardUpdate) bool {
		return u.Name != nil && *u.Name == "Renamed" && u.Description == nil && u.Members == nil
	})).Return(&models.Board{ID: "b1", Name: "Renamed"}, nil).Once()

	name := " Renamed "
	b, err := NewService(api).Update(context.Background(), UpdateBoardRequest{ID: "b1", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", b.Name)
	api.AssertExpectations(t)
}

func TestUpdate_RejectsEmptyName(t *testing.T) {
	api := &mockAPI{}
	empty := ""
	_, err := NewService(api).Update(context.Background(), UpdateBoardRequest{ID: "b1", Name: &empty})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewService(api).Update(context.Background(), UpdateBoardRequest{})
	assert.ErrorIs(t, err, ErrInvalidBoardID)
}

func TestDelete_SingleRequest(t *testing.T) {
	api := &mockAPI{}
	api.On("DeleteBoard", mock.Anything, "b1").Return(nil).Once()

	require.NoError(t, NewService(api).Delete(context.Background(), "b1"))
	api.AssertNumberOfCalls(t, "DeleteBoard", 1)

	assert.ErrorIs(t, NewService(api).Delete(context.Background(), " "), ErrInvalidBoardID)
}

func TestGet_NotFound(t *testing.T) {
	api := &mockAPI{}
	api.On("GetBoard", mock.Anything, "gone").
		Return(nil, &gateway.RequestError{Status: http.StatusNotFound, Message: "Board not found"})

	_, err := NewService(api).Get(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivities(t *testing.T) {
	api := &mockAPI{}
	api.On("ListActivities", mock.Anything, "b1").
		Return([]models.Activity{{ID: "a1", Action: models.ActionAssigned}}, nil)

	acts, err := NewService(api).Activities(context.Background(), "b1")
	require.NoError(t, err)
	assert.Len(t, acts, 1)
}

// ============================================================================
// DIALOGS
// ============================================================================

func TestCreateDialog_ReloadsAndCloses(t *testing.T) {
	api := &mockAPI{}
	api.On("CreateBoard", mock.Anything, mock.Anything).Return(&models.Board{ID: "b1"}, nil).Once()

	center := notify.NewCenter()
	reloads := 0
	d := NewCreateDialog(DialogDeps{
		Service:  NewService(api),
		Notifier: center,
		Reload:   func(context.Context) error { reloads++; return nil },
	})

	require.NoError(t, d.Open(Fields{Name: "Roadmap"}))
	require.NoError(t, d.Confirm(context.Background()))

	assert.Equal(t, 1, reloads)
	assert.False(t, d.IsOpen())
	assert.Equal(t, "Your new board has been created successfully.", center.All()[0].Message)
}

func TestCreateDialog_EmptyNameStaysOpen(t *testing.T) {
	api := &mockAPI{}
	center := notify.NewCenter()
	d := NewCreateDialog(DialogDeps{Service: NewService(api), Notifier: center})

	require.NoError(t, d.Open(Fields{Name: "  "}))
	assert.ErrorIs(t, d.Confirm(context.Background()), ErrEmptyName)
	assert.True(t, d.IsOpen())
	api.AssertNotCalled(t, "CreateBoard", mock.Anything, mock.Anything)
	assert.Equal(t, notify.LevelError, center.All()[0].Level)
}

func TestEditDialog_FailureSurfacesServerMessage(t *testing.T) {
	api := &mockAPI{}
	api.On("UpdateBoard", mock.Anything, "b1", mock.Anything).
		Return(nil, &gateway.RequestError{Status: http.StatusForbidden, Message: "Only the owner can edit this board"})

	center := notify.NewCenter()
	d := NewEditDialog(DialogDeps{Service: NewService(api), Notifier: center})

	require.NoError(t, d.Open(FieldsFrom(&models.Board{ID: "b1", Name: "Roadmap"})))
	require.Error(t, d.Confirm(context.Background()))

	assert.True(t, d.IsOpen())
	assert.Equal(t, "Only the owner can edit this board", center.All()[0].Message)
}

func TestDeleteDialog(t *testing.T) {
	api := &mockAPI{}
	api.On("DeleteBoard", mock.Anything, "b1").Return(nil).Once()

	center := notify.NewCenter()
	d := NewDeleteDialog(DialogDeps{Service: NewService(api), Notifier: center})

	require.NoError(t, d.Open(models.Board{ID: "b1", Name: "Roadmap"}))
	require.NoError(t, d.Confirm(context.Background()))
	api.AssertExpectations(t)
	assert.Equal(t, "Your board has been deleted successfully.", center.All()[0].Message)
}
