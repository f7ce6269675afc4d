package comment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/testutil"
	clitest "github.com/thenoetrevino/taskdeck/internal/testutil/cli"
)

func TestAddComment(t *testing.T) {
	ts, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, ts, app, "ada")
	ctx := context.Background()
	board, err := app.API().CreateBoard(ctx, models.BoardInput{Name: "Launch"})
	require.NoError(t, err)
	task, err := app.API().CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Write docs"})
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
		"--board", board.ID, "--task", task.ID, "--content", "  Deployed to staging  ")
	require.NoError(t, err)
	assert.Contains(t, output, "Your comment has been added successfully.")

	comments, err := app.API().ListComments(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Deployed to staging", comments[0].Content)

	clitest.Flush(t, app)
	require.Eventually(t, func() bool {
		activities, err := app.API().ListActivities(ctx, board.ID)
		return err == nil && len(activities) == 1 && activities[0].Action == models.ActionCommented
	}, time.Second, 10*time.Millisecond)
}

func TestAddComment_Empty(t *testing.T) {
	ts, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, ts, app, "ada")
	ctx := context.Background()
	board, err := app.API().CreateBoard(ctx, models.BoardInput{Name: "Launch"})
	require.NoError(t, err)
	task, err := app.API().CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Write docs"})
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
		"--board", board.ID, "--task", task.ID, "--content", "   ")
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, output, "comment cannot be empty")
}

func TestListEditDeleteComments(t *testing.T) {
	ts, app := clitest.SetupCLITest(t)
	clitest.SignIn(t, ts, app, "ada")
	ctx := context.Background()
	board, err := app.API().CreateBoard(ctx, models.BoardInput{Name: "Launch"})
	require.NoError(t, err)
	task, err := app.API().CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Write docs"})
	require.NoError(t, err)
	first, err := app.API().CreateComment(ctx, models.CommentInput{TaskID: task.ID, Content: "first"})
	require.NoError(t, err)
	_, err = app.API().CreateComment(ctx, models.CommentInput{TaskID: task.ID, Content: "second"})
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), "--board", board.ID, "--task", task.ID)
	require.NoError(t, err)
	assert.Less(t, strings.Index(output, "first"), strings.Index(output, "second"))
	assert.Contains(t, output, "ada")

	_, err = clitest.ExecuteCLICommand(t, app, EditCmd(), "--id", first.ID, "--content", "first, edited")
	require.NoError(t, err)

	_, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), "--id", first.ID, "--force")
	require.NoError(t, err)

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), "--board", board.ID, "--task", task.ID, "--json")
	require.NoError(t, err)
	var result struct {
		Data []models.Comment `json:"data"`
	}
	testutil.ParseJSON(t, output, &result)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "second", result.Data[0].Content)
}

func TestEditComment_OnlyAuthor(t *testing.T) {
	ts, app := clitest.SetupCLITest(t)
	owner := clitest.SignIn(t, ts, app, "ada")
	ctx := context.Background()

	graceClient, grace := ts.Register(t, "grace")
	board, err := app.API().CreateBoard(ctx, models.BoardInput{Name: "Launch", Members: []string{grace.ID}})
	require.NoError(t, err)
	task, err := app.API().CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Write docs"})
	require.NoError(t, err)
	theirs, err := graceClient.CreateComment(ctx, models.CommentInput{TaskID: task.ID, Content: "grace was here"})
	require.NoError(t, err)
	require.NotEqual(t, owner.ID, theirs.UserID)

	output, err := clitest.ExecuteCLICommand(t, app, EditCmd(), "--id", theirs.ID, "--content", "ada was here")
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.Contains(t, output, "Only the author can change a comment")
}
