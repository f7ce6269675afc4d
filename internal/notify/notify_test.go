package notify

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenter_CollectsAndDrains(t *testing.T) {
	c := NewCenter()
	assert.False(t, c.HasAny())

	Info(c, "Task moved to Done")
	Error(c, "Failed to move task.")

	assert.Equal(t, []Notification{
		{Level: LevelInfo, Message: "Task moved to Done"},
		{Level: LevelError, Message: "Failed to move task."},
	}, c.All())

	drained := c.Drain()
	assert.Len(t, drained, 2)
	assert.False(t, c.HasAny())
	assert.Empty(t, c.Drain())
}

func TestCenter_ConcurrentNotify(t *testing.T) {
	c := NewCenter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Info(c, "hi")
		}()
	}
	wg.Wait()

	assert.Len(t, c.All(), 50)
	c.Clear()
	assert.False(t, c.HasAny())
}

func TestWriter_RoutesByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	w := &Writer{Out: &out, Err: &errOut, Render: RenderPlain}

	Info(w, "Board created successfully")
	Error(w, "Board name is required")
	w.Notify(LevelWarning, "careful")

	assert.Equal(t, "Board created successfully\n", out.String())
	assert.Equal(t, "Board name is required\ncareful\n", errOut.String())
}

func TestWriter_QuietSuppressesInfo(t *testing.T) {
	var out, errOut bytes.Buffer
	w := &Writer{Out: &out, Err: &errOut, Quiet: true, Render: RenderPlain}

	Info(w, "hidden")
	Error(w, "shown")

	assert.Empty(t, out.String())
	assert.Equal(t, "shown\n", errOut.String())
}

func TestRender_ContainsMessage(t *testing.T) {
	assert.Contains(t, Render(Notification{Level: LevelError, Message: "boom"}), "boom")
	assert.Contains(t, Render(Notification{Level: LevelError, Message: "boom"}), "Error")
	assert.Contains(t, RenderInline(Notification{Level: LevelInfo, Message: "ok"}), "ok")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
}

func TestFuncAndDiscard(t *testing.T) {
	var got []string
	n := Func(func(_ Level, msg string) { got = append(got, msg) })
	Info(n, "a")
	Discard.Notify(LevelError, "b")

	assert.Equal(t, []string{"a"}, got)
}
