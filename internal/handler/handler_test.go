package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/config"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/repository"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/scheduler"
)

func newTestHandler(t *testing.T, jsonOutput bool) (*Handler, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Schedule.ExportPath = filepath.Join(t.TempDir(), "schedule.txt")
	cfg.Calendar.TermStart = "2025-08-18"
	cfg.Calendar.Weeks = 2
	cfg.Calendar.Timezone = "UTC"

	repo := repository.NewRepository(cfg, zap.NewNop())
	s, err := scheduler.New(repo, zap.NewNop(), "../../test-files/course_records.txt")
	require.NoError(t, err)

	out := &bytes.Buffer{}
	h, err := NewHandler(cfg, s, zap.NewNop(), out, jsonOutput)
	require.NoError(t, err)
	h.RegisterCommands()
	return h, out
}

// run 执行一条命令并返回解析后的 JSON 响应
func run(t *testing.T, h *Handler, out *bytes.Buffer, line string) Response {
	t.Helper()
	out.Reset()
	require.True(t, h.Handle(context.Background(), line))

	var resp Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp), out.String())
	return resp
}

func TestHandleQuit(t *testing.T) {
	h, out := newTestHandler(t, false)

	assert.False(t, h.Handle(context.Background(), "quit"))
	assert.False(t, h.Handle(context.Background(), "  EXIT "))
	assert.True(t, h.Handle(context.Background(), ""))
	assert.Empty(t, out.String())
}

func TestUnknownCommand(t *testing.T) {
	h, out := newTestHandler(t, true)

	resp := run(t, h, out, "frobnicate now")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "frobnicate")
}

func TestAddCourseCommand(t *testing.T) {
	h, out := newTestHandler(t, true)

	resp := run(t, h, out, "add CSC216 001")
	assert.True(t, resp.Success, resp.Message)

	resp = run(t, h, out, "add CSC216 002")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "CSC216")

	resp = run(t, h, out, "add CSC999 001")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "CSC999-001")

	resp = run(t, h, out, "add CSC216")
	assert.False(t, resp.Success)

	// 班号格式由请求校验拦截
	resp = run(t, h, out, "add CSC216 1")
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestEventCommand(t *testing.T) {
	h, out := newTestHandler(t, true)

	resp := run(t, h, out, "add CSC216 002")
	require.True(t, resp.Success, resp.Message)

	resp = run(t, h, out, "event Study Group|TH|1330|1445|2|weekly review")
	assert.True(t, resp.Success, resp.Message)

	resp = run(t, h, out, "event Lunch|mw|1400|1500|1")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "冲突")

	resp = run(t, h, out, "event Lunch|MW|noon|1300|1")
	assert.False(t, resp.Success)
	assert.Equal(t, "开始时间必须是整数", resp.Message)

	resp = run(t, h, out, "event Lunch|MW|1200|1300|9")
	assert.False(t, resp.Success)

	resp = run(t, h, out, "event Lunch|MX|1200|1300|1")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "上课日")

	resp = run(t, h, out, "event only-title")
	assert.False(t, resp.Success)

	resp = run(t, h, out, "credits")
	assert.True(t, resp.Success)
	assert.EqualValues(t, 3, resp.Data)
}

func TestShowAndRemoveCommands(t *testing.T) {
	h, out := newTestHandler(t, false)

	require.True(t, h.Handle(context.Background(), "add CSC216 001"))
	require.True(t, h.Handle(context.Background(), "add CSC226 001"))
	out.Reset()

	require.True(t, h.Handle(context.Background(), "show"))
	text := out.String()
	assert.Contains(t, text, "My Schedule")
	assert.Contains(t, text, "Meeting Information")
	assert.Contains(t, text, "TH 1:30PM-2:45PM")
	assert.Contains(t, text, "MWF 9:35AM-10:25AM")

	out.Reset()
	require.True(t, h.Handle(context.Background(), "remove 3"))
	assert.True(t, strings.HasPrefix(out.String(), "错误"))

	out.Reset()
	require.True(t, h.Handle(context.Background(), "remove 1"))
	out.Reset()
	require.True(t, h.Handle(context.Background(), "full"))
	assert.NotContains(t, out.String(), "CSC216")
	assert.Contains(t, out.String(), "tmbarnes")

	out.Reset()
	require.True(t, h.Handle(context.Background(), "reset"))
	out.Reset()
	require.True(t, h.Handle(context.Background(), "show"))
	assert.Contains(t, out.String(), "（空）")
}

func TestTitleCommand(t *testing.T) {
	h, out := newTestHandler(t, true)

	resp := run(t, h, out, "title")
	assert.Equal(t, "My Schedule", resp.Data)

	resp = run(t, h, out, "title Fall 2025")
	assert.True(t, resp.Success)

	resp = run(t, h, out, "title")
	assert.Equal(t, "Fall 2025", resp.Data)
}

func TestSearchCommand(t *testing.T) {
	h, out := newTestHandler(t, true)

	resp := run(t, h, out, "search e115")
	require.True(t, resp.Success)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Len(t, data["rows"], 2)

	resp = run(t, h, out, "search")
	assert.False(t, resp.Success)
}

func TestExportCommands(t *testing.T) {
	h, out := newTestHandler(t, true)
	dir := t.TempDir()

	resp := run(t, h, out, "add CSC216 601")
	require.True(t, resp.Success)

	resp = run(t, h, out, "export")
	require.True(t, resp.Success, resp.Message)
	content, err := os.ReadFile(h.config.Schedule.ExportPath)
	require.NoError(t, err)
	assert.Equal(t, "CSC216,Software Development Fundamentals,601,3,jctetter,A\n", string(content))

	resp = run(t, h, out, "export "+filepath.Join(dir, "missing", "x.txt"))
	assert.False(t, resp.Success)

	resp = run(t, h, out, "workbook "+filepath.Join(dir, "s.xlsx"))
	assert.True(t, resp.Success, resp.Message)
	assert.FileExists(t, filepath.Join(dir, "s.xlsx"))

	resp = run(t, h, out, "calendar "+filepath.Join(dir, "s.ics"))
	assert.True(t, resp.Success, resp.Message)
	assert.FileExists(t, filepath.Join(dir, "s.ics"))

	resp = run(t, h, out, "workbook")
	assert.False(t, resp.Success)
}

func TestCheckCommand(t *testing.T) {
	h, out := newTestHandler(t, true)

	resp := run(t, h, out, "add CSC216 001")
	require.True(t, resp.Success)
	resp = run(t, h, out, "check")
	assert.True(t, resp.Success)
}

func TestRecovererHandlesPanic(t *testing.T) {
	h, out := newTestHandler(t, true)
	h.register("boom", "boom", "", func(w *ResponseWriter, r *Request) {
		panic("boom")
	})

	resp := run(t, h, out, "boom")
	assert.False(t, resp.Success)
	assert.Equal(t, "内部错误", resp.Message)
}

func TestHelpCommand(t *testing.T) {
	h, out := newTestHandler(t, false)

	require.True(t, h.Handle(context.Background(), "help"))
	for _, name := range []string{"catalog", "add", "event", "calendar", "quit"} {
		assert.Contains(t, out.String(), name)
	}
}
