package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

func TestWriteActivityRecords(t *testing.T) {
	r := newTestRepository(t)

	course, err := domain.NewCourse("CSC216", "Software Development Fundamentals", "001", 3, "sesmith5", "TH", 1330, 1445)
	require.NoError(t, err)
	arranged, err := domain.NewArrangedCourse("CSC316", "Data Structures and Algorithms", "601", 3, "jtking")
	require.NoError(t, err)
	event, err := domain.NewEvent("Study Group", "MW", 1400, 1500, 2, "weekly review")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schedule.txt")
	require.NoError(t, r.WriteActivityRecords(path, []domain.Activity{course, arranged, event}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"CSC216,Software Development Fundamentals,001,3,sesmith5,TH,1330,1445\n"+
			"CSC316,Data Structures and Algorithms,601,3,jtking,A\n"+
			"Study Group,MW,1400,1500,2,weekly review\n",
		string(content))
}

func TestWriteActivityRecordsEmptyOverwrites(t *testing.T) {
	r := newTestRepository(t)
	path := filepath.Join(t.TempDir(), "schedule.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content\n"), 0o644))

	require.NoError(t, r.WriteActivityRecords(path, nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestWriteActivityRecordsSaveError(t *testing.T) {
	r := newTestRepository(t)
	path := filepath.Join(t.TempDir(), "no-such-dir", "schedule.txt")

	err := r.WriteActivityRecords(path, nil)
	var saveErr *domain.SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, path, saveErr.Path)
}
