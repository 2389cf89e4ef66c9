package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

func TestGenerateInstructorIDFromChineseName(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+[0-9]{1,3}$`)
	for i := 0; i < 50; i++ {
		id := GenerateInstructorIDFromChineseName(GenerateRandomChineseName())
		assert.Regexp(t, pattern, id)
	}
}

func TestGenerateRandomMeetingDays(t *testing.T) {
	for i := 0; i < 100; i++ {
		days := GenerateRandomMeetingDays("MTWHF")
		require.NotEmpty(t, days)
		assert.LessOrEqual(t, len(days), 3)
		assert.Regexp(t, `^M?T?W?H?F?$`, days)
	}
}

func TestGenerateRandomCatalog(t *testing.T) {
	courses, err := GenerateRandomCatalog(40)
	require.NoError(t, err)
	require.Len(t, courses, 40)
	assert.NoError(t, ValidateCourseCatalog(courses))
}

func TestGenerateRandomCatalogTooLarge(t *testing.T) {
	_, err := GenerateRandomCatalog(MaxRandomCatalogSize + 1)
	assert.Error(t, err)

	_, err = GenerateRandomCatalog(-1)
	assert.Error(t, err)
}

func TestGenerateRandomEvent(t *testing.T) {
	for i := 0; i < 20; i++ {
		e, err := GenerateRandomEvent()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, e.WeeklyRepeat(), 1)
		assert.LessOrEqual(t, e.WeeklyRepeat(), 4)
	}
}

func TestValidateScheduleActivities(t *testing.T) {
	c1, err := domain.NewCourse("CSC216", "Software Development Fundamentals", "001", 3, "sesmith5", "TH", 1330, 1445)
	require.NoError(t, err)
	c2, err := domain.NewCourse("CSC216", "Software Development Fundamentals", "002", 3, "ixdoming", "MW", 1330, 1445)
	require.NoError(t, err)
	c3, err := domain.NewCourse("CSC226", "Discrete Mathematics for Computer Scientists", "001", 3, "tmbarnes", "MWF", 935, 1025)
	require.NoError(t, err)
	e1, err := domain.NewEvent("Study Group", "H", 1400, 1500, 1, "")
	require.NoError(t, err)
	e2, err := domain.NewEvent("Gym", "S", 1400, 1500, 1, "")
	require.NoError(t, err)

	assert.NoError(t, ValidateScheduleActivities(nil))
	assert.NoError(t, ValidateScheduleActivities([]domain.Activity{c1, c3, e2}))

	err = ValidateScheduleActivities([]domain.Activity{c1, c3, c2})
	var dupErr *domain.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "第 1 项和第 3 项重复", dupErr.Error())

	err = ValidateScheduleActivities([]domain.Activity{c3, c1, e2, e1})
	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "第 2 项和第 4 项时间冲突", conflictErr.Error())
}

func TestValidateCourseCatalog(t *testing.T) {
	c1, err := domain.NewCourse("CSC216", "Software Development Fundamentals", "001", 3, "sesmith5", "TH", 1330, 1445)
	require.NoError(t, err)
	c2, err := domain.NewCourse("CSC216", "Another", "001", 3, "ixdoming", "MW", 1330, 1445)
	require.NoError(t, err)

	var dupErr *domain.DuplicateError
	require.ErrorAs(t, ValidateCourseCatalog([]*domain.Course{c1, c2}), &dupErr)
	assert.Contains(t, dupErr.Error(), "CSC216-001")
}
