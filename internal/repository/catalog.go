package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

const (
	arrangedRecordTokens = 6
	timedRecordTokens    = 8
)

var errTokenCount = errors.New("字段数量不正确")

type courseKey struct {
	name    string
	section string
}

// ReadCourseRecords 读取课程目录文件，每行一门课：
// name,title,section,credits,instructorId,meetingDays[,startTime,endTime]
// 无法解析或校验失败的行会被跳过，(name, section) 重复的行只保留第一次出现的
func (r *Repository) ReadCourseRecords(path string) ([]*domain.Course, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: err}
	}
	defer file.Close()

	courses := make([]*domain.Course, 0)
	seen := make(map[courseKey]struct{})
	skipped, duplicates := 0, 0

	reader := bufio.NewReader(file)
	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, &domain.LoadError{Path: path, Err: readErr}
		}
		if raw == "" && readErr != nil {
			break
		}
		lineNo++

		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			course, err := parseCourseRecord(line)
			if err != nil {
				skipped++
				r.logger.Debug("跳过无法解析的课程记录", zap.Int("line", lineNo), zap.Int("length", len(line)), zap.Error(err))
			} else if key := (courseKey{name: course.Name(), section: course.Section()}); hasKey(seen, key) {
				duplicates++
				r.logger.Debug("跳过重复的课程记录", zap.Int("line", lineNo), zap.String("name", key.name), zap.String("section", key.section))
			} else {
				seen[key] = struct{}{}
				courses = append(courses, course)
			}
		}

		if readErr != nil {
			break
		}
	}

	r.logger.Info("课程目录加载完成",
		zap.String("path", path),
		zap.Int("accepted", len(courses)),
		zap.Int("skipped", skipped),
		zap.Int("duplicates", duplicates),
	)

	return courses, nil
}

func hasKey(seen map[courseKey]struct{}, key courseKey) bool {
	_, ok := seen[key]
	return ok
}

func parseCourseRecord(line string) (*domain.Course, error) {
	tokens := strings.Split(line, ",")
	if len(tokens) != arrangedRecordTokens && len(tokens) != timedRecordTokens {
		return nil, fmt.Errorf("%w: %d", errTokenCount, len(tokens))
	}

	name, title, section, instructorID, meetingDays := tokens[0], tokens[1], tokens[2], tokens[4], tokens[5]
	credits, err := strconv.Atoi(tokens[3])
	if err != nil {
		return nil, fmt.Errorf("学分不是整数: %w", err)
	}

	// 时间另行安排的课程不能带开始和结束时间
	if meetingDays == domain.ArrangedDays {
		if len(tokens) != arrangedRecordTokens {
			return nil, fmt.Errorf("%w: 时间另行安排的课程不能包含开始和结束时间", errTokenCount)
		}
		return domain.NewArrangedCourse(name, title, section, credits, instructorID)
	}

	if len(tokens) != timedRecordTokens {
		return nil, fmt.Errorf("%w: 缺少开始或结束时间", errTokenCount)
	}
	startTime, err := strconv.Atoi(tokens[6])
	if err != nil {
		return nil, fmt.Errorf("开始时间不是整数: %w", err)
	}
	endTime, err := strconv.Atoi(tokens[7])
	if err != nil {
		return nil, fmt.Errorf("结束时间不是整数: %w", err)
	}

	return domain.NewCourse(name, title, section, credits, instructorID, meetingDays, startTime, endTime)
}

// WriteCourseRecords 把课程按目录文件的格式写出，供 seed 命令生成测试数据
func (r *Repository) WriteCourseRecords(path string, courses []*domain.Course) error {
	lines := make([]fmt.Stringer, len(courses))
	for i, c := range courses {
		lines[i] = c
	}
	return r.writeLines(path, lines)
}
