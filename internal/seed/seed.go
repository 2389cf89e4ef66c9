package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/repository"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/utils"
)

// 教务系统导出的 CSV 表头
var RegistrarHeaders = []string{"课程代码", "课程名称", "班号", "学分", "教师", "上课日", "开始时间", "结束时间"}

// SeedRandomCatalog 生成 n 门随机课程并写成课程目录文件
func SeedRandomCatalog(r *repository.Repository, logger *zap.Logger, n int, output string) error {
	courses, err := utils.GenerateRandomCatalog(n)
	if err != nil {
		return err
	}
	if err := utils.ValidateCourseCatalog(courses); err != nil {
		return err
	}
	if err := r.WriteCourseRecords(output, courses); err != nil {
		return err
	}

	logger.Info("随机课程目录已生成", zap.String("output", output), zap.Int("count", len(courses)))
	return nil
}

// SeedRegistrarData 把教务系统导出的 CSV 转换成课程目录文件，无法转换的行会被跳过
func SeedRegistrarData(r *repository.Repository, logger *zap.Logger, input string, output string) error {
	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	courses, err := ParseRegistrarCSV(file, logger)
	if err != nil {
		return err
	}
	if err := r.WriteCourseRecords(output, courses); err != nil {
		return err
	}

	logger.Info("教务数据转换完成", zap.String("input", input), zap.String("output", output), zap.Int("count", len(courses)))
	return nil
}

func ParseRegistrarCSV(reader io.Reader, logger *zap.Logger) ([]*domain.Course, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	// 读取表头
	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(headers[i], "\uFEFF"))
	}
	for _, key := range RegistrarHeaders {
		if !slices.Contains(headers, key) {
			return nil, fmt.Errorf("没有找到列 %s", key)
		}
	}

	courses := make([]*domain.Course, 0)
	seen := make(map[string]struct{})
	line := 1
	for {
		row, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("读取文件失败: %w", err)
		}
		line++

		record := make(map[string]string, len(headers))
		for i, value := range row {
			if i < len(headers) {
				record[headers[i]] = strings.TrimSpace(value)
			}
		}

		course, err := courseFromRecord(record)
		if err != nil {
			logger.Warn("跳过无法转换的行", zap.Int("line", line), zap.Error(err))
			continue
		}

		key := course.Name() + "-" + course.Section()
		if _, ok := seen[key]; ok {
			logger.Warn("跳过重复的课程", zap.Int("line", line), zap.String("course", key))
			continue
		}
		seen[key] = struct{}{}
		courses = append(courses, course)
	}

	return courses, nil
}

func courseFromRecord(record map[string]string) (*domain.Course, error) {
	// 课程目录用逗号分隔字段
	for _, key := range RegistrarHeaders {
		if strings.Contains(record[key], ",") {
			return nil, fmt.Errorf("%s 中不能包含逗号", key)
		}
	}

	credits, err := strconv.Atoi(record["学分"])
	if err != nil {
		return nil, fmt.Errorf("学分 %q 不是整数", record["学分"])
	}

	meetingDays := strings.ToUpper(record["上课日"])
	if meetingDays == domain.ArrangedDays {
		return domain.NewArrangedCourse(record["课程代码"], record["课程名称"], record["班号"], credits, record["教师"])
	}

	startTime, err := parseRegistrarTime(record["开始时间"])
	if err != nil {
		return nil, err
	}
	endTime, err := parseRegistrarTime(record["结束时间"])
	if err != nil {
		return nil, err
	}

	return domain.NewCourse(record["课程代码"], record["课程名称"], record["班号"], credits, record["教师"], meetingDays, startTime, endTime)
}

// parseRegistrarTime 支持 "13:30" 和 "1330" 两种写法
func parseRegistrarTime(s string) (int, error) {
	t, err := strconv.Atoi(strings.Replace(s, ":", "", 1))
	if err != nil {
		return 0, fmt.Errorf("时间 %q 格式错误", s)
	}
	return t, nil
}

// SeedSampleSchedule 从课程目录中随机挑选最多 n 门互不冲突的课程，再加上最多 events 个随机事件，写成日程文件
func SeedSampleSchedule(r *repository.Repository, logger *zap.Logger, catalogPath string, n int, events int, output string) error {
	catalog, err := r.ReadCourseRecords(catalogPath)
	if err != nil {
		return err
	}

	schedule := PickSampleSchedule(catalog, n)
	schedule, err = AppendSampleEvents(schedule, events)
	if err != nil {
		return err
	}
	if err := utils.ValidateScheduleActivities(schedule); err != nil {
		return err
	}
	if err := r.WriteActivityRecords(output, schedule); err != nil {
		return err
	}

	logger.Info("示例日程已生成", zap.String("output", output), zap.Int("count", len(schedule)))
	return nil
}

func PickSampleSchedule(catalog []*domain.Course, n int) []domain.Activity {
	order := rand.Perm(len(catalog))
	schedule := make([]domain.Activity, 0, n)

	for _, i := range order {
		if len(schedule) >= n {
			break
		}
		if candidate := catalog[i]; fits(schedule, candidate) {
			schedule = append(schedule, candidate)
		}
	}

	return schedule
}

// 每个事件最多尝试的次数，日程排满时放弃
const eventAttempts = 20

// AppendSampleEvents 往日程里追加最多 n 个随机事件，跳过重复或冲突的
func AppendSampleEvents(schedule []domain.Activity, n int) ([]domain.Activity, error) {
	added := 0
	for attempt := 0; added < n && attempt < n*eventAttempts; attempt++ {
		event, err := utils.GenerateRandomEvent()
		if err != nil {
			return nil, err
		}
		if fits(schedule, event) {
			schedule = append(schedule, event)
			added++
		}
	}
	return schedule, nil
}

func fits(schedule []domain.Activity, candidate domain.Activity) bool {
	for _, existing := range schedule {
		if existing.IsDuplicate(candidate) || existing.CheckConflict(candidate) != nil {
			return false
		}
	}
	return true
}
