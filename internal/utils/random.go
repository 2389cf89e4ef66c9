package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mozillazg/go-pinyin"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

// GenerateInstructorIDFromChineseName 取每个字拼音的前若干个字母，再加 1~3 位数字，例如 王伟 -> wangw12
func GenerateInstructorIDFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	id := ""

	for _, py := range pinyinArray {
		length := rand.Intn(len(py)) + 1
		id += py[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		id += string(digits[rand.Intn(len(digits))])
	}

	return id
}

var courseSubjects = []string{"CSC", "MA", "E", "ST", "PY", "ECE", "HI"}

const (
	courseNumbers  = 900
	courseSections = 20
)

// MaxRandomCatalogSize 是随机课程目录中 (name, section) 组合的总数
var MaxRandomCatalogSize = len(courseSubjects) * courseNumbers * courseSections

var courseTitles = []string{
	"数据结构", "操作系统", "计算机网络", "编译原理", "数据库系统",
	"离散数学", "线性代数", "概率论与数理统计", "软件工程", "计算机组成原理",
	"算法设计与分析", "人工智能导论", "大学物理", "中国近现代史纲要",
}

// GenerateRandomCourseName 科目代码加三位数字，长度在 4 到 6 之间
func GenerateRandomCourseName() string {
	subject := courseSubjects[rand.Intn(len(courseSubjects))]
	return fmt.Sprintf("%s%d", subject, rand.Intn(courseNumbers)+100)
}

func GenerateRandomSection() string {
	return fmt.Sprintf("%03d", rand.Intn(courseSections)+1)
}

// 用 Fisher-Yates 洗牌算法从 letters 中随机选出若干天，结果保持 letters 中的顺序
func GenerateRandomMeetingDays(letters string) string {
	idx := make([]int, len(letters))
	for i := range idx {
		idx[i] = i
	}
	for i := len(idx) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}

	n := rand.Intn(3) + 1
	if n > len(idx) {
		n = len(idx)
	}
	chosen := make([]bool, len(letters))
	for _, i := range idx[:n] {
		chosen[i] = true
	}

	var sb strings.Builder
	for i, ok := range chosen {
		if ok {
			sb.WriteByte(letters[i])
		}
	}
	return sb.String()
}

var classDurations = []int{50, 75, 110}

// GenerateRandomActivityTime 生成 8 点到 18 点之间开始的时间段，返回 HHMM 形式
func GenerateRandomActivityTime() (int, int) {
	startMinutes := (8+rand.Intn(10))*60 + rand.Intn(4)*15
	endMinutes := startMinutes + classDurations[rand.Intn(len(classDurations))]

	return startMinutes/60*100 + startMinutes%60, endMinutes/60*100 + endMinutes%60
}

func GenerateRandomCourse() (*domain.Course, error) {
	name := GenerateRandomCourseName()
	title := courseTitles[rand.Intn(len(courseTitles))]
	section := GenerateRandomSection()
	credits := rand.Intn(5) + 1
	instructorID := GenerateInstructorIDFromChineseName(GenerateRandomChineseName())

	// 大约十分之一的课程时间另行安排
	if rand.Intn(10) == 0 {
		return domain.NewArrangedCourse(name, title, section, credits, instructorID)
	}

	startTime, endTime := GenerateRandomActivityTime()
	return domain.NewCourse(name, title, section, credits, instructorID, GenerateRandomMeetingDays("MTWHF"), startTime, endTime)
}

var eventTitles = []string{"学习小组", "社团活动", "健身", "实验室例会", "志愿服务"}

func GenerateRandomEvent() (*domain.Event, error) {
	title := eventTitles[rand.Intn(len(eventTitles))] + GenerateRandomSection()
	startTime, endTime := GenerateRandomActivityTime()
	return domain.NewEvent(title, GenerateRandomMeetingDays("UMTWHFS"), startTime, endTime, rand.Intn(4)+1, "")
}

// GenerateRandomCatalog 生成 n 门课程，(name, section) 不会重复
func GenerateRandomCatalog(n int) ([]*domain.Course, error) {
	if n < 0 || n > MaxRandomCatalogSize {
		return nil, fmt.Errorf("课程数量必须在 0 到 %d 之间，当前为 %d", MaxRandomCatalogSize, n)
	}

	courses := make([]*domain.Course, 0, n)
	seen := make(map[string]struct{}, n)

	for len(courses) < n {
		c, err := GenerateRandomCourse()
		if err != nil {
			return nil, err
		}

		key := c.Name() + "-" + c.Section()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		courses = append(courses, c)
	}

	return courses, nil
}
