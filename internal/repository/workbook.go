package repository

import (
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

const (
	scheduleSheet = "Schedule"
	catalogSheet  = "Catalog"
)

// WriteWorkbook 导出一个包含两个工作表的 xlsx 文件：
// Schedule 第一行是日程标题，第二行是表头，之后每行一个活动；Catalog 是完整的课程目录
func (r *Repository) WriteWorkbook(path string, title string, activities []domain.Activity, catalog []*domain.Course) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}
	if _, err := f.NewSheet(catalogSheet); err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}

	// Schedule
	if err := f.SetCellValue(scheduleSheet, "A1", title); err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}
	scheduleRows := make([][]string, len(activities))
	for i, a := range activities {
		scheduleRows[i] = a.LongDisplayArray()
	}
	if err := writeSheetTable(f, scheduleSheet, 2, domain.LongDisplayHeader, scheduleRows, headerStyle); err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}

	// Catalog
	catalogRows := make([][]string, len(catalog))
	for i, c := range catalog {
		catalogRows[i] = c.ShortDisplayArray()
	}
	if err := writeSheetTable(f, catalogSheet, 1, domain.ShortDisplayHeader, catalogRows, headerStyle); err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}

	r.logger.Info("工作簿已保存", zap.String("path", path), zap.Int("activities", len(activities)), zap.Int("courses", len(catalog)))
	return nil
}

// writeSheetTable 从第 headerRow 行开始写表头和数据
func writeSheetTable(f *excelize.File, sheet string, headerRow int, header []string, rows [][]string, headerStyle int) error {
	for col := range header {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, 22); err != nil {
			return err
		}
	}

	headerCell, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, headerCell, &header); err != nil {
		return err
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(header), headerRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, headerCell, lastHeaderCell, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
