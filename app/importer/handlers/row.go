package handlers

import (
	"fmt"
	"seed-inventory/app/server/models"
	"strconv"
	"strings"
)

// csvRow 原始的一行，全部按字符串读取，转换在 toRecord 中进行
type csvRow struct {
	ID          string `csv:"_id"`
	RepDate     string `csv:"Seed_RepDate"`
	Year        string `csv:"Seed_Year"`
	YearWeek    string `csv:"Seeds_YearWeek"`
	Variety     string `csv:"Seed_Varity"`
	RDCSD       string `csv:"Seed_RDCSD"`
	Stock2Sale  string `csv:"Seed_Stock2Sale"`
	Season      string `csv:"Seed_Season"`
	CropYear    string `csv:"Seed_Crop_Year"`
	CropYearAlt string `csv:"Seed_Crop _Year"` // 部分导出文件的表头带有空格
}

func (r *csvRow) toRecord() (*models.Record, error) {
	if strings.TrimSpace(r.ID) == "" {
		return nil, fmt.Errorf("missing _id")
	}

	record := &models.Record{
		ID:       r.ID,
		Variety:  r.Variety,
		RDCSD:    r.RDCSD,
		CropYear: r.CropYear,
	}
	if record.CropYear == "" {
		record.CropYear = r.CropYearAlt
	}

	var err error
	if record.RepDate, err = parseInt64("Seed_RepDate", r.RepDate); err != nil {
		return nil, err
	}
	if record.Year, err = parseInt("Seed_Year", r.Year); err != nil {
		return nil, err
	}
	if record.YearWeek, err = parseInt("Seeds_YearWeek", r.YearWeek); err != nil {
		return nil, err
	}
	if record.Season, err = parseInt("Seed_Season", r.Season); err != nil {
		return nil, err
	}
	if record.Stock2Sale, err = parseStock2Sale(r.Stock2Sale); err != nil {
		return nil, err
	}

	return record, nil
}

// 空值按 0 处理
func parseInt64(field, s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return v, nil
}

func parseInt(field, s string) (int, error) {
	v, err := parseInt64(field, s)
	return int(v), err
}

// parseStock2Sale 去掉千位分隔符后按小数解析
func parseStock2Sale(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid Seed_Stock2Sale %q: %w", s, err)
	}
	return v, nil
}
