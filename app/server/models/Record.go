package models

// Record 一条种子库存记录，主键由外部提供
type Record struct {
	ID         string  `gorm:"column:id;primaryKey" json:"_id"`          // 记录编号，由数据来源给出，不自动生成
	RepDate    int64   `gorm:"column:rep_date" json:"Seed_RepDate"`      // 报告日期
	Year       int     `gorm:"column:year" json:"Seed_Year"`             // 年份
	YearWeek   int     `gorm:"column:year_week" json:"Seeds_YearWeek"`   // 年周
	Variety    string  `gorm:"column:variety" json:"Seed_Varity"`        // 品种
	RDCSD      string  `gorm:"column:rdcsd" json:"Seed_RDCSD"`           // 区域代码
	Stock2Sale float64 `gorm:"column:stock2sale" json:"Seed_Stock2Sale"` // 库存销售比
	Season     int     `gorm:"column:season" json:"Seed_Season"`         // 季节
	CropYear   string  `gorm:"column:crop_year" json:"Seed_Crop_Year"`   // 作物年度
}

func (Record) TableName() string {
	return "data"
}
