package model

// ShiftType 班次类型表 — 对应 shift_types
// StartTime / EndTime 为 HH:mm；EndTime <= StartTime 表示跨夜班次（时长跨越午夜）
type ShiftType struct {
	ShiftTypeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_type_id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	StartTime   string `gorm:"type:varchar(5);not null"                       json:"start_time"`
	EndTime     string `gorm:"type:varchar(5);not null"                       json:"end_time"`
	BaseModel
}

// TableName 指定表名
func (ShiftType) TableName() string { return "shift_types" }
