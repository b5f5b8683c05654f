package model

import "time"

type Image struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Description *string   `json:"description"`
	Filename    string    `json:"filename" gorm:"not null;size:255"`
	FilePath    string    `json:"file_path" gorm:"not null"` // 不校验、不落盘，仅记录
	FileSize    int64     `json:"file_size" gorm:"not null"`
	MimeType    string    `json:"mime_type" gorm:"not null;size:100"`
	ShortURL    string    `json:"short_url" gorm:"column:short_url;not null;uniqueIndex;size:10"`
	ViewCount   int64     `json:"view_count" gorm:"not null"`
	IsPublic    bool      `json:"is_public" gorm:"not null"` // 不加 default 标签，is_public=false 必须原样落库
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
