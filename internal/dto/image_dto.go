package dto

type UploadImageRequest struct {
	UserID      uint    `json:"user_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Filename    string  `json:"filename" binding:"required"`
	FilePath    string  `json:"file_path" binding:"required"`
	FileSize    int64   `json:"file_size" binding:"required"`
	MimeType    string  `json:"mime_type" binding:"required"`
	IsPublic    *bool   `json:"is_public"` // 缺省为 true
}

type UpdateImageRequest struct {
	Title       OptionalString `json:"title"`
	Description OptionalString `json:"description"` // 显式 null 清空描述
	IsPublic    OptionalBool   `json:"is_public"`
}
