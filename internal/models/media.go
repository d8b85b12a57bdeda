package models

// Media kinds, derived from the file extension at ingestion time.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Media is a file reference attached to a property. The core never
// inspects file contents, only the stored tuple.
type Media struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint   `gorm:"index;not null" json:"property_id"`
	FilePath   string `gorm:"not null" json:"file_path"`
	Kind       string `gorm:"not null" json:"kind"`
}

// TableName specifies the table name for Media
func (Media) TableName() string {
	return "media"
}
