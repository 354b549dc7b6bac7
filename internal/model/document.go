package model

// Document is a library record pointing at an externally stored file
// (technical drawings, certificates, safety sheets). Binary storage is
// outside this service; only the metadata lives here.
type Document struct {
	BaseModel
	Title     string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Category  string `gorm:"type:varchar(100);index" json:"category"`
	FileURL   string `gorm:"type:text;not null" json:"file_url" validate:"required,url"`
	MimeType  string `gorm:"type:varchar(100)" json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

func (d Document) SearchFields() []string {
	return []string{d.Title, d.Category}
}
