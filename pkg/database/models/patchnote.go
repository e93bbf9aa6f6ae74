package models

import (
	"time"

	"gorm.io/datatypes"
)

// PatchNote is a pre-scraped patch note row. The scraper lives outside this
// service, the API only lists and serves the stored rows.
type PatchNote struct {
	Version     string `gorm:"primaryKey;type:varchar(20)"`
	Title       string `gorm:"type:varchar(200)"`
	Url         string `gorm:"type:varchar(300)"`
	ContentHtml string `gorm:"type:text"`
	Highlights  datatypes.JSON
	PublishedAt *time.Time
	ScrapedAt   time.Time `gorm:"autoCreateTime"`
}
