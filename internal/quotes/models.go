package quotes

// Quote is a phrase and its author. ID is zero until the store persists it.
type Quote struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
	Phrase string `gorm:"not null" json:"phrase"`
	Author string `gorm:"not null" json:"author"`
}

// TableName specifies the table name for Quote
func (Quote) TableName() string {
	return "quotes"
}
