package entity

// RudePhrase is a seed fragment appended to a task for template based messages.
type RudePhrase struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	RudenessLevel int    `gorm:"column:rudeness_level;index;not null"`
	Phrase        string `gorm:"column:phrase;type:text;not null"`
	Category      string `gorm:"column:category"`
}

// TableName specifies the table name for the RudePhrase entity.
func (RudePhrase) TableName() string {
	return "rude_phrases"
}

// Render appends the phrase to the task text.
func (p RudePhrase) Render(task string) string {
	return task + p.Phrase
}

// WhitelistEntry grants premium entitlement to an email address.
type WhitelistEntry struct {
	Email     string `gorm:"column:email;primaryKey;size:255"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

// TableName specifies the table name for the WhitelistEntry entity.
func (WhitelistEntry) TableName() string {
	return "premium_whitelist"
}
