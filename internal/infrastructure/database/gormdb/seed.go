package gormdb

import (
	"fmt"

	"rudereminder/internal/domain/entity"

	"gorm.io/gorm"
)

// defaultRudePhrases is inserted when the phrase table is empty.
// Phrases are appended directly to the task text.
var defaultRudePhrases = []entity.RudePhrase{
	{RudenessLevel: 1, Phrase: ", whenever you get a moment. You've got this!", Category: "gentle"},
	{RudenessLevel: 1, Phrase: " would be lovely to tick off today.", Category: "gentle"},
	{RudenessLevel: 1, Phrase: ". Just a friendly nudge!", Category: "gentle"},
	{RudenessLevel: 2, Phrase: ". Come on, you can do better than this.", Category: "teasing"},
	{RudenessLevel: 2, Phrase: ", and no, later doesn't count.", Category: "teasing"},
	{RudenessLevel: 2, Phrase: ". Your to-do list is getting lonely.", Category: "teasing"},
	{RudenessLevel: 3, Phrase: ". Stop procrastinating and get it done!", Category: "sarcastic"},
	{RudenessLevel: 3, Phrase: ", or are you allergic to effort?", Category: "sarcastic"},
	{RudenessLevel: 3, Phrase: ". Netflix can wait, believe it or not.", Category: "sarcastic"},
	{RudenessLevel: 4, Phrase: ". Seriously, what is wrong with you?", Category: "harsh"},
	{RudenessLevel: 4, Phrase: ", you absolute procrastination champion.", Category: "harsh"},
	{RudenessLevel: 4, Phrase: ". Even a sloth would be done by now.", Category: "harsh"},
	{RudenessLevel: 5, Phrase: ". NOW. No excuses, no whining, no snooze button.", Category: "savage"},
	{RudenessLevel: 5, Phrase: ", you lazy disaster. Move!", Category: "savage"},
	{RudenessLevel: 5, Phrase: ". Your future self is ashamed of you already.", Category: "savage"},
}

// SeedRudePhrases inserts the default phrases into an empty table.
func SeedRudePhrases(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.RudePhrase{}).Count(&count).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to count rude phrases: %w", err)
	}
	if count > 0 {
		return nil
	}
	phrases := make([]entity.RudePhrase, len(defaultRudePhrases))
	copy(phrases, defaultRudePhrases)
	if err := db.Create(&phrases).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to seed rude phrases: %w", err)
	}
	return nil
}
