package models

import "time"

// SkillProgress is upserted by (user, skill): at most one row per pair.
type SkillProgress struct {
	ID        string `json:"id" gorm:"primaryKey;size:255"`
	UserID    string `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_user_skill"`
	SkillName string `json:"skill_name" gorm:"not null;size:100;uniqueIndex:idx_user_skill"`

	// Progress is a percentage, clamped to [0, 100] at write time.
	Progress int `json:"progress" gorm:"not null;default:0"`

	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (SkillProgress) TableName() string {
	return "skill_progress"
}
