package storage

import "time"

// RunModel is the GORM model for runs table
type RunModel struct {
	BaseMessage  string     `gorm:"not null;default:''"`
	CommitCount  int        `gorm:"not null;default:0"`
	CreatedAt    time.Time
	EndDate      string     `gorm:"not null"`
	FinishedAt   *time.Time `gorm:"default:null"`
	ID           string     `gorm:"primaryKey"`
	Push         string     `gorm:"not null;default:'skipped';check:push IN ('skipped','succeeded','failed')"`
	RepoPath     string     `gorm:"not null;index:idx_repo_path"`
	SectionCount int        `gorm:"not null;default:0"`
	StartDate    string     `gorm:"not null"`
	StartedAt    time.Time  `gorm:"not null;index:idx_started_at"`
	SuccessCount int        `gorm:"not null;default:0"`
	TotalCount   int        `gorm:"not null;default:0"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (RunModel) TableName() string { return "runs" }

// AttemptModel is the GORM model for the attempts of a run
type AttemptModel struct {
	Attempt      int       `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt    time.Time
	Files        []string  `gorm:"serializer:json;not null"`
	Message      string    `gorm:"not null;default:''"`
	RunID        string    `gorm:"primaryKey"`
	SectionIndex int       `gorm:"not null;default:0"`
	Succeeded    bool      `gorm:"not null;default:false"`
	Timestamp    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AttemptModel) TableName() string { return "run_attempts" }
