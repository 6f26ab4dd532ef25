package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentType string

const (
	AssessmentPreEmployment    AssessmentType = "pre_employment"
	AssessmentReturnToWork     AssessmentType = "return_to_work"
	AssessmentPeriodic         AssessmentType = "periodic"
	AssessmentInjuryAssessment AssessmentType = "injury_assessment"
	AssessmentManual           AssessmentType = "manual"
	AssessmentCamera           AssessmentType = "camera"
	AssessmentValidation       AssessmentType = "validation"
)

type AssessmentStatus string

const (
	StatusScheduled  AssessmentStatus = "scheduled"
	StatusInProgress AssessmentStatus = "in_progress"
	StatusCompleted  AssessmentStatus = "completed"
	StatusCancelled  AssessmentStatus = "cancelled"
)

type SessionType string

const (
	SessionInitial    SessionType = "initial"
	SessionFollowUp   SessionType = "follow_up"
	SessionFinal      SessionType = "final"
	SessionAdditional SessionType = "additional"
)

type Outcome string

const (
	OutcomeCleared           Outcome = "cleared"
	OutcomeRestricted        Outcome = "restricted"
	OutcomeRequiresTreatment Outcome = "requires_treatment"
	OutcomePendingReview     Outcome = "pending_review"
)

type EscalationLevel string

const (
	EscalationNone     EscalationLevel = "none"
	EscalationLow      EscalationLevel = "low"
	EscalationMedium   EscalationLevel = "medium"
	EscalationHigh     EscalationLevel = "high"
	EscalationCritical EscalationLevel = "critical"
)

type Assessment struct {
	ID                   uint             `gorm:"primarykey" json:"id"`
	AssessmentID         string           `gorm:"uniqueIndex;not null" json:"assessment_id"`
	UserID               uint             `gorm:"not null" json:"user_id"`
	ConsultantID         *uint            `json:"consultant_id,omitempty"`
	AssessmentType       AssessmentType   `gorm:"not null" json:"assessment_type"`
	Title                string           `gorm:"not null" json:"title"`
	Description          string           `json:"description,omitempty"`
	Status               AssessmentStatus `gorm:"default:scheduled" json:"status"`
	OverallProgress      float64          `gorm:"default:0" json:"overall_progress"`
	FinalScore           *float64         `json:"final_score,omitempty"`
	FinalRecommendations []string         `gorm:"serializer:json" json:"final_recommendations"`
	ScheduledDate        *time.Time       `json:"scheduled_date,omitempty"`
	StartedAt            *time.Time       `json:"started_at,omitempty"`
	CompletedAt          *time.Time       `json:"completed_at,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
}

// BeforeCreate assigns the public assessment identifier when the caller did
// not supply one.
func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.AssessmentID == "" {
		a.AssessmentID = uuid.New().String()
	}
	return nil
}

// AssessmentSession is one visit within an assessment, carrying the
// movement-scoring payloads produced during that visit.
type AssessmentSession struct {
	ID                uint                   `gorm:"primarykey" json:"id"`
	SessionID         string                 `gorm:"uniqueIndex;not null" json:"session_id"`
	UserID            *uint                  `json:"user_id,omitempty"`
	ConsultantID      *uint                  `json:"consultant_id,omitempty"`
	AssessmentType    AssessmentType         `gorm:"not null" json:"assessment_type"`
	AssessmentID      string                 `json:"assessment_id,omitempty"`
	SessionNumber     int                    `gorm:"default:1" json:"session_number"`
	SessionType       SessionType            `gorm:"default:initial" json:"session_type"`
	OverallScore      *float64               `json:"overall_score,omitempty"`
	JointScores       map[string]float64     `gorm:"serializer:json" json:"joint_scores"`
	MovementData      map[string]interface{} `gorm:"serializer:json" json:"movement_data"`
	MovementMetrics   map[string]interface{} `gorm:"serializer:json" json:"movement_metrics"`
	Recommendations   []string               `gorm:"serializer:json" json:"recommendations"`
	ConsultantNotes   string                 `gorm:"type:text" json:"consultant_notes,omitempty"`
	Outcome           *Outcome               `json:"outcome,omitempty"`
	EscalationLevel   EscalationLevel        `gorm:"default:none" json:"escalation_level"`
	AssignedExercises []string               `gorm:"serializer:json" json:"assigned_exercises"`
	CreatedAt         time.Time              `json:"created_at"`
	CompletedAt       *time.Time             `json:"completed_at,omitempty"`
}

func (s *AssessmentSession) BeforeCreate(tx *gorm.DB) error {
	if s.SessionID == "" {
		s.SessionID = uuid.New().String()
	}
	return nil
}
