package subscribers

import (
	"time"

	flansdomain "onlyflans/internal/domain/flans"
)

type Subscriber struct {
	ID                   uint                 `gorm:"primaryKey"`
	Email                string               `gorm:"size:254;not null;uniqueIndex"`
	Name                 string               `gorm:"size:100;not null"`
	IsActive             bool                 `gorm:"not null;index"`
	ReceiveWeeklyDigest  bool                 `gorm:"not null"`
	ReceiveNewFlanAlerts bool                 `gorm:"not null"`
	FavoriteFlanType     flansdomain.FlanType `gorm:"type:varchar(20);not null"`
	UnsubscribeToken     string               `gorm:"size:36;not null;uniqueIndex"`
	SubscribedAt         time.Time            `gorm:"autoCreateTime"`
}

// EmailLog is the append-only audit row of a single delivery attempt.
type EmailLog struct {
	ID            uint      `gorm:"primaryKey"`
	SubscriberID  uint      `gorm:"not null;index"`
	Subject       string    `gorm:"size:255;not null"`
	SentAt        time.Time `gorm:"autoCreateTime;index"`
	WasSuccessful bool      `gorm:"not null"`
	Error         string    `gorm:"type:text;not null"`

	Subscriber Subscriber `gorm:"foreignKey:SubscriberID;references:ID;constraint:OnDelete:CASCADE"`
}

type Record struct {
	ID                   uint
	Email                string
	Name                 string
	IsActive             bool
	ReceiveWeeklyDigest  bool
	ReceiveNewFlanAlerts bool
	FavoriteFlanType     flansdomain.FlanType
	UnsubscribeToken     string
	SubscribedAt         time.Time
}

// DisplayName falls back to the mailbox part of the address.
func (r Record) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	for i := 0; i < len(r.Email); i++ {
		if r.Email[i] == '@' {
			return r.Email[:i]
		}
	}
	return r.Email
}

func FromModel(s Subscriber) Record {
	return Record{
		ID:                   s.ID,
		Email:                s.Email,
		Name:                 s.Name,
		IsActive:             s.IsActive,
		ReceiveWeeklyDigest:  s.ReceiveWeeklyDigest,
		ReceiveNewFlanAlerts: s.ReceiveNewFlanAlerts,
		FavoriteFlanType:     s.FavoriteFlanType,
		UnsubscribeToken:     s.UnsubscribeToken,
		SubscribedAt:         s.SubscribedAt,
	}
}

// AudienceFilter selects active subscribers. AlertType, when set, keeps only
// subscribers whose favorite type is empty or equal to it.
type AudienceFilter struct {
	WeeklyDigest bool
	NewFlanAlert bool
	AlertType    flansdomain.FlanType
}

type PreferenceCounts struct {
	WeeklyDigest  int64
	NewFlanAlerts int64
	TotalActive   int64
}

type DeliveryCounts struct {
	Total      int64
	Successful int64
	Failed     int64
}
