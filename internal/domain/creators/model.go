package creators

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreatorType string

const (
	CreatorTypeChef       CreatorType = "chef"
	CreatorTypeGrandma    CreatorType = "grandma"
	CreatorTypeInfluencer CreatorType = "influencer"
)

var creatorTypeLabels = map[CreatorType]string{
	CreatorTypeChef:       "Professional Chef",
	CreatorTypeGrandma:    "Grandma",
	CreatorTypeInfluencer: "Influencer",
}

func (t CreatorType) Valid() bool {
	_, ok := creatorTypeLabels[t]
	return ok
}

// Label returns the human readable name, or the raw value for unknown types.
func (t CreatorType) Label() string {
	if label, ok := creatorTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

const (
	minSatisfactionRate = 0
	maxSatisfactionRate = 100
)

// FlanCreator is a showcase profile that flans can feature.
type FlanCreator struct {
	ID                 uint            `gorm:"primaryKey"`
	Name               string          `gorm:"size:100;not null"`
	CreatorType        CreatorType     `gorm:"type:varchar(20);not null;index"`
	Bio                string          `gorm:"type:text;not null"`
	ProfileImage       string          `gorm:"size:500;not null"`
	JoinedAt           time.Time       `gorm:"autoCreateTime"`
	IsFeatured         bool            `gorm:"not null;default:false;index"`
	TotalFlans         int             `gorm:"not null;default:0"`
	TotalEarnings      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	SatisfactionRate   int             `gorm:"not null;default:0"`
	InstagramFollowers string          `gorm:"size:20;not null"`
}

func (c *FlanCreator) BeforeSave(tx *gorm.DB) error {
	c.SatisfactionRate = ClampSatisfaction(c.SatisfactionRate)
	return nil
}

func ClampSatisfaction(rate int) int {
	if rate < minSatisfactionRate {
		return minSatisfactionRate
	}
	if rate > maxSatisfactionRate {
		return maxSatisfactionRate
	}
	return rate
}

type Record struct {
	ID                 uint
	Name               string
	Type               CreatorType
	Bio                string
	ProfileImage       string
	JoinedAt           time.Time
	IsFeatured         bool
	TotalFlans         int
	TotalEarnings      decimal.Decimal
	SatisfactionRate   int
	InstagramFollowers string
}

func (r Record) TypeLabel() string {
	return r.Type.Label()
}

func FromModel(c FlanCreator) Record {
	return Record{
		ID:                 c.ID,
		Name:               c.Name,
		Type:               c.CreatorType,
		Bio:                c.Bio,
		ProfileImage:       c.ProfileImage,
		JoinedAt:           c.JoinedAt,
		IsFeatured:         c.IsFeatured,
		TotalFlans:         c.TotalFlans,
		TotalEarnings:      c.TotalEarnings,
		SatisfactionRate:   c.SatisfactionRate,
		InstagramFollowers: c.InstagramFollowers,
	}
}

type CreateInput struct {
	Name               string
	Type               CreatorType
	Bio                string
	ProfileImage       string
	IsFeatured         bool
	TotalFlans         int
	TotalEarnings      decimal.Decimal
	SatisfactionRate   int
	InstagramFollowers string
}

type ListFilter struct {
	FeaturedOnly bool
	Type         CreatorType
}
