package flans

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	creatorsdomain "onlyflans/internal/domain/creators"
	userdomain "onlyflans/internal/domain/user"
)

type FlanType string

const (
	FlanTypeVanilla   FlanType = "vanilla"
	FlanTypeChocolate FlanType = "chocolate"
	FlanTypeCoconut   FlanType = "coconut"
	FlanTypeCoffee    FlanType = "coffee"
	FlanTypeSpecial   FlanType = "special"
)

// FlanTypes lists the known types in display order.
var FlanTypes = []FlanType{
	FlanTypeVanilla,
	FlanTypeChocolate,
	FlanTypeCoconut,
	FlanTypeCoffee,
	FlanTypeSpecial,
}

var flanTypeLabels = map[FlanType]string{
	FlanTypeVanilla:   "Vanilla Classic",
	FlanTypeChocolate: "Chocolate Dream",
	FlanTypeCoconut:   "Coconut Paradise",
	FlanTypeCoffee:    "Coffee Delight",
	FlanTypeSpecial:   "Chef's Special",
}

func (t FlanType) Valid() bool {
	_, ok := flanTypeLabels[t]
	return ok
}

func (t FlanType) Label() string {
	if label, ok := flanTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

type Flan struct {
	ID                uint            `gorm:"primaryKey"`
	Name              string          `gorm:"size:200;not null"`
	Description       string          `gorm:"type:text;not null"`
	ImageURL          string          `gorm:"size:500;not null"`
	FlanType          FlanType        `gorm:"type:varchar(20);not null;index"`
	IsPremium         bool            `gorm:"not null;default:false;index"`
	Price             decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0;check:chk_flans_price_non_negative,price >= 0"`
	CreatorID         uint            `gorm:"not null;index"`
	FeaturedCreatorID *uint           `gorm:"index"`
	CreatedAt         time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`

	Creator         userdomain.User             `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE"`
	FeaturedCreator *creatorsdomain.FlanCreator `gorm:"foreignKey:FeaturedCreatorID;references:ID;constraint:OnDelete:SET NULL"`
}

// BeforeSave keeps the price invariant on every write path, including raw gorm saves.
func (f *Flan) BeforeSave(tx *gorm.DB) error {
	f.Price = NormalizePrice(f.IsPremium, f.Price)
	if f.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// NormalizePrice forces free flans to a zero price and rounds to cents.
func NormalizePrice(isPremium bool, price decimal.Decimal) decimal.Decimal {
	if !isPremium {
		return decimal.Zero
	}
	return price.Round(2)
}

// Record is the storage-independent projection handed to callers.
type Record struct {
	ID                uint
	Name              string
	Description       string
	ImageURL          string
	Type              FlanType
	IsPremium         bool
	Price             decimal.Decimal
	CreatorID         uint
	FeaturedCreatorID *uint
	CreatedAt         time.Time
}

func (r Record) TypeLabel() string {
	return r.Type.Label()
}

func (r Record) DisplayPrice() string {
	if r.IsPremium {
		return "$" + r.Price.StringFixed(2)
	}
	return "FREE"
}

func FromModel(f Flan) Record {
	return Record{
		ID:                f.ID,
		Name:              f.Name,
		Description:       f.Description,
		ImageURL:          f.ImageURL,
		Type:              f.FlanType,
		IsPremium:         f.IsPremium,
		Price:             f.Price,
		CreatorID:         f.CreatorID,
		FeaturedCreatorID: f.FeaturedCreatorID,
		CreatedAt:         f.CreatedAt,
	}
}

type CreateInput struct {
	Name              string
	Description       string
	ImageURL          string
	Type              FlanType
	IsPremium         bool
	Price             decimal.Decimal
	FeaturedCreatorID *uint
}

type ListFilter struct {
	Type              FlanType
	Premium           *bool
	FeaturedCreatorID *uint
	CreatedSince      *time.Time
	Query             string
	Limit             int
	Offset            int
}

type PageResult struct {
	Data       []Record
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}

func (p PageResult) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p PageResult) HasPrevious() bool {
	return p.Page > 1
}

type TypeCount struct {
	FlanType FlanType
	Count    int64
}

// Activity summarizes the flans created inside a time window.
type Activity struct {
	Since           time.Time
	NewCount        int64
	PremiumCount    int64
	MostPopularType FlanType
	Featured        []Record
}
