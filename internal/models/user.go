package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role gates which marketplace capabilities a user has. Only document
// publishing is role-gated.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleBoth   Role = "both"
)

// CanSell reports whether the role may publish documents.
func (r Role) CanSell() bool {
	return r == RoleSeller || r == RoleBoth
}

// CountryCode is one of the supported Nordic markets.
type CountryCode string

const (
	CountryNorway  CountryCode = "NO"
	CountrySweden  CountryCode = "SE"
	CountryDenmark CountryCode = "DK"
)

// User represents a marketplace persona. Balance holds the seller's
// unpaid revenue in NOK.
type User struct {
	ID         string          `json:"id" bson:"id"`
	Name       string          `json:"name" bson:"name"`
	Email      string          `json:"email" bson:"email"`
	Role       Role            `json:"role" bson:"role"`
	University string          `json:"university" bson:"university"`
	Country    CountryCode     `json:"country" bson:"country"`
	Balance    decimal.Decimal `json:"balanceNOK" bson:"balanceNOK"`
	JoinedAt   time.Time       `json:"joinedAt" bson:"joinedAt"`
}

func init() {
	// persisted collections carry money as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}
