package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentVipps  PaymentMethod = "vipps_demo"
	PaymentCard   PaymentMethod = "kort_demo"
	PaymentStripe PaymentMethod = "stripe_demo"
)

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionRefunded  TransactionStatus = "refunded"
)

// Transaction records a purchase. SellerID is copied from the document when
// the purchase is made and never re-derived. PlatformFee + SellerRevenue == Price.
type Transaction struct {
	ID            string            `json:"id" bson:"id"`
	DocumentID    string            `json:"documentId" bson:"documentId"`
	BuyerID       string            `json:"buyerId" bson:"buyerId"`
	SellerID      string            `json:"sellerId" bson:"sellerId"`
	Price         decimal.Decimal   `json:"priceNOK" bson:"priceNOK"`
	PlatformFee   decimal.Decimal   `json:"platformFeeNOK" bson:"platformFeeNOK"`
	SellerRevenue decimal.Decimal   `json:"sellerRevenueNOK" bson:"sellerRevenueNOK"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt"`
	PaymentMethod PaymentMethod     `json:"paymentMethod" bson:"paymentMethod"`
	Status        TransactionStatus `json:"status" bson:"status"`
}

func (t Transaction) Completed() bool { return t.Status == TransactionCompleted }
