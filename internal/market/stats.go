package market

import (
	"github.com/shopspring/decimal"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/fees"
)

// SellerStats summarises a seller's listings and completed sales.
type SellerStats struct {
	Sales     int             `json:"sales"`
	Documents int             `json:"documents"`
	Earnings  decimal.Decimal `json:"earnings"`
	// Rating is the mean rating over rated documents, nil when none are rated.
	Rating *float64 `json:"rating"`
}

func (s *Service) SellerStats(sellerID string) SellerStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st SellerStats
	earnings := decimal.Zero
	for _, t := range s.transactions {
		if t.SellerID == sellerID && t.Completed() {
			st.Sales++
			earnings = earnings.Add(t.SellerRevenue)
		}
	}
	st.Earnings = fees.Round2(earnings)

	var ratingSum float64
	rated := 0
	for _, d := range s.documents {
		if d.SellerID != sellerID {
			continue
		}
		st.Documents++
		if d.RatingCount > 0 {
			ratingSum += d.RatingAverage
			rated++
		}
	}
	if rated > 0 {
		r := fees.Round1(ratingSum / float64(rated))
		st.Rating = &r
	}
	return st
}
