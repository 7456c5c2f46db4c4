package model

import (
	"math"
	"strings"
)

// Review is a rating one user left for another after a trade.
type Review struct {
	ReviewID         int     `json:"review_id"`
	RequestID        int     `json:"request_id"`
	ReviewerID       int     `json:"reviewer_id"`
	ReviewerUsername string  `json:"reviewer_username,omitempty"`
	RevieweeID       int     `json:"reviewee_id"`
	RevieweeUsername string  `json:"reviewee_username,omitempty"`
	Rating           int     `json:"rating"`
	Comment          *string `json:"comment"`
	CreatedAt        string  `json:"created_at,omitempty"`
}

// Stars renders a 0-5 score as five glyphs (★ full, ✬ half, ☆ empty).
func Stars(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	full := int(math.Floor(score))
	half := score-float64(full) >= 0.5
	empty := 5 - full
	if half {
		empty--
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	if half {
		b.WriteString("✬")
	}
	b.WriteString(strings.Repeat("☆", empty))
	return b.String()
}
