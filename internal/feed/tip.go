package feed

import (
	"math"

	"github.com/threadchain/threadchain/internal/models"
)

// ApplyTip records a tip on the post. Amount must be a positive finite
// number; anything else is rejected with InvalidAmountError and the
// post is left unchanged. TipAmount only ever grows and HasUserTipped
// never resets within a session: a tip is an append-only ledger entry
// from the viewer's perspective, with no undo.
func ApplyTip(post *models.Post, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return &InvalidAmountError{Amount: amount}
	}
	post.TipAmount += amount
	post.HasUserTipped = true
	return nil
}
