package model

import "time"

type EdgeID string

type EdgeState int

const (
	EdgeStatePending EdgeState = iota
	EdgeStateAccepted
)

// FriendEdge is the single record kept per unordered pair of users. The
// requester/recipient direction only matters while the edge is Pending;
// once Accepted the relationship is symmetric. PairLo/PairHi hold the two
// user ids in lexical order so the store can enforce one-edge-per-pair
// with a unique index.
type FriendEdge struct {
	ID          EdgeID     `db:"ID" json:"id"`
	CreatedAt   time.Time  `db:"CreatedAt" json:"createdAt"`
	AcceptedAt  *time.Time `db:"AcceptedAt" json:"acceptedAt,omitempty"`
	RequesterID UserID     `db:"RequesterID" json:"requesterId"`
	RecipientID UserID     `db:"RecipientID" json:"recipientId"`
	State       EdgeState  `db:"State" json:"state"`
	PairLo      string     `db:"PairLo" json:"-"`
	PairHi      string     `db:"PairHi" json:"-"`
}

// PairKey returns the canonical (lo, hi) ordering for a pair of user ids.
func PairKey(a, b UserID) (string, string) {
	lo, hi := string(a), string(b)
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi
}
