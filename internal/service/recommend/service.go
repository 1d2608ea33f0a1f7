package recommend

import "com.tandemly.social/internal/model"

const DefaultPageSize = 20

type Database interface {
	RecommendedFor(userID model.UserID, limit int) ([]model.User, error)
}

type service struct {
	db Database
}

func New(db Database) *service {
	return &service{db}
}

// Recommend returns onboarded users the given user could befriend: never
// themselves, never anyone they already share an edge with. Ordering is by
// signup recency so repeated calls over an unchanged graph agree.
func (s *service) Recommend(userID model.UserID, pageSize int) ([]model.User, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return s.db.RecommendedFor(userID, pageSize)
}
