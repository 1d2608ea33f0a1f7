package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"com.tandemly.social/internal/model"
)

func (s *Store) CreateEdge(edge *model.FriendEdge) error {
	edge.PairLo, edge.PairHi = model.PairKey(edge.RequesterID, edge.RecipientID)

	res, err := s.db.NamedExec(`insert into edge
		(ID, CreatedAt, RequesterID, RecipientID, State, PairLo, PairHi)
		values(:ID, :CreatedAt, :RequesterID, :RecipientID, :State, :PairLo, :PairHi)`, edge)

	if err != nil {
		if isUniqueViolation(err) {
			// a concurrent insert for the same pair landed first
			return model.ErrorEdgeExists
		}
		return fmt.Errorf("inserting edge: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	return nil
}

func (s *Store) FindEdgeByID(edgeID model.EdgeID) (*model.FriendEdge, error) {
	edge := &model.FriendEdge{}
	err := s.db.Get(edge, `select * from edge where ID = ?`, edgeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorEdgeNotFound
		}
		return nil, fmt.Errorf("fetching edge: %w", err)
	}
	return edge, nil
}

// MarkAccepted transitions an edge from Pending to Accepted. The state
// guard in the where clause makes a concurrent double-accept lose cleanly;
// the caller treats zero rows affected as already-accepted.
func (s *Store) MarkAccepted(edgeID model.EdgeID) (bool, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(`update edge set State = ?, AcceptedAt = ? where ID = ? and State = ?`,
		model.EdgeStateAccepted, now, edgeID, model.EdgeStatePending)
	if err != nil {
		return false, fmt.Errorf("updating edge state: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}
	return rows == 1, nil
}

func (s *Store) HasAnyEdge(a, b model.UserID) (bool, error) {
	lo, hi := model.PairKey(a, b)
	var n int
	err := s.db.Get(&n, `select count(1) from edge where PairLo = ? and PairHi = ?`, lo, hi)
	if err != nil {
		return false, fmt.Errorf("checking edge exists: %w", err)
	}
	return n > 0, nil
}

func (s *Store) FriendsOf(userID model.UserID) ([]model.User, error) {
	users := []model.User{}
	err := s.db.Select(&users, `select `+publicColumns+` from user u
		join edge e on (e.RequesterID = ? and e.RecipientID = u.ID)
			or (e.RecipientID = ? and e.RequesterID = u.ID)
		where e.State = ?
		order by u.FullName`, userID, userID, model.EdgeStateAccepted)
	if err != nil {
		return nil, fmt.Errorf("selecting friends: %w", err)
	}
	return users, nil
}

func (s *Store) OutgoingPending(userID model.UserID) ([]model.FriendEdge, error) {
	edges := []model.FriendEdge{}
	err := s.db.Select(&edges, `select * from edge
		where RequesterID = ? and State = ?
		order by CreatedAt desc`, userID, model.EdgeStatePending)
	if err != nil {
		return nil, fmt.Errorf("selecting outgoing requests: %w", err)
	}
	return edges, nil
}

func (s *Store) IncomingPending(userID model.UserID) ([]model.FriendEdge, error) {
	edges := []model.FriendEdge{}
	err := s.db.Select(&edges, `select * from edge
		where RecipientID = ? and State = ?
		order by CreatedAt desc`, userID, model.EdgeStatePending)
	if err != nil {
		return nil, fmt.Errorf("selecting incoming requests: %w", err)
	}
	return edges, nil
}
