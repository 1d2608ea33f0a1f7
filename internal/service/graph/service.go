package graph

import (
	"time"

	"com.tandemly.social/internal/model"
)

// Database is the slice of the store the friend graph needs. The graph
// service is the only component allowed to reason about edges; everything
// else asks it.
type Database interface {
	UserExists(userID model.UserID) (bool, error)
	CreateEdge(edge *model.FriendEdge) error
	FindEdgeByID(edgeID model.EdgeID) (*model.FriendEdge, error)
	MarkAccepted(edgeID model.EdgeID) (bool, error)
	HasAnyEdge(a, b model.UserID) (bool, error)
	FriendsOf(userID model.UserID) ([]model.User, error)
	OutgoingPending(userID model.UserID) ([]model.FriendEdge, error)
	IncomingPending(userID model.UserID) ([]model.FriendEdge, error)
}

type service struct {
	db Database
}

func New(db Database) *service {
	return &service{db}
}

// SendRequest creates a Pending edge from requester to recipient. A second
// request for the same pair, in either direction, is rejected rather than
// duplicated.
func (s *service) SendRequest(requesterID, recipientID model.UserID) (*model.FriendEdge, error) {
	if requesterID == recipientID {
		return nil, model.ErrorSelfRequest
	}

	exists, err := s.db.UserExists(recipientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrorUserNotFound
	}

	hasEdge, err := s.db.HasAnyEdge(requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if hasEdge {
		return nil, model.ErrorEdgeExists
	}

	edge := &model.FriendEdge{
		ID:          model.EdgeID(model.CreateID()),
		CreatedAt:   time.Now().UTC(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		State:       model.EdgeStatePending,
	}

	// two concurrent requests for the same pair both pass the check above;
	// the unique pair index lets exactly one insert win
	if err := s.db.CreateEdge(edge); err != nil {
		return nil, err
	}

	return edge, nil
}

// AcceptRequest transitions a Pending edge to Accepted. Only the recipient
// may accept, and Pending to Accepted is the only transition there is.
func (s *service) AcceptRequest(edgeID model.EdgeID, actingUserID model.UserID) (*model.FriendEdge, error) {
	edge, err := s.db.FindEdgeByID(edgeID)
	if err != nil {
		return nil, err
	}
	if edge.RecipientID != actingUserID {
		return nil, model.ErrorNotRecipient
	}
	if edge.State == model.EdgeStateAccepted {
		return nil, model.ErrorAlreadyAccepted
	}

	accepted, err := s.db.MarkAccepted(edgeID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		// lost a double-accept race
		return nil, model.ErrorAlreadyAccepted
	}

	return s.db.FindEdgeByID(edgeID)
}

func (s *service) ListFriends(userID model.UserID) ([]model.User, error) {
	return s.db.FriendsOf(userID)
}

func (s *service) ListOutgoingPending(userID model.UserID) ([]model.FriendEdge, error) {
	return s.db.OutgoingPending(userID)
}

func (s *service) ListIncomingPending(userID model.UserID) ([]model.FriendEdge, error) {
	return s.db.IncomingPending(userID)
}

func (s *service) HasAnyEdge(a, b model.UserID) (bool, error) {
	return s.db.HasAnyEdge(a, b)
}
