package store

import (
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"com.tandemly.social/internal/boot"
	"com.tandemly.social/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	config := &boot.Config{}
	config.Database.Path = path.Join(t.TempDir(), "test.db")

	store, err := Open(config)
	if err != nil {
		t.Fatalf("opening test store: %+v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func newTestUser(t *testing.T, store *Store, email string, onboarded bool) *model.User {
	t.Helper()

	user := &model.User{
		ID:        model.UserID(model.CreateID()),
		CreatedAt: time.Now().UTC(),
		Email:     email,
		Password:  "not-a-real-hash",
		FullName:  "Test User",
		Onboarded: onboarded,
	}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("creating test user: %+v", err)
	}
	return user
}

func TestUserStore(t *testing.T) {
	assert := assert.New(t)
	store := newTestStore(t)

	user := newTestUser(t, store, "alice@testdomain.com", false)

	t.Run("FindByID", func(t *testing.T) {
		found, err := store.FindUserByID(user.ID)
		assert.Nil(err)
		assert.Equal(user.Email, found.Email)
	})

	t.Run("FindByEmail", func(t *testing.T) {
		found, err := store.FindUserByEmail("alice@testdomain.com")
		assert.Nil(err)
		assert.Equal(user.ID, found.ID)
	})

	t.Run("FindByID unknown", func(t *testing.T) {
		_, err := store.FindUserByID(model.UserID("no-such-user"))
		assert.ErrorIs(err, model.ErrorUserNotFound)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		dup := &model.User{
			ID:        model.UserID(model.CreateID()),
			CreatedAt: time.Now().UTC(),
			Email:     "alice@testdomain.com",
			Password:  "not-a-real-hash",
			FullName:  "Other Alice",
		}
		err := store.CreateUser(dup)
		assert.ErrorIs(err, model.ErrorDuplicateEmail)
	})

	t.Run("Update", func(t *testing.T) {
		user.Bio = "learning Portuguese"
		user.Onboarded = true
		err := store.UpdateUser(user)
		assert.Nil(err)

		found, err := store.FindUserByID(user.ID)
		assert.Nil(err)
		assert.Equal("learning Portuguese", found.Bio)
		assert.True(found.Onboarded)
		assert.NotNil(found.UpdatedAt)
	})

	t.Run("Update unknown", func(t *testing.T) {
		ghost := &model.User{ID: model.UserID("no-such-user")}
		err := store.UpdateUser(ghost)
		assert.ErrorIs(err, model.ErrorUserNotFound)
	})
}

func TestEdgeStore(t *testing.T) {
	assert := assert.New(t)
	store := newTestStore(t)

	alice := newTestUser(t, store, "alice@testdomain.com", true)
	bob := newTestUser(t, store, "bob@testdomain.com", true)

	edge := &model.FriendEdge{
		ID:          model.EdgeID(model.CreateID()),
		CreatedAt:   time.Now().UTC(),
		RequesterID: alice.ID,
		RecipientID: bob.ID,
		State:       model.EdgeStatePending,
	}

	t.Run("Create", func(t *testing.T) {
		err := store.CreateEdge(edge)
		assert.Nil(err)
	})

	t.Run("Duplicate same direction", func(t *testing.T) {
		dup := &model.FriendEdge{
			ID:          model.EdgeID(model.CreateID()),
			CreatedAt:   time.Now().UTC(),
			RequesterID: alice.ID,
			RecipientID: bob.ID,
		}
		err := store.CreateEdge(dup)
		assert.ErrorIs(err, model.ErrorEdgeExists)
	})

	t.Run("Duplicate reversed direction", func(t *testing.T) {
		dup := &model.FriendEdge{
			ID:          model.EdgeID(model.CreateID()),
			CreatedAt:   time.Now().UTC(),
			RequesterID: bob.ID,
			RecipientID: alice.ID,
		}
		err := store.CreateEdge(dup)
		assert.ErrorIs(err, model.ErrorEdgeExists)
	})

	t.Run("HasAnyEdge", func(t *testing.T) {
		has, err := store.HasAnyEdge(alice.ID, bob.ID)
		assert.Nil(err)
		assert.True(has)

		has, err = store.HasAnyEdge(bob.ID, alice.ID)
		assert.Nil(err)
		assert.True(has)

		has, err = store.HasAnyEdge(alice.ID, model.UserID("no-such-user"))
		assert.Nil(err)
		assert.False(has)
	})

	t.Run("Pending lists", func(t *testing.T) {
		outgoing, err := store.OutgoingPending(alice.ID)
		assert.Nil(err)
		assert.Len(outgoing, 1)
		assert.Equal(bob.ID, outgoing[0].RecipientID)

		incoming, err := store.IncomingPending(bob.ID)
		assert.Nil(err)
		assert.Len(incoming, 1)
		assert.Equal(alice.ID, incoming[0].RequesterID)
	})

	t.Run("MarkAccepted", func(t *testing.T) {
		accepted, err := store.MarkAccepted(edge.ID)
		assert.Nil(err)
		assert.True(accepted)

		found, err := store.FindEdgeByID(edge.ID)
		assert.Nil(err)
		assert.Equal(model.EdgeStateAccepted, found.State)
		assert.NotNil(found.AcceptedAt)

		// second accept loses against the state guard
		accepted, err = store.MarkAccepted(edge.ID)
		assert.Nil(err)
		assert.False(accepted)
	})

	t.Run("FriendsOf both directions", func(t *testing.T) {
		friends, err := store.FriendsOf(alice.ID)
		assert.Nil(err)
		assert.Len(friends, 1)
		assert.Equal(bob.ID, friends[0].ID)
		assert.Empty(friends[0].Password)

		friends, err = store.FriendsOf(bob.ID)
		assert.Nil(err)
		assert.Len(friends, 1)
		assert.Equal(alice.ID, friends[0].ID)
	})

	t.Run("FindEdgeByID unknown", func(t *testing.T) {
		_, err := store.FindEdgeByID(model.EdgeID("no-such-edge"))
		assert.ErrorIs(err, model.ErrorEdgeNotFound)
	})
}

func TestRecommendedFor(t *testing.T) {
	assert := assert.New(t)
	store := newTestStore(t)

	alice := newTestUser(t, store, "alice@testdomain.com", true)
	bob := newTestUser(t, store, "bob@testdomain.com", true)
	carol := newTestUser(t, store, "carol@testdomain.com", true)
	newTestUser(t, store, "lurker@testdomain.com", false)

	edge := &model.FriendEdge{
		ID:          model.EdgeID(model.CreateID()),
		CreatedAt:   time.Now().UTC(),
		RequesterID: alice.ID,
		RecipientID: bob.ID,
		State:       model.EdgeStatePending,
	}
	if err := store.CreateEdge(edge); err != nil {
		t.Fatalf("creating edge: %+v", err)
	}

	users, err := store.RecommendedFor(alice.ID, 10)
	assert.Nil(err)
	assert.Len(users, 1)
	assert.Equal(carol.ID, users[0].ID)
	assert.Empty(users[0].Password)

	users, err = store.RecommendedFor(carol.ID, 10)
	assert.Nil(err)
	assert.Len(users, 2)
	for _, u := range users {
		assert.NotEqual(carol.ID, u.ID)
		assert.True(u.Onboarded)
	}

	users, err = store.RecommendedFor(carol.ID, 1)
	assert.Nil(err)
	assert.Len(users, 1)
}
