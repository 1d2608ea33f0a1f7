package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"com.tandemly.social/internal/boot"
)

type Store struct {
	db *sqlx.DB
}

// Open connects to the sqlite database at the configured path, creating
// the schema on first use.
func Open(config *boot.Config) (*Store, error) {
	dbName := config.Database.Path

	isCreating := false
	_, err := os.Stat(dbName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			isCreating = true
		}
	}

	db, err := sqlx.Connect("sqlite3", "file:"+dbName)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &Store{db}
	if isCreating {
		err = store.createTables()
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("creating tables: %w", err)
		}
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	_, err := s.db.Exec(`create table user(
		ID               text not null primary key,
		CreatedAt        DATETIME not null,
		UpdatedAt        DATETIME null,
		Email            text not null unique,
		Password         text not null,
		FullName         text not null,
		Bio              text not null default '',
		NativeLanguage   text not null default '',
		LearningLanguage text not null default '',
		Location         text not null default '',
		ProfilePic       text not null default '',
		Onboarded        tinyint not null default 0
	)`)
	if err != nil {
		return fmt.Errorf("creating user table: %w", err)
	}

	_, err = s.db.Exec(`create table edge(
		ID          text not null primary key,
		CreatedAt   DATETIME not null,
		AcceptedAt  DATETIME null,
		RequesterID text not null references user(ID),
		RecipientID text not null references user(ID),
		State       tinyint not null default 0,
		PairLo      text not null,
		PairHi      text not null
	)`)
	if err != nil {
		return fmt.Errorf("creating edge table: %w", err)
	}

	// one edge per unordered pair, whichever direction it was sent in
	_, err = s.db.Exec(`create unique index edge_pair on edge(PairLo, PairHi)`)
	if err != nil {
		return fmt.Errorf("creating edge pair index: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
