package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/songcrateapp/songcrate/internal/domain"
	"github.com/songcrateapp/songcrate/internal/store"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/songcrate/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	err = db.View(func(txn *badger.Txn) error {
		users := readRecord[[]domain.User](txn, store.KeyUsers)
		fmt.Printf("Users (%s): %d\n", store.KeyUsers, len(users))
		for _, u := range users {
			fmt.Printf("  %s  %s <%s>\n", u.ID, u.Name, u.Email)
		}
		fmt.Println()

		session := readRecord[*domain.User](txn, store.KeySession)
		if session != nil {
			fmt.Printf("Session (%s): %s <%s>\n", store.KeySession, session.Name, session.Email)
		} else {
			fmt.Printf("Session (%s): none\n", store.KeySession)
		}
		fmt.Println()

		songs := readRecord[[]domain.Song](txn, store.KeySongs)
		fmt.Printf("Songs (%s): %d\n", store.KeySongs, len(songs))
		for _, s := range songs {
			fmt.Printf("  %s  %q by %s (owner %s, added %s)\n", s.ID, s.Title, s.Singer, s.UserID, s.AddedDate)
		}

		return nil
	})
	if err != nil {
		log.Fatalf("Inspection failed: %v", err)
	}
}

// readRecord returns the decoded value under key, or the zero value when the
// key is absent or unreadable.
func readRecord[T any](txn *badger.Txn, key string) T {
	var out T

	item, err := txn.Get([]byte(key))
	if err != nil {
		if err != badger.ErrKeyNotFound {
			log.Printf("Error reading %s: %v", key, err)
		}
		return out
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &out)
	})
	if err != nil {
		log.Printf("Error decoding %s: %v", key, err)
	}

	return out
}
