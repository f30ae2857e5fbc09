// Package main provides a tool to seed the database with demo accounts and
// songs for manual testing.
//
// Usage:
//
//	DB_PATH=~/songcrate/db go run ./cmd/seed
//	DB_PATH=~/songcrate/db go run ./cmd/seed --songs-per-user=10
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/songcrateapp/songcrate/internal/service"
	"github.com/songcrateapp/songcrate/internal/store"
)

var songsPerUser = flag.Int("songs-per-user", 5, "Number of songs to create for each demo user")

var demoAccounts = []service.SignupRequest{
	{Name: "Ann", Email: "ann@example.com", Password: "pass1234", ConfirmPassword: "pass1234"},
	{Name: "Bob", Email: "bob@example.com", Password: "pass1234", ConfirmPassword: "pass1234"},
	{Name: "Carol", Email: "carol@example.com", Password: "pass1234", ConfirmPassword: "pass1234"},
}

var demoSongs = []service.AddSongRequest{
	{Title: "Blue in Green", Singer: "Miles Davis", Album: "Kind of Blue", Year: "1959", Duration: "5:37", Genre: "Jazz"},
	{Title: "Paranoid Android", Singer: "Radiohead", Album: "OK Computer", Year: "1997", Duration: "6:23", Genre: "Rock"},
	{Title: "So What", Singer: "Miles Davis", Album: "Kind of Blue", Year: "1959", Duration: "9:22", Genre: "Jazz"},
	{Title: "Redbone", Singer: "Childish Gambino", Album: "Awaken, My Love!", Year: "2016", Duration: "5:27", Genre: "Funk"},
	{Title: "Clair de Lune", Singer: "Claude Debussy", Album: "Suite bergamasque", Year: "1905", Duration: "5:10", Genre: "Classical"},
	{Title: "Midnight City", Singer: "M83", Album: "Hurry Up, We're Dreaming", Year: "2011", Duration: "4:03", Genre: "Electronic"},
	{Title: "Feeling Good", Singer: "Nina Simone", Album: "I Put a Spell on You", Year: "1965", Duration: "2:57", Genre: "Soul"},
	{Title: "Harvest Moon", Singer: "Neil Young", Album: "Harvest Moon", Year: "1992", Duration: "5:03", Genre: "Folk"},
	{Title: "Teardrop", Singer: "Massive Attack", Album: "Mezzanine", Year: "1998", Duration: "5:30", Genre: "Trip Hop"},
	{Title: "Take Five", Singer: "Dave Brubeck", Album: "Time Out", Year: "1959", Duration: "5:24", Genre: "Jazz"},
}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/songcrate/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	directory, err := service.NewAccountDirectory(ctx, s, nil)
	if err != nil {
		log.Fatalf("Failed to load accounts: %v", err)
	}
	catalog, err := service.NewSongCatalog(ctx, s, nil, service.CatalogOptions{})
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, account := range demoAccounts {
		user, err := directory.Signup(ctx, account)
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", account.Email, err)
		}
		fmt.Printf("\nCreated user: %s (%s)\n", user.Name, user.ID)

		picks := rng.Perm(len(demoSongs))
		n := min(*songsPerUser, len(demoSongs))
		for _, idx := range picks[:n] {
			song, err := catalog.Add(ctx, demoSongs[idx], user.ID)
			if err != nil {
				log.Fatalf("Failed to add song %q: %v", demoSongs[idx].Title, err)
			}
			fmt.Printf("  added %q by %s\n", song.Title, song.Singer)
		}
	}

	fmt.Printf("\nDone. %d users, %d songs total.\n", directory.Len(), catalog.Len())
}
