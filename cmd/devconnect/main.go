package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	adapthttp "devconnect/internal/adapter/http"
	"devconnect/internal/adapter/memory"
	"devconnect/internal/adapter/postgres"
	"devconnect/internal/app"
	"devconnect/internal/domain"
	"devconnect/internal/github"
	"devconnect/internal/obs"
	"devconnect/internal/token"
)

func main() {
	addr := env("ADDR", ":8080")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ttl := token.DefaultTTL
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("TOKEN_TTL: %v", err)
		}
		ttl = d
	}
	codec := token.NewCodec([]byte(secret), ttl)

	var (
		users    domain.UserRepository
		profiles domain.ProfileRepository
		posts    domain.PostRepository
	)
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users = db
		profiles = postgres.NewProfileRepo(db)
		posts = postgres.NewPostRepo(db)
	} else {
		log.Print("DATABASE_URL not set, using in-memory storage")
		db := memory.New()
		users = db
		profiles = db.NewProfileRepo()
		posts = db.NewPostRepo()
	}

	gh := github.New(github.Config{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
	})

	authSvc := app.NewAuthService(users, codec)
	profileSvc := app.NewProfileService(profiles, users, posts)
	postSvc := app.NewPostService(posts, users)

	obs.Init()

	h := adapthttp.New(authSvc, profileSvc, postSvc, codec, gh).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
