// Dev helper for seeding users and calling the API by hand.
//
//	go run scripts/devtoken.go hash <password>   bcrypt hash for a users row
//	go run scripts/devtoken.go token <user_id>   signed token with JWT_SECRET (use as auth_token cookie)
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Thonkla/PlaceMate/internal/auth"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: devtoken hash <password> | devtoken token <user_id>")
		os.Exit(2)
	}
	switch os.Args[1] {
	case "hash":
		h, err := bcrypt.GenerateFromPassword([]byte(os.Args[2]), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		fmt.Print(string(h))
	case "token":
		userID, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil || userID <= 0 {
			fmt.Fprintln(os.Stderr, "user_id must be a positive integer")
			os.Exit(2)
		}
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
			os.Exit(1)
		}
		token, _, err := auth.NewTokens(secret, 24*time.Hour, nil).Issue(userID)
		if err != nil {
			panic(err)
		}
		fmt.Print(token)
	default:
		fmt.Fprintln(os.Stderr, "unknown command", os.Args[1])
		os.Exit(2)
	}
}
