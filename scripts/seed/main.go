// Seeds the database with sample nurses and rotation logs.
// Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"log"

	"github.com/sangjun0330/mnl-recovery/internal/config"
	"github.com/sangjun0330/mnl-recovery/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	fmt.Println("  11111111-1111-1111-1111-111111111111 (Asia/Seoul, evening-leaning, cycle tracked)")
	fmt.Println("  22222222-2222-2222-2222-222222222222 (Asia/Seoul, morning-leaning, caffeine sensitive)")
	fmt.Println("  33333333-3333-3333-3333-333333333333 (America/New_York)")
	fmt.Println("  44444444-4444-4444-4444-444444444444 (Europe/Amsterdam)")
}
