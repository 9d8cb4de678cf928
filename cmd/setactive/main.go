// Command setactive activates or deactivates an agent by email address.
// Only active agents can be attributed new suggestions.
//
// Usage:
//
//	setactive --email=agent@example.com
//	setactive --email=agent@example.com --active=false
//
// Reads the same configuration as the server (DATABASE_DSN or discrete
// DATABASE_* variables).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/agent"
	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the agent to update")
	active := flag.Bool("active", true, "whether the agent may be attributed new suggestions")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: setactive --email=agent@example.com [--active=false]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	a, err := agent.New(pool).SetActive(ctx, *email, *active)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No agent found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update agent: %v", err)
	}

	state := "active"
	if !a.Active {
		state = "inactive"
	}
	fmt.Printf("Agent %q (id %d) is now %s.\n", a.Email, a.ID, state)
}
