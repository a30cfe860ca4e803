// Command migrate bootstraps the generation history schema. It is idempotent
// and safe to run on every deploy.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS generation_history (
    id              UUID PRIMARY KEY,
    generation_type TEXT NOT NULL,
    input           JSONB NOT NULL,
    output          JSONB NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS generation_history_created_at_idx
    ON generation_history (created_at DESC);

CREATE INDEX IF NOT EXISTS generation_history_type_idx
    ON generation_history (generation_type);
`

func main() {
	var dropFlag bool
	flag.BoolVar(&dropFlag, "drop", false, "drop the history table before creating it")
	flag.Parse()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("open database: %w", err))
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		exitWithError(fmt.Errorf("ping database: %w", err))
	}

	if dropFlag {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS generation_history;`); err != nil {
			exitWithError(fmt.Errorf("drop table: %w", err))
		}
		fmt.Println("dropped generation_history")
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		exitWithError(fmt.Errorf("apply schema: %w", err))
	}
	fmt.Println("schema up to date")
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "migrate:", err)
	os.Exit(1)
}
