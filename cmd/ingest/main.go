// cmd/ingest/main.go
// Parses a free-text submission, matches it against the pool's schedule and
// stores the resulting predictions.
//
// Usage:
//
//	go run ./cmd/ingest -pool brasileirao -file palpites.txt
//	cat palpites.txt | go run ./cmd/ingest -pool brasileirao
//
// -participant overrides the name found in the text, e.g. when forwarding a
// message on someone's behalf.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/tsoliveira/bolao/config"
	bundb "github.com/tsoliveira/bolao/db"
	"github.com/tsoliveira/bolao/logger"
	"github.com/tsoliveira/bolao/pool"
	"github.com/tsoliveira/bolao/store"
)

func main() {
	poolID := flag.String("pool", "", "pool id (required)")
	file := flag.String("file", "", "submission text file (default: stdin)")
	participant := flag.String("participant", "", "participant id override")
	flag.Parse()

	if *poolID == "" {
		log.Fatal("-pool is required")
	}

	ctx := context.Background()
	cfg := config.Load()

	zl, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatal("logger: ", err)
	}
	defer zl.Sync()

	var st store.Store
	if cfg.Storage == config.StoragePostgres {
		db := bundb.Setup(cfg)
		defer db.Close()
		st = store.NewPG(db)
	} else {
		st = store.NewFS(cfg.DataDir)
	}

	raw, err := readSubmission(*file)
	if err != nil {
		log.Fatal("read submission: ", err)
	}

	svc := pool.NewService(st, st, st, st, zl)

	schedule, err := st.LoadSchedule(ctx, *poolID)
	if err != nil {
		log.Fatal(err)
	}

	results, err := svc.Ingest(raw, schedule)
	if err != nil {
		log.Fatal("ingest: ", err)
	}

	id := *participant
	if id == "" {
		all, err := st.LoadAll(ctx, *poolID)
		if err != nil {
			log.Fatal(err)
		}
		known := make([]string, 0, len(all))
		for k := range all {
			known = append(known, k)
		}
		sort.Strings(known)

		resolved, ok := svc.ResolveParticipant(results[0].Bettor, known)
		if !ok {
			log.Fatalf("bettor %q does not match any registered participant", results[0].Bettor)
		}
		id = resolved
	}

	if err := svc.SaveResults(ctx, *poolID, id, results, time.Now()); err != nil {
		log.Fatal(err)
	}

	for _, res := range results {
		inferred := ""
		if res.RoundInferred {
			inferred = " (round inferred)"
		}
		fmt.Printf("round %d%s: %d predictions, %d extra bets saved for %q\n",
			res.Round, inferred, len(res.Predictions), len(res.ExtraBets), id)
		for _, e := range res.Errors {
			fmt.Printf("  skipped: %s\n", e)
		}
	}
}

func readSubmission(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(file)
	return string(data), err
}
