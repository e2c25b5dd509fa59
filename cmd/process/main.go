// cmd/process/main.go
// Computes the standings for a round and prints the report. With -commit the
// schedule is backed up, the pool's current round advanced and the report
// stored; without it nothing is written.
//
// Usage:
//
//	go run ./cmd/process -pool brasileirao -round 7
//	go run ./cmd/process -pool brasileirao -round 7 -commit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/tsoliveira/bolao/config"
	bundb "github.com/tsoliveira/bolao/db"
	"github.com/tsoliveira/bolao/logger"
	"github.com/tsoliveira/bolao/pool"
	"github.com/tsoliveira/bolao/store"
)

func main() {
	poolID := flag.String("pool", "", "pool id (required)")
	round := flag.Int("round", 0, "round number (required)")
	commit := flag.Bool("commit", false, "persist the results instead of previewing")
	flag.Parse()

	if *poolID == "" || *round == 0 {
		log.Fatal("both -pool and -round are required")
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

	svc := pool.NewService(st, st, st, st, zl)

	rep, err := svc.ProcessRound(ctx, *poolID, *round, *commit)
	if err != nil {
		var incomplete *pool.IncompleteRoundError
		if errors.As(err, &incomplete) {
			log.Printf("round %d not ready:", incomplete.Round)
			for _, fixture := range incomplete.Pending {
				log.Printf("  pending: %s", fixture)
			}
		}
		log.Fatal(err)
	}

	fmt.Print(rep.Text)
}
