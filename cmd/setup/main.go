// cmd/setup/main.go
// Creates or updates a pool: schedule from a JSON file, scoring rules
// (defaults unless -rules is given) and registered participants.
//
// Usage:
//
//	go run ./cmd/setup -pool brasileirao -schedule schedule.json \
//	  -participants "Maria Silva,Joao Pedro"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tsoliveira/bolao/config"
	bundb "github.com/tsoliveira/bolao/db"
	"github.com/tsoliveira/bolao/models"
	"github.com/tsoliveira/bolao/normalize"
	"github.com/tsoliveira/bolao/store"
)

func main() {
	poolID := flag.String("pool", "", "pool id (required)")
	scheduleFile := flag.String("schedule", "", "schedule JSON file (required)")
	rulesFile := flag.String("rules", "", "rules JSON file (default: built-in rules)")
	participants := flag.String("participants", "", "comma-separated participant names")
	flag.Parse()

	if *poolID == "" || *scheduleFile == "" {
		log.Fatal("both -pool and -schedule are required")
	}

	ctx := context.Background()
	cfg := config.Load()

	var st store.Store
	if cfg.Storage == config.StoragePostgres {
		db := bundb.Setup(cfg)
		defer db.Close()
		if err := bundb.CreateTables(ctx, db); err != nil {
			log.Fatal("create tables: ", err)
		}
		st = store.NewPG(db)
	} else {
		st = store.NewFS(cfg.DataDir)
	}

	data, err := os.ReadFile(*scheduleFile)
	if err != nil {
		log.Fatal("read schedule: ", err)
	}
	var schedule models.Schedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		log.Fatal("decode schedule: ", err)
	}
	schedule.PoolID = *poolID
	if err := st.SaveSchedule(ctx, &schedule); err != nil {
		log.Fatal("save schedule: ", err)
	}

	rules := models.DefaultRules()
	if *rulesFile != "" {
		data, err := os.ReadFile(*rulesFile)
		if err != nil {
			log.Fatal("read rules: ", err)
		}
		if err := json.Unmarshal(data, &rules); err != nil {
			log.Fatal("decode rules: ", err)
		}
	}
	if err := st.SaveRules(ctx, *poolID, rules); err != nil {
		log.Fatal("save rules: ", err)
	}

	registered := 0
	for _, name := range strings.Split(*participants, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id := normalize.Participant(name)
		if err := st.Save(ctx, *poolID, id, nil); err != nil {
			log.Fatalf("register participant %q: %v", name, err)
		}
		registered++
	}

	fmt.Printf("pool %q saved: %d rounds, %d rules, %d participants\n",
		*poolID, len(schedule.Rounds), len(rules), registered)
}
