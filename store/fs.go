package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tsoliveira/bolao/models"
)

// FS stores a pool as a JSON directory tree:
//
//	<root>/<pool>/schedule.json
//	<root>/<pool>/rules.json
//	<root>/<pool>/participants/<id>/predictions.json
//	<root>/<pool>/reports/round07.txt
//
// Schedule backups land next to schedule.json with a timestamp suffix.
type FS struct {
	Root string
}

// NewFS returns a filesystem store rooted at dir.
func NewFS(dir string) *FS {
	return &FS{Root: dir}
}

func (f *FS) poolDir(poolID string) string {
	return filepath.Join(f.Root, poolID)
}

func (f *FS) schedulePath(poolID string) string {
	return filepath.Join(f.poolDir(poolID), "schedule.json")
}

func (f *FS) LoadSchedule(ctx context.Context, poolID string) (*models.Schedule, error) {
	var s models.Schedule
	if err := readJSON(f.schedulePath(poolID), &s); err != nil {
		return nil, fmt.Errorf("loading schedule for pool %q: %w", poolID, err)
	}
	if s.PoolID == "" {
		s.PoolID = poolID
	}
	return &s, nil
}

func (f *FS) SaveSchedule(ctx context.Context, schedule *models.Schedule) error {
	if err := writeJSON(f.schedulePath(schedule.PoolID), schedule); err != nil {
		return fmt.Errorf("saving schedule for pool %q: %w", schedule.PoolID, err)
	}
	return nil
}

// BackupSchedule copies schedule.json to a timestamped sibling and returns
// the backup path.
func (f *FS) BackupSchedule(ctx context.Context, poolID string) (string, error) {
	data, err := os.ReadFile(f.schedulePath(poolID))
	if err != nil {
		return "", fmt.Errorf("reading schedule for backup: %w", err)
	}
	name := fmt.Sprintf("schedule_backup_%s.json", time.Now().Format("20060102T150405"))
	dst := filepath.Join(f.poolDir(poolID), name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("writing schedule backup: %w", err)
	}
	return dst, nil
}

func (f *FS) LoadRules(ctx context.Context, poolID string) (models.RuleSet, error) {
	var rules models.RuleSet
	path := filepath.Join(f.poolDir(poolID), "rules.json")
	if err := readJSON(path, &rules); err != nil {
		return nil, fmt.Errorf("loading rules for pool %q: %w", poolID, err)
	}
	return rules, nil
}

// SaveRules writes the rule configuration. Used by pool setup, not part of
// the RuleStore interface.
func (f *FS) SaveRules(ctx context.Context, poolID string, rules models.RuleSet) error {
	path := filepath.Join(f.poolDir(poolID), "rules.json")
	if err := writeJSON(path, rules); err != nil {
		return fmt.Errorf("saving rules for pool %q: %w", poolID, err)
	}
	return nil
}

func (f *FS) predictionsPath(poolID, participant string) string {
	return filepath.Join(f.poolDir(poolID), "participants", participant, "predictions.json")
}

// LoadAll reads every participant directory under the pool. A participant
// directory without a predictions file counts as registered with no entries.
func (f *FS) LoadAll(ctx context.Context, poolID string) (map[string][]models.RoundEntry, error) {
	dir := filepath.Join(f.poolDir(poolID), "participants")
	infos, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return map[string][]models.RoundEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing participants for pool %q: %w", poolID, err)
	}

	all := make(map[string][]models.RoundEntry, len(infos))
	for _, info := range infos {
		if !info.IsDir() {
			continue
		}
		id := info.Name()
		var entries []models.RoundEntry
		err := readJSON(f.predictionsPath(poolID, id), &entries)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading predictions for %q: %w", id, err)
		}
		all[id] = entries
	}
	return all, nil
}

func (f *FS) Save(ctx context.Context, poolID, participant string, entries []models.RoundEntry) error {
	path := f.predictionsPath(poolID, participant)
	if err := writeJSON(path, entries); err != nil {
		return fmt.Errorf("saving predictions for %q: %w", participant, err)
	}
	return nil
}

func (f *FS) WriteReport(ctx context.Context, poolID string, round int, text string) (string, error) {
	dir := filepath.Join(f.poolDir(poolID), "reports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("round%02d.txt", round))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
