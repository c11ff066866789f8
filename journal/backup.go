package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// BackupVersion tags the backup document format.
const BackupVersion = 1

// Backup is a full-journal JSON document for round-trip export/import.
type Backup struct {
	Version     int               `json:"version"`
	ExportedAt  time.Time         `json:"exported_at"`
	Portfolio   PortfolioSettings `json:"portfolio"`
	Adjustments []Adjustment      `json:"adjustments,omitempty"`
	Trades      []Trade           `json:"trades"`
	Notes       []string          `json:"notes,omitempty"`
	NextActions []string          `json:"next_actions,omitempty"`
}

// WriteBackup writes the full journal state to path as indented JSON.
func (s *Store) WriteBackup(path string, notes, nextActions []string) error {
	b := Backup{
		Version:     BackupVersion,
		ExportedAt:  time.Now().UTC(),
		Portfolio:   s.portfolio,
		Adjustments: s.Adjustments(),
		Trades:      s.Trades(),
		Notes:       notes,
		NextActions: nextActions,
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ReadBackup parses and version-checks a backup document.
func ReadBackup(path string) (Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Backup{}, fmt.Errorf("read backup: %w", err)
	}
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return Backup{}, fmt.Errorf("parse backup: %w", err)
	}
	if b.Version != BackupVersion {
		return Backup{}, fmt.Errorf("unsupported backup version %d", b.Version)
	}
	return b, nil
}

// Restore replaces the journal contents with the backup document. Trades
// keep their backed-up IDs and timestamps.
func (s *Store) Restore(b Backup) error {
	if err := s.db.ClearTrades(); err != nil {
		return fmt.Errorf("clear trades: %w", err)
	}
	s.trades = nil

	for _, t := range b.Trades {
		if err := s.db.InsertTrade(t); err != nil {
			return fmt.Errorf("restore trade %s: %w", t.ID, err)
		}
		s.trades = append(s.trades, t)
	}
	s.sortTrades()

	if err := s.db.ClearAdjustments(); err != nil {
		return fmt.Errorf("clear adjustments: %w", err)
	}
	s.adjustments = nil
	for _, a := range b.Adjustments {
		if err := s.db.InsertAdjustment(a); err != nil {
			return fmt.Errorf("restore adjustment %s: %w", a.ID, err)
		}
		s.adjustments = append(s.adjustments, a)
	}

	s.portfolio.StartingCapital = b.Portfolio.StartingCapital
	return s.recomputeBalance()
}
