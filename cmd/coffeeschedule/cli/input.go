package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/meet-when/coffee-scheduler/internal/scheduling"
)

// contactFile is the on-disk shape of the --contacts file.
type contactFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

// busyFile is the on-disk shape of one entry in the --busy file.
type busyFile struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func loadContacts(path string) ([]scheduling.Contact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contacts file: %w", err)
	}

	var entries []contactFile
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse contacts file: %w", err)
	}

	contacts := make([]scheduling.Contact, len(entries))
	for i, e := range entries {
		contacts[i] = scheduling.Contact{ID: e.ID, Name: e.Name, Timezone: e.Timezone}
	}
	return contacts, nil
}

func loadBusy(path string) ([]scheduling.BusyInterval, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read busy file: %w", err)
	}

	var entries []busyFile
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse busy file: %w", err)
	}

	busy := make([]scheduling.BusyInterval, len(entries))
	for i, e := range entries {
		busy[i] = scheduling.BusyInterval{Start: e.Start, End: e.End}
	}
	return busy, nil
}
