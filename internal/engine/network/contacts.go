package network

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// IntroStatus tracks the lifecycle of an introduction request.
type IntroStatus string

const (
	StatusRequested IntroStatus = "requested"
	StatusSent      IntroStatus = "sent"
	StatusAccepted  IntroStatus = "accepted"
	StatusDeclined  IntroStatus = "declined"
)

// TrackedIntro is a single entry in the local introduction tracker.
type TrackedIntro struct {
	ID             int64       `json:"id"`
	ConnectionName string      `json:"connectionName"`
	Company        string      `json:"company"`
	ViaContact     string      `json:"viaContact,omitempty"`
	Status         IntroStatus `json:"status"`
	Notes          string      `json:"notes,omitempty"`
	ProfileURL     string      `json:"profileUrl,omitempty"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
}

// IntroTrackerAddInput is the input for intro_tracker_add.
type IntroTrackerAddInput struct {
	ConnectionName string `json:"connectionName"`
	Company        string `json:"company"`
	ViaContact     string `json:"viaContact,omitempty"`
	Status         string `json:"status,omitempty"`
	Notes          string `json:"notes,omitempty"`
	ProfileURL     string `json:"profileUrl,omitempty"`
}

// IntroTrackerListInput is the input for intro_tracker_list.
type IntroTrackerListInput struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// IntroTrackerUpdateInput is the input for intro_tracker_update.
type IntroTrackerUpdateInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// IntroTrackerResult is the output for add/update operations.
type IntroTrackerResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// IntroTrackerListResult is the output for list operations.
type IntroTrackerListResult struct {
	Intros []TrackedIntro `json:"intros"`
	Total  int            `json:"total"`
}

// ContactsImportInput is the input for contacts_import.
type ContactsImportInput struct {
	Contacts []Contact `json:"contacts"`
}

// ContactsImportResult is the output for contacts_import.
type ContactsImportResult struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}

// StoredContact is one row in the local contact book.
type StoredContact struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Position    string `json:"position,omitempty"`
	ProfileLink string `json:"profileUrl,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ContactsListInput is the input for contacts_list.
type ContactsListInput struct {
	Company string `json:"company,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// ContactsListResult is the output for contacts_list.
type ContactsListResult struct {
	Contacts []StoredContact `json:"contacts"`
	Total    int             `json:"total"`
}

var (
	trackerDB   *sql.DB
	trackerOnce sync.Once
	trackerErr  error
)

// openTrackerDB opens (or creates) the SQLite introduction tracker database.
func openTrackerDB() (*sql.DB, error) {
	trackerOnce.Do(func() {
		dir := filepath.Join(os.Getenv("HOME"), ".go_network")
		if err := os.MkdirAll(dir, 0750); err != nil {
			trackerErr = fmt.Errorf("tracker: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "tracker.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			trackerErr = fmt.Errorf("tracker: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initTrackerSchema(db); err != nil {
			trackerErr = fmt.Errorf("tracker: init schema: %w", err)
			return
		}
		trackerDB = db
	})
	return trackerDB, trackerErr
}

// initTrackerSchema creates the intros and contacts tables if they don't exist.
func initTrackerSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS intros (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		connection_name TEXT NOT NULL,
		company         TEXT NOT NULL,
		via_contact     TEXT,
		status          TEXT NOT NULL DEFAULT 'requested',
		notes           TEXT,
		profile_url     TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS contacts (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		company     TEXT NOT NULL,
		position    TEXT,
		profile_url TEXT,
		created_at  TEXT NOT NULL,
		UNIQUE(name, company)
	)`)
	return err
}

// validIntroStatus checks if a status string is valid.
func validIntroStatus(s string) bool {
	switch IntroStatus(s) {
	case StatusRequested, StatusSent, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// ImportContacts stores uploaded contact rows in the local contact book.
// Rows missing a name or company are skipped, as are duplicates of an
// already stored name+company pair.
func ImportContacts(_ context.Context, input ContactsImportInput) (*ContactsImportResult, error) {
	if len(input.Contacts) == 0 {
		return nil, errors.New("contacts_import: contacts is required and must be a non-empty array")
	}

	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res := &ContactsImportResult{}
	for _, c := range input.Contacts {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Company) == "" {
			res.Skipped++
			continue
		}
		r, err := db.Exec(
			`INSERT OR IGNORE INTO contacts (name, company, position, profile_url, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			c.Name, c.Company, c.Position, c.ProfileLink, now,
		)
		if err != nil {
			return nil, fmt.Errorf("contacts_import: insert: %w", err)
		}
		if n, _ := r.RowsAffected(); n == 0 {
			res.Skipped++
		} else {
			res.Imported++
		}
	}
	res.Message = fmt.Sprintf("Imported %d contacts (%d skipped)", res.Imported, res.Skipped)
	return res, nil
}

// ListContacts returns stored contacts, optionally filtered by company
// (case-insensitive substring).
func ListContacts(_ context.Context, input ContactsListInput) (*ContactsListResult, error) {
	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var rows *sql.Rows
	if input.Company != "" {
		rows, err = db.Query(
			`SELECT id, name, company, position, profile_url, created_at
			 FROM contacts WHERE company LIKE '%' || ? || '%' COLLATE NOCASE
			 ORDER BY name LIMIT ?`,
			input.Company, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, name, company, position, profile_url, created_at
			 FROM contacts ORDER BY name LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("contacts_list: query: %w", err)
	}
	defer rows.Close()

	contacts := []StoredContact{}
	for rows.Next() {
		var c StoredContact
		var position, profileURL sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Company, &position, &profileURL, &c.CreatedAt); err != nil {
			continue
		}
		c.Position = position.String
		c.ProfileLink = profileURL.String
		contacts = append(contacts, c)
	}

	var total int
	if input.Company != "" {
		db.QueryRow(`SELECT COUNT(*) FROM contacts WHERE company LIKE '%' || ? || '%' COLLATE NOCASE`, input.Company).Scan(&total) //nolint:errcheck
	} else {
		db.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&total) //nolint:errcheck
	}

	return &ContactsListResult{Contacts: contacts, Total: total}, nil
}

// AddTrackedIntro saves a new introduction to the tracker.
func AddTrackedIntro(_ context.Context, input IntroTrackerAddInput) (*IntroTrackerResult, error) {
	if input.ConnectionName == "" || input.Company == "" {
		return nil, errors.New("intro_tracker_add: connectionName and company are required")
	}

	status := strings.ToLower(input.Status)
	if status == "" {
		status = string(StatusRequested)
	}
	if !validIntroStatus(status) {
		return nil, fmt.Errorf("intro_tracker_add: invalid status %q (valid: requested, sent, accepted, declined)", status)
	}

	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO intros (connection_name, company, via_contact, status, notes, profile_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.ConnectionName, input.Company, input.ViaContact, status,
		input.Notes, input.ProfileURL, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("intro_tracker_add: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return &IntroTrackerResult{
		ID:      id,
		Message: fmt.Sprintf("Introduction to '%s' at '%s' saved with status '%s' (id=%d)", input.ConnectionName, input.Company, status, id),
	}, nil
}

// ListTrackedIntros returns tracked introductions, optionally filtered by status.
func ListTrackedIntros(_ context.Context, input IntroTrackerListInput) (*IntroTrackerListResult, error) {
	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows *sql.Rows
	if input.Status != "" {
		status := strings.ToLower(input.Status)
		if !validIntroStatus(status) {
			return nil, fmt.Errorf("intro_tracker_list: invalid status %q", status)
		}
		rows, err = db.Query(
			`SELECT id, connection_name, company, via_contact, status, notes, profile_url, created_at, updated_at
			 FROM intros WHERE status = ? ORDER BY updated_at DESC LIMIT ?`,
			status, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, connection_name, company, via_contact, status, notes, profile_url, created_at, updated_at
			 FROM intros ORDER BY updated_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("intro_tracker_list: query: %w", err)
	}
	defer rows.Close()

	var intros []TrackedIntro
	for rows.Next() {
		var t TrackedIntro
		var via, notes, profileURL sql.NullString
		if err := rows.Scan(&t.ID, &t.ConnectionName, &t.Company, &via, &t.Status,
			&notes, &profileURL, &t.CreatedAt, &t.UpdatedAt); err != nil {
			continue
		}
		t.ViaContact = via.String
		t.Notes = notes.String
		t.ProfileURL = profileURL.String
		intros = append(intros, t)
	}

	// Count total matching rows
	var total int
	if input.Status != "" {
		db.QueryRow(`SELECT COUNT(*) FROM intros WHERE status = ?`, strings.ToLower(input.Status)).Scan(&total) //nolint:errcheck
	} else {
		db.QueryRow(`SELECT COUNT(*) FROM intros`).Scan(&total) //nolint:errcheck
	}

	if intros == nil {
		intros = []TrackedIntro{}
	}
	return &IntroTrackerListResult{Intros: intros, Total: total}, nil
}

// UpdateTrackedIntro updates the status and/or notes of a tracked introduction.
func UpdateTrackedIntro(_ context.Context, input IntroTrackerUpdateInput) (*IntroTrackerResult, error) {
	if input.ID <= 0 {
		return nil, errors.New("intro_tracker_update: id is required")
	}
	if input.Status == "" && input.Notes == "" {
		return nil, errors.New("intro_tracker_update: at least one of status or notes must be provided")
	}

	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	switch {
	case input.Status != "" && input.Notes != "":
		status := strings.ToLower(input.Status)
		if !validIntroStatus(status) {
			return nil, fmt.Errorf("intro_tracker_update: invalid status %q", status)
		}
		_, err = db.Exec(`UPDATE intros SET status=?, notes=?, updated_at=? WHERE id=?`,
			status, input.Notes, now, input.ID)
	case input.Status != "":
		status := strings.ToLower(input.Status)
		if !validIntroStatus(status) {
			return nil, fmt.Errorf("intro_tracker_update: invalid status %q", status)
		}
		_, err = db.Exec(`UPDATE intros SET status=?, updated_at=? WHERE id=?`,
			status, now, input.ID)
	default:
		_, err = db.Exec(`UPDATE intros SET notes=?, updated_at=? WHERE id=?`,
			input.Notes, now, input.ID)
	}

	if err != nil {
		return nil, fmt.Errorf("intro_tracker_update: %w", err)
	}

	return &IntroTrackerResult{
		ID:      input.ID,
		Message: fmt.Sprintf("Introduction #%d updated successfully", input.ID),
	}, nil
}
