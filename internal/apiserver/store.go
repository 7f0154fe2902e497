// Package apiserver is the bundled development server: the same REST
// surface the TUI syncs against, backed by SQLite. It stands in for the
// hosted backend during local development and in tests.
package apiserver

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// schema holds every record as a JSON document keyed by collection and
// server-assigned ID, matching the document-store shape of the wire
// format.
const schema = `
CREATE TABLE IF NOT EXISTS records (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (collection, id)
);
`

// record is one row of the documents table.
type record struct {
	Collection string `db:"collection"`
	ID         string `db:"id"`
	Body       string `db:"body"`
	CreatedAt  string `db:"created_at"`
	UpdatedAt  string `db:"updated_at"`
}

// Store persists collection documents in SQLite.
type Store struct {
	db *sqlx.DB
}

// OpenStore opens (and if needed initializes) the database at path. Use
// ":memory:" for an ephemeral store.
func OpenStore(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	// modernc.org/sqlite serializes writes itself; a single connection
	// avoids SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns every document in a collection in creation order.
func (s *Store) List(collection string) ([]map[string]interface{}, error) {
	var rows []record
	err := s.db.Select(&rows,
		`SELECT * FROM records WHERE collection = ? ORDER BY created_at, id`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}

	docs := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeBody(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Get returns one document by ID.
func (s *Store) Get(collection, id string) (map[string]interface{}, bool, error) {
	var row record
	err := s.db.Get(&row,
		`SELECT * FROM records WHERE collection = ? AND id = ?`,
		collection, id,
	)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("getting %s/%s: %w", collection, id, err)
	}

	doc, err := decodeBody(row)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// Create assigns a fresh ID and timestamps and stores the document. The
// stored body carries them under _id, createdAt, and updatedAt.
func (s *Store) Create(collection string, body map[string]interface{}) (map[string]interface{}, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	id := uuid.New().String()

	doc := make(map[string]interface{}, len(body)+3)
	for k, v := range body {
		doc[k] = v
	}
	doc["_id"] = id
	doc["createdAt"] = now
	doc["updatedAt"] = now

	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding %s document: %w", collection, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO records (collection, id, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		collection, id, string(encoded), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s document: %w", collection, err)
	}
	return doc, nil
}

// Update merges the patch over an existing document and refreshes
// updatedAt. It reports whether the document was found. The _id and
// createdAt keys cannot be patched over.
func (s *Store) Update(collection, id string, patch map[string]interface{}) (map[string]interface{}, bool, error) {
	doc, found, err := s.Get(collection, id)
	if err != nil || !found {
		return nil, found, err
	}

	for k, v := range patch {
		if k == "_id" || k == "createdAt" || k == "updatedAt" {
			continue
		}
		doc[k] = v
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	doc["updatedAt"] = now

	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, false, fmt.Errorf("encoding %s document: %w", collection, err)
	}

	_, err = s.db.Exec(
		`UPDATE records SET body = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(encoded), now, collection, id,
	)
	if err != nil {
		return nil, false, fmt.Errorf("updating %s/%s: %w", collection, id, err)
	}
	return doc, true, nil
}

// Delete removes a document. It reports whether the document existed.
func (s *Store) Delete(collection, id string) (bool, error) {
	res, err := s.db.Exec(
		`DELETE FROM records WHERE collection = ? AND id = ?`,
		collection, id,
	)
	if err != nil {
		return false, fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func decodeBody(row record) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(row.Body), &doc); err != nil {
		return nil, fmt.Errorf("decoding %s/%s: %w", row.Collection, row.ID, err)
	}
	return doc, nil
}
