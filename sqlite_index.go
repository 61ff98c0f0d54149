package textprep

import (
	"database/sql"
	"math"
	"sort"

	_ "github.com/glebarez/sqlite"
)

// SQLiteIndexer is the SQLite-backed Indexer implementation. Use ":memory:"
// as the path for a throwaway index.
type SQLiteIndexer struct {
	db  *sql.DB
	cfg Config
}

// NewSQLiteIndexer opens (or creates) the index database at dbPath.
func NewSQLiteIndexer(dbPath string, cfg Config) (*SQLiteIndexer, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// Serialize access; SQLite handles one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteIndexer{db: db, cfg: cfg}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY,
		url TEXT UNIQUE NOT NULL,
		term_count INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS terms (
		id INTEGER PRIMARY KEY,
		term TEXT UNIQUE NOT NULL
	);

	CREATE TABLE IF NOT EXISTS postings (
		doc_id INTEGER NOT NULL,
		term_id INTEGER NOT NULL,
		freq INTEGER NOT NULL,
		PRIMARY KEY (doc_id, term_id),
		FOREIGN KEY (doc_id) REFERENCES documents(id) ON DELETE CASCADE,
		FOREIGN KEY (term_id) REFERENCES terms(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_postings_term ON postings(term_id);
	`)
	return err
}

// AddDocument implements Indexer. The whole document goes in under one
// transaction; re-adding an already indexed URL is a no-op.
func (idx *SQLiteIndexer) AddDocument(url string, tokens []string) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var docID int64
	err = tx.QueryRow("SELECT id FROM documents WHERE url = ?", url).Scan(&docID)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	terms := analyze(tokens, idx.cfg)
	freq := make(map[string]int, len(terms))
	for _, s := range terms {
		freq[s]++
	}

	res, err := tx.Exec("INSERT INTO documents (url, term_count) VALUES (?, ?)", url, len(terms))
	if err != nil {
		return err
	}
	docID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	termStmt, err := tx.Prepare("INSERT OR IGNORE INTO terms (term) VALUES (?)")
	if err != nil {
		return err
	}
	defer termStmt.Close()

	postStmt, err := tx.Prepare(
		"INSERT INTO postings (doc_id, term_id, freq) VALUES (?, (SELECT id FROM terms WHERE term = ?), ?)")
	if err != nil {
		return err
	}
	defer postStmt.Close()

	for s, n := range freq {
		if _, err := termStmt.Exec(s); err != nil {
			return err
		}
		if _, err := postStmt.Exec(docID, s, n); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Search implements Indexer. Document frequency comes from the postings
// table, so TF-IDF matches the in-memory indexer exactly.
func (idx *SQLiteIndexer) Search(term string) ([]Hit, error) {
	if term == "" {
		return nil, nil
	}
	s := queryTerm(term, idx.cfg)
	if s == "" {
		return nil, nil
	}

	var total int
	if err := idx.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&total); err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	var df int
	err := idx.db.QueryRow(`
		SELECT COUNT(*) FROM postings p
		JOIN terms t ON p.term_id = t.id
		WHERE t.term = ?`, s).Scan(&df)
	if err != nil {
		return nil, err
	}
	if df == 0 {
		return nil, nil
	}
	idf := math.Log(float64(total) / float64(df))

	rows, err := idx.db.Query(`
		SELECT d.url, p.freq, d.term_count
		FROM documents d
		JOIN postings p ON d.id = p.doc_id
		JOIN terms t ON t.id = p.term_id
		WHERE t.term = ?`, s)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var url string
		var freq, termCount int
		if err := rows.Scan(&url, &freq, &termCount); err != nil {
			return nil, err
		}
		if termCount > 0 {
			tf := float64(freq) / float64(termCount)
			hits = append(hits, Hit{URL: url, Score: tf * idf})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(hits, func(i, j int) bool {
		return lessHit(hits[i], hits[j])
	})
	return hits, nil
}

// Close implements Indexer.
func (idx *SQLiteIndexer) Close() error {
	return idx.db.Close()
}
