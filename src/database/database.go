package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/modelia/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

// InitDB opens the sqlite database and ensures the declarations table exists.
// Generated files are kept server-side so the download link can be retried
// without re-running the extraction.
func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS declarations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_id TEXT NOT NULL UNIQUE,
		source_filename TEXT,
		ai_provider TEXT,
		content TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		withholding_derived BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_declarations_created_at ON declarations(created_at);
	`

	if _, err = DB.Exec(createTableStatement); err != nil {
		logger.L.Error("failed to create tables", "error", err)
		stdlog.Fatalf("failed to create tables: %v", err)
	}
	logger.L.Info("Database tables ensured/created.", "path", databasePath)
}
