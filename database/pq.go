package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/collegefinder/api/config"
	_ "github.com/lib/pq"
)

// RunSchemaFixes applies raw DDL that AutoMigrate will not touch on a
// database created by an earlier schema. It runs on its own lib/pq
// connection so it works even when the GORM session has prepared
// statements cached against the old column types.
func RunSchemaFixes() error {
	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", getEnv.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return err
	}

	if err := widenCourseAbout(db); err != nil {
		return err
	}

	return ensureRelationConstraints(db)
}

// widenCourseAbout converts courses.about to unbounded text. An earlier
// schema used varchar(500), which silently truncated long course
// descriptions in production.
func widenCourseAbout(db *sql.DB) error {
	var dataType string
	var maxLen sql.NullInt64

	// Scoped to the current schema so a same-named table elsewhere cannot
	// trigger or mask the widening.
	row := db.QueryRow(`
		SELECT data_type, character_maximum_length
		FROM information_schema.columns
		WHERE table_schema = current_schema()
		  AND table_name = 'courses' AND column_name = 'about'
	`)
	if err := row.Scan(&dataType, &maxLen); err != nil {
		if err == sql.ErrNoRows {
			// Fresh database; AutoMigrate already created the column as text.
			return nil
		}
		return err
	}

	if dataType == "text" {
		return nil
	}

	log.Printf("Widening courses.about from %s(%d) to text", dataType, maxLen.Int64)
	_, err := db.Exec(`ALTER TABLE courses ALTER COLUMN about TYPE text`)
	return err
}

// ensureRelationConstraints guarantees the composite unique indexes on the
// relation tables exist. They are the sole correctness guard against
// duplicate like/compare rows under concurrent requests.
func ensureRelationConstraints(db *sql.DB) error {
	indexes := map[string]string{
		"idx_liked_user_college":   "liked_colleges",
		"idx_compare_user_college": "compare_colleges",
	}

	for name, table := range indexes {
		query := fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (user_id, college_id)`,
			name, table,
		)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("ensuring %s on %s: %w", name, table, err)
		}
	}

	return nil
}
