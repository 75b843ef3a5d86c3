package db

// SchemaSQL is the single source of truth for the sqlite store layout.
// Tests must use GetSchemaSQL() instead of hardcoding CREATE TABLE
// statements, so repository code and tests cannot drift apart.
//
// The surrogate `seq` column does double duty: AUTOINCREMENT gives the
// monotonically increasing, never-reused counter the id invariant requires,
// and ordering by it preserves insertion order for listings. The public
// string id is derived from it at insert time.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS issues (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	status TEXT NOT NULL
);
`

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
