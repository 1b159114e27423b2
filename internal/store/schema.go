package store

// Two fixed keys hold the whole app state as JSON blobs: the profile object
// and the scenario history array. Written wholesale on every change.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
    key         TEXT PRIMARY KEY,
    value       TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);
`

const (
	profileKey   = "ppc_profile"
	scenariosKey = "ppc_scenarios"
)
