package schema

// SchemaSQL contains the full database schema initialization script.
// Kept in sync with migrations/; used by cmd/setup and integration tests.
const SchemaSQL = `
-- Items Catalog
CREATE TABLE IF NOT EXISTS items (
    item_id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    rarity INTEGER NOT NULL DEFAULT 1 CHECK (rarity >= 1),
    description TEXT,
    image_url TEXT UNIQUE,
    color1 VARCHAR(7),
    color2 VARCHAR(7)
);

-- Currency Accounts (one per user, created lazily on first credit)
CREATE TABLE IF NOT EXISTS currency_accounts (
    user_id UUID PRIMARY KEY,
    amount BIGINT NOT NULL DEFAULT 0 CHECK (amount >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Acquisitions (append-only pull records; doubles as inventory and audit trail)
CREATE TABLE IF NOT EXISTS acquisitions (
    acquisition_id BIGSERIAL PRIMARY KEY,
    user_id UUID NOT NULL,
    item_id INTEGER NOT NULL REFERENCES items(item_id) ON DELETE RESTRICT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_acquisitions_user ON acquisitions(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_acquisitions_user_item ON acquisitions(user_id, item_id);
`
