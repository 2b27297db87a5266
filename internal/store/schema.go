package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
    id                 TEXT PRIMARY KEY,
    name               TEXT NOT NULL,
    delivery_date      TEXT NOT NULL,
    contract_amount    REAL NOT NULL,
    close_rate_pct     REAL NOT NULL,
    business_line      TEXT NOT NULL,
    ratio_first        REAL NOT NULL,
    ratio_second       REAL NOT NULL,
    ratio_final        REAL NOT NULL,
    corrected_revenue  REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS labor_costs (
    id                 TEXT PRIMARY KEY,
    category           TEXT NOT NULL,
    resource           TEXT NOT NULL,
    monthly_cost       REAL NOT NULL,
    start_date         TEXT NOT NULL,
    end_date           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS admin_costs (
    id                 TEXT NOT NULL PRIMARY KEY,
    category           TEXT NOT NULL,
    item               TEXT NOT NULL,
    monthly_cost       REAL NOT NULL,
    start_date         TEXT NOT NULL,
    end_date           TEXT NOT NULL,
    frequency          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS occasional_entries (
    id                 TEXT PRIMARY KEY,
    kind               TEXT NOT NULL,
    label              TEXT NOT NULL,
    amount             REAL NOT NULL,
    entry_date         TEXT NOT NULL,
    tag                TEXT
);

CREATE INDEX IF NOT EXISTS idx_projects_delivery ON projects(delivery_date);
CREATE INDEX IF NOT EXISTS idx_occasional_kind ON occasional_entries(kind);
`
