package store

// Money columns are TEXT holding exact decimal strings.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS market_fundamentals (
    position             INTEGER PRIMARY KEY,
    metric               TEXT NOT NULL,
    label                TEXT NOT NULL,
    value                INTEGER NOT NULL,
    unit                 TEXT NOT NULL,
    description          TEXT
);

CREATE TABLE IF NOT EXISTS competitors (
    name                 TEXT PRIMARY KEY,
    is_target            INTEGER NOT NULL DEFAULT 0,
    revenue_r_m          TEXT NOT NULL,
    market_share         REAL,
    yoy_growth           REAL,
    customers            INTEGER,
    arpu_monthly         TEXT NOT NULL,
    cac                  TEXT NOT NULL,
    cac_payback_months   TEXT NOT NULL,
    funding_raised_r_m   TEXT NOT NULL,
    valuation_r_m        TEXT NOT NULL,
    profit_margin        REAL
);

CREATE TABLE IF NOT EXISTS feature_support (
    feature              TEXT NOT NULL,
    company              TEXT NOT NULL,
    supported            INTEGER NOT NULL,
    PRIMARY KEY (feature, company)
);

CREATE TABLE IF NOT EXISTS positioning (
    company              TEXT PRIMARY KEY,
    feature_score        REAL NOT NULL,
    price_index          REAL NOT NULL,
    customers            INTEGER,
    quadrant             TEXT
);

CREATE TABLE IF NOT EXISTS segments (
    name                 TEXT PRIMARY KEY,
    market_size          REAL,
    digital_adoption     REAL,
    arpu_potential       INTEGER,
    cac                  INTEGER,
    growth_rate          REAL
);

CREATE TABLE IF NOT EXISTS results (
    metric               TEXT PRIMARY KEY,
    current              REAL NOT NULL,
    target               REAL NOT NULL,
    unit                 TEXT,
    percent_of_target    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pain_points (
    description          TEXT PRIMARY KEY,
    prevalence           REAL NOT NULL,
    addressed            INTEGER NOT NULL,
    priority             INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_meta (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feature_support_company ON feature_support(company);
`

// TableNames lists the data tables in the order they are written.
var TableNames = []string{
	"market_fundamentals",
	"competitors",
	"feature_support",
	"positioning",
	"segments",
	"results",
	"pain_points",
}
