package postgres

const packageColumns = `
  id, name, destination, duration,
  price, original_price,
  description, highlights, includes,
  category, status, featured, image,
  route, nights, days, trip_type,
  created_at`

var schemaStmts = []string{
	`
CREATE TABLE IF NOT EXISTS packages (
  id             BIGSERIAL PRIMARY KEY,
  name           TEXT NOT NULL DEFAULT '',
  destination    TEXT NOT NULL DEFAULT '',
  duration       TEXT NOT NULL DEFAULT '',
  price          DOUBLE PRECISION NULL,
  original_price DOUBLE PRECISION NULL,
  description    TEXT NOT NULL DEFAULT '',
  highlights     TEXT[] NULL,
  includes       TEXT[] NULL,
  category       TEXT NOT NULL DEFAULT '',
  status         TEXT NOT NULL DEFAULT 'Active',
  featured       BOOLEAN NOT NULL DEFAULT FALSE,
  image          TEXT NOT NULL DEFAULT '/cards/1.jpg',
  route          TEXT NOT NULL DEFAULT '',
  nights         INT NOT NULL DEFAULT 0,
  days           INT NOT NULL DEFAULT 0,
  trip_type      TEXT NOT NULL DEFAULT 'custom',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_created_at ON packages(created_at DESC, id DESC)`,
}

const insertPackageSQL = `
INSERT INTO packages (
  name, destination, duration,
  price, original_price,
  description, highlights, includes,
  category, status, featured, image,
  route, nights, days, trip_type
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
RETURNING` + packageColumns

// id breaks ties between rows created in the same instant
const listPackagesSQL = `
SELECT` + packageColumns + `
FROM packages
ORDER BY created_at DESC, id DESC`
