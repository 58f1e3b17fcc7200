package mysql

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
  id             BIGINT AUTO_INCREMENT PRIMARY KEY,
  name           VARCHAR(255) NOT NULL DEFAULT '',
  destination    VARCHAR(255) NOT NULL DEFAULT '',
  duration       VARCHAR(128) NOT NULL DEFAULT '',
  price          DOUBLE NULL,
  original_price DOUBLE NULL,
  description    TEXT NOT NULL,
  highlights     JSON NULL,
  includes       JSON NULL,
  category       VARCHAR(64) NOT NULL DEFAULT '',
  status         VARCHAR(32) NOT NULL DEFAULT 'Active',
  featured       BOOLEAN NOT NULL DEFAULT FALSE,
  image          VARCHAR(512) NOT NULL DEFAULT '/cards/1.jpg',
  route          VARCHAR(512) NOT NULL DEFAULT '',
  nights         INT NOT NULL DEFAULT 0,
  days           INT NOT NULL DEFAULT 0,
  trip_type      VARCHAR(32) NOT NULL DEFAULT 'custom',
  created_at     DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
  KEY idx_packages_created_at (created_at, id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

const insertPackageSQL = `
INSERT INTO packages (
  name, destination, duration,
  price, original_price,
  description, highlights, includes,
  category, status, featured, image,
  route, nights, days, trip_type
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getPackageSQL = `SELECT` + packageColumns + `
FROM packages
WHERE id = ?`

// id breaks ties between rows created in the same microsecond
const listPackagesSQL = `SELECT` + packageColumns + `
FROM packages
ORDER BY created_at DESC, id DESC`
