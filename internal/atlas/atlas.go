// Package atlas persists generated room blueprints to SQL so regions can be
// batch-generated once and explored later. The worldgen engine itself never
// touches this package; callers decide what to materialize.
package atlas

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/everwildmud/everwild/internal/worldgen"
)

// ErrNotFound is returned by GetRoom when no record exists at a coordinate.
var ErrNotFound = errors.New("atlas: room not found")

// Atlas wraps the SQL connection and provides blueprint persistence.
type Atlas struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// RoomRecord is a materialized blueprint as stored in the atlas.
type RoomRecord struct {
	Coordinates     worldgen.Coordinate
	Biome           string
	Scale           worldgen.Scale
	DescriptionHint string
	Description     string
	Landmark        string
	Tags            []string
	DistantFeatures []string
	Exits           map[worldgen.Direction]worldgen.Coordinate
	Terrain         []worldgen.TerrainFeature
}

// Open opens the atlas database for the given dialect and DSN, creating the
// schema if needed. For SQLite the DSN is a file path and its directory is
// created on demand.
func Open(dialectType DialectType, dsn string) (*Atlas, error) {
	dialect := NewDialect(dialectType)

	if dialectType != DialectPostgres {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create atlas directory: %w", err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open atlas database: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize atlas database: %w", err)
		}
	}

	a := &Atlas{db: db, dialect: dialect, qb: NewQueryBuilder(dialect)}

	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run atlas migrations: %w", err)
	}

	return a, nil
}

// Close closes the database connection.
func (a *Atlas) Close() error {
	return a.db.Close()
}

func (a *Atlas) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			z INTEGER NOT NULL,
			biome TEXT NOT NULL,
			scale TEXT NOT NULL,
			description_hint TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			landmark TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			distant_features TEXT NOT NULL DEFAULT '[]',
			generated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (x, y, z)
		)`,

		`CREATE TABLE IF NOT EXISTS exits (
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			z INTEGER NOT NULL,
			direction TEXT NOT NULL,
			dest_x INTEGER NOT NULL,
			dest_y INTEGER NOT NULL,
			dest_z INTEGER NOT NULL,
			PRIMARY KEY (x, y, z, direction)
		)`,

		`CREATE TABLE IF NOT EXISTS terrain (
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			z INTEGER NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			weight INTEGER NOT NULL DEFAULT 0,
			tags TEXT NOT NULL DEFAULT '[]',
			PRIMARY KEY (x, y, z, name)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_rooms_biome ON rooms(biome)`,
		`CREATE INDEX IF NOT EXISTS idx_rooms_z ON rooms(z)`,
	}

	for _, migration := range migrations {
		if _, err := a.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// SaveBlueprint upserts a blueprint at the given coordinate. An existing
// record is replaced wholesale, exits and terrain included, so regenerating
// a region is always safe.
func (a *Atlas) SaveBlueprint(c worldgen.Coordinate, bp worldgen.RoomBlueprint) error {
	tags, err := json.Marshal(bp.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	distant, err := json.Marshal(bp.DistantFeatures)
	if err != nil {
		return fmt.Errorf("failed to encode distant features: %w", err)
	}

	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"terrain", "exits", "rooms"} {
		query := a.qb.Build("DELETE FROM " + table + " WHERE x = ? AND y = ? AND z = ?")
		if _, err := tx.Exec(query, c.X, c.Y, c.Z); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	insertRoom := a.qb.Build(`INSERT INTO rooms
		(x, y, z, biome, scale, description_hint, description, landmark, tags, distant_features)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if _, err := tx.Exec(insertRoom,
		c.X, c.Y, c.Z, bp.Biome, string(bp.Scale),
		bp.DescriptionHint, bp.Description, bp.Landmark,
		string(tags), string(distant)); err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}

	insertExit := a.qb.Build(`INSERT INTO exits
		(x, y, z, direction, dest_x, dest_y, dest_z)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	for dir, dest := range bp.Exits {
		if _, err := tx.Exec(insertExit, c.X, c.Y, c.Z, string(dir), dest.X, dest.Y, dest.Z); err != nil {
			return fmt.Errorf("failed to insert exit %s: %w", dir, err)
		}
	}

	insertTerrain := a.qb.Build(`INSERT INTO terrain
		(x, y, z, name, type, description, weight, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	for _, feature := range bp.Terrain {
		featureTags, err := json.Marshal(feature.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode terrain tags: %w", err)
		}
		if _, err := tx.Exec(insertTerrain,
			c.X, c.Y, c.Z, feature.Name, feature.Type,
			feature.Description, feature.Weight, string(featureTags)); err != nil {
			return fmt.Errorf("failed to insert terrain %q: %w", feature.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit blueprint: %w", err)
	}
	return nil
}

// GetRoom loads the record at a coordinate, or ErrNotFound.
func (a *Atlas) GetRoom(c worldgen.Coordinate) (*RoomRecord, error) {
	query := a.qb.Build(`SELECT biome, scale, description_hint, description, landmark, tags, distant_features
		FROM rooms WHERE x = ? AND y = ? AND z = ?`)

	record := &RoomRecord{Coordinates: c}
	var scale, tags, distant string
	err := a.db.QueryRow(query, c.X, c.Y, c.Z).Scan(
		&record.Biome, &scale, &record.DescriptionHint,
		&record.Description, &record.Landmark, &tags, &distant)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	record.Scale = worldgen.Scale(scale)

	if err := json.Unmarshal([]byte(tags), &record.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if err := json.Unmarshal([]byte(distant), &record.DistantFeatures); err != nil {
		return nil, fmt.Errorf("failed to decode distant features: %w", err)
	}

	if record.Exits, err = a.loadExits(c); err != nil {
		return nil, err
	}
	if record.Terrain, err = a.loadTerrain(c); err != nil {
		return nil, err
	}

	return record, nil
}

func (a *Atlas) loadExits(c worldgen.Coordinate) (map[worldgen.Direction]worldgen.Coordinate, error) {
	query := a.qb.Build(`SELECT direction, dest_x, dest_y, dest_z
		FROM exits WHERE x = ? AND y = ? AND z = ?`)
	rows, err := a.db.Query(query, c.X, c.Y, c.Z)
	if err != nil {
		return nil, fmt.Errorf("failed to load exits: %w", err)
	}
	defer rows.Close()

	exits := make(map[worldgen.Direction]worldgen.Coordinate)
	for rows.Next() {
		var dir string
		var dest worldgen.Coordinate
		if err := rows.Scan(&dir, &dest.X, &dest.Y, &dest.Z); err != nil {
			return nil, fmt.Errorf("failed to scan exit: %w", err)
		}
		exits[worldgen.Direction(dir)] = dest
	}
	return exits, rows.Err()
}

func (a *Atlas) loadTerrain(c worldgen.Coordinate) ([]worldgen.TerrainFeature, error) {
	query := a.qb.Build(`SELECT name, type, description, weight, tags
		FROM terrain WHERE x = ? AND y = ? AND z = ? ORDER BY name`)
	rows, err := a.db.Query(query, c.X, c.Y, c.Z)
	if err != nil {
		return nil, fmt.Errorf("failed to load terrain: %w", err)
	}
	defer rows.Close()

	var terrain []worldgen.TerrainFeature
	for rows.Next() {
		var feature worldgen.TerrainFeature
		var featureTags string
		if err := rows.Scan(&feature.Name, &feature.Type, &feature.Description, &feature.Weight, &featureTags); err != nil {
			return nil, fmt.Errorf("failed to scan terrain: %w", err)
		}
		if err := json.Unmarshal([]byte(featureTags), &feature.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode terrain tags: %w", err)
		}
		terrain = append(terrain, feature)
	}
	return terrain, rows.Err()
}

// RoomCount returns the number of materialized rooms.
func (a *Atlas) RoomCount() (int, error) {
	var count int
	if err := a.db.QueryRow("SELECT COUNT(*) FROM rooms").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}
