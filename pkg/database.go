package simreader

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx"
)

func ConnectToDatabase(user string, password string, host string, database string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, password, host, port, database)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

type DetectorPosition struct {
	X        string `db:"X"`
	Y        string `db:"Y"`
	Detector string `db:"DetectorID"`
}

// GetDetectorsFromDB loads the coordinate-to-detector map for a geometry
// version from the DetectorPositions table. Coordinates are stored as
// strings with the same fixed decimal precision the simulator writes.
func GetDetectorsFromDB(db *sqlx.DB, geometry int) (DetectorMap, error) {
	query := fmt.Sprintf("SELECT X, Y, DetectorID from DetectorPositions WHERE MinRun <= %d and MaxRun >= %d",
		geometry, geometry)
	rows, err := db.Queryx(query)
	if err != nil {
		return nil, fmt.Errorf("error querying detector positions: %w", err)
	}
	defer rows.Close()

	detectors := make(DetectorMap)
	for rows.Next() {
		result := DetectorPosition{}
		if err := rows.StructScan(&result); err != nil {
			return nil, fmt.Errorf("error scanning DB row: %w", err)
		}
		detectors[coordinateKey(result.X, result.Y)] = result.Detector
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Detector map read from DB: %d positions, %d detectors",
			len(detectors), len(detectors.Detectors()))
		logger.Info(message, "database")
	}
	return detectors, nil
}
