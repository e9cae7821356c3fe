package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// MaxReportedCollections caps the collection names in a HealthReport.
const MaxReportedCollections = 10

const maxErrorLength = 80

// HealthReport describes the store for operational visibility.
type HealthReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Database status strings reported by HealthCheck.
const (
	StatusNotAvailable   = "Not Available"
	StatusNotInitialized = "Available but not initialized"
	StatusConnected      = "Connected & Working"
	StatusAvailable      = "Available"

	ConnectionConnected    = "Connected"
	ConnectionNotConnected = "Not Connected"
)

// HealthCheck reports connectivity and up to MaxReportedCollections
// collection names. It never fails: errors are folded into the
// Database status string.
func (db *Database) HealthCheck(ctx context.Context) (report HealthReport) {
	report = HealthReport{
		Backend:          "Running",
		Database:         StatusNotAvailable,
		ConnectionStatus: ConnectionNotConnected,
		Collections:      []string{},
	}

	if db == nil {
		return report
	}
	if db.DB == nil {
		report.Database = StatusNotInitialized
		return report
	}

	defer func() {
		// A misbehaving driver must not take the health endpoint down with it.
		if r := recover(); r != nil {
			report.Database = "Error: " + truncate(fmt.Sprint(r))
		}
	}()

	// A Database only exists when DATABASE_URL was configured.
	report.Database = StatusAvailable
	urlStatus := "Set"
	report.DatabaseURL = &urlStatus
	name := db.DB.Name()
	report.DatabaseName = &name

	collections, err := db.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		report.Database = "Connected but Error: " + truncate(err.Error())
		return report
	}

	if len(collections) > MaxReportedCollections {
		collections = collections[:MaxReportedCollections]
	}
	report.Collections = collections
	report.Database = StatusConnected
	report.ConnectionStatus = ConnectionConnected

	return report
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxErrorLength {
		return string(r[:maxErrorLength])
	}
	return s
}
