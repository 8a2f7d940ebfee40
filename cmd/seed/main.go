package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"forklift_tracker/internal/config"
	"forklift_tracker/internal/models"
)

// Seeds the database with a default admin account, the warehouse station
// map and a couple of demo forklifts. Safe to re-run: existing rows are
// left alone.
func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := seedAdmin(db); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := seedStations(db); err != nil {
		log.Fatalf("seed stations: %v", err)
	}
	if err := seedForklifts(db); err != nil {
		log.Fatalf("seed forklifts: %v", err)
	}

	log.Println("seeding complete")
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		log.Println("admin user already exists, skipping")
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		log.Println("ADMIN_PASSWORD not set, using default (change it!)")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Username: "admin",
		Email:    "admin@localhost",
		Password: string(hash),
		FullName: "Administrator",
		Role:     "admin",
		IsActive: true,
	}).Error
}

func strPtr(s string) *string { return &s }

func seedStations(db *gorm.DB) error {
	stations := []models.Station{
		{StationID: "STN-001", Name: "Loading Dock A", Type: "loading", RFIDTagID: strPtr("RFID-A1"), Latitude: 60.1699, Longitude: 24.9384, Zone: "A"},
		{StationID: "STN-002", Name: "Unloading Dock B", Type: "unloading", RFIDTagID: strPtr("RFID-B1"), Latitude: 60.1702, Longitude: 24.9391, Zone: "B"},
		{StationID: "STN-003", Name: "High Bay Storage", Type: "storage", RFIDTagID: strPtr("RFID-C1"), Latitude: 60.1705, Longitude: 24.9398, Zone: "C"},
		{StationID: "STN-004", Name: "Charging Bay 1", Type: "charging", RFIDTagID: strPtr("RFID-CHG1"), Latitude: 60.1697, Longitude: 24.9379, Zone: "D"},
		{StationID: "STN-005", Name: "Maintenance Pit", Type: "maintenance", RFIDTagID: strPtr("RFID-M1"), Latitude: 60.1695, Longitude: 24.9375, Zone: "D"},
	}

	for _, st := range stations {
		st.Active = true
		var count int64
		db.Model(&models.Station{}).Where("station_id = ?", st.StationID).Count(&count)
		if count > 0 {
			continue
		}
		geomWKB, err := models.PointWKB(st.Latitude, st.Longitude)
		if err != nil {
			return err
		}
		st.Geometry = geomWKB
		if err := db.Create(&st).Error; err != nil {
			return err
		}
		log.Printf("created station %s (%s)", st.StationID, st.Type)
	}
	return nil
}

func seedForklifts(db *gorm.DB) error {
	forklifts := []models.Forklift{
		{ForkliftID: "FL-001", Name: "Forklift 1", ForkliftModel: "Toyota 8FBE20", SerialNumber: "TY-8201", Status: "active", BatteryLevel: 85},
		{ForkliftID: "FL-002", Name: "Forklift 2", ForkliftModel: "Linde E16", SerialNumber: "LD-1644", Status: "active", BatteryLevel: 60},
		{ForkliftID: "FL-003", Name: "Forklift 3", ForkliftModel: "Still RX20", SerialNumber: "ST-2087", Status: "maintenance", BatteryLevel: 30},
	}

	for _, f := range forklifts {
		var count int64
		db.Model(&models.Forklift{}).Where("forklift_id = ?", f.ForkliftID).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&f).Error; err != nil {
			return err
		}
		log.Printf("created forklift %s", f.ForkliftID)
	}
	return nil
}
