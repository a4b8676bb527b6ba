package main

import (
	"fmt"
	"log"
	"time"

	"hospital-appointment-api/config"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/infrastructure/database"
	"hospital-appointment-api/pkg/jwt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedRooms(db, 12); err != nil {
		log.Fatalf("seed rooms: %v", err)
	}
	physicians, err := seedPhysicians(db, 40)
	if err != nil {
		log.Fatalf("seed physicians: %v", err)
	}
	if err := seedAvailabilityWindows(db, physicians); err != nil {
		log.Fatalf("seed availability windows: %v", err)
	}
	if err := seedPatients(db, 2000); err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	// A signed admin token for poking the API right after seeding.
	jwtService := jwt.NewJWTService(cfg.JWT)
	token, err := jwtService.GenerateToken(uuid.New(), "admin@hospital.local", jwt.RoleAdmin)
	if err != nil {
		log.Fatalf("generate dev token: %v", err)
	}
	log.Printf("dev admin token: %s", token)

	log.Println("seed complete")
}

func seedRooms(db *gorm.DB, count int) error {
	log.Printf("seeding %d rooms", count)

	rooms := make([]entity.Room, 0, count)
	for i := 0; i < count; i++ {
		rooms = append(rooms, entity.Room{
			Name:     fmt.Sprintf("C-%03d", i+1),
			Location: fmt.Sprintf("Floor %d", i/4+1),
		})
	}

	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	log.Println("rooms seeded")
	return nil
}

func seedPhysicians(db *gorm.DB, count int) ([]entity.Physician, error) {
	log.Printf("seeding %d physicians", count)

	specialties := []string{
		"Dermatology",
		"Cardiology",
		"General Practice",
		"Orthopedics",
		"Endocrinology",
		"Neurology",
		"Pediatrics",
		"Psychiatry",
		"Ophthalmology",
		"ENT",
	}

	active := true
	physicians := make([]entity.Physician, 0, count)
	for i := 0; i < count; i++ {
		physicians = append(physicians, entity.Physician{
			FullName:       gofakeit.Name(),
			DocumentNumber: fmt.Sprintf("%08d", gofakeit.Number(10000000, 99999999)),
			LicenseNumber:  fmt.Sprintf("CMP-%06d", gofakeit.Number(100000, 999999)),
			Specialty:      specialties[gofakeit.Number(0, len(specialties)-1)],
			PhoneNumber:    gofakeit.Phone(),
			IsActive:       &active,
		})
	}

	if err := db.Create(&physicians).Error; err != nil {
		return nil, err
	}

	log.Println("physicians seeded")
	return physicians, nil
}

func seedAvailabilityWindows(db *gorm.DB, physicians []entity.Physician) error {
	log.Printf("seeding availability windows for %d physicians", len(physicians))

	// Morning and afternoon blocks on working days, Monday through Saturday.
	blocks := [][2]string{
		{"09:00", "13:00"},
		{"15:00", "19:00"},
	}

	windows := make([]entity.AvailabilityWindow, 0, len(physicians)*6)
	for _, p := range physicians {
		// Each physician skips one random working day.
		dayOff := gofakeit.Number(1, 6)
		for weekday := 1; weekday <= 6; weekday++ {
			if weekday == dayOff {
				continue
			}
			for _, b := range blocks {
				windows = append(windows, entity.AvailabilityWindow{
					PhysicianID: p.ID,
					Weekday:     weekday,
					StartTime:   b[0],
					EndTime:     b[1],
				})
			}
		}
	}

	if err := db.CreateInBatches(&windows, 200).Error; err != nil {
		return err
	}

	log.Println("availability windows seeded")
	return nil
}

func seedPatients(db *gorm.DB, count int) error {
	log.Printf("seeding %d patients", count)

	insurers := []string{"SIS", "EsSalud", "Rimac", "Pacifico", "Mapfre", ""}

	const batchSize = 500

	patients := make([]entity.Patient, 0, count)
	for i := 0; i < count; i++ {
		gender := entity.GenderMale
		if gofakeit.Bool() {
			gender = entity.GenderFemale
		}
		patients = append(patients, entity.Patient{
			FullName:          gofakeit.Name(),
			DocumentNumber:    fmt.Sprintf("%08d", gofakeit.Number(10000000, 99999999)),
			DateOfBirth:       gofakeit.DateRange(time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC)),
			Gender:            gender,
			PhoneNumber:       gofakeit.Phone(),
			Address:           gofakeit.Street(),
			InsuranceProvider: insurers[gofakeit.Number(0, len(insurers)-1)],
		})
	}

	if err := db.CreateInBatches(&patients, batchSize).Error; err != nil {
		return err
	}

	log.Println("patients seeded")
	return nil
}
