package main

import (
	"log"
	"os"
	"time"

	"github.com/gigtrack-dev/gigtrack/db"
	"github.com/gigtrack-dev/gigtrack/internal/auth"
	"github.com/gigtrack-dev/gigtrack/internal/core"
	"github.com/gigtrack-dev/gigtrack/internal/models"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func str(s string) *string { return &s }

func uid(u uint) *uint { return &u }

// Seeds demo data through the core operations so every validation rule and
// guard runs on the way in.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Clearing existing data...")

	for _, model := range []interface{}{&models.Order{}, &models.Job{}, &models.Client{}, &models.User{}} {
		if err := db.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}

	store := core.New(db.DB, auth.BcryptHasher{})

	log.Println("Creating users...")

	userInputs := []validation.UserInput{
		{Username: str("john doe"), Email: str("john.doe@email.com"), Password: str("password123")},
		{Username: str("jane smith"), Email: str("jane.smith@email.com"), Password: str("password123")},
		{Username: str("mike wilson"), Email: str("mike.wilson@email.com"), Password: str("password123")},
	}

	var users []*core.UserDetail
	for _, in := range userInputs {
		user, err := store.Register(in)
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		users = append(users, user)
	}

	log.Println("Creating clients...")

	clientInputs := []validation.ClientInput{
		{
			Name:    str("TechStart Inc."),
			Email:   str("contact@techstart.com"),
			Phone:   str("555-010-1001"),
			Company: str("TechStart Inc."),
			Address: str("123 Innovation Drive, San Francisco, CA 94105"),
			Notes:   str("Startup company looking for web development services. Budget is flexible but they prefer cost-effective solutions."),
		},
		{
			Name:    str("Design Studio Pro"),
			Email:   str("hello@designstudiopro.com"),
			Phone:   str("555-010-1002"),
			Company: str("Design Studio Pro"),
			Address: str("456 Creative Avenue, New York, NY 10001"),
			Notes:   str("Creative design agency with ongoing projects, looking for reliable freelancers who can meet tight deadlines."),
		},
		{
			Name:    str("Local Restaurant Chain"),
			Email:   str("manager@localrestaurant.com"),
			Phone:   str("555-010-1003"),
			Company: str("Local Restaurant Chain"),
			Address: str("789 Food Street, Austin, TX 73301"),
			Notes:   str("Family-owned restaurant chain expanding to new locations. Very particular about brand consistency."),
		},
	}

	var clients []*core.ClientDetail
	for i, in := range clientInputs {
		client, err := store.CreateClient(users[i%len(users)].ID, in)
		if err != nil {
			log.Fatalf("Failed to create client: %v", err)
		}
		clients = append(clients, client)
	}

	log.Println("Creating jobs...")

	jobInputs := []validation.JobInput{
		{
			Title:       str("Website Development"),
			Category:    str("Web Development"),
			Description: str("Full-stack website build with responsive design and CMS integration."),
			Duration:    str("4-6 weeks"),
		},
		{
			Title:       str("Brand Identity Design"),
			Category:    str("Graphic Design"),
			Description: str("Logo, color palette, and brand guidelines for a growing business."),
			Duration:    str("2-3 weeks"),
		},
		{
			Title:       str("Marketing Campaign"),
			Category:    str("Marketing"),
			Description: str("Multi-channel promotional campaign including print and social media assets."),
			Duration:    str("3-4 weeks"),
		},
	}

	var jobs []*core.JobDetail
	for _, in := range jobInputs {
		job, err := store.CreateJob(users[0].ID, in)
		if err != nil {
			log.Fatalf("Failed to create job: %v", err)
		}
		jobs = append(jobs, job)
	}

	log.Println("Creating orders...")

	start := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	due := start.AddDate(0, 1, 0)

	statuses := []string{"pending", "in progress", "completed"}

	for i, client := range clients {
		_, err := store.CreateOrder(client.UserID, validation.OrderInput{
			Description: str("Initial engagement covering discovery and first deliverables."),
			Rate:        str("$75 per hour"),
			Location:    str("Remote, weekly sync calls"),
			StartDate:   &start,
			DueDate:     &due,
			Status:      str(statuses[i%len(statuses)]),
			ClientID:    uid(client.ID),
			JobID:       uid(jobs[i%len(jobs)].ID),
		})
		if err != nil {
			log.Fatalf("Failed to create order: %v", err)
		}
	}

	log.Println("Seed complete")
}
