package main

import (
	"log"
	"os"
	"strings"

	"notably-be/internal/model"
	"notably-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding demo notebook...")

	// Check if the demo notebook already exists
	var existing model.Notebook
	if err := db.Where("title = ?", "Getting Started").First(&existing).Error; err == nil {
		log.Println("Demo notebook already exists, skipping...")
		return
	}

	notebook := model.Notebook{
		Id:          uuid.New(),
		Title:       "Getting Started",
		Description: "A tour of notebooks, sections and pages",
		Color:       "#4F46E5",
		Icon:        "book",
		IsPinned:    true,
		Metadata:    datatypes.JSON([]byte(`{"seeded": true}`)),
	}
	if err := db.Create(&notebook).Error; err != nil {
		log.Fatalf("Error creating notebook: %v", err)
	}
	log.Printf("Created notebook: %s", notebook.Title)

	section := model.Section{
		Id:         uuid.New(),
		NotebookId: notebook.Id,
		Title:      "Basics",
		Position:   1,
	}
	if err := db.Create(&section).Error; err != nil {
		log.Fatalf("Error creating section: %v", err)
	}
	log.Printf("Created section: %s", section.Title)

	pages := []model.Page{
		{
			Id:          uuid.New(),
			NotebookId:  notebook.Id,
			SectionId:   &section.Id,
			Title:       "Welcome",
			Content:     "Welcome to your first notebook. Pages live inside sections.",
			ContentType: "markdown",
			Tags:        datatypes.JSON([]byte(`["intro"]`)),
			IsPinned:    true,
		},
		{
			Id:          uuid.New(),
			NotebookId:  notebook.Id,
			SectionId:   &section.Id,
			Title:       "Organizing notes",
			Content:     "Pin important pages, tag them, and search across titles and content.",
			ContentType: "markdown",
			Tags:        datatypes.JSON([]byte(`["intro","tips"]`)),
		},
	}
	for i := range pages {
		pages[i].WordCount = len(strings.Fields(pages[i].Content))
		if err := db.Create(&pages[i]).Error; err != nil {
			log.Fatalf("Error creating page '%s': %v", pages[i].Title, err)
		}
		log.Printf("Created page: %s", pages[i].Title)
	}

	annotation := model.VoiceAnnotation{
		Id:                  uuid.New(),
		PageId:              pages[0].Id,
		Title:               "Welcome memo",
		AudioFilePath:       "uploads/audio/welcome.wav",
		TranscriptionStatus: "pending",
		DurationSeconds:     4.2,
		SampleRate:          44100,
		Channels:            1,
		FileSizeBytes:       370944,
	}
	if err := db.Create(&annotation).Error; err != nil {
		log.Fatalf("Error creating voice annotation: %v", err)
	}
	log.Printf("Created voice annotation: %s", annotation.Title)

	log.Println("Seeding completed!")
}
