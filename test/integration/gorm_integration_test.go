package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"notably-be/internal/dto"
	"notably-be/internal/repository/specification"
	"notably-be/internal/repository/unitofwork"
	"notably-be/internal/service"
	"notably-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.NotebookRepository())
	assert.NotNil(t, uow.SectionRepository())
	assert.NotNil(t, uow.PageRepository())
	assert.NotNil(t, uow.VoiceAnnotationRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Notebook Repository", func(t *testing.T) {
		count, err := uow.NotebookRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Notebook count: %d", count)
	})

	t.Run("Notebook lifecycle with cascade delete", func(t *testing.T) {
		ctx := context.Background()
		notebookSvc := service.NewNotebookService(uowFactory, nil, testLogger{})
		pageSvc := service.NewPageService(uowFactory, nil, testLogger{})

		created, err := notebookSvc.Create(ctx, &dto.CreateNotebookRequest{
			Title: "integration-" + uuid.New().String(),
		})
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.Id)

		section, err := notebookSvc.CreateSection(ctx, &dto.CreateSectionRequest{
			NotebookId: created.Id,
			Title:      "Section A",
			Position:   1,
		})
		assert.NoError(t, err)
		assert.NotNil(t, section)

		page, err := pageSvc.Create(ctx, &dto.CreatePageRequest{
			NotebookId: created.Id,
			SectionId:  &section.Id,
			Title:      "Page A",
			Content:    "some searchable content here",
		})
		assert.NoError(t, err)
		assert.NotNil(t, page)

		// Reading the page bumps the access counter.
		shown, err := pageSvc.Show(ctx, page.Id)
		assert.NoError(t, err)
		assert.Equal(t, 1, shown.AccessCount)
		assert.Equal(t, 4, shown.WordCount)

		// Search finds it by content.
		listed, err := pageSvc.List(ctx, &dto.ListPagesQuery{
			NotebookId: created.Id,
			Query:      "searchable",
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, listed.Total)

		// Cascade delete removes the notebook, its sections and its pages.
		deleted, err := notebookSvc.Delete(ctx, created.Id)
		assert.NoError(t, err)
		assert.True(t, deleted)

		gone, err := pageSvc.Show(ctx, page.Id)
		assert.NoError(t, err)
		assert.Nil(t, gone)

		sections, err := uow.SectionRepository().FindAll(ctx,
			specification.ByNotebookID{NotebookID: created.Id})
		assert.NoError(t, err)
		assert.Empty(t, sections)
	})
}

// testLogger satisfies logger.ILogger without touching the filesystem.
type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }
