package unitofwork

import (
	"context"

	"notably-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NotebookRepository() contract.NotebookRepository
	SectionRepository() contract.SectionRepository
	PageRepository() contract.PageRepository
	VoiceAnnotationRepository() contract.VoiceAnnotationRepository
}
