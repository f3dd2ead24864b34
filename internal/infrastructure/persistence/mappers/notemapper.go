package mappers

import (
	"github.com/brandvault/brandvault/internal/domain/note"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type NoteMapper interface {
	ToEntity(model *models.NoteModel) (*note.Note, error)
	ToModel(entity *note.Note) *models.NoteModel
	ToEntities(models []*models.NoteModel) ([]*note.Note, error)
}

type NoteMapperImpl struct{}

func NewNoteMapper() NoteMapper {
	return &NoteMapperImpl{}
}

func (m *NoteMapperImpl) ToEntity(model *models.NoteModel) (*note.Note, error) {
	if model == nil {
		return nil, nil
	}
	return note.ReconstructNote(model.ID, model.BrandID, model.CompanyID, model.AuthorID, model.Content, model.CreatedAt)
}

func (m *NoteMapperImpl) ToModel(entity *note.Note) *models.NoteModel {
	if entity == nil {
		return nil
	}
	return &models.NoteModel{
		ID:        entity.ID(),
		CompanyID: entity.CompanyID(),
		BrandID:   entity.BrandID(),
		AuthorID:  entity.AuthorID(),
		Content:   entity.Content(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *NoteMapperImpl) ToEntities(list []*models.NoteModel) ([]*note.Note, error) {
	return mapper.MapSliceWithError(list, m.ToEntity)
}
