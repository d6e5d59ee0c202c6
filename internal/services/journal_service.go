package services

import (
	"context"

	"github.com/google/uuid"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/internal/repositories"
	"travelbuddy/pkg/utils"
)

const (
	maxJournalImages   = 10
	publicJournalLimit = 50
)

type JournalServiceInterface interface {
	CreateJournal(ctx context.Context, accountID string, request request_models.CreateJournalRequest) (*response_models.JournalResponse, error)
	ListJournals(ctx context.Context, accountID string) ([]response_models.JournalResponse, error)
	ListPublicJournals(ctx context.Context) ([]response_models.JournalResponse, error)
	GetJournal(ctx context.Context, accountID, journalID string) (*response_models.JournalResponse, error)
	UpdateJournal(ctx context.Context, accountID, journalID string, request request_models.UpdateJournalRequest) (*response_models.JournalResponse, error)
	DeleteJournal(ctx context.Context, accountID, journalID string) error
}

type JournalService struct {
	journalRepo repositories.JournalRepository
}

func NewJournalService(journalRepo repositories.JournalRepository) JournalServiceInterface {
	return &JournalService{
		journalRepo: journalRepo,
	}
}

func (j *JournalService) CreateJournal(ctx context.Context, accountID string, request request_models.CreateJournalRequest) (*response_models.JournalResponse, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	if len(request.Images) < 1 || len(request.Images) > maxJournalImages {
		return nil, utils.ErrInvalidInput
	}

	tripDate, err := utils.ParseDateOnly(request.TripDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	journal := &db_models.Journal{
		AccountID:   ownerID,
		Title:       request.Title,
		Destination: request.Destination,
		TripDate:    tripDate,
		Notes:       request.Notes,
		Images:      request.Images,
		IsPublic:    request.IsPublic,
	}

	if err := j.journalRepo.Insert(ctx, journal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toJournalResponse(journal)
	return &resp, nil
}

func (j *JournalService) ListJournals(ctx context.Context, accountID string) ([]response_models.JournalResponse, error) {
	journals, err := j.journalRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.JournalResponse, 0, len(journals))
	for i := range journals {
		responses = append(responses, toJournalResponse(&journals[i]))
	}
	return responses, nil
}

// ListPublicJournals is the shared inspiration feed: the most recent public
// entries across all accounts, capped so the endpoint stays cheap.
func (j *JournalService) ListPublicJournals(ctx context.Context) ([]response_models.JournalResponse, error) {
	journals, err := j.journalRepo.ListPublic(ctx, publicJournalLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.JournalResponse, 0, len(journals))
	for i := range journals {
		responses = append(responses, toJournalResponse(&journals[i]))
	}
	return responses, nil
}

// GetJournal returns a journal its owner asks for, or anyone's journal when
// it is public. Private journals of other accounts read as forbidden, not
// missing, so owners know their link works once they flip the flag.
func (j *JournalService) GetJournal(ctx context.Context, accountID, journalID string) (*response_models.JournalResponse, error) {
	journal, err := j.journalRepo.FindById(ctx, journalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journal == nil {
		return nil, utils.ErrJournalNotFound
	}
	if journal.AccountID.String() != accountID && !journal.IsPublic {
		return nil, utils.ErrJournalPrivate
	}

	resp := toJournalResponse(journal)
	return &resp, nil
}

func (j *JournalService) UpdateJournal(ctx context.Context, accountID, journalID string, request request_models.UpdateJournalRequest) (*response_models.JournalResponse, error) {
	journal, err := j.findOwned(ctx, accountID, journalID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		journal.Title = *request.Title
	}
	if request.Destination != nil {
		journal.Destination = *request.Destination
	}
	if request.TripDate != nil {
		tripDate, err := utils.ParseDateOnly(*request.TripDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		journal.TripDate = tripDate
	}
	if request.Notes != nil {
		journal.Notes = *request.Notes
	}
	if request.Images != nil {
		if len(*request.Images) < 1 || len(*request.Images) > maxJournalImages {
			return nil, utils.ErrInvalidInput
		}
		journal.Images = *request.Images
	}
	if request.IsPublic != nil {
		journal.IsPublic = *request.IsPublic
	}

	if err := j.journalRepo.Update(ctx, journal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toJournalResponse(journal)
	return &resp, nil
}

func (j *JournalService) DeleteJournal(ctx context.Context, accountID, journalID string) error {
	journal, err := j.findOwned(ctx, accountID, journalID)
	if err != nil {
		return err
	}
	if err := j.journalRepo.Delete(ctx, journal.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (j *JournalService) findOwned(ctx context.Context, accountID, journalID string) (*db_models.Journal, error) {
	journal, err := j.journalRepo.FindById(ctx, journalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journal == nil || journal.AccountID.String() != accountID {
		return nil, utils.ErrJournalNotFound
	}
	return journal, nil
}

func toJournalResponse(journal *db_models.Journal) response_models.JournalResponse {
	return response_models.JournalResponse{
		ID:          journal.ID.String(),
		Title:       journal.Title,
		Destination: journal.Destination,
		TripDate:    utils.FormatDateOnly(journal.TripDate),
		Notes:       journal.Notes,
		Images:      journal.Images,
		IsPublic:    journal.IsPublic,
		CreatedAt:   journal.CreatedAt,
		UpdatedAt:   journal.UpdatedAt,
	}
}
