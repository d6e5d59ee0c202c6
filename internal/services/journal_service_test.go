package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/pkg/utils"
)

type fakeJournalRepo struct {
	stored map[string]*db_models.Journal
}

func newFakeJournalRepo() *fakeJournalRepo {
	return &fakeJournalRepo{stored: make(map[string]*db_models.Journal)}
}

func (f *fakeJournalRepo) Insert(_ context.Context, journal *db_models.Journal) error {
	if journal.ID == uuid.Nil {
		journal.ID = uuid.New()
	}
	f.stored[journal.ID.String()] = journal
	return nil
}

func (f *fakeJournalRepo) FindById(_ context.Context, id string) (*db_models.Journal, error) {
	return f.stored[id], nil
}

func (f *fakeJournalRepo) ListByAccount(_ context.Context, accountID string) ([]db_models.Journal, error) {
	var out []db_models.Journal
	for _, j := range f.stored {
		if j.AccountID.String() == accountID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJournalRepo) ListPublic(_ context.Context, limit int) ([]db_models.Journal, error) {
	var out []db_models.Journal
	for _, j := range f.stored {
		if j.IsPublic {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJournalRepo) Update(_ context.Context, journal *db_models.Journal) error {
	f.stored[journal.ID.String()] = journal
	return nil
}

func (f *fakeJournalRepo) Delete(_ context.Context, id string) error {
	delete(f.stored, id)
	return nil
}

func createJournalRequest() request_models.CreateJournalRequest {
	return request_models.CreateJournalRequest{
		Title:       "Monsoon weekend",
		Destination: "Munnar",
		TripDate:    "2024-07-20",
		Notes:       "Tea gardens in the rain.",
		Images:      []string{"https://cdn.example.com/1.jpg"},
	}
}

func TestCreateJournalImageLimits(t *testing.T) {
	svc := NewJournalService(newFakeJournalRepo())
	owner := uuid.New().String()

	req := createJournalRequest()
	req.Images = nil
	if _, err := svc.CreateJournal(context.Background(), owner, req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput for zero images", err)
	}

	req = createJournalRequest()
	req.Images = make([]string, 11)
	for i := range req.Images {
		req.Images[i] = "https://cdn.example.com/x.jpg"
	}
	if _, err := svc.CreateJournal(context.Background(), owner, req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput for eleven images", err)
	}

	if _, err := svc.CreateJournal(context.Background(), owner, createJournalRequest()); err != nil {
		t.Errorf("valid journal rejected: %v", err)
	}
}

func TestGetJournalPrivacy(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := NewJournalService(repo)

	owner := uuid.New().String()
	created, err := svc.CreateJournal(context.Background(), owner, createJournalRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Owner can always read their own entry.
	if _, err := svc.GetJournal(context.Background(), owner, created.ID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}

	// A private entry reads as forbidden for anyone else.
	stranger := uuid.New().String()
	if _, err := svc.GetJournal(context.Background(), stranger, created.ID); !errors.Is(err, utils.ErrJournalPrivate) {
		t.Errorf("got %v, want ErrJournalPrivate", err)
	}

	// Flipping the flag opens it up.
	public := true
	if _, err := svc.UpdateJournal(context.Background(), owner, created.ID, request_models.UpdateJournalRequest{IsPublic: &public}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := svc.GetJournal(context.Background(), stranger, created.ID); err != nil {
		t.Errorf("public read failed: %v", err)
	}

	// Missing entries are plain not-found.
	if _, err := svc.GetJournal(context.Background(), stranger, uuid.New().String()); !errors.Is(err, utils.ErrJournalNotFound) {
		t.Errorf("got %v, want ErrJournalNotFound", err)
	}
}
