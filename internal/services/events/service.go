package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/ai/parse"
	"github.com/Ihebmsaed/Artygen/internal/ai/prompt"
	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrEventNotFound = errors.New("event not found")
	ErrForbidden     = errors.New("not the event creator")
	ErrGeneration    = errors.New("description generation failed")
)

type Store interface {
	Create(ctx context.Context, event model.Event) (model.Event, error)
	GetByID(ctx context.Context, id int64) (model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, event model.Event) error
	Delete(ctx context.Context, id int64) error
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	store     Store
	generator TextGenerator
	log       *zap.Logger
}

func NewService(store Store, generator TextGenerator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:     store,
		generator: generator,
		log:       log,
	}
}

type EventInput struct {
	Title       string
	EventType   string
	Location    string
	StartsAt    time.Time
	Capacity    int
	Description string
	AIDescribed bool
}

func (s *Service) Create(ctx context.Context, creatorID int64, input EventInput) (model.Event, error) {
	input.Title = strings.TrimSpace(input.Title)
	if creatorID <= 0 || input.Title == "" || input.StartsAt.IsZero() {
		return model.Event{}, ErrValidation
	}
	if input.Capacity < 0 {
		return model.Event{}, ErrValidation
	}

	event, err := s.store.Create(ctx, model.Event{
		CreatorID:   creatorID,
		Title:       input.Title,
		EventType:   strings.TrimSpace(input.EventType),
		Location:    strings.TrimSpace(input.Location),
		StartsAt:    input.StartsAt,
		Capacity:    input.Capacity,
		Description: strings.TrimSpace(input.Description),
		AIDescribed: input.AIDescribed,
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *Service) Get(ctx context.Context, id int64) (model.Event, error) {
	if id <= 0 {
		return model.Event{}, ErrValidation
	}
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrEventNotFound) {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *Service) List(ctx context.Context) ([]model.Event, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Update rewrites an event. Only the creator may touch it.
func (s *Service) Update(ctx context.Context, eventID, userID int64, input EventInput) (model.Event, error) {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}
	if event.CreatorID != userID {
		return model.Event{}, ErrForbidden
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || input.StartsAt.IsZero() || input.Capacity < 0 {
		return model.Event{}, ErrValidation
	}

	event.Title = input.Title
	event.EventType = strings.TrimSpace(input.EventType)
	event.Location = strings.TrimSpace(input.Location)
	event.StartsAt = input.StartsAt
	event.Capacity = input.Capacity
	event.Description = strings.TrimSpace(input.Description)
	event.AIDescribed = input.AIDescribed

	if err := s.store.Update(ctx, event); err != nil {
		return model.Event{}, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *Service) Delete(ctx context.Context, eventID, userID int64) error {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if event.CreatorID != userID {
		return ErrForbidden
	}

	if err := s.store.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

type DescribeInput struct {
	Title     string
	EventType string
	Location  string
	StartsAt  time.Time
	Capacity  int
	Creator   string
	Tone      enums.Tone
}

// GenerateDescription produces a description draft for an event form.
// It does not persist anything: the caller submits the draft (possibly
// edited) through Create or Update.
func (s *Service) GenerateDescription(ctx context.Context, input DescribeInput) (string, error) {
	if strings.TrimSpace(input.Title) == "" {
		return "", ErrValidation
	}

	date := ""
	if !input.StartsAt.IsZero() {
		date = input.StartsAt.Format("Monday, 2 January 2006 at 15:04")
	}

	raw, err := s.generator.GenerateText(ctx, prompt.EventDescription(prompt.EventInput{
		Title:     input.Title,
		EventType: input.EventType,
		Location:  input.Location,
		Date:      date,
		Capacity:  input.Capacity,
		Creator:   input.Creator,
		Tone:      enums.ParseTone(string(input.Tone)),
	}))
	if err != nil {
		return "", fmt.Errorf("generate event description: %w", err)
	}

	description := strings.TrimSpace(parse.StripFences(raw))
	if description == "" {
		s.log.Warn("event description empty", zap.String("title", input.Title))
		return "", ErrGeneration
	}

	return description, nil
}
