package attributes

import (
	"context"
	"fmt"
	"sort"

	"github.com/KirkDiggler/rollstats/internal/common/clock"
	"github.com/KirkDiggler/rollstats/internal/common/uuid"
	"github.com/KirkDiggler/rollstats/internal/models"
	attributeRepo "github.com/KirkDiggler/rollstats/internal/repositories/attribute_log"
	"github.com/KirkDiggler/rollstats/internal/services/relay"
)

const unknownUser = "Unknown"

// service implements the Service interface
type service struct {
	sink          relay.Sink
	attributeRepo attributeRepo.Reader
	clock         clock.Clock
	uuid          uuid.UUID
}

// New creates a new attribute tracking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sink == nil {
		return nil, ErrNilSink
	}

	if cfg.AttributeRepo == nil {
		return nil, ErrNilAttributeRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		sink:          cfg.Sink,
		attributeRepo: cfg.AttributeRepo,
		clock:         cfg.Clock,
		uuid:          cfg.UUID,
	}, nil
}

// HandleAttributeChange submits a damage or fatigue entry when the value
// went down. Increases and unchanged values are ignored.
func (s *service) HandleAttributeChange(ctx context.Context, input *HandleAttributeChangeInput) (*HandleAttributeChangeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ActorID == "" {
		return nil, ErrMissingActor
	}

	if input.Attribute != models.AttributeHP && input.Attribute != models.AttributeFP {
		return nil, ErrUnknownAttribute
	}

	if input.After >= input.Before {
		return &HandleAttributeChangeOutput{}, nil
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = s.clock.Now()
	}

	changedBy := input.UserName
	if changedBy == "" {
		changedBy = input.UserID
	}
	if changedBy == "" {
		changedBy = unknownUser
	}

	output := &HandleAttributeChangeOutput{Recorded: true}
	cmd := &relay.Command{}

	switch input.Attribute {
	case models.AttributeHP:
		output.Damage = &models.DamageEntry{
			ID:              s.uuid.NewUUID(),
			Timestamp:       timestamp,
			ActorID:         input.ActorID,
			ActorName:       input.ActorName,
			DamageTaken:     input.Before - input.After,
			HPBefore:        input.Before,
			HPAfter:         input.After,
			ChangedBy:       changedBy,
			ChangedByUserID: input.UserID,
		}
		cmd.Op = relay.OpAppendDamage
		cmd.Damage = output.Damage
	case models.AttributeFP:
		output.Fatigue = &models.FatigueEntry{
			ID:              s.uuid.NewUUID(),
			Timestamp:       timestamp,
			ActorID:         input.ActorID,
			ActorName:       input.ActorName,
			FatigueSpent:    input.Before - input.After,
			FPBefore:        input.Before,
			FPAfter:         input.After,
			ChangedBy:       changedBy,
			ChangedByUserID: input.UserID,
		}
		cmd.Op = relay.OpAppendFatigue
		cmd.Fatigue = output.Fatigue
	}

	if err := s.sink.Submit(ctx, cmd); err != nil {
		return nil, fmt.Errorf("failed to submit %s change: %w", input.Attribute, err)
	}

	return output, nil
}

// Summarize totals both logs per actor. The latest name seen for an actor wins.
func (s *service) Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	if input == nil {
		input = &SummarizeInput{}
	}

	damage, err := s.attributeRepo.ListDamage(ctx, &attributeRepo.ListDamageInput{ActorID: input.ActorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list damage: %w", err)
	}

	fatigue, err := s.attributeRepo.ListFatigue(ctx, &attributeRepo.ListFatigueInput{ActorID: input.ActorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list fatigue: %w", err)
	}

	byActor := make(map[string]*models.ActorAttributeSummary)
	summary := func(actorID, actorName string) *models.ActorAttributeSummary {
		sum, ok := byActor[actorID]
		if !ok {
			sum = &models.ActorAttributeSummary{ActorID: actorID, ActorName: actorID}
			byActor[actorID] = sum
		}
		if actorName != "" {
			sum.ActorName = actorName
		}
		return sum
	}

	for _, e := range damage.Entries {
		sum := summary(e.ActorID, e.ActorName)
		sum.DamageTaken += e.DamageTaken
		sum.DamageEvents++
	}
	for _, e := range fatigue.Entries {
		sum := summary(e.ActorID, e.ActorName)
		sum.FatigueSpent += e.FatigueSpent
		sum.FatigueEvents++
	}

	actors := make([]*models.ActorAttributeSummary, 0, len(byActor))
	for _, sum := range byActor {
		actors = append(actors, sum)
	}
	sort.Slice(actors, func(i, j int) bool {
		if actors[i].ActorName != actors[j].ActorName {
			return actors[i].ActorName < actors[j].ActorName
		}
		return actors[i].ActorID < actors[j].ActorID
	})

	return &SummarizeOutput{Actors: actors}, nil
}
