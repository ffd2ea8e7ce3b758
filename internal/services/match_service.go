package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sportsportal/internal/models/db_models"
	"sportsportal/internal/models/request_models"
	"sportsportal/internal/repositories"
	"sportsportal/pkg/utils"
)

const defaultMatchLimit = 20

type MatchServiceInterface interface {
	List(ctx context.Context, sport, status string, limit int64) ([]bson.M, error)
	Create(ctx context.Context, req request_models.MatchCreateRequest) (string, error)
	Update(ctx context.Context, id string, fields bson.M) (bson.M, error)
	Seed(ctx context.Context) error
}

type MatchService struct {
	matchRepo repositories.MatchRepository
	now       func() time.Time
}

func NewMatchService(matchRepo repositories.MatchRepository) MatchServiceInterface {
	return &MatchService{
		matchRepo: matchRepo,
		now:       time.Now,
	}
}

// List applies the optional sport/status filters and truncates to limit.
// No sort is applied: matches come back in storage order.
func (m *MatchService) List(ctx context.Context, sport, status string, limit int64) ([]bson.M, error) {
	filter := bson.M{}
	if sport != "" {
		filter["sport"] = sport
	}
	if status != "" {
		filter["status"] = status
	}
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	docs, err := m.matchRepo.Find(ctx, filter, limit)
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, utils.SerializeDocument(doc))
	}
	return out, nil
}

func (m *MatchService) Create(ctx context.Context, req request_models.MatchCreateRequest) (string, error) {
	status := db_models.MatchStatus(req.Status)
	if status == "" {
		status = db_models.MatchUpcoming
	}

	match := db_models.Match{
		Sport:     db_models.Sport(req.Sport),
		TeamA:     req.TeamA,
		TeamB:     req.TeamB,
		Venue:     req.Venue,
		StartTime: req.StartTime,
		Status:    status,
		Details:   req.Details,
	}

	id, err := m.matchRepo.Insert(ctx, match)
	if err != nil {
		return "", storeErr(err)
	}
	return id, nil
}

// Update applies only the supplied fields plus a refreshed update timestamp,
// then returns the re-read record. An empty field set yields (nil, nil)
// without touching the store; the identifier is validated first so a
// malformed id fails even with an empty body. An identifier that parses but
// matches nothing surfaces as not found on the follow-up read.
func (m *MatchService) Update(ctx context.Context, id string, fields bson.M) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrInvalidMatchID
	}

	if len(fields) == 0 {
		return nil, nil
	}

	if err := m.matchRepo.UpdateFields(ctx, oid, fields); err != nil {
		return nil, storeErr(err)
	}

	doc, err := m.matchRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, storeErr(err)
	}
	if doc == nil {
		return nil, utils.ErrMatchNotFound
	}
	return utils.SerializeDocument(doc), nil
}

// Seed inserts illustrative matches per sport, but only when that sport has
// none yet, so repeated seeding never duplicates data.
func (m *MatchService) Seed(ctx context.Context) error {
	now := m.now().UTC()

	cricketExists, err := m.matchRepo.ExistsBySport(ctx, db_models.SportCricket)
	if err != nil {
		return storeErr(err)
	}
	if !cricketExists {
		samples := []db_models.Match{
			{
				Sport:     db_models.SportCricket,
				TeamA:     "GBU Warriors",
				TeamB:     "Noida Knights",
				Venue:     "GBU Cricket Ground",
				StartTime: now,
				Status:    db_models.MatchLive,
				Details:   strPtr("Friendly match"),
			},
			{
				Sport:     db_models.SportCricket,
				TeamA:     "GBU Titans",
				TeamB:     "Delhi Dynamos",
				Venue:     "GBU Cricket Ground",
				StartTime: withHourOffset(now, 2),
				Status:    db_models.MatchUpcoming,
			},
		}
		for _, sample := range samples {
			if _, err := m.matchRepo.Insert(ctx, sample); err != nil {
				return storeErr(err)
			}
		}
	}

	indoorExists, err := m.matchRepo.ExistsBySport(ctx, db_models.SportIndoor)
	if err != nil {
		return storeErr(err)
	}
	if !indoorExists {
		samples := []db_models.Match{
			{
				Sport:     db_models.SportIndoor,
				TeamA:     "GBU Falcons",
				TeamB:     "GBU Hawks",
				Venue:     "Indoor Stadium",
				StartTime: now,
				Status:    db_models.MatchLive,
				Details:   strPtr("Badminton Doubles"),
			},
			{
				Sport:     db_models.SportIndoor,
				TeamA:     "GBU Lions",
				TeamB:     "Lucknow Legends",
				Venue:     "Indoor Stadium",
				StartTime: withHourOffset(now, 3),
				Status:    db_models.MatchUpcoming,
				Details:   strPtr("Table Tennis"),
			},
		}
		for _, sample := range samples {
			if _, err := m.matchRepo.Insert(ctx, sample); err != nil {
				return storeErr(err)
			}
		}
	}

	return nil
}

// withHourOffset shifts only the hour of day, wrapping at midnight without
// rolling the date over.
func withHourOffset(t time.Time, hours int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), (t.Hour()+hours)%24, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func strPtr(s string) *string {
	return &s
}
