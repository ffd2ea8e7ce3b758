package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sportsportal/internal/models/db_models"
	"sportsportal/internal/models/request_models"
	"sportsportal/pkg/utils"
)

func newMatchServiceForTest(repo *stubMatchRepo, now time.Time) *MatchService {
	return &MatchService{
		matchRepo: repo,
		now:       func() time.Time { return now },
	}
}

func TestListDefaultsLimitAndBuildsFilter(t *testing.T) {
	repo := &stubMatchRepo{}
	svc := newMatchServiceForTest(repo, time.Now())

	_, err := svc.List(context.Background(), "cricket", "live", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(20), repo.lastLimit)
	assert.Equal(t, bson.M{"sport": "cricket", "status": "live"}, repo.lastFilter)

	_, err = svc.List(context.Background(), "", "", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.lastLimit)
	assert.Equal(t, bson.M{}, repo.lastFilter)
}

func TestListSerializesDocuments(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &stubMatchRepo{findResult: []bson.M{{
		"_id":   id,
		"sport": "cricket",
	}}}
	svc := newMatchServiceForTest(repo, time.Now())

	docs, err := svc.List(context.Background(), "", "", 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id.Hex(), docs[0]["id"])
}

func TestCreateMatchDefaultsStatusUpcoming(t *testing.T) {
	repo := &stubMatchRepo{insertID: "match-1"}
	svc := newMatchServiceForTest(repo, time.Now())

	id, err := svc.Create(context.Background(), request_models.MatchCreateRequest{
		Sport:     "indoor",
		TeamA:     "A",
		TeamB:     "B",
		Venue:     "Indoor Stadium",
		StartTime: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "match-1", id)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, db_models.MatchUpcoming, repo.inserted[0].Status)
}

func TestUpdateRejectsMalformedID(t *testing.T) {
	repo := &stubMatchRepo{}
	svc := newMatchServiceForTest(repo, time.Now())

	_, err := svc.Update(context.Background(), "not-an-object-id", bson.M{"status": "live"})
	assert.ErrorIs(t, err, utils.ErrInvalidMatchID)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateMalformedIDWinsOverEmptyBody(t *testing.T) {
	svc := newMatchServiceForTest(&stubMatchRepo{}, time.Now())

	_, err := svc.Update(context.Background(), "nope", bson.M{})
	assert.ErrorIs(t, err, utils.ErrInvalidMatchID)
}

func TestUpdateEmptyFieldsIsANoOp(t *testing.T) {
	repo := &stubMatchRepo{}
	svc := newMatchServiceForTest(repo, time.Now())

	doc, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), bson.M{})
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.Zero(t, repo.updateCalls, "empty update must not write")
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &stubMatchRepo{byID: bson.M{
		"_id":     id,
		"status":  "live",
		"score_a": "120/4",
	}}
	svc := newMatchServiceForTest(repo, time.Now())

	doc, err := svc.Update(context.Background(), id.Hex(), bson.M{"status": "live", "score_a": "120/4"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, id, repo.lastUpdateID)
	assert.Equal(t, bson.M{"status": "live", "score_a": "120/4"}, repo.lastFields)
	assert.Equal(t, id.Hex(), doc["id"])
}

func TestUpdateUnknownIDNotFound(t *testing.T) {
	repo := &stubMatchRepo{}
	svc := newMatchServiceForTest(repo, time.Now())

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), bson.M{"status": "finished"})
	assert.ErrorIs(t, err, utils.ErrMatchNotFound)
}

func TestSeedInsertsSamplesForMissingSports(t *testing.T) {
	repo := &stubMatchRepo{insertID: "m", exists: map[db_models.Sport]bool{}}
	now := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	svc := newMatchServiceForTest(repo, now)

	require.NoError(t, svc.Seed(context.Background()))
	require.Len(t, repo.inserted, 4)

	assert.Equal(t, db_models.SportCricket, repo.inserted[0].Sport)
	assert.Equal(t, db_models.MatchLive, repo.inserted[0].Status)
	assert.Equal(t, db_models.MatchUpcoming, repo.inserted[1].Status)
	// +2 hours wraps past midnight without rolling the date
	assert.Equal(t, 1, repo.inserted[1].StartTime.Hour())
	assert.Equal(t, now.Day(), repo.inserted[1].StartTime.Day())

	assert.Equal(t, db_models.SportIndoor, repo.inserted[2].Sport)
	assert.Equal(t, 2, repo.inserted[3].StartTime.Hour())
}

func TestSeedSkipsSportsThatAlreadyHaveMatches(t *testing.T) {
	repo := &stubMatchRepo{insertID: "m", exists: map[db_models.Sport]bool{
		db_models.SportCricket: true,
	}}
	svc := newMatchServiceForTest(repo, time.Now())

	require.NoError(t, svc.Seed(context.Background()))
	require.Len(t, repo.inserted, 2)
	for _, match := range repo.inserted {
		assert.Equal(t, db_models.SportIndoor, match.Sport)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := &stubMatchRepo{insertID: "m", exists: map[db_models.Sport]bool{
		db_models.SportCricket: true,
		db_models.SportIndoor:  true,
	}}
	svc := newMatchServiceForTest(repo, time.Now())

	require.NoError(t, svc.Seed(context.Background()))
	assert.Empty(t, repo.inserted)
}
