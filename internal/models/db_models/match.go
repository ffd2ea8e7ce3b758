package db_models

import "time"

type Sport string

const (
	SportCricket Sport = "cricket"
	SportIndoor  Sport = "indoor"
)

type MatchStatus string

const (
	MatchUpcoming MatchStatus = "upcoming"
	MatchLive     MatchStatus = "live"
	MatchFinished MatchStatus = "finished"
)

const MatchCollection = "match"

type Match struct {
	Sport     Sport       `bson:"sport"`
	TeamA     string      `bson:"team_a"`
	TeamB     string      `bson:"team_b"`
	Venue     string      `bson:"venue"`
	StartTime time.Time   `bson:"start_time"`
	Status    MatchStatus `bson:"status"`
	ScoreA    *string     `bson:"score_a"`
	ScoreB    *string     `bson:"score_b"`
	Details   *string     `bson:"details"`
}
