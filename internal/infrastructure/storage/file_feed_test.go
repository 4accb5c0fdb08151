package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"Pindexa/internal/domain"
)

const sampleFeed = `{
  "generated_at": "2026-02-10T06:00:00Z",
  "date": "2026-02-10",
  "total_predictions": 2,
  "predictions": [
    {
      "rank": 1, "country": "England", "league": "Premier League",
      "home_team": "Arsenal", "away_team": "Chelsea",
      "predicted_winner": "Arsenal", "predicted_side": "home",
      "win_probability": 84,
      "winner_form": "WWDWW", "opponent_form": "LDLWL",
      "kickoff_utc": "15:00", "verified": true
    },
    {
      "rank": 2, "country": "Spain", "league": "LaLiga",
      "home_team": "Getafe", "away_team": "Sevilla",
      "predicted_winner": "Sevilla", "predicted_side": "away",
      "win_probability": 71,
      "winner_form": "WDLWD", "opponent_form": "LLDLD",
      "kickoff_utc": "20:00", "verified": false,
      "sportybet_league": "Spain LaLiga", "match_type": "Partial (league only)"
    }
  ]
}`

func writeFeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "predictions.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write feed: %v", err)
	}
	return path
}

func TestFileFeedSourceRoundTrip(t *testing.T) {
	t.Parallel()

	src := NewFileFeedSource(writeFeed(t, sampleFeed))
	feed, err := src.ReadFeed(context.Background())
	if err != nil {
		t.Fatalf("ReadFeed: %v", err)
	}

	if feed.TotalPredictions != 2 || len(feed.Predictions) != 2 {
		t.Fatalf("unexpected feed size: %+v", feed)
	}
	if feed.Predictions[1].PredictedSide != domain.SideAway || feed.Predictions[1].Opponent() != "Getafe" {
		t.Fatalf("unexpected second prediction: %+v", feed.Predictions[1])
	}

	encoded, err := json.Marshal(feed)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var want, got map[string]any
	if err := json.Unmarshal([]byte(sampleFeed), &want); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if err := json.Unmarshal(encoded, &got); err != nil {
		t.Fatalf("unmarshal encoded: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("feed did not round-trip:\nwant %v\ngot  %v", want, got)
	}
}

func TestFileFeedSourceErrors(t *testing.T) {
	t.Parallel()

	missing := NewFileFeedSource(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := missing.ReadFeed(context.Background()); !errors.Is(err, domain.ErrFeedNotFound) {
		t.Fatalf("expected ErrFeedNotFound, got %v", err)
	}

	broken := NewFileFeedSource(writeFeed(t, `{"predictions": [`))
	if _, err := broken.ReadFeed(context.Background()); !errors.Is(err, domain.ErrFeedMalformed) {
		t.Fatalf("expected ErrFeedMalformed, got %v", err)
	}
}

func TestFileFeedSourceNullPredictions(t *testing.T) {
	t.Parallel()

	src := NewFileFeedSource(writeFeed(t, `{"generated_at":"2026-02-10T06:00:00Z","date":"","total_predictions":0,"predictions":null}`))
	feed, err := src.ReadFeed(context.Background())
	if err != nil {
		t.Fatalf("ReadFeed: %v", err)
	}
	if feed.Predictions == nil {
		t.Fatalf("expected predictions to be normalised to an empty slice")
	}
}

func TestFileFeedSourceKeepsGeneratedAtText(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"python offset": "2026-02-10T06:00:00.123456+00:00",
		"naive":         "2026-02-10T06:00:00",
		"zulu":          "2026-02-10T06:00:00.000Z",
	}

	for name, stamp := range cases {
		stamp := stamp
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			body := `{"generated_at":"` + stamp + `","date":"2026-02-10","total_predictions":0,"predictions":[]}`
			feed, err := NewFileFeedSource(writeFeed(t, body)).ReadFeed(context.Background())
			if err != nil {
				t.Fatalf("ReadFeed: %v", err)
			}
			if feed.GeneratedAt != stamp {
				t.Fatalf("generated_at changed: %q", feed.GeneratedAt)
			}

			encoded, err := json.Marshal(feed)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if !strings.Contains(string(encoded), `"generated_at":"`+stamp+`"`) {
				t.Fatalf("generated_at not re-emitted verbatim: %s", encoded)
			}
		})
	}
}

func TestFileFeedSourceRoundsFractionalProbability(t *testing.T) {
	t.Parallel()

	body := `{"generated_at":"2026-02-10T06:00:00+00:00","date":"2026-02-10","total_predictions":2,"predictions":[
		{"rank":1,"home_team":"Arsenal","away_team":"Chelsea","predicted_winner":"Arsenal","predicted_side":"home","win_probability":84.3},
		{"rank":2,"home_team":"Getafe","away_team":"Sevilla","predicted_winner":"Sevilla","predicted_side":"away","win_probability":70.5}
	]}`
	feed, err := NewFileFeedSource(writeFeed(t, body)).ReadFeed(context.Background())
	if err != nil {
		t.Fatalf("ReadFeed: %v", err)
	}
	if len(feed.Predictions) != 2 {
		t.Fatalf("expected both predictions, got %+v", feed.Predictions)
	}
	if got := feed.Predictions[0].WinProbability; got != 84 {
		t.Fatalf("expected 84, got %d", got)
	}
	if got := feed.Predictions[1].WinProbability; got != 71 {
		t.Fatalf("expected 71, got %d", got)
	}
	if feed.Predictions[1].HomeTeam != "Getafe" || feed.Predictions[1].PredictedSide != domain.SideAway {
		t.Fatalf("other fields lost while decoding: %+v", feed.Predictions[1])
	}
}
