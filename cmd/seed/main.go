// Command seed loads topics and flashcards from a JSON file into the
// database. It is intended for initial content loading, not as part of
// the main server.
//
// Usage:
//
//	seed --file=content.json [--user=<uuid>]
//
// With --user, cards carrying an "initialScore" also get a mastery score
// row for that user. Useful for demo accounts.
//
// The file holds an array of topics, each with its flashcards:
//
//	[
//	  {
//	    "name": "Travel",
//	    "description": "Words for getting around",
//	    "flashcards": [
//	      {
//	        "word": "itinerary",
//	        "phonetic": "/aɪˈtɪnərəri/",
//	        "partOfSpeech": "NOUN",
//	        "definition": "a planned route of a journey",
//	        "example": "Our itinerary includes three cities.",
//	        "synonyms": ["schedule", "route"]
//	      }
//	    ]
//	  }
//	]
//
// Each topic and its cards are inserted in one transaction; a duplicate
// topic name skips the whole topic.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nmoskvina/lexiday/internal/adapter/postgres"
	"github.com/nmoskvina/lexiday/internal/adapter/postgres/flashcard"
	"github.com/nmoskvina/lexiday/internal/adapter/postgres/progress"
	"github.com/nmoskvina/lexiday/internal/adapter/postgres/topic"
	"github.com/nmoskvina/lexiday/internal/app"
	"github.com/nmoskvina/lexiday/internal/config"
	"github.com/nmoskvina/lexiday/internal/domain"
)

type seedTopic struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Flashcards  []seedCard `json:"flashcards"`
}

type seedCard struct {
	Word         string   `json:"word"`
	Phonetic     string   `json:"phonetic"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Definition   string   `json:"definition"`
	Example      string   `json:"example"`
	ImageURL     *string  `json:"imageUrl"`
	Synonyms     []string `json:"synonyms"`
	InitialScore int      `json:"initialScore"`
}

func main() {
	fileFlag := flag.String("file", "", "path to JSON content file")
	userFlag := flag.String("user", "", "user UUID to seed initial mastery scores for")
	flag.Parse()

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: seed --file=content.json [--user=<uuid>]")
		os.Exit(1)
	}

	var demoUser uuid.UUID
	if *userFlag != "" {
		var err error
		if demoUser, err = uuid.Parse(*userFlag); err != nil {
			fmt.Fprintf(os.Stderr, "invalid --user: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	topics, err := readSeedFile(*fileFlag)
	if err != nil {
		logger.Error("read seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	topicRepo := topic.New(pool)
	cardRepo := flashcard.New(pool, cfg.Daily.MasteredThreshold)
	progressRepo := progress.New(pool)

	var inserted, skipped int
	for _, st := range topics {
		err := seedOneTopic(ctx, txm, topicRepo, cardRepo, progressRepo, demoUser, st)
		if errors.Is(err, domain.ErrAlreadyExists) {
			logger.Warn("topic already exists, skipping", slog.String("name", st.Name))
			skipped++
			continue
		}
		if err != nil {
			logger.Error("seed topic",
				slog.String("name", st.Name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		inserted++
	}

	logger.Info("seeding completed",
		slog.Int("topics_inserted", inserted),
		slog.Int("topics_skipped", skipped),
	)
}

func readSeedFile(path string) ([]seedTopic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var topics []seedTopic
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return topics, nil
}

// seedOneTopic inserts a topic and all its flashcards atomically.
func seedOneTopic(
	ctx context.Context,
	txm *postgres.TxManager,
	topicRepo *topic.Repo,
	cardRepo *flashcard.Repo,
	progressRepo *progress.Repo,
	demoUser uuid.UUID,
	st seedTopic,
) error {
	now := time.Now()

	t := &domain.Topic{
		ID:          uuid.New(),
		Name:        st.Name,
		Description: st.Description,
		CreatedAt:   now,
	}

	return txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := topicRepo.Create(ctx, t); err != nil {
			return err
		}

		for _, sc := range st.Flashcards {
			pos := domain.PartOfSpeech(sc.PartOfSpeech)
			if !pos.IsValid() {
				return fmt.Errorf("word %q: unknown part of speech %q", sc.Word, sc.PartOfSpeech)
			}

			synonyms := sc.Synonyms
			if synonyms == nil {
				synonyms = []string{}
			}

			card := &domain.Flashcard{
				ID:             uuid.New(),
				TopicID:        t.ID,
				Word:           sc.Word,
				WordNormalized: domain.NormalizeWord(sc.Word),
				Phonetic:       sc.Phonetic,
				PartOfSpeech:   pos,
				Definition:     sc.Definition,
				Example:        sc.Example,
				ImageURL:       sc.ImageURL,
				Synonyms:       synonyms,
				CreatedAt:      now,
			}
			if err := cardRepo.Create(ctx, card); err != nil {
				return fmt.Errorf("word %q: %w", sc.Word, err)
			}

			if demoUser != uuid.Nil && sc.InitialScore > 0 {
				rec := &domain.ProgressRecord{
					UserID:       demoUser,
					FlashcardID:  card.ID,
					MasteryScore: sc.InitialScore,
					UpdatedAt:    now,
				}
				if err := progressRepo.Upsert(ctx, rec); err != nil {
					return fmt.Errorf("word %q progress: %w", sc.Word, err)
				}
			}
		}
		return nil
	})
}
