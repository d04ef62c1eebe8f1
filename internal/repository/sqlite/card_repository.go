package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/Eys-55/infoman-quizzer/internal/db"
	"github.com/Eys-55/infoman-quizzer/internal/logger"
	"github.com/Eys-55/infoman-quizzer/internal/models"
	"github.com/Eys-55/infoman-quizzer/internal/repository"
	"github.com/Eys-55/infoman-quizzer/internal/srs"
)

type cardRepository struct {
	db *db.DB
}

// NewCardRepository creates a new CardRepository implementation
func NewCardRepository(database *db.DB) repository.CardRepository {
	return &cardRepository{db: database}
}

func scanCard(scan func(dest ...any) error) (*models.Card, error) {
	var c models.Card
	var tags string
	var reviewDate sql.NullString
	if err := scan(&c.ID, &c.DeckID, &c.FrontContent, &c.BackContent, &tags,
		&c.Status, &c.Interval, &c.EaseFactor, &reviewDate, &c.CreatedAt); err != nil {
		return nil, err
	}
	decoded, err := decodeTags(tags)
	if err != nil {
		return nil, err
	}
	c.Tags = decoded
	if reviewDate.Valid {
		c.ReviewDate = reviewDate.String
	}
	return &c, nil
}

func (r *cardRepository) Get(ctx context.Context, id int64) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("getting card: id=%d", id)

	c, err := scanCard(r.db.QueryRowContext(ctx, `
SELECT id, deck_id, front_content, back_content, tags, status, interval, ease_factor, review_date, created_at
FROM cards
WHERE id = ?
`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("card not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, err
	}
	return c, nil
}

func (r *cardRepository) DueForDeck(ctx context.Context, deckID int64, today string) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("fetching due cards: deck_id=%d, today=%s", deckID, today)

	query, args, err := sqlBuilder.
		Select("id", "deck_id", "front_content", "back_content", "tags",
			"status", "interval", "ease_factor", "review_date", "created_at").
		From("cards").
		Where(squirrel.Eq{"deck_id": deckID}).
		Where(squirrel.Or{
			squirrel.Eq{"status": string(srs.StatusNew)},
			squirrel.LtOrEq{"review_date": today},
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query due cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		c, err := scanCard(rows.Scan)
		if err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		cards = append(cards, *c)
	}
	log.Debug("found %d due cards", len(cards))
	return cards, rows.Err()
}

func (r *cardRepository) UpdateSRS(ctx context.Context, id int64, state srs.Result) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("updating card srs: id=%d, interval=%d, ease=%.2f, status=%s", id, state.Interval, state.EaseFactor, state.Status)

	_, err := r.db.ExecContext(ctx, `
UPDATE cards
SET status = ?, interval = ?, ease_factor = ?, review_date = ?
WHERE id = ?
`, state.Status, state.Interval, state.EaseFactor, state.ReviewDate, id)
	if err != nil {
		log.Error("failed to update card srs: %v", err)
	}
	return err
}

func (r *cardRepository) InsertReviewHistory(ctx context.Context, cardID int64, rating string) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("inserting review history: card_id=%d, rating=%s", cardID, rating)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_history (card_id, rating)
VALUES (?, ?)
`, cardID, rating)
	if err != nil {
		log.Error("failed to insert review history: %v", err)
	}
	return err
}
