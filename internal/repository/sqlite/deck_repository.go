package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Eys-55/infoman-quizzer/internal/db"
	"github.com/Eys-55/infoman-quizzer/internal/logger"
	"github.com/Eys-55/infoman-quizzer/internal/models"
	"github.com/Eys-55/infoman-quizzer/internal/repository"
	"github.com/Eys-55/infoman-quizzer/internal/srs"
)

type deckRepository struct {
	db *db.DB
}

// NewDeckRepository creates a new DeckRepository implementation
func NewDeckRepository(database *db.DB) repository.DeckRepository {
	return &deckRepository{db: database}
}

func (r *deckRepository) List(ctx context.Context, today string) ([]models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("listing decks with due counts: today=%s", today)

	// A card is due if it has never been reviewed or its review date has
	// arrived.
	rows, err := r.db.QueryContext(ctx, `
SELECT d.id, d.name, d.created_at,
       COALESCE(SUM(CASE WHEN c.status = 'new' OR (c.review_date IS NOT NULL AND c.review_date <= ?) THEN 1 ELSE 0 END), 0) AS due_count
FROM decks d
LEFT JOIN cards c ON c.deck_id = d.id
GROUP BY d.id
ORDER BY d.name
`, today)
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, err
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var d models.Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.DueCardCount); err != nil {
			log.Error("failed to scan deck row: %v", err)
			return nil, err
		}
		decks = append(decks, d)
	}
	log.Debug("found %d decks", len(decks))
	return decks, rows.Err()
}

func (r *deckRepository) Get(ctx context.Context, id int64) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("getting deck: id=%d", id)

	var d models.Deck
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, created_at
FROM decks
WHERE id = ?
`, id).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("deck not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *deckRepository) CountByName(ctx context.Context, name string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM decks WHERE name = ?`, name).Scan(&count)
	if err != nil {
		log.Error("failed to count decks by name: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *deckRepository) Import(ctx context.Context, name string, cards []models.Card) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("importing deck: name=%s, cards=%d", name, len(cards))

	var deckID int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `INSERT INTO decks (name) VALUES (?)`, name)
		if err != nil {
			return err
		}
		deckID, err = res.LastInsertId()
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO cards (deck_id, front_content, back_content, tags, status, interval, ease_factor)
VALUES (?, ?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, c := range cards {
			tags, err := encodeTags(c.Tags)
			if err != nil {
				return err
			}
			if _, err := stmt.ExecContext(ctx, deckID, c.FrontContent, c.BackContent, tags,
				srs.StatusNew, 0, srs.DefaultTuning().DefaultEaseFactor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to import deck %q: %v", name, err)
		return 0, err
	}
	log.Info("deck imported: id=%d, name=%s, cards=%d", deckID, name, len(cards))
	return deckID, nil
}

func (r *deckRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("deleting deck: id=%d", id)

	// ON DELETE CASCADE removes the deck's cards and review history.
	_, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete deck: %v", err)
	}
	return err
}
