// Package ingest validates raw deck JSON before it reaches the database.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Eys-55/infoman-quizzer/internal/models"
)

// Deck is a validated deck ready for import. Cards is a pointer so a
// missing "cards" key can be told apart from an empty list, which is
// allowed.
type Deck struct {
	Name  string  `json:"deck_name" validate:"required"`
	Cards *[]Card `json:"cards" validate:"required"`
}

// Card is one card of an incoming deck. Front and back are pointers
// because both keys are required even when the content is empty.
type Card struct {
	FrontContent *string  `json:"front_content" validate:"required"`
	BackContent  *string  `json:"back_content" validate:"required"`
	Tags         []string `json:"tags"`
}

// ParseError reports an invalid deck structure.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseDeck decodes and validates a deck, trimming the deck name and
// defaulting missing tag lists to empty. Structural problems come back as
// a ParseError naming the offending card index.
func ParseDeck(r io.Reader) (*Deck, error) {
	var deck Deck
	if err := json.NewDecoder(r).Decode(&deck); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("the request body must be a valid JSON object: %v", err)}
	}

	deck.Name = strings.TrimSpace(deck.Name)

	if err := validate.Struct(deck); err != nil {
		return nil, &ParseError{Reason: describeDeckError(err)}
	}

	for i := range *deck.Cards {
		card := &(*deck.Cards)[i]
		if err := validate.Struct(card); err != nil {
			return nil, &ParseError{Reason: describeCardError(i, err)}
		}
		if card.Tags == nil {
			card.Tags = []string{}
		}
	}
	return &deck, nil
}

// CardModels converts the validated cards into repository card records.
func (d *Deck) CardModels() []models.Card {
	cards := make([]models.Card, 0, len(*d.Cards))
	for _, c := range *d.Cards {
		cards = append(cards, models.Card{
			FrontContent: *c.FrontContent,
			BackContent:  *c.BackContent,
			Tags:         c.Tags,
		})
	}
	return cards
}

func describeDeckError(err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return err.Error()
	}
	switch fieldErrs[0].StructField() {
	case "Name":
		return "JSON must have a non-empty string 'deck_name' key"
	case "Cards":
		return "JSON must have a 'cards' key containing a list"
	default:
		return fieldErrs[0].Error()
	}
}

func describeCardError(index int, err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return err.Error()
	}
	var field string
	switch fieldErrs[0].StructField() {
	case "FrontContent":
		field = "front_content"
	case "BackContent":
		field = "back_content"
	default:
		field = fieldErrs[0].StructField()
	}
	return fmt.Sprintf("card at index %d is missing '%s' or it's not a string", index, field)
}
