package recommend

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

// placeBlockRe matches the first fenced json block. Non-greedy so a second
// block later in the prose is left alone.
var placeBlockRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

var validate = validator.New()

// Extraction is the result of pulling the structured place block out of a
// model response.
type Extraction struct {
	// Prose is the response text with the block removed and trimmed.
	Prose   string
	Places  []models.Place
	Outcome models.ParseOutcome
	// Rejected counts records dropped at the boundary.
	Rejected int
	// Err explains a ParseFailure. It is nil otherwise.
	Err error
}

// coordinate accepts a JSON number or a numeric string. Null and "" leave it unset.
type coordinate struct {
	Value float64
	Set   bool
}

func (c *coordinate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		c.Value, c.Set = f, true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("coordinate must be a number, got %s", data)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("coordinate %q is not numeric: %w", s, err)
	}
	c.Value, c.Set = f, true
	return nil
}

// rawPlace is the wire shape the prompt asks the model to emit.
type rawPlace struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Lat         coordinate `json:"lat"`
	Lng         coordinate `json:"lng"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
}

func (r rawPlace) toPlace() models.Place {
	p := models.Place{
		Name:        r.Name,
		Category:    models.ParseCategory(r.Type),
		Description: strings.TrimSpace(r.Description),
	}
	if r.Lat.Set && r.Lng.Set {
		p.Location = &models.GeoPoint{Latitude: r.Lat.Value, Longitude: r.Lng.Value}
	}
	return p
}

// ExtractPlaces splits a model response into prose and structured places.
// It never panics and never returns an error directly: failures are reported
// through the Outcome and Err fields.
func ExtractPlaces(text string) Extraction {
	loc := placeBlockRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return Extraction{
			Prose:   strings.TrimSpace(text),
			Outcome: models.ParseFailure,
			Err:     models.ErrNoStructuredBlock,
		}
	}

	out := Extraction{Prose: strings.TrimSpace(text[:loc[0]] + text[loc[1]:])}
	records, err := decodeBlock(text[loc[2]:loc[3]])
	if err != nil {
		out.Outcome = models.ParseFailure
		out.Err = models.ParseError(err)
		return out
	}

	places := make([]models.Place, 0, len(records))
	for _, rec := range records {
		var rp rawPlace
		if err := json.Unmarshal(rec, &rp); err != nil {
			out.Rejected++
			continue
		}
		rp.Name = strings.TrimSpace(rp.Name)
		if err := validate.Struct(rp); err != nil {
			out.Rejected++
			continue
		}
		places = append(places, rp.toPlace())
	}

	out.Places = places
	if out.Rejected > 0 {
		out.Outcome = models.ParsePartial
	} else {
		out.Outcome = models.ParseSuccess
	}
	return out
}

// decodeBlock accepts a bare array or an object wrapping it under "places".
func decodeBlock(block string) ([]json.RawMessage, error) {
	var records []json.RawMessage
	arrErr := json.Unmarshal([]byte(block), &records)
	if arrErr == nil {
		return records, nil
	}

	var wrapped struct {
		Places *[]json.RawMessage `json:"places"`
	}
	if err := json.Unmarshal([]byte(block), &wrapped); err == nil && wrapped.Places != nil {
		return *wrapped.Places, nil
	}
	return nil, fmt.Errorf("decode place block: %w", arrErr)
}
