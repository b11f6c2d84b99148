package marketaux

import (
	"encoding/json"
	"fmt"
	"strings"

	"marketscout/internal/numeric"
)

// Sentiment labels derived from the entity sentiment score.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

const sentimentThreshold = 0.15

// Article is one normalized news item.
type Article struct {
	UUID           string  `json:"uuid"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	URL            string  `json:"url"`
	ImageURL       string  `json:"image_url"`
	Source         string  `json:"source"`
	PublishedAt    string  `json:"published_at"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
}

type apiResponse struct {
	Data []apiArticle `json:"data"`
}

type apiArticle struct {
	UUID        string      `json:"uuid"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Snippet     string      `json:"snippet"`
	URL         string      `json:"url"`
	ImageURL    string      `json:"image_url"`
	Source      string      `json:"source"`
	PublishedAt string      `json:"published_at"`
	Entities    []apiEntity `json:"entities"`
}

type apiEntity struct {
	Symbol         string `json:"symbol"`
	SentimentScore any    `json:"sentiment_score"`
}

// ParseArticles decodes a /news/all body and scores each article against the
// entity matching symbol. Articles without a title are dropped.
func ParseArticles(raw json.RawMessage, symbol string) ([]Article, error) {
	var body apiResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode marketaux news: %w", err)
	}

	articles := make([]Article, 0, len(body.Data))
	for _, a := range body.Data {
		if strings.TrimSpace(a.Title) == "" {
			continue
		}

		desc := a.Description
		if desc == "" {
			desc = a.Snippet
		}

		score := entityScore(a.Entities, symbol)
		articles = append(articles, Article{
			UUID:           a.UUID,
			Title:          a.Title,
			Description:    desc,
			URL:            a.URL,
			ImageURL:       a.ImageURL,
			Source:         a.Source,
			PublishedAt:    a.PublishedAt,
			Sentiment:      Label(score),
			SentimentScore: score,
		})
	}
	return articles, nil
}

// entityScore averages the sentiment of entities matching symbol, falling
// back to every entity when none match.
func entityScore(entities []apiEntity, symbol string) float64 {
	var sum float64
	var n int
	for _, e := range entities {
		if strings.EqualFold(e.Symbol, symbol) {
			sum += numeric.Float(e.SentimentScore)
			n++
		}
	}
	if n == 0 {
		for _, e := range entities {
			sum += numeric.Float(e.SentimentScore)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return numeric.Round(sum/float64(n), 4)
}

// Label maps a sentiment score to positive, negative or neutral.
func Label(score float64) string {
	switch {
	case score > sentimentThreshold:
		return SentimentPositive
	case score < -sentimentThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
