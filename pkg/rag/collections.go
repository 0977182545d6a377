package rag

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate/entities/models"
)

// Default collection names. The flight collection carries structured fields
// for the exact-match tier; policy and web carry chunked prose.
const (
	DefaultFlightCollection = "PAAFlightStatus"
	DefaultPolicyCollection = "PAAPolicy"
	DefaultWebCollection    = "PAAWebLink"
)

func textProperty(name, description string) *models.Property {
	return &models.Property{
		Name:        name,
		DataType:    []string{"text"},
		Description: description,
	}
}

// CollectionClasses returns the schema classes for the three retrieval
// collections, keyed by collection name. All use vectorizer "none"; vectors
// are computed client-side by the embedding service.
func CollectionClasses(flightName, policyName, webName string) map[string]*models.Class {
	return map[string]*models.Class{
		flightName: {
			Class:       flightName,
			Description: "Flight records from the AFDS XML feed",
			Vectorizer:  "none",
			Properties: []*models.Property{
				textProperty("flightNumber", "Canonical flight identity, e.g. SV726"),
				textProperty("direction", "A for arrival, D for departure"),
				textProperty("airport", "Airport IATA code"),
				textProperty("gateNumber", "Assigned gate"),
				textProperty("statusDesc", "Readable flight status"),
				textProperty("scheduledTime", "Scheduled date-time"),
				textProperty("summary", "One-sentence record summary used for embedding"),
			},
		},
		policyName: {
			Class:       policyName,
			Description: "Chunked baggage and airport policy documents",
			Vectorizer:  "none",
			Properties: []*models.Property{
				textProperty("content", "Document chunk text"),
				textProperty("source", "Originating document file name"),
			},
		},
		webName: {
			Class:       webName,
			Description: "Chunked text crawled from the official website",
			Vectorizer:  "none",
			Properties: []*models.Property{
				textProperty("content", "Page chunk text"),
				textProperty("urlHref", "Source page URL"),
			},
		},
	}
}

// EnsureCollections creates the given classes. With recreate set, existing
// classes are dropped first, matching what the admin ingestion flow does
// before re-indexing.
func (wc *WeaviateClient) EnsureCollections(ctx context.Context, classes map[string]*models.Class, recreate bool) error {
	for name, class := range classes {
		if recreate {
			exists, err := wc.ClassExists(ctx, name)
			if err != nil {
				return err
			}
			if exists {
				if err := wc.DeleteClass(ctx, name); err != nil {
					return err
				}
			}
		}
		if err := wc.CreateClass(ctx, class); err != nil {
			return fmt.Errorf("ensuring collection %s: %w", name, err)
		}
	}
	return nil
}
