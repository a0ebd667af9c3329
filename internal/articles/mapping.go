package articles

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"newsdesk/pkg/query"
	"newsdesk/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "news_article", "a").
	Project("id", "ID").
	Project("canonical_id", "CanonicalID").
	Project("title", "Title").
	Project("content", "Content").
	Project("language", "Language").
	Project("categories", "Categories").
	Project("keywords", "Keywords").
	Project("contacts", "Contacts").
	Project("status", "Status").
	Project("revision_count", "RevisionCount").
	Project("required_corrections", "RequiredCorrections").
	Project("editorial_warning", "Warning").
	Project("published_at", "PublishedAt").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for article queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Status              *string `json:"status,omitempty"`
	Language            *string `json:"language,omitempty"`
	CanonicalID         *string `json:"canonical_id,omitempty"`
	RequiredCorrections *bool   `json:"required_corrections,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("Language", f.Language).
		WhereEquals("CanonicalID", f.CanonicalID).
		WhereEquals("RequiredCorrections", f.RequiredCorrections)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if l := values.Get("language"); l != "" {
		f.Language = &l
	}

	if c := values.Get("canonical_id"); c != "" {
		f.CanonicalID = &c
	}

	if rc := values.Get("required_corrections"); rc != "" {
		if b, err := strconv.ParseBool(rc); err == nil {
			f.RequiredCorrections = &b
		}
	}

	return f
}

func scanArticle(s repository.Scanner) (Article, error) {
	var a Article
	var categoriesRaw, keywordsRaw, contactsRaw, warningRaw []byte

	err := s.Scan(
		&a.ID,
		&a.CanonicalID,
		&a.Title,
		&a.Content,
		&a.Language,
		&categoriesRaw,
		&keywordsRaw,
		&contactsRaw,
		&a.Status,
		&a.RevisionCount,
		&a.RequiredCorrections,
		&warningRaw,
		&a.PublishedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		return a, err
	}

	if len(categoriesRaw) > 0 {
		if err := json.Unmarshal(categoriesRaw, &a.Categories); err != nil {
			return a, fmt.Errorf("unmarshal categories: %w", err)
		}
	}
	if len(keywordsRaw) > 0 {
		if err := json.Unmarshal(keywordsRaw, &a.Keywords); err != nil {
			return a, fmt.Errorf("unmarshal keywords: %w", err)
		}
	}
	if len(contactsRaw) > 0 {
		if err := json.Unmarshal(contactsRaw, &a.Contacts); err != nil {
			return a, fmt.Errorf("unmarshal contacts: %w", err)
		}
	}
	if len(warningRaw) > 0 {
		if err := json.Unmarshal(warningRaw, &a.Warning); err != nil {
			return a, fmt.Errorf("unmarshal editorial_warning: %w", err)
		}
	}

	if a.Categories == nil {
		a.Categories = []string{}
	}
	if a.Keywords == nil {
		a.Keywords = []string{}
	}
	if a.Contacts == nil {
		a.Contacts = []Contact{}
	}

	return a, nil
}
