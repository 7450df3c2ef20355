package model

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestPopulatedReferenceCarriesOnlyItsSummary(t *testing.T) {
	topic := Topic{
		Name:   "Ownership",
		Course: &CourseRef{ID: uuid.New(), Title: "Rust"},
	}
	raw, err := json.Marshal(topic)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	var course map[string]interface{}
	require.NoError(t, json.Unmarshal(doc["course"], &course))
	assert.ElementsMatch(t, []string{"id", "title"}, keys(course))

	sub := Subscription{User: &UserRef{ID: uuid.New(), Name: "Dana", Email: "dana@example.com"}}
	raw, err = json.Marshal(sub)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &doc))
	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(doc["user"], &user))
	assert.ElementsMatch(t, []string{"id", "name", "email"}, keys(user))
}

func TestReferencesResolveToParentTables(t *testing.T) {
	tests := []struct {
		model interface{}
		field string
		table string
	}{
		{&Course{}, "Category", "categories"},
		{&Topic{}, "Course", "courses"},
		{&SubTopic{}, "Topic", "topics"},
		{&Question{}, "Series", "series"},
		{&Order{}, "User", "users"},
	}
	cache := &sync.Map{}
	for _, tt := range tests {
		s, err := schema.Parse(tt.model, cache, schema.NamingStrategy{})
		require.NoError(t, err)
		rel, ok := s.Relationships.Relations[tt.field]
		require.True(t, ok, tt.field)
		assert.Equal(t, schema.BelongsTo, rel.Type)
		assert.Equal(t, tt.table, rel.FieldSchema.Table)
		assert.True(t, rel.Field.IgnoreMigration, "parent tables are migrated from their own models")
	}
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
