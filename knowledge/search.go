package knowledge

import (
	"context"
	"fmt"

	"github.com/blugelabs/bluge"
)

// index is the in-memory full-text view over drugs and entries, used to
// resolve misspelled or partial entity names before giving up.
type index struct {
	writer *bluge.Writer
}

type indexedDoc struct {
	id   string
	kind string
	key  string
	text string
}

func newIndex(docs []indexedDoc) (*index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	batch := bluge.NewBatch()
	for _, d := range docs {
		doc := bluge.NewDocument(d.id).
			AddField(bluge.NewTextField("text", d.text)).
			AddField(bluge.NewStoredOnlyField("kind", []byte(d.kind))).
			AddField(bluge.NewStoredOnlyField("key", []byte(d.key)))
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("indexing documents: %w", err)
	}
	return &index{writer: writer}, nil
}

func (i *index) Close() error {
	return i.writer.Close()
}

// search returns the kind and key of the best match for the query.
func (i *index) search(ctx context.Context, query string) (kind, key string, found bool, err error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return "", "", false, fmt.Errorf("index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	matchQuery := bluge.NewMatchQuery(query).SetField("text")
	iter, err := reader.Search(ctx, bluge.NewTopNSearch(1, matchQuery))
	if err != nil {
		return "", "", false, fmt.Errorf("index search: %w", err)
	}

	next, err := iter.Next()
	if err != nil {
		return "", "", false, fmt.Errorf("index result: %w", err)
	}
	if next == nil {
		return "", "", false, nil
	}

	err = next.VisitStoredFields(func(field string, value []byte) bool {
		switch field {
		case "kind":
			kind = string(value)
		case "key":
			key = string(value)
		}
		return true
	})
	if err != nil {
		return "", "", false, fmt.Errorf("stored fields: %w", err)
	}
	return kind, key, kind != "" && key != "", nil
}
