// Package mongostore persists diagnostics entries to a MongoDB collection.
package mongostore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/logger"
	"github.com/rediwo/tweenlog/sink"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultDatabase   = "tweenlog"
	DefaultCollection = "entries"
	WriteTimeout      = 5 * time.Second
)

// inserter is the part of *mongo.Collection used for writes
type inserter interface {
	InsertOne(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type document struct {
	Severity string    `bson:"severity"`
	Text     string    `bson:"text"`
	LoggedAt time.Time `bson:"logged_at"`
}

// Store is a diag.Sink writing one document per message
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
	inserter   inserter
	logger     logger.Logger
	now        func() time.Time
}

// Open connects to uri. The database comes from the URI path, falling back
// to DefaultDatabase.
func Open(ctx context.Context, uri string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := databaseName(uri)
	if dbName == "" {
		dbName = DefaultDatabase
	}
	coll := client.Database(dbName).Collection(DefaultCollection)

	s := newStore(coll)
	s.client = client
	s.collection = coll
	return s, nil
}

func newStore(ins inserter) *Store {
	return &Store{
		inserter: ins,
		logger:   logger.NewDefaultLogger("mongostore"),
		now:      time.Now,
	}
}

// SetLogger sets where write failures are reported
func (s *Store) SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.NewNullLogger()
	}
	s.logger = l
}

// Write implements diag.Sink. Failures are logged, not returned.
func (s *Store) Write(severity diag.Severity, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), WriteTimeout)
	defer cancel()

	if err := s.Insert(ctx, sink.Entry{Severity: severity, Text: text}); err != nil {
		s.logger.Error("%v", err)
	}
}

// Insert stores one entry. A zero Time is replaced by the current time.
func (s *Store) Insert(ctx context.Context, e sink.Entry) error {
	if e.Time.IsZero() {
		e.Time = s.now()
	}
	doc := document{Severity: e.Severity.String(), Text: e.Text, LoggedAt: e.Time.UTC()}
	if _, err := s.inserter.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest last. Entry.ID is not set;
// documents are keyed by ObjectID.
func (s *Store) Recent(ctx context.Context, severity *diag.Severity, limit int) ([]sink.Entry, error) {
	if s.collection == nil {
		return nil, fmt.Errorf("not connected to MongoDB")
	}
	if limit <= 0 {
		limit = sink.DefaultRecorderCapacity
	}

	filter := bson.M{}
	if severity != nil {
		filter["severity"] = severity.String()
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode entries: %w", err)
	}

	entries := make([]sink.Entry, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		sev, err := diag.ParseSeverity(docs[i].Severity)
		if err != nil {
			return nil, err
		}
		entries = append(entries, sink.Entry{Severity: sev, Text: docs[i].Text, Time: docs[i].LoggedAt})
	}
	return entries, nil
}

// Close disconnects the client
func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Disconnect(context.Background())
	}
	return nil
}

// databaseName extracts the database segment from a mongodb:// URI
func databaseName(uri string) string {
	_, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return ""
	}
	_, path, ok := strings.Cut(rest, "/")
	if !ok {
		return ""
	}
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	return path
}
