package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ i.MazeRepo = &MazeRepo{}

type mazeDocument struct {
	ID        string            `bson:"_id"`
	OwnerID   string            `bson:"ownerId"`
	Name      string            `bson:"name"`
	Raw       string            `bson:"raw"`
	Rows      int               `bson:"rows"`
	Cols      int               `bson:"cols"`
	CreatedAt time.Time         `bson:"createdAt"`
	Solution  *solutionDocument `bson:"solution,omitempty"`
}

type solutionDocument struct {
	Found    bool      `bson:"found"`
	Path     [][2]int  `bson:"path"`
	SolvedAt time.Time `bson:"solvedAt"`
}

// MazeRepo handles the persistence of maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts or updates a maze record.
func (m *MazeRepo) Save(ctx context.Context, record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	doc := newMazeDocument(record)
	filter := bson.M{"_id": doc.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":   doc.OwnerID,
			"name":      doc.Name,
			"raw":       doc.Raw,
			"rows":      doc.Rows,
			"cols":      doc.Cols,
			"createdAt": doc.CreatedAt,
			"solution":  doc.Solution,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("saving maze: %w", err)
	}
	return nil
}

// ByID retrieves a maze record by its ID.
func (m *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var doc mazeDocument
	if err := m.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("finding maze: %w", err)
	}
	return doc.toRecord()
}

func newMazeDocument(r *dmn.MazeRecord) mazeDocument {
	doc := mazeDocument{
		ID:        r.ID.String(),
		OwnerID:   r.OwnerID.String(),
		Name:      r.Name,
		Raw:       r.Raw,
		Rows:      r.Rows,
		Cols:      r.Cols,
		CreatedAt: r.CreatedAt,
	}
	if r.Solution != nil {
		path := make([][2]int, len(r.Solution.Path))
		for idx, c := range r.Solution.Path {
			path[idx] = [2]int{c.Row(), c.Col()}
		}
		doc.Solution = &solutionDocument{
			Found:    r.Solution.Found,
			Path:     path,
			SolvedAt: r.Solution.SolvedAt,
		}
	}
	return doc
}

func (d mazeDocument) toRecord() (*dmn.MazeRecord, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("stored maze id %q: %w", d.ID, err)
	}
	owner, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("stored owner id %q: %w", d.OwnerID, err)
	}

	r := &dmn.MazeRecord{
		ID:        id,
		OwnerID:   owner,
		Name:      d.Name,
		Raw:       d.Raw,
		Rows:      d.Rows,
		Cols:      d.Cols,
		CreatedAt: d.CreatedAt,
	}
	if d.Solution != nil {
		path := make([]maze.Coord, len(d.Solution.Path))
		for idx, p := range d.Solution.Path {
			path[idx] = maze.NewCoord(p[0], p[1])
		}
		r.Solution = &dmn.Solution{
			Found:    d.Solution.Found,
			Path:     path,
			SolvedAt: d.Solution.SolvedAt,
		}
	}
	return r, nil
}
