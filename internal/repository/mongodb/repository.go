package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

const (
	unitsColl          = "units"
	conversionsColl    = "unit_conversions"
	rawMaterialsColl   = "raw_materials"
	recipesColl        = "recipes"
	labourColl         = "labour"
	recipeLabourColl   = "recipe_labour"
	packagingCostsColl = "packaging_costs"
	opCostsColl        = "op_costs"
)

// Repository defines the persistence operations the costing service relies on.
type Repository interface {
	SaveUnit(ctx context.Context, unit models.Unit) error
	GetUnit(ctx context.Context, id string) (models.Unit, error)
	SaveUnitConversion(ctx context.Context, conv models.UnitConversion) error
	ListUnitConversions(ctx context.Context) ([]models.UnitConversion, error)

	SaveRawMaterial(ctx context.Context, material models.RawMaterial) error
	GetRawMaterial(ctx context.Context, id string) (models.RawMaterial, error)

	SaveRecipe(ctx context.Context, recipe models.Recipe) error
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error

	SaveLabour(ctx context.Context, labour models.Labour) error
	GetLabour(ctx context.Context, id string) (models.Labour, error)
	AddRecipeLabour(ctx context.Context, entry models.RecipeLabour) error
	ListRecipeLabour(ctx context.Context, recipeID string, phase models.Phase) ([]models.RecipeLabour, error)

	AddPackagingCost(ctx context.Context, entry models.PackagingCost) error
	ListPackagingCosts(ctx context.Context, recipeID string) ([]models.PackagingCost, error)

	SaveOpCost(ctx context.Context, entry models.OpCostEntry) error
	GetOpCost(ctx context.Context, month, year int) (models.OpCostEntry, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// EnsureIndexes creates the lookup indexes used by the repository. The op cost
// index also enforces one entry per (month, year).
func (r *MongoDBRepository) EnsureIndexes(ctx context.Context) error {
	indexes := map[string]mongo.IndexModel{
		opCostsColl: {
			Keys:    bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		conversionsColl: {
			Keys:    bson.D{{Key: "from_unit_id", Value: 1}, {Key: "to_unit_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		recipeLabourColl: {
			Keys: bson.D{{Key: "recipe_id", Value: 1}, {Key: "type", Value: 1}},
		},
		packagingCostsColl: {
			Keys: bson.D{{Key: "recipe_id", Value: 1}},
		},
	}

	for coll, model := range indexes {
		if _, err := r.db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}
	return nil
}

// SaveUnit inserts or replaces a unit.
func (r *MongoDBRepository) SaveUnit(ctx context.Context, unit models.Unit) error {
	return r.upsertByID(ctx, unitsColl, unit.ID, unit)
}

// GetUnit loads a unit by id.
func (r *MongoDBRepository) GetUnit(ctx context.Context, id string) (models.Unit, error) {
	var unit models.Unit
	err := r.findOne(ctx, unitsColl, bson.M{"_id": id}, &unit)
	return unit, err
}

// SaveUnitConversion inserts or replaces the conversion for its (from, to) pair.
func (r *MongoDBRepository) SaveUnitConversion(ctx context.Context, conv models.UnitConversion) error {
	filter := bson.M{"from_unit_id": conv.FromUnitID, "to_unit_id": conv.ToUnitID}
	_, err := r.db.Collection(conversionsColl).ReplaceOne(ctx, filter, conv, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save unit conversion: %w", err)
	}
	return nil
}

// ListUnitConversions returns every stored conversion.
func (r *MongoDBRepository) ListUnitConversions(ctx context.Context) ([]models.UnitConversion, error) {
	var out []models.UnitConversion
	if err := r.findAll(ctx, conversionsColl, bson.M{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveRawMaterial inserts or replaces a raw material.
func (r *MongoDBRepository) SaveRawMaterial(ctx context.Context, material models.RawMaterial) error {
	return r.upsertByID(ctx, rawMaterialsColl, material.ID, material)
}

// GetRawMaterial loads a raw material by id.
func (r *MongoDBRepository) GetRawMaterial(ctx context.Context, id string) (models.RawMaterial, error) {
	var material models.RawMaterial
	err := r.findOne(ctx, rawMaterialsColl, bson.M{"_id": id}, &material)
	return material, err
}

// SaveRecipe inserts or replaces a recipe together with its embedded items.
func (r *MongoDBRepository) SaveRecipe(ctx context.Context, recipe models.Recipe) error {
	return r.upsertByID(ctx, recipesColl, recipe.ID, recipe)
}

// GetRecipe loads a recipe by id.
func (r *MongoDBRepository) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	var recipe models.Recipe
	err := r.findOne(ctx, recipesColl, bson.M{"_id": id}, &recipe)
	return recipe, err
}

// DeleteRecipe removes a recipe and the labour and packaging entries it owns.
// Children go first so a failure never leaves orphans behind a deleted recipe.
func (r *MongoDBRepository) DeleteRecipe(ctx context.Context, id string) error {
	for _, coll := range []string{recipeLabourColl, packagingCostsColl} {
		if _, err := r.db.Collection(coll).DeleteMany(ctx, bson.M{"recipe_id": id}); err != nil {
			return fmt.Errorf("failed to delete %s of recipe %s: %w", coll, id, err)
		}
	}

	res, err := r.db.Collection(recipesColl).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete recipe %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveLabour inserts or replaces a labour record.
func (r *MongoDBRepository) SaveLabour(ctx context.Context, labour models.Labour) error {
	return r.upsertByID(ctx, labourColl, labour.ID, labour)
}

// GetLabour loads a labour record by id.
func (r *MongoDBRepository) GetLabour(ctx context.Context, id string) (models.Labour, error) {
	var labour models.Labour
	err := r.findOne(ctx, labourColl, bson.M{"_id": id}, &labour)
	return labour, err
}

// AddRecipeLabour stores a labour assignment.
func (r *MongoDBRepository) AddRecipeLabour(ctx context.Context, entry models.RecipeLabour) error {
	if _, err := r.db.Collection(recipeLabourColl).InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert recipe labour: %w", err)
	}
	return nil
}

// ListRecipeLabour returns the labour assignments of a recipe in one phase.
func (r *MongoDBRepository) ListRecipeLabour(ctx context.Context, recipeID string, phase models.Phase) ([]models.RecipeLabour, error) {
	var out []models.RecipeLabour
	filter := bson.M{"recipe_id": recipeID, "type": phase}
	if err := r.findAll(ctx, recipeLabourColl, filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddPackagingCost stores a packaging cost entry.
func (r *MongoDBRepository) AddPackagingCost(ctx context.Context, entry models.PackagingCost) error {
	if _, err := r.db.Collection(packagingCostsColl).InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert packaging cost: %w", err)
	}
	return nil
}

// ListPackagingCosts returns the packaging entries of a recipe.
func (r *MongoDBRepository) ListPackagingCosts(ctx context.Context, recipeID string) ([]models.PackagingCost, error) {
	var out []models.PackagingCost
	if err := r.findAll(ctx, packagingCostsColl, bson.M{"recipe_id": recipeID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveOpCost upserts the entry for its (month, year). An existing entry keeps its id.
func (r *MongoDBRepository) SaveOpCost(ctx context.Context, entry models.OpCostEntry) error {
	filter := bson.M{"month": entry.Month, "year": entry.Year}

	var existing models.OpCostEntry
	switch err := r.findOne(ctx, opCostsColl, filter, &existing); {
	case err == nil:
		entry.ID = existing.ID
	case !errors.Is(err, ErrNotFound):
		return err
	}

	_, err := r.db.Collection(opCostsColl).ReplaceOne(ctx, filter, entry, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save op cost %02d/%d: %w", entry.Month, entry.Year, err)
	}
	return nil
}

// GetOpCost loads the entry for a month.
func (r *MongoDBRepository) GetOpCost(ctx context.Context, month, year int) (models.OpCostEntry, error) {
	var entry models.OpCostEntry
	err := r.findOne(ctx, opCostsColl, bson.M{"month": month, "year": year}, &entry)
	return entry, err
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) upsertByID(ctx context.Context, coll, id string, doc interface{}) error {
	if id == "" {
		return fmt.Errorf("save into %s: empty id", coll)
	}
	_, err := r.db.Collection(coll).ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save into %s: %w", coll, err)
	}
	return nil
}

func (r *MongoDBRepository) findOne(ctx context.Context, coll string, filter bson.M, out interface{}) error {
	err := r.db.Collection(coll).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read from %s: %w", coll, err)
	}
	return nil
}

func (r *MongoDBRepository) findAll(ctx context.Context, coll string, filter bson.M, out interface{}) error {
	cursor, err := r.db.Collection(coll).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", coll, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", coll, err)
	}
	return nil
}
