package store

import (
	"context"
	"errors"

	"todo-app/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore provides MongoDB-backed storage for users and todos
type MongoStore struct {
	client *mongo.Client
	users  *mongo.Collection
	todos  *mongo.Collection
}

// todoDoc is the persisted shape of a todo. Mongo assigns the ObjectID;
// the hex encoding is the opaque id handed to clients.
type todoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Date        string             `bson:"date"`
	Description string             `bson:"description"`
	Checked     bool               `bson:"checked"`
	UserID      string             `bson:"userId"`
}

func (d todoDoc) model() models.Todo {
	return models.Todo{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Date:        d.Date,
		Description: d.Description,
		Checked:     d.Checked,
		UserID:      d.UserID,
	}
}

// mongoErr translates driver errors into store sentinels. Timeouts include
// both an expired request context and driver-internal ones such as server
// selection, which never wrap context.DeadlineExceeded.
func mongoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return ErrUnavailable
	default:
		return err
	}
}

// NewMongoStore connects to MongoDB and returns a MongoStore instance
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(database)
	return &MongoStore{
		client: client,
		users:  db.Collection("users"),
		todos:  db.Collection("todos"),
	}, nil
}

// CreateUser persists a new user, rejecting duplicate usernames
func (s *MongoStore) CreateUser(ctx context.Context, user models.User) error {
	_, err := s.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrUserExists
	}
	return mongoErr(err)
}

// GetUser returns a user by username
func (s *MongoStore) GetUser(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": username}).Decode(&user); err != nil {
		return models.User{}, mongoErr(err)
	}
	return user, nil
}

// CreateTodo persists a new todo and returns it with its assigned id
func (s *MongoStore) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	doc := todoDoc{
		ID:          primitive.NewObjectID(),
		Title:       todo.Title,
		Date:        todo.Date,
		Description: todo.Description,
		Checked:     todo.Checked,
		UserID:      todo.UserID,
	}
	if _, err := s.todos.InsertOne(ctx, doc); err != nil {
		return models.Todo{}, mongoErr(err)
	}
	return doc.model(), nil
}

// ListTodos returns all todos owned by the given user
func (s *MongoStore) ListTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	cursor, err := s.todos.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, mongoErr(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.Todo, 0)
	for cursor.Next(ctx) {
		var doc todoDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, mongoErr(err)
		}
		result = append(result, doc.model())
	}
	return result, mongoErr(cursor.Err())
}

// GetTodo returns a todo by id
func (s *MongoStore) GetTodo(ctx context.Context, id string) (models.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Todo{}, ErrNotFound
	}

	var doc todoDoc
	if err := s.todos.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return models.Todo{}, mongoErr(err)
	}
	return doc.model(), nil
}

// UpdateTodo applies a partial update and returns the post-update todo
func (s *MongoStore) UpdateTodo(ctx context.Context, id string, update models.UpdateTodoRequest) (models.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Todo{}, ErrNotFound
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Checked != nil {
		set["checked"] = *update.Checked
	}
	if len(set) == 0 {
		return s.GetTodo(ctx, id)
	}

	var doc todoDoc
	err = s.todos.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return models.Todo{}, mongoErr(err)
	}
	return doc.model(), nil
}

// DeleteTodo removes a todo by id
func (s *MongoStore) DeleteTodo(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.todos.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mongoErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
