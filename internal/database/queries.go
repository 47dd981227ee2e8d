package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoWhiteboardRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	now := time.Now().UTC()
	user := User{
		Id:           primitive.NewObjectID(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		RoomsCreated: []primitive.ObjectID{},
		RoomsJoined:  []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.users().InsertOne(ctx, user)
	return user, err
}

func (r *MongoWhiteboardRepository) GetUserById(ctx context.Context, id primitive.ObjectID) (User, error) {
	var user User
	err := r.users().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	return user, err
}

func (r *MongoWhiteboardRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (r *MongoWhiteboardRepository) GetUsersByIds(ctx context.Context, ids []primitive.ObjectID) ([]User, error) {
	users := []User{}
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := r.users().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoWhiteboardRepository) ListUsers(ctx context.Context) ([]User, error) {
	cursor, err := r.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoWhiteboardRepository) UpdateUser(ctx context.Context, params UpdateUserParams) (User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if params.PhoneNumber != "" {
		set["phoneNumber"] = params.PhoneNumber
	}
	if params.Bio != "" {
		set["bio"] = params.Bio
	}
	if params.Location != "" {
		set["location"] = params.Location
	}
	if params.DateOfBirth != nil {
		set["dateOfBirth"] = *params.DateOfBirth
	}
	if params.ProfileImage != "" {
		set["profileImage"] = params.ProfileImage
	}
	if params.Resume != "" {
		set["resume"] = params.Resume
	}
	if params.SocialMediaLinks != nil {
		set["socialMediaLinks"] = params.SocialMediaLinks
	}

	var user User
	err := r.users().FindOneAndUpdate(
		ctx,
		bson.M{"_id": params.UserId},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	return user, err
}

func (r *MongoWhiteboardRepository) CreateRoom(ctx context.Context, params CreateRoomParams) (Room, error) {
	room := Room{
		Id:          primitive.NewObjectID(),
		RoomId:      params.RoomId,
		Name:        params.Name,
		Creator:     params.Creator,
		CreatorName: params.CreatorName,
		JoinedUsers: []JoinedUser{},
		Files:       []RoomFile{},
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.rooms().InsertOne(ctx, room)
	return room, err
}

func (r *MongoWhiteboardRepository) GetRoomByRoomId(ctx context.Context, roomId string) (Room, error) {
	var room Room
	err := r.rooms().FindOne(ctx, bson.M{"roomId": roomId}).Decode(&room)
	return room, err
}

func (r *MongoWhiteboardRepository) GetRoomsByIds(ctx context.Context, ids []primitive.ObjectID) ([]Room, error) {
	rooms := []Room{}
	if len(ids) == 0 {
		return rooms, nil
	}

	cursor, err := r.rooms().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *MongoWhiteboardRepository) ListRooms(ctx context.Context) ([]Room, error) {
	cursor, err := r.rooms().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := []Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *MongoWhiteboardRepository) UpdateRoom(ctx context.Context, id primitive.ObjectID, params UpdateRoomParams) (Room, error) {
	update := bson.M{}

	set := bson.M{}
	if params.Name != "" {
		set["name"] = params.Name
	}
	if params.NewRoomId != "" {
		set["roomId"] = params.NewRoomId
	}
	if len(set) > 0 {
		update["$set"] = set
	}

	pull := bson.M{}
	if len(params.FilesToDelete) > 0 {
		pull["files"] = bson.M{"url": bson.M{"$in": params.FilesToDelete}}
	}
	if len(params.JoinedUsersToRemove) > 0 {
		pull["joinedUsers"] = bson.M{"userId": bson.M{"$in": params.JoinedUsersToRemove}}
	}
	if len(pull) > 0 {
		update["$pull"] = pull
	}

	if len(update) == 0 {
		return r.getRoomById(ctx, id)
	}

	var room Room
	err := r.rooms().FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&room)
	return room, err
}

func (r *MongoWhiteboardRepository) getRoomById(ctx context.Context, id primitive.ObjectID) (Room, error) {
	var room Room
	err := r.rooms().FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	return room, err
}

func (r *MongoWhiteboardRepository) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.rooms().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoWhiteboardRepository) AddJoinedUser(ctx context.Context, roomId primitive.ObjectID, user JoinedUser) error {
	_, err := r.rooms().UpdateByID(ctx, roomId, bson.M{
		"$push": bson.M{"joinedUsers": user},
	})
	return err
}

func (r *MongoWhiteboardRepository) AppendRoomFile(ctx context.Context, roomId primitive.ObjectID, file RoomFile) (Room, error) {
	var room Room
	err := r.rooms().FindOneAndUpdate(
		ctx,
		bson.M{"_id": roomId},
		bson.M{"$push": bson.M{"files": file}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&room)
	return room, err
}

func (r *MongoWhiteboardRepository) AddRoomToCreated(ctx context.Context, userId, roomId primitive.ObjectID) error {
	_, err := r.users().UpdateByID(ctx, userId, bson.M{
		"$push": bson.M{"roomsCreated": roomId},
	})
	return err
}

func (r *MongoWhiteboardRepository) AddRoomToJoined(ctx context.Context, userId, roomId primitive.ObjectID) error {
	_, err := r.users().UpdateByID(ctx, userId, bson.M{
		"$push": bson.M{"roomsJoined": roomId},
	})
	return err
}

func (r *MongoWhiteboardRepository) PullRoomFromCreated(ctx context.Context, userId, roomId primitive.ObjectID) error {
	_, err := r.users().UpdateByID(ctx, userId, bson.M{
		"$pull": bson.M{"roomsCreated": roomId},
	})
	return err
}

// PullRoomFromJoined removes a deleted room's reference from every listed
// user in a single UpdateMany.
func (r *MongoWhiteboardRepository) PullRoomFromJoined(ctx context.Context, userIds []primitive.ObjectID, roomId primitive.ObjectID) error {
	if len(userIds) == 0 {
		return nil
	}

	_, err := r.users().UpdateMany(
		ctx,
		bson.M{"_id": bson.M{"$in": userIds}},
		bson.M{"$pull": bson.M{"roomsJoined": roomId}},
	)
	return err
}
