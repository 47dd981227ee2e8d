package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WhiteboardRepository interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	GetUserById(ctx context.Context, id primitive.ObjectID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUsersByIds(ctx context.Context, ids []primitive.ObjectID) ([]User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, params UpdateUserParams) (User, error)

	CreateRoom(ctx context.Context, params CreateRoomParams) (Room, error)
	GetRoomByRoomId(ctx context.Context, roomId string) (Room, error)
	GetRoomsByIds(ctx context.Context, ids []primitive.ObjectID) ([]Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	UpdateRoom(ctx context.Context, id primitive.ObjectID, params UpdateRoomParams) (Room, error)
	DeleteRoom(ctx context.Context, id primitive.ObjectID) error

	AddJoinedUser(ctx context.Context, roomId primitive.ObjectID, user JoinedUser) error
	AppendRoomFile(ctx context.Context, roomId primitive.ObjectID, file RoomFile) (Room, error)

	AddRoomToCreated(ctx context.Context, userId, roomId primitive.ObjectID) error
	AddRoomToJoined(ctx context.Context, userId, roomId primitive.ObjectID) error
	PullRoomFromCreated(ctx context.Context, userId, roomId primitive.ObjectID) error
	PullRoomFromJoined(ctx context.Context, userIds []primitive.ObjectID, roomId primitive.ObjectID) error
}
