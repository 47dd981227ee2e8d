package database

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockWhiteboardRepository struct {
	mock.Mock
}

func (m *MockWhiteboardRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWhiteboardRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockWhiteboardRepository) GetUserById(ctx context.Context, id primitive.ObjectID) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockWhiteboardRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockWhiteboardRepository) GetUsersByIds(ctx context.Context, ids []primitive.ObjectID) ([]User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockWhiteboardRepository) ListUsers(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockWhiteboardRepository) UpdateUser(ctx context.Context, params UpdateUserParams) (User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockWhiteboardRepository) CreateRoom(ctx context.Context, params CreateRoomParams) (Room, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(Room), args.Error(1)
}

func (m *MockWhiteboardRepository) GetRoomByRoomId(ctx context.Context, roomId string) (Room, error) {
	args := m.Called(ctx, roomId)
	return args.Get(0).(Room), args.Error(1)
}

func (m *MockWhiteboardRepository) GetRoomsByIds(ctx context.Context, ids []primitive.ObjectID) ([]Room, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]Room), args.Error(1)
}

func (m *MockWhiteboardRepository) ListRooms(ctx context.Context) ([]Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Room), args.Error(1)
}

func (m *MockWhiteboardRepository) UpdateRoom(ctx context.Context, id primitive.ObjectID, params UpdateRoomParams) (Room, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(Room), args.Error(1)
}

func (m *MockWhiteboardRepository) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWhiteboardRepository) AddJoinedUser(ctx context.Context, roomId primitive.ObjectID, user JoinedUser) error {
	args := m.Called(ctx, roomId, user)
	return args.Error(0)
}

func (m *MockWhiteboardRepository) AppendRoomFile(ctx context.Context, roomId primitive.ObjectID, file RoomFile) (Room, error) {
	args := m.Called(ctx, roomId, file)
	return args.Get(0).(Room), args.Error(1)
}

func (m *MockWhiteboardRepository) AddRoomToCreated(ctx context.Context, userId, roomId primitive.ObjectID) error {
	args := m.Called(ctx, userId, roomId)
	return args.Error(0)
}

func (m *MockWhiteboardRepository) AddRoomToJoined(ctx context.Context, userId, roomId primitive.ObjectID) error {
	args := m.Called(ctx, userId, roomId)
	return args.Error(0)
}

func (m *MockWhiteboardRepository) PullRoomFromCreated(ctx context.Context, userId, roomId primitive.ObjectID) error {
	args := m.Called(ctx, userId, roomId)
	return args.Error(0)
}

func (m *MockWhiteboardRepository) PullRoomFromJoined(ctx context.Context, userIds []primitive.ObjectID, roomId primitive.ObjectID) error {
	args := m.Called(ctx, userIds, roomId)
	return args.Error(0)
}
