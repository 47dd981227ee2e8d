package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/colabdraw/go-whiteboard/internal/database"
	"github.com/colabdraw/go-whiteboard/internal/storage"
)

func TestCreateRoomHandler(t *testing.T) {
	creatorId := primitive.NewObjectID()
	roomDbId := primitive.NewObjectID()

	creator := database.User{Id: creatorId, Name: "Alice", Email: "a@x.com"}
	room := database.Room{
		Id:          roomDbId,
		RoomId:      "r1",
		Name:        "Room One",
		Creator:     creatorId,
		CreatorName: "Alice",
	}

	t.Run("successfully creates a room", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").
			Return(database.Room{}, mongo.ErrNoDocuments).Once()
		mockRepo.On("GetUserById", mock.Anything, creatorId).Return(creator, nil).Once()
		mockRepo.On("CreateRoom", mock.Anything, database.CreateRoomParams{
			RoomId:      "r1",
			Name:        "Room One",
			Creator:     creatorId,
			CreatorName: "Alice",
		}).Return(room, nil).Once()
		mockRepo.On("AddRoomToCreated", mock.Anything, creatorId, roomDbId).Return(nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.createRoom(rr, jsonRequest(t, http.MethodPost, "/rooms/create", CreateRoomRequest{
			RoomId:    "r1",
			Name:      "Room One",
			CreatorId: creatorId.Hex(),
		}))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp RoomResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Room created successfully", resp.Message)
		assert.Equal(t, "r1", resp.Room.RoomId)
		assert.Equal(t, "Alice", resp.Room.CreatorName)
	})

	t.Run("fails when roomId is taken", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.createRoom(rr, jsonRequest(t, http.MethodPost, "/rooms/create", CreateRoomRequest{
			RoomId:    "r1",
			Name:      "Room One",
			CreatorId: creatorId.Hex(),
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ApiError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Room already exists", resp.Message)
	})

	t.Run("fails when creator does not exist", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").
			Return(database.Room{}, mongo.ErrNoDocuments).Once()
		mockRepo.On("GetUserById", mock.Anything, creatorId).
			Return(database.User{}, mongo.ErrNoDocuments).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.createRoom(rr, jsonRequest(t, http.MethodPost, "/rooms/create", CreateRoomRequest{
			RoomId:    "r1",
			Name:      "Room One",
			CreatorId: creatorId.Hex(),
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("fails with missing fields", func(t *testing.T) {
		app := newTestApp(t, &database.MockWhiteboardRepository{}, nil)
		rr := httptest.NewRecorder()
		app.createRoom(rr, jsonRequest(t, http.MethodPost, "/rooms/create", CreateRoomRequest{
			RoomId: "r1",
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestJoinRoomHandler(t *testing.T) {
	creatorId := primitive.NewObjectID()
	bobId := primitive.NewObjectID()
	roomDbId := primitive.NewObjectID()

	room := database.Room{
		Id:          roomDbId,
		RoomId:      "r1",
		Name:        "Room One",
		Creator:     creatorId,
		CreatorName: "Alice",
	}

	t.Run("successfully joins a room", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		member := database.JoinedUser{UserId: bobId, UserName: "Bob"}
		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()
		mockRepo.On("GetUserById", mock.Anything, bobId).
			Return(database.User{Id: bobId, Name: "Bob"}, nil).Once()
		mockRepo.On("AddJoinedUser", mock.Anything, roomDbId, member).Return(nil).Once()
		mockRepo.On("AddRoomToJoined", mock.Anything, bobId, roomDbId).Return(nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.joinRoom(rr, jsonRequest(t, http.MethodPost, "/rooms/join", JoinRoomRequest{
			RoomId:   "r1",
			UserId:   bobId.Hex(),
			UserName: "Bob",
		}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp RoomResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Room.JoinedUsers, 1)
		assert.Equal(t, bobId.Hex(), resp.Room.JoinedUsers[0].UserId)
	})

	t.Run("fails when user already joined", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		joined := room
		joined.JoinedUsers = []database.JoinedUser{{UserId: bobId, UserName: "Bob"}}
		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(joined, nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.joinRoom(rr, jsonRequest(t, http.MethodPost, "/rooms/join", JoinRoomRequest{
			RoomId:   "r1",
			UserId:   bobId.Hex(),
			UserName: "Bob",
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ApiError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "User already joined the room", resp.Message)
	})

	t.Run("fails when room is absent", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "missing").
			Return(database.Room{}, mongo.ErrNoDocuments).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.joinRoom(rr, jsonRequest(t, http.MethodPost, "/rooms/join", JoinRoomRequest{
			RoomId:   "missing",
			UserId:   bobId.Hex(),
			UserName: "Bob",
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUploadFileHandler(t *testing.T) {
	creatorId := primitive.NewObjectID()
	otherId := primitive.NewObjectID()
	roomDbId := primitive.NewObjectID()

	room := database.Room{
		Id:          roomDbId,
		RoomId:      "r1",
		Name:        "Room One",
		Creator:     creatorId,
		CreatorName: "Alice",
	}

	t.Run("uploads an image as the creator", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)
		mockGateway := &storage.MockGateway{}
		defer mockGateway.AssertExpectations(t)

		fileUrl := "https://res.cloudinary.com/demo/image/upload/v1/uploads/board.png"
		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()
		mockGateway.On("Upload", mock.Anything, mock.AnythingOfType("string"), "uploads").
			Return(fileUrl, nil).Once()

		withFile := room
		withFile.Files = []database.RoomFile{{Url: fileUrl, FileType: "image"}}
		mockRepo.On("AppendRoomFile", mock.Anything, roomDbId, database.RoomFile{
			Url:      fileUrl,
			FileType: "image",
		}).Return(withFile, nil).Once()

		app := newTestApp(t, mockRepo, mockGateway)
		rr := httptest.NewRecorder()
		app.uploadFile(rr, multipartRequest(t, "/rooms/upload",
			map[string]string{"roomId": "r1", "userId": creatorId.Hex()},
			formFile{field: "file", filename: "board.png", contentType: "image/png", content: []byte("png-bytes")},
		))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp UploadFileResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "image", resp.File.FileType)
		assert.Equal(t, fileUrl, resp.File.Url)
		assert.Len(t, resp.Room.Files, 1)
	})

	t.Run("classifies non-image uploads as pdf", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)
		mockGateway := &storage.MockGateway{}
		defer mockGateway.AssertExpectations(t)

		fileUrl := "https://res.cloudinary.com/demo/raw/upload/v1/uploads/notes.pdf"
		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()
		mockGateway.On("Upload", mock.Anything, mock.AnythingOfType("string"), "uploads").
			Return(fileUrl, nil).Once()
		mockRepo.On("AppendRoomFile", mock.Anything, roomDbId, database.RoomFile{
			Url:      fileUrl,
			FileType: "pdf",
		}).Return(room, nil).Once()

		app := newTestApp(t, mockRepo, mockGateway)
		rr := httptest.NewRecorder()
		app.uploadFile(rr, multipartRequest(t, "/rooms/upload",
			map[string]string{"roomId": "r1", "userId": creatorId.Hex()},
			formFile{field: "file", filename: "notes.pdf", contentType: "application/pdf", content: []byte("pdf-bytes")},
		))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("fails when uploader is not the creator", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.uploadFile(rr, multipartRequest(t, "/rooms/upload",
			map[string]string{"roomId": "r1", "userId": otherId.Hex()},
			formFile{field: "file", filename: "board.png", contentType: "image/png", content: []byte("png-bytes")},
		))

		assert.Equal(t, http.StatusForbidden, rr.Code)

		var resp ApiError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Only the creator can upload files", resp.Message)
	})

	t.Run("fails when no file is attached", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.uploadFile(rr, multipartRequest(t, "/rooms/upload",
			map[string]string{"roomId": "r1", "userId": creatorId.Hex()},
		))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ApiError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "No file uploaded", resp.Message)
	})
}

func TestGetJoinedRoomsHandler(t *testing.T) {
	creatorId := primitive.NewObjectID()
	bobId := primitive.NewObjectID()
	roomDbId := primitive.NewObjectID()

	bob := database.User{
		Id:          bobId,
		Name:        "Bob",
		RoomsJoined: []primitive.ObjectID{roomDbId},
	}

	room := database.Room{
		Id:          roomDbId,
		RoomId:      "r1",
		Name:        "Room One",
		Creator:     creatorId,
		CreatorName: "Alice",
		JoinedUsers: []database.JoinedUser{{UserId: bobId, UserName: "Bob"}},
	}

	t.Run("returns joined rooms with creator name", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetUserById", mock.Anything, bobId).Return(bob, nil).Once()
		mockRepo.On("GetRoomsByIds", mock.Anything, bob.RoomsJoined).
			Return([]database.Room{room}, nil).Once()
		mockRepo.On("GetUsersByIds", mock.Anything, []primitive.ObjectID{creatorId}).
			Return([]database.User{{Id: creatorId, Name: "Alice"}}, nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.getJoinedRooms(rr, jsonRequest(t, http.MethodPost, "/rooms/get-joined-rooms", UserIdRequest{UserId: bobId.Hex()}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp JoinedRoomsResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.RoomsJoined, 1)
		assert.Equal(t, "Alice", resp.RoomsJoined[0].CreatorName)
	})

	t.Run("fails when user is absent", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetUserById", mock.Anything, bobId).
			Return(database.User{}, mongo.ErrNoDocuments).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.getJoinedRooms(rr, jsonRequest(t, http.MethodPost, "/rooms/get-joined-rooms", UserIdRequest{UserId: bobId.Hex()}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetCreatedRoomsHandler(t *testing.T) {
	aliceId := primitive.NewObjectID()
	roomDbId := primitive.NewObjectID()

	alice := database.User{
		Id:           aliceId,
		Name:         "Alice",
		RoomsCreated: []primitive.ObjectID{roomDbId},
	}

	room := database.Room{
		Id:          roomDbId,
		RoomId:      "r1",
		Name:        "Room One",
		Creator:     aliceId,
		CreatorName: "Alice",
		JoinedUsers: []database.JoinedUser{{UserId: primitive.NewObjectID(), UserName: "Bob"}},
	}

	mockRepo := &database.MockWhiteboardRepository{}
	defer mockRepo.AssertExpectations(t)

	mockRepo.On("GetUserById", mock.Anything, aliceId).Return(alice, nil).Once()
	mockRepo.On("GetRoomsByIds", mock.Anything, alice.RoomsCreated).
		Return([]database.Room{room}, nil).Once()

	app := newTestApp(t, mockRepo, nil)
	rr := httptest.NewRecorder()
	app.getCreatedRooms(rr, jsonRequest(t, http.MethodPost, "/rooms/get-created-rooms", UserIdRequest{UserId: aliceId.Hex()}))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp CreatedRoomsResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.RoomsCreated, 1)
	assert.Len(t, resp.RoomsCreated[0].JoinedUsers, 1)
	assert.Equal(t, "Bob", resp.RoomsCreated[0].JoinedUsers[0].UserName)
}

func TestUpdateRoomHandler(t *testing.T) {
	creatorId := primitive.NewObjectID()
	roomDbId := primitive.NewObjectID()
	fileUrl := "https://res.cloudinary.com/demo/image/upload/v1/uploads/old.png"

	room := database.Room{
		Id:          roomDbId,
		RoomId:      "r1",
		Name:        "Room One",
		Creator:     creatorId,
		CreatorName: "Alice",
		Files:       []database.RoomFile{{Url: fileUrl, FileType: "image"}},
	}

	t.Run("renames and deletes files", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)
		mockGateway := &storage.MockGateway{}
		defer mockGateway.AssertExpectations(t)

		updated := room
		updated.RoomId = "r2"
		updated.Name = "Renamed"
		updated.Files = []database.RoomFile{}

		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()
		mockRepo.On("GetRoomByRoomId", mock.Anything, "r2").
			Return(database.Room{}, mongo.ErrNoDocuments).Once()
		mockRepo.On("UpdateRoom", mock.Anything, roomDbId, database.UpdateRoomParams{
			Name:                "Renamed",
			NewRoomId:           "r2",
			FilesToDelete:       []string{fileUrl},
			JoinedUsersToRemove: []primitive.ObjectID{},
		}).Return(updated, nil).Once()
		mockGateway.On("Delete", mock.Anything, fileUrl).Return(nil).Once()

		app := newTestApp(t, mockRepo, mockGateway)
		rr := httptest.NewRecorder()
		app.updateRoom(rr, jsonRequest(t, http.MethodPatch, "/rooms/update-room", UpdateRoomRequest{
			RoomId:        "r1",
			NewRoomId:     "r2",
			Name:          "Renamed",
			FilesToDelete: []string{fileUrl},
		}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp RoomResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "r2", resp.Room.RoomId)
		assert.Empty(t, resp.Room.Files)
	})

	t.Run("fails when new roomId collides", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()
		mockRepo.On("GetRoomByRoomId", mock.Anything, "taken").
			Return(database.Room{Id: primitive.NewObjectID(), RoomId: "taken"}, nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.updateRoom(rr, jsonRequest(t, http.MethodPatch, "/rooms/update-room", UpdateRoomRequest{
			RoomId:    "r1",
			NewRoomId: "taken",
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ApiError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Room ID already exists. Choose a different ID.", resp.Message)
	})

	t.Run("fails when room is absent", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "missing").
			Return(database.Room{}, mongo.ErrNoDocuments).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.updateRoom(rr, jsonRequest(t, http.MethodPatch, "/rooms/update-room", UpdateRoomRequest{
			RoomId: "missing",
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteRoomHandler(t *testing.T) {
	creatorId := primitive.NewObjectID()
	bobId := primitive.NewObjectID()
	roomDbId := primitive.NewObjectID()

	room := database.Room{
		Id:          roomDbId,
		RoomId:      "r1",
		Name:        "Room One",
		Creator:     creatorId,
		CreatorName: "Alice",
		JoinedUsers: []database.JoinedUser{{UserId: bobId, UserName: "Bob"}},
	}

	t.Run("fails when deleter is not the creator", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.deleteRoom(rr, jsonRequest(t, http.MethodDelete, "/rooms/delete-room", DeleteRoomRequest{
			RoomId: "r1",
			UserId: bobId.Hex(),
		}))

		assert.Equal(t, http.StatusForbidden, rr.Code)

		var resp ApiError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Only the creator can delete the room", resp.Message)
	})

	t.Run("deletes the room and pulls all references", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "r1").Return(room, nil).Once()
		mockRepo.On("DeleteRoom", mock.Anything, roomDbId).Return(nil).Once()
		mockRepo.On("PullRoomFromCreated", mock.Anything, creatorId, roomDbId).Return(nil).Once()
		mockRepo.On("PullRoomFromJoined", mock.Anything, []primitive.ObjectID{bobId}, roomDbId).
			Return(nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.deleteRoom(rr, jsonRequest(t, http.MethodDelete, "/rooms/delete-room", DeleteRoomRequest{
			RoomId: "r1",
			UserId: creatorId.Hex(),
		}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp MessageResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Room deleted successfully and references removed from joined users", resp.Message)
	})

	t.Run("fails when room is absent", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetRoomByRoomId", mock.Anything, "missing").
			Return(database.Room{}, mongo.ErrNoDocuments).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.deleteRoom(rr, jsonRequest(t, http.MethodDelete, "/rooms/delete-room", DeleteRoomRequest{
			RoomId: "missing",
			UserId: creatorId.Hex(),
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListRoomsHandler(t *testing.T) {
	rooms := []database.Room{
		{Id: primitive.NewObjectID(), RoomId: "r1", Name: "One", Creator: primitive.NewObjectID()},
		{Id: primitive.NewObjectID(), RoomId: "r2", Name: "Two", Creator: primitive.NewObjectID()},
	}

	t.Run("lists all rooms", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)
		mockRepo.On("ListRooms", mock.Anything).Return(rooms, nil).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.listRooms(rr, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
	})

	t.Run("fails with db error", func(t *testing.T) {
		mockRepo := &database.MockWhiteboardRepository{}
		defer mockRepo.AssertExpectations(t)
		mockRepo.On("ListRooms", mock.Anything).
			Return([]database.Room{}, errors.New("db error")).Once()

		app := newTestApp(t, mockRepo, nil)
		rr := httptest.NewRecorder()
		app.listRooms(rr, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestFileTypeFromMime(t *testing.T) {
	tcases := []struct {
		contentType string
		expected    string
	}{
		{"image/png", "image"},
		{"image/jpeg", "image"},
		{"application/pdf", "pdf"},
		{"text/plain", "pdf"},
		{"", "pdf"},
	}

	for _, tc := range tcases {
		t.Run(tc.contentType, func(t *testing.T) {
			assert.Equal(t, tc.expected, fileTypeFromMime(tc.contentType))
		})
	}
}
