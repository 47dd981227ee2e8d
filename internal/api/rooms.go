package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/colabdraw/go-whiteboard/internal/database"
	"github.com/colabdraw/go-whiteboard/internal/types"
)

type CreateRoomRequest struct {
	RoomId    string `json:"roomId"`
	Name      string `json:"name"`
	CreatorId string `json:"creatorId"`
}

type JoinRoomRequest struct {
	RoomId   string `json:"roomId"`
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

type UpdateRoomRequest struct {
	RoomId              string   `json:"roomId"`
	NewRoomId           string   `json:"newRoomId"`
	Name                string   `json:"name"`
	FilesToDelete       []string `json:"filesToDelete"`
	JoinedUsersToRemove []string `json:"joinedUsersToRemove"`
}

type DeleteRoomRequest struct {
	RoomId string `json:"roomId"`
	UserId string `json:"userId"`
}

type RoomResponse struct {
	Message string     `json:"message"`
	Room    types.Room `json:"room"`
}

type UploadFileResponse struct {
	Message string         `json:"message"`
	File    types.RoomFile `json:"file"`
	Room    types.Room     `json:"room"`
}

type JoinedRoomsResponse struct {
	Message     string                 `json:"message"`
	RoomsJoined []types.JoinedRoomView `json:"roomsJoined"`
}

type CreatedRoomsResponse struct {
	Message      string       `json:"message"`
	RoomsCreated []types.Room `json:"roomsCreated"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (s *WhiteboardApp) createRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.RoomId == "" || req.Name == "" || req.CreatorId == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	_, err := s.db.GetRoomByRoomId(r.Context(), req.RoomId)
	if err == nil {
		errResp := NewConflictError("Room already exists")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	creatorId, err := primitive.ObjectIDFromHex(req.CreatorId)
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	creator, err := s.db.GetUserById(r.Context(), creatorId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundMessageError("User not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.CreateRoom(r.Context(), database.CreateRoomParams{
		RoomId:      req.RoomId,
		Name:        req.Name,
		Creator:     creator.Id,
		CreatorName: creator.Name,
	})
	if err != nil {
		var errResp *ApiError
		if mongo.IsDuplicateKeyError(err) {
			errResp = NewConflictError("Room already exists")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// Second write of the two-document update. A failure here leaves the
	// room created but unlinked from the creator; there is no compensation.
	if err := s.db.AddRoomToCreated(r.Context(), creator.Id, room.Id); err != nil {
		s.log.Println("link room to creator:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.incr(metricRoomsCreated)
	s.writeJson(w, http.StatusCreated, RoomResponse{
		Message: "Room created successfully",
		Room:    toApiRoom(room),
	})
}

func (s *WhiteboardApp) joinRoom(w http.ResponseWriter, r *http.Request) {
	var req JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomByRoomId(r.Context(), req.RoomId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundMessageError("Room not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	userId, err := primitive.ObjectIDFromHex(req.UserId)
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// Membership test is by id only; the name is a snapshot.
	for _, member := range room.JoinedUsers {
		if member.UserId == userId {
			errResp := NewConflictError("User already joined the room")
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
	}

	if _, err := s.db.GetUserById(r.Context(), userId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundMessageError("User not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	member := database.JoinedUser{UserId: userId, UserName: req.UserName}
	if err := s.db.AddJoinedUser(r.Context(), room.Id, member); err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.AddRoomToJoined(r.Context(), userId, room.Id); err != nil {
		s.log.Println("link room to joiner:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room.JoinedUsers = append(room.JoinedUsers, member)

	s.incr(metricRoomsJoined)
	s.writeJson(w, http.StatusOK, RoomResponse{
		Message: "User successfully joined the room",
		Room:    toApiRoom(room),
	})
}

func (s *WhiteboardApp) uploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomByRoomId(r.Context(), r.FormValue("roomId"))
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundMessageError("Room not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if room.Creator.Hex() != r.FormValue("userId") {
		errResp := NewForbiddenError("Only the creator can upload files")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		errResp := NewBadRequestMessageError("No file uploaded")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}
	defer file.Close()

	tmpPath, err := s.saveTempFile(file, header.Filename)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}
	// The temp copy is removed on every path, including failed uploads
	// and failed database writes.
	defer os.Remove(tmpPath)

	fileUrl, err := s.uploads.Upload(r.Context(), tmpPath, "uploads")
	if err != nil {
		s.log.Println("upload file:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	roomFile := database.RoomFile{
		Url:      fileUrl,
		FileType: fileTypeFromMime(header.Header.Get("Content-Type")),
	}

	updated, err := s.db.AppendRoomFile(r.Context(), room.Id, roomFile)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.incr(metricFilesUploaded)
	s.writeJson(w, http.StatusOK, UploadFileResponse{
		Message: "File uploaded and saved successfully",
		File:    types.RoomFile{Url: roomFile.Url, FileType: roomFile.FileType},
		Room:    toApiRoom(updated),
	})
}

func (s *WhiteboardApp) getJoinedRooms(w http.ResponseWriter, r *http.Request) {
	var req UserIdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.userById(w, r, req.UserId)
	if err != nil {
		return
	}

	rooms, err := s.db.GetRoomsByIds(r.Context(), user.RoomsJoined)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	creatorNames, err := s.creatorNames(r, rooms)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	views := make([]types.JoinedRoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, toJoinedRoomView(room, creatorNames))
	}

	s.writeJson(w, http.StatusOK, JoinedRoomsResponse{
		Message:     "Joined rooms fetched successfully",
		RoomsJoined: views,
	})
}

func (s *WhiteboardApp) getCreatedRooms(w http.ResponseWriter, r *http.Request) {
	var req UserIdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.userById(w, r, req.UserId)
	if err != nil {
		return
	}

	rooms, err := s.db.GetRoomsByIds(r.Context(), user.RoomsCreated)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.Room, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toApiRoom(room))
	}

	s.writeJson(w, http.StatusOK, CreatedRoomsResponse{
		Message:      "Created rooms fetched successfully",
		RoomsCreated: resp,
	})
}

func (s *WhiteboardApp) updateRoom(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomByRoomId(r.Context(), req.RoomId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundMessageError("Room not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.NewRoomId != "" {
		_, err := s.db.GetRoomByRoomId(r.Context(), req.NewRoomId)
		if err == nil {
			errResp := NewConflictError("Room ID already exists. Choose a different ID.")
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			errResp := NewInternalServerError(err)
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
	}

	removeIds := make([]primitive.ObjectID, 0, len(req.JoinedUsersToRemove))
	for _, hex := range req.JoinedUsersToRemove {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			errResp := NewBadRequestError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		removeIds = append(removeIds, id)
	}

	updated, err := s.db.UpdateRoom(r.Context(), room.Id, database.UpdateRoomParams{
		Name:                req.Name,
		NewRoomId:           req.NewRoomId,
		FilesToDelete:       req.FilesToDelete,
		JoinedUsersToRemove: removeIds,
	})
	if err != nil {
		var errResp *ApiError
		if mongo.IsDuplicateKeyError(err) {
			errResp = NewConflictError("Room ID already exists. Choose a different ID.")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// Removed files are deleted from the provider best effort; the room
	// document no longer references them either way.
	for _, fileUrl := range req.FilesToDelete {
		if err := s.uploads.Delete(r.Context(), fileUrl); err != nil {
			s.log.Println("delete file from storage:", err)
		}
	}

	if req.NewRoomId != "" {
		s.peers.Rename(req.RoomId, req.NewRoomId)
	}

	s.writeJson(w, http.StatusOK, RoomResponse{
		Message: "Room updated successfully",
		Room:    toApiRoom(updated),
	})
}

func (s *WhiteboardApp) deleteRoom(w http.ResponseWriter, r *http.Request) {
	var req DeleteRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomByRoomId(r.Context(), req.RoomId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundMessageError("Room not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if room.Creator.Hex() != req.UserId {
		errResp := NewForbiddenError("Only the creator can delete the room")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.DeleteRoom(r.Context(), room.Id); err != nil {
		s.log.Println("delete room:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.PullRoomFromCreated(r.Context(), room.Creator, room.Id); err != nil {
		s.log.Println("unlink room from creator:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	memberIds := make([]primitive.ObjectID, 0, len(room.JoinedUsers))
	for _, member := range room.JoinedUsers {
		memberIds = append(memberIds, member.UserId)
	}
	if err := s.db.PullRoomFromJoined(r.Context(), memberIds, room.Id); err != nil {
		s.log.Println("unlink room from joined users:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.peers.Remove(room.RoomId)

	s.incr(metricRoomsDeleted)
	s.writeJson(w, http.StatusOK, MessageResponse{
		Message: "Room deleted successfully and references removed from joined users",
	})
}

func (s *WhiteboardApp) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.db.ListRooms(r.Context())
	if err != nil {
		s.log.Println("list rooms:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.Room, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toApiRoom(room))
	}

	s.writeJson(w, http.StatusOK, resp)
}

// userById looks up a user by hex id, writing the error response itself
// when the lookup fails.
func (s *WhiteboardApp) userById(w http.ResponseWriter, r *http.Request, hex string) (database.User, error) {
	userId, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return database.User{}, err
	}

	user, err := s.db.GetUserById(r.Context(), userId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundMessageError("User not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return database.User{}, err
	}

	return user, nil
}
