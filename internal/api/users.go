package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/colabdraw/go-whiteboard/internal/database"
	"github.com/colabdraw/go-whiteboard/internal/types"
)

const maxMultipartMemory = 32 << 20

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserIdRequest struct {
	UserId string `json:"userId"`
}

type UserResponse struct {
	Message string     `json:"message"`
	User    types.User `json:"user"`
}

type UserDetailsResponse struct {
	Message string            `json:"message"`
	User    types.UserDetails `json:"user"`
}

func (s *WhiteboardApp) signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	_, err := s.db.GetUserByEmail(r.Context(), req.Email)
	if err == nil {
		errResp := NewConflictError("User already exists")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	pwdHash, err := hashPassword(req.Password)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	newUser, err := s.db.CreateUser(r.Context(), database.CreateUserParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwdHash,
	})
	if err != nil {
		// The unique index closes the check-then-insert race.
		var errResp *ApiError
		if mongo.IsDuplicateKeyError(err) {
			errResp = NewConflictError("User already exists")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.incr(metricSignups)
	s.writeJson(w, http.StatusCreated, UserResponse{
		Message: "User registered successfully",
		User: types.User{
			Id:    newUser.Id.Hex(),
			Name:  newUser.Name,
			Email: newUser.Email,
		},
	})
}

func (s *WhiteboardApp) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Email == "" || req.Password == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.db.GetUserByEmail(r.Context(), req.Email)
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

	if !verifyPassword(user.PasswordHash, req.Password) {
		errResp := NewBadRequestMessageError("Invalid credentials")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.incr(metricLogins)
	s.writeJson(w, http.StatusOK, UserResponse{
		Message: "User logged in successfully",
		User: types.User{
			Id:    user.Id.Hex(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func (s *WhiteboardApp) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.db.ListUsers(r.Context())
	if err != nil {
		s.log.Println("list users:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.User, 0, len(users))
	for _, u := range users {
		resp = append(resp, toApiUser(u))
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *WhiteboardApp) getUserDetails(w http.ResponseWriter, r *http.Request) {
	var req UserIdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	userId, err := primitive.ObjectIDFromHex(req.UserId)
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
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
		return
	}

	createdRooms, err := s.db.GetRoomsByIds(r.Context(), user.RoomsCreated)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	joinedRooms, err := s.db.GetRoomsByIds(r.Context(), user.RoomsJoined)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	creatorNames, err := s.creatorNames(r, joinedRooms)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	details := types.UserDetails{
		Name:             user.Name,
		Email:            user.Email,
		ProfileImage:     user.ProfileImage,
		PhoneNumber:      user.PhoneNumber,
		Bio:              user.Bio,
		Location:         user.Location,
		DateOfBirth:      user.DateOfBirth,
		Resume:           user.Resume,
		SocialMediaLinks: toApiSocialLinks(user.SocialMediaLinks),
		RoomsCreated:     make([]types.CreatedRoomView, 0, len(createdRooms)),
		RoomsJoined:      make([]types.JoinedRoomView, 0, len(joinedRooms)),
	}
	for _, room := range createdRooms {
		details.RoomsCreated = append(details.RoomsCreated, toCreatedRoomView(room))
	}
	for _, room := range joinedRooms {
		details.RoomsJoined = append(details.RoomsJoined, toJoinedRoomView(room, creatorNames))
	}

	s.writeJson(w, http.StatusOK, UserDetailsResponse{
		Message: "User details fetched successfully",
		User:    details,
	})
}

func (s *WhiteboardApp) editProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	userId, err := primitive.ObjectIDFromHex(r.FormValue("userId"))
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
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

	params := database.UpdateUserParams{
		UserId:      userId,
		PhoneNumber: r.FormValue("phoneNumber"),
		Bio:         r.FormValue("bio"),
		Location:    r.FormValue("location"),
	}

	if dob := r.FormValue("dateOfBirth"); dob != "" {
		parsed, err := parseDateOfBirth(dob)
		if err != nil {
			errResp := NewBadRequestError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		params.DateOfBirth = &parsed
	}

	if links := r.FormValue("socialMediaLinks"); links != "" {
		var parsed []database.SocialMediaLink
		if err := json.Unmarshal([]byte(links), &parsed); err != nil {
			errResp := NewBadRequestError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		params.SocialMediaLinks = parsed
	}

	profileImageUrl, err := s.uploadFormFile(r, "profileImage", "profile_images")
	if err != nil {
		s.log.Println("upload profile image:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}
	params.ProfileImage = profileImageUrl

	resumeUrl, err := s.uploadFormFile(r, "resume", "resumes")
	if err != nil {
		s.log.Println("upload resume:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}
	params.Resume = resumeUrl

	user, err := s.db.UpdateUser(r.Context(), params)
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

	s.writeJson(w, http.StatusOK, UserResponse{
		Message: "Profile updated successfully",
		User:    toApiUser(user),
	})
}

// uploadFormFile pushes an optional multipart file through the storage
// gateway and returns its URL, or "" when the field is absent. The local
// temp copy is removed on every path.
func (s *WhiteboardApp) uploadFormFile(r *http.Request, field, folder string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	tmpPath, err := s.saveTempFile(file, header.Filename)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpPath)

	return s.uploads.Upload(r.Context(), tmpPath, folder)
}

// creatorNames resolves the current names of the creators of the given
// rooms in one query.
func (s *WhiteboardApp) creatorNames(r *http.Request, rooms []database.Room) (map[primitive.ObjectID]string, error) {
	seen := make(map[primitive.ObjectID]bool, len(rooms))
	ids := make([]primitive.ObjectID, 0, len(rooms))
	for _, room := range rooms {
		if !seen[room.Creator] {
			seen[room.Creator] = true
			ids = append(ids, room.Creator)
		}
	}

	creators, err := s.db.GetUsersByIds(r.Context(), ids)
	if err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(creators))
	for _, c := range creators {
		names[c.Id] = c.Name
	}
	return names, nil
}

func parseDateOfBirth(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func hashPassword(passwd string) (string, error) {
	passwdHash, err := bcrypt.GenerateFromPassword([]byte(passwd), bcrypt.DefaultCost)
	return string(passwdHash), err
}

func verifyPassword(passwdHash, passwd string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(passwdHash), []byte(passwd))
	return err == nil
}
