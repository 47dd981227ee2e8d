package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id               primitive.ObjectID   `bson:"_id,omitempty"`
	Name             string               `bson:"name"`
	Email            string               `bson:"email"`
	PasswordHash     string               `bson:"password"`
	ProfileImage     string               `bson:"profileImage,omitempty"`
	PhoneNumber      string               `bson:"phoneNumber,omitempty"`
	Bio              string               `bson:"bio,omitempty"`
	Location         string               `bson:"location,omitempty"`
	DateOfBirth      *time.Time           `bson:"dateOfBirth,omitempty"`
	Resume           string               `bson:"resume,omitempty"`
	SocialMediaLinks []SocialMediaLink    `bson:"socialMediaLinks,omitempty"`
	RoomsCreated     []primitive.ObjectID `bson:"roomsCreated"`
	RoomsJoined      []primitive.ObjectID `bson:"roomsJoined"`
	CreatedAt        time.Time            `bson:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt"`
}

type SocialMediaLink struct {
	Platform string `bson:"platform"`
	Link     string `bson:"link"`
}

type Room struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	RoomId      string             `bson:"roomId"`
	Name        string             `bson:"name"`
	Creator     primitive.ObjectID `bson:"creator"`
	CreatorName string             `bson:"creatorName"`
	JoinedUsers []JoinedUser       `bson:"joinedUsers"`
	Files       []RoomFile         `bson:"files"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type JoinedUser struct {
	UserId   primitive.ObjectID `bson:"userId"`
	UserName string             `bson:"userName"`
}

type RoomFile struct {
	Url      string `bson:"url"`
	FileType string `bson:"fileType"`
}

type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
}

// UpdateUserParams carries a partial profile update. Zero-valued fields
// are left untouched, matching the API's keep-on-omit contract.
type UpdateUserParams struct {
	UserId           primitive.ObjectID
	PhoneNumber      string
	Bio              string
	Location         string
	DateOfBirth      *time.Time
	ProfileImage     string
	Resume           string
	SocialMediaLinks []SocialMediaLink
}

type CreateRoomParams struct {
	RoomId      string
	Name        string
	Creator     primitive.ObjectID
	CreatorName string
}

// UpdateRoomParams carries a partial room update. Any subset of fields
// may be set; empty fields are skipped.
type UpdateRoomParams struct {
	Name                string
	NewRoomId           string
	FilesToDelete       []string
	JoinedUsersToRemove []primitive.ObjectID
}
