package types

import "time"

type User struct {
	Id               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	ProfileImage     string            `json:"profileImage,omitempty"`
	PhoneNumber      string            `json:"phoneNumber,omitempty"`
	Bio              string            `json:"bio,omitempty"`
	Location         string            `json:"location,omitempty"`
	DateOfBirth      *time.Time        `json:"dateOfBirth,omitempty"`
	Resume           string            `json:"resume,omitempty"`
	SocialMediaLinks []SocialMediaLink `json:"socialMediaLinks,omitempty"`
	RoomsCreated     []string          `json:"roomsCreated,omitempty"`
	RoomsJoined      []string          `json:"roomsJoined,omitempty"`
	CreatedAt        time.Time         `json:"createdAt,omitempty"`
	UpdatedAt        time.Time         `json:"updatedAt,omitempty"`
}

type SocialMediaLink struct {
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

type Room struct {
	Id          string       `json:"id"`
	RoomId      string       `json:"roomId"`
	Name        string       `json:"name"`
	Creator     string       `json:"creator"`
	CreatorName string       `json:"creatorName"`
	JoinedUsers []JoinedUser `json:"joinedUsers"`
	Files       []RoomFile   `json:"files"`
}

type JoinedUser struct {
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

type RoomFile struct {
	Url      string `json:"url"`
	FileType string `json:"fileType"`
}

// JoinedRoomView is a room as seen from a member's perspective: the
// creator's current name is resolved live and the raw creator reference
// is stripped.
type JoinedRoomView struct {
	Id          string       `json:"id"`
	RoomId      string       `json:"roomId"`
	Name        string       `json:"name"`
	CreatorName string       `json:"creatorName"`
	JoinedUsers []JoinedUser `json:"joinedUsers"`
	Files       []RoomFile   `json:"files"`
}

// CreatedRoomView is a room as embedded in its creator's detail view:
// creator fields are stripped and joined users reduced to their ids.
type CreatedRoomView struct {
	Id          string     `json:"id"`
	RoomId      string     `json:"roomId"`
	Name        string     `json:"name"`
	JoinedUsers []string   `json:"joinedUsers"`
	Files       []RoomFile `json:"files"`
}

// UserDetails is the denormalized view returned by getuserdetails.
type UserDetails struct {
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	ProfileImage     string            `json:"profileImage,omitempty"`
	PhoneNumber      string            `json:"phoneNumber,omitempty"`
	Bio              string            `json:"bio,omitempty"`
	Location         string            `json:"location,omitempty"`
	DateOfBirth      *time.Time        `json:"dateOfBirth,omitempty"`
	Resume           string            `json:"resume,omitempty"`
	SocialMediaLinks []SocialMediaLink `json:"socialMediaLinks,omitempty"`
	RoomsCreated     []CreatedRoomView `json:"roomsCreated"`
	RoomsJoined      []JoinedRoomView  `json:"roomsJoined"`
}
