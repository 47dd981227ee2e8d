package api

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/colabdraw/go-whiteboard/internal/database"
	"github.com/colabdraw/go-whiteboard/internal/types"
)

func hexIds(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

func toApiSocialLinks(links []database.SocialMediaLink) []types.SocialMediaLink {
	out := make([]types.SocialMediaLink, 0, len(links))
	for _, l := range links {
		out = append(out, types.SocialMediaLink{Platform: l.Platform, Link: l.Link})
	}
	return out
}

func toApiJoinedUsers(users []database.JoinedUser) []types.JoinedUser {
	out := make([]types.JoinedUser, 0, len(users))
	for _, u := range users {
		out = append(out, types.JoinedUser{UserId: u.UserId.Hex(), UserName: u.UserName})
	}
	return out
}

func toApiRoomFiles(files []database.RoomFile) []types.RoomFile {
	out := make([]types.RoomFile, 0, len(files))
	for _, f := range files {
		out = append(out, types.RoomFile{Url: f.Url, FileType: f.FileType})
	}
	return out
}

func toApiUser(u database.User) types.User {
	return types.User{
		Id:               u.Id.Hex(),
		Name:             u.Name,
		Email:            u.Email,
		ProfileImage:     u.ProfileImage,
		PhoneNumber:      u.PhoneNumber,
		Bio:              u.Bio,
		Location:         u.Location,
		DateOfBirth:      u.DateOfBirth,
		Resume:           u.Resume,
		SocialMediaLinks: toApiSocialLinks(u.SocialMediaLinks),
		RoomsCreated:     hexIds(u.RoomsCreated),
		RoomsJoined:      hexIds(u.RoomsJoined),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toApiRoom(r database.Room) types.Room {
	return types.Room{
		Id:          r.Id.Hex(),
		RoomId:      r.RoomId,
		Name:        r.Name,
		Creator:     r.Creator.Hex(),
		CreatorName: r.CreatorName,
		JoinedUsers: toApiJoinedUsers(r.JoinedUsers),
		Files:       toApiRoomFiles(r.Files),
	}
}

// toJoinedRoomView renders a room for a member: creator's name only, no
// raw creator reference. creatorNames maps user id to current name; the
// stored snapshot is the fallback when the creator no longer resolves.
func toJoinedRoomView(r database.Room, creatorNames map[primitive.ObjectID]string) types.JoinedRoomView {
	name, ok := creatorNames[r.Creator]
	if !ok {
		name = r.CreatorName
	}

	return types.JoinedRoomView{
		Id:          r.Id.Hex(),
		RoomId:      r.RoomId,
		Name:        r.Name,
		CreatorName: name,
		JoinedUsers: toApiJoinedUsers(r.JoinedUsers),
		Files:       toApiRoomFiles(r.Files),
	}
}

func toCreatedRoomView(r database.Room) types.CreatedRoomView {
	members := make([]string, 0, len(r.JoinedUsers))
	for _, u := range r.JoinedUsers {
		members = append(members, u.UserId.Hex())
	}

	return types.CreatedRoomView{
		Id:          r.Id.Hex(),
		RoomId:      r.RoomId,
		Name:        r.Name,
		JoinedUsers: members,
		Files:       toApiRoomFiles(r.Files),
	}
}
