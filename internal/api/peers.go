package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

type SaveCreatorPeerRequest struct {
	RoomId string `json:"roomId"`
	PeerId string `json:"peerId"`
}

type SaveCreatorPeerResponse struct {
	Message string `json:"message"`
	RoomId  string `json:"roomId"`
	PeerId  string `json:"peerId"`
}

type VerifyRoomResponse struct {
	Message string `json:"message"`
	Exists  bool   `json:"exists"`
	PeerId  string `json:"peerId,omitempty"`
}

type CreatorPeerResponse struct {
	CreatorPeerId string `json:"creatorPeerId"`
}

func (s *WhiteboardApp) verifyRoom(w http.ResponseWriter, r *http.Request) {
	roomId := r.URL.Query().Get("id")
	if roomId == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	_, err := s.db.GetRoomByRoomId(r.Context(), roomId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.writeJson(w, http.StatusNotFound, VerifyRoomResponse{
				Message: "Room not found",
				Exists:  false,
			})
			return
		}
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	peerId, _ := s.peers.CreatorPeer(roomId)
	s.writeJson(w, http.StatusOK, VerifyRoomResponse{
		Message: "Room exists",
		Exists:  true,
		PeerId:  peerId,
	})
}

func (s *WhiteboardApp) saveCreatorPeer(w http.ResponseWriter, r *http.Request) {
	var req SaveCreatorPeerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.RoomId == "" || req.PeerId == "" {
		errResp := NewBadRequestMessageError("Room ID and Peer ID are required")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if _, err := s.db.GetRoomByRoomId(r.Context(), req.RoomId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundMessageError("Room not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.peers.SetCreatorPeer(req.RoomId, req.PeerId)

	s.writeJson(w, http.StatusOK, SaveCreatorPeerResponse{
		Message: "Creator peer ID saved successfully",
		RoomId:  req.RoomId,
		PeerId:  req.PeerId,
	})
}

func (s *WhiteboardApp) getCreatorPeer(w http.ResponseWriter, r *http.Request) {
	roomId := r.URL.Query().Get("id")
	if roomId == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if _, err := s.db.GetRoomByRoomId(r.Context(), roomId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundMessageError("Room not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	peerId, ok := s.peers.CreatorPeer(roomId)
	if !ok {
		errResp := NewNotFoundMessageError("Creator peer ID not found for this room")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, CreatorPeerResponse{CreatorPeerId: peerId})
}
