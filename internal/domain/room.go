package domain

type RoomCode string

type Room struct {
	Code RoomCode
}
