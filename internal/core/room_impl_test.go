package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/domain"
)

type fakeConn struct {
	frames []Frame
	ready  bool
	fail   bool
}

func newFakeConn() *fakeConn { return &fakeConn{ready: true} }

func (f *fakeConn) TrySend(fr Frame) error {
	if f.fail {
		return errors.New("send failed")
	}
	f.frames = append(f.frames, fr)
	return nil
}

func (f *fakeConn) Ready() bool { return f.ready }
func (f *fakeConn) Close()      { f.ready = false }

func member(id, name string) (MemberSession, *fakeConn) {
	conn := newFakeConn()
	return NewMemberSession(&domain.User{ID: domain.UserID(id), Name: name}, conn), conn
}

func TestSnapshotKeepsInsertionOrder(t *testing.T) {
	room := NewRoomService(&domain.Room{Code: "ABC123"})
	a, _ := member("a", "Alice")
	b, _ := member("b", "Bob")
	c, _ := member("c", "Carol")

	room.AddMember("s1", a)
	room.AddMember("s2", b)
	room.AddMember("s3", c)

	snap := room.MembersSnapshot()
	assert.Equal(t, []MemberDTO{
		{ID: "a", Name: "Alice"},
		{ID: "b", Name: "Bob"},
		{ID: "c", Name: "Carol"},
	}, snap)

	room.RemoveMember("s2")
	snap = room.MembersSnapshot()
	assert.Equal(t, []MemberDTO{
		{ID: "a", Name: "Alice"},
		{ID: "c", Name: "Carol"},
	}, snap)
	assert.Equal(t, 2, room.MemberCount())
}

func TestRemoveAbsentMemberIsNoop(t *testing.T) {
	room := NewRoomService(&domain.Room{Code: "ABC123"})
	a, _ := member("a", "Alice")
	room.AddMember("s1", a)

	room.RemoveMember("ghost")
	assert.Equal(t, 1, room.MemberCount())
}

func TestBroadcastExcludesSender(t *testing.T) {
	room := NewRoomService(&domain.Room{Code: "ABC123"})
	a, connA := member("a", "Alice")
	b, connB := member("b", "Bob")
	room.AddMember("s1", a)
	room.AddMember("s2", b)

	res := room.Broadcast(Frame(`{"type":"typing"}`), "s2")
	assert.Equal(t, 1, res.SentTo)
	assert.Len(t, connA.frames, 1)
	assert.Empty(t, connB.frames)
}

func TestBroadcastSkipsNotReady(t *testing.T) {
	room := NewRoomService(&domain.Room{Code: "ABC123"})
	a, connA := member("a", "Alice")
	b, connB := member("b", "Bob")
	connB.ready = false
	room.AddMember("s1", a)
	room.AddMember("s2", b)

	res := room.Broadcast(Frame(`{"type":"chat"}`), "")
	assert.Equal(t, 1, res.SentTo)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, connA.frames, 1)
	assert.Empty(t, connB.frames)
}

func TestBroadcastIsolatesSendFailures(t *testing.T) {
	room := NewRoomService(&domain.Room{Code: "ABC123"})
	a, connA := member("a", "Alice")
	b, connB := member("b", "Bob")
	c, connC := member("c", "Carol")
	connB.fail = true
	room.AddMember("s1", a)
	room.AddMember("s2", b)
	room.AddMember("s3", c)

	res := room.Broadcast(Frame(`{"type":"chat"}`), "")
	assert.Equal(t, 2, res.SentTo)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, connA.frames, 1)
	assert.Empty(t, connB.frames)
	assert.Len(t, connC.frames, 1)
}
