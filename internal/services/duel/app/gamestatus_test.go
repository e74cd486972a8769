package app

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/openduel/arena/internal/errors"
	"github.com/openduel/arena/internal/services/duel/domain/game"
	"github.com/openduel/arena/internal/services/duel/matchmaking"
	"github.com/openduel/arena/internal/services/duel/storage"
)

func decidedMatch() storage.Match {
	return storage.Match{
		ID:             "match-1",
		PlayerName:     "alice",
		ChallengerName: "bob",
		PlayerMove:     game.MoveRock,
		ChallengerMove: game.MoveScissors,
		Result:         game.ResultPlayer,
		CreatedAt:      time.Now(),
	}
}

func TestStreamGameStatusMasterView(t *testing.T) {
	store := newMemoryStore()
	store.put(decidedMatch())
	engine := newTestEngine(matchmaking.NewMemoryProvider(), store, &fakeStats{})

	send, views := collectViews()
	if err := engine.StreamGameStatus(context.Background(), "match-1", "alice", send); err != nil {
		t.Fatalf("StreamGameStatus: %v", err)
	}

	got := views()
	if len(got) != 1 {
		t.Fatalf("got %d views, want 1 for an already decided match", len(got))
	}
	want := GameStatusView{
		User:           "alice",
		UserPick:       "rock",
		Challenger:     "bob",
		ChallengerPick: "scissors",
		Result:         ViewUser,
		IsMaster:       true,
		IsFinished:     true,
	}
	if got[0] != want {
		t.Fatalf("master view = %+v, want %+v", got[0], want)
	}
}

func TestStreamGameStatusChallengerViewMirrored(t *testing.T) {
	store := newMemoryStore()
	store.put(decidedMatch())
	engine := newTestEngine(matchmaking.NewMemoryProvider(), store, &fakeStats{})

	send, views := collectViews()
	if err := engine.StreamGameStatus(context.Background(), "match-1", "bob", send); err != nil {
		t.Fatalf("StreamGameStatus: %v", err)
	}

	got := views()
	if len(got) != 1 {
		t.Fatalf("got %d views, want 1", len(got))
	}
	want := GameStatusView{
		User:           "bob",
		UserPick:       "scissors",
		Challenger:     "alice",
		ChallengerPick: "rock",
		Result:         ViewChallenger,
		IsMaster:       false,
		IsFinished:     true,
	}
	if got[0] != want {
		t.Fatalf("challenger view = %+v, want %+v", got[0], want)
	}
}

func TestStreamGameStatusRejectsOutsider(t *testing.T) {
	store := newMemoryStore()
	store.put(decidedMatch())
	engine := newTestEngine(matchmaking.NewMemoryProvider(), store, &fakeStats{})

	send, _ := collectViews()
	err := engine.StreamGameStatus(context.Background(), "match-1", "mallory", send)
	if !apperrors.IsCode(err, apperrors.CodeMatchParticipantUnknown) {
		t.Fatalf("StreamGameStatus error = %v, want code %s", err, apperrors.CodeMatchParticipantUnknown)
	}
}

func TestStreamGameStatusWaitsForChallenger(t *testing.T) {
	store := newMemoryStore()
	match := decidedMatch()
	pending := match
	pending.ChallengerName = storage.UnknownChallenger
	pending.ChallengerMove = ""
	pending.Result = game.ResultPending
	store.put(pending)
	engine := newTestEngine(matchmaking.NewMemoryProvider(), store, &fakeStats{})

	send, views := collectViews()
	done := make(chan error, 1)
	go func() {
		done <- engine.StreamGameStatus(context.Background(), "match-1", "alice", send)
	}()

	// Attach the challenger, already decided, while the stream is waiting.
	time.Sleep(10 * time.Millisecond)
	store.put(match)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("StreamGameStatus: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("stream did not resolve after the challenger attached")
	}
	got := views()
	if len(got) == 0 {
		t.Fatal("no views emitted")
	}
	if got[0].Challenger != "bob" {
		t.Fatalf("first view challenger = %q, want bob", got[0].Challenger)
	}
}

func TestStreamGameStatusInitialWaitBounded(t *testing.T) {
	store := newMemoryStore()
	engine := newTestEngine(matchmaking.NewMemoryProvider(), store, &fakeStats{})
	clock := newFakeClock(time.Now())
	engine.clock = clock.Now

	send, views := collectViews()
	done := make(chan error, 1)
	go func() {
		done <- engine.StreamGameStatus(context.Background(), "never-created", "alice", send)
	}()

	// Advance only after the stream took its first look, so the expiry
	// deadline is computed against the unadvanced clock.
	waitFor(t, func() bool { return store.getCount() > 0 })
	clock.Advance(testConfig().GameStatusMaxWait + time.Second)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("StreamGameStatus: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("stream did not expire waiting for a missing match")
	}

	got := views()
	if len(got) != 1 {
		t.Fatalf("got %d views, want 1", len(got))
	}
	if !got[0].IsCancelled || !got[0].IsFinished {
		t.Fatalf("terminal view = %+v, want cancelled and finished", got[0])
	}
}

func TestStreamGameStatusMasterDeletesExpiredMatch(t *testing.T) {
	base := time.Now()
	store := newMemoryStore()
	store.put(storage.Match{
		ID:             "match-1",
		PlayerName:     "alice",
		ChallengerName: "bob",
		Result:         game.ResultPending,
		CreatedAt:      base,
	})
	engine := newTestEngine(matchmaking.NewMemoryProvider(), store, &fakeStats{})
	clock := newFakeClock(base.Add(testConfig().GameStatusMaxWait + time.Second))
	engine.clock = clock.Now

	send, views := collectViews()
	if err := engine.StreamGameStatus(context.Background(), "match-1", "alice", send); err != nil {
		t.Fatalf("StreamGameStatus: %v", err)
	}

	if store.deleteCount() != 1 {
		t.Fatalf("delete count = %d, want 1", store.deleteCount())
	}
	got := views()
	final := got[len(got)-1]
	if !final.IsCancelled || !final.IsFinished {
		t.Fatalf("final view = %+v, want cancelled and finished", final)
	}
}

func TestStreamGameStatusChallengerObservesDeletion(t *testing.T) {
	store := newMemoryStore()
	store.put(storage.Match{
		ID:             "match-1",
		PlayerName:     "alice",
		ChallengerName: "bob",
		Result:         game.ResultPending,
		CreatedAt:      time.Now(),
	})
	engine := newTestEngine(matchmaking.NewMemoryProvider(), store, &fakeStats{})

	send, views := collectViews()
	done := make(chan error, 1)
	go func() {
		done <- engine.StreamGameStatus(context.Background(), "match-1", "bob", send)
	}()

	// Wait for the initial pending view, then pull the record out from
	// under the stream the way the master's expiry cleanup does.
	waitFor(t, func() bool { return len(views()) > 0 })
	if err := store.DeleteMatch(context.Background(), "match-1"); err != nil {
		t.Fatalf("DeleteMatch: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("StreamGameStatus: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("stream did not end after the record vanished")
	}
	got := views()
	final := got[len(got)-1]
	if !final.IsCancelled || !final.IsFinished {
		t.Fatalf("final view = %+v, want cancelled and finished", final)
	}
}

func TestStreamGameStatusEmitsProgressThenResult(t *testing.T) {
	store := newMemoryStore()
	pending := decidedMatch()
	pending.PlayerMove = ""
	pending.ChallengerMove = ""
	pending.Result = game.ResultPending
	store.put(pending)
	engine := newTestEngine(matchmaking.NewMemoryProvider(), store, &fakeStats{})

	send, views := collectViews()
	done := make(chan error, 1)
	go func() {
		done <- engine.StreamGameStatus(context.Background(), "match-1", "alice", send)
	}()

	waitFor(t, func() bool { return len(views()) > 0 })
	store.put(decidedMatch())

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("StreamGameStatus: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("stream did not end after the result was decided")
	}

	got := views()
	if got[0].Result != ViewPending || got[0].IsFinished {
		t.Fatalf("first view = %+v, want pending and unfinished", got[0])
	}
	final := got[len(got)-1]
	if final.Result != ViewUser || !final.IsFinished {
		t.Fatalf("final view = %+v, want user win and finished", final)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}
