package session

import (
	"testing"
	"time"
)

func TestCreateGetDestroy(t *testing.T) {
	s := NewStore(time.Hour)

	token := s.Create("Cabang 1")
	sess, ok := s.Get(token)
	if !ok || sess.Branch != "Cabang 1" {
		t.Fatalf("Get = %+v, %v", sess, ok)
	}

	s.Destroy(token)
	if _, ok := s.Get(token); ok {
		t.Fatal("session survived Destroy")
	}
}

func TestGetUnknownToken(t *testing.T) {
	s := NewStore(time.Hour)
	if _, ok := s.Get("tidak-ada"); ok {
		t.Fatal("unknown token returned a session")
	}
}

func TestExpiry(t *testing.T) {
	s := NewStore(time.Hour)
	current := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	token := s.Create("Cabang 2")
	if _, ok := s.Get(token); !ok {
		t.Fatal("fresh session not found")
	}

	current = current.Add(time.Hour + time.Minute)
	if _, ok := s.Get(token); ok {
		t.Fatal("expired session still returned")
	}
}

func TestFlashConsumedOnce(t *testing.T) {
	s := NewStore(time.Hour)
	token := s.Create("Cabang 1")

	s.PutFlash(token, Flash{Kind: "success", Message: "tersimpan"})
	flash, ok := s.TakeFlash(token)
	if !ok || flash.Message != "tersimpan" {
		t.Fatalf("TakeFlash = %+v, %v", flash, ok)
	}
	if _, ok := s.TakeFlash(token); ok {
		t.Fatal("flash returned twice")
	}
}

func TestResultConsumedOnce(t *testing.T) {
	s := NewStore(time.Hour)

	token := s.PutResult(SubmitResult{QueueNumber: 3, NowServing: 1})
	result, ok := s.TakeResult(token)
	if !ok || result.QueueNumber != 3 || result.NowServing != 1 {
		t.Fatalf("TakeResult = %+v, %v", result, ok)
	}
	if _, ok := s.TakeResult(token); ok {
		t.Fatal("result returned twice")
	}
}

func TestDestroyClearsFlash(t *testing.T) {
	s := NewStore(time.Hour)
	token := s.Create("Cabang 1")
	s.PutFlash(token, Flash{Kind: "success", Message: "x"})

	s.Destroy(token)
	if _, ok := s.TakeFlash(token); ok {
		t.Fatal("flash survived Destroy")
	}
}
