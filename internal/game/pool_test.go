package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aniguessr/anime-guessr-backend/internal/anilist"
)

// stubSource serves canned pages and records how often it was asked.
type stubSource struct {
	pages map[int]*anilist.CharacterPage
	err   error
	calls int
}

func (s *stubSource) PopularCharacters(_ context.Context, page int) (*anilist.CharacterPage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.pages[page]; ok {
		return p, nil
	}
	return &anilist.CharacterPage{}, nil
}

func (s *stubSource) SearchCharacter(context.Context, string) (*anilist.Character, error) {
	return nil, anilist.ErrCharacterNotFound
}

func apiChar(name, img, anime string) anilist.Character {
	var c anilist.Character
	c.Name.Full = name
	c.Image.Large = img
	if anime != "" {
		var n anilist.MediaNode
		n.Title.Romaji = anime
		c.Media.Nodes = []anilist.MediaNode{n}
	}
	return c
}

func TestPool_FiltersUnusableCharacters(t *testing.T) {
	src := &stubSource{pages: map[int]*anilist.CharacterPage{
		1: {
			PageInfo: anilist.PageInfo{HasNextPage: false},
			Characters: []anilist.Character{
				apiChar("Good One", "https://img/one.png", "Show A"),
				apiChar("No Image", "https://img/default.jpg", "Show B"),
				apiChar("Blank Image", "", "Show C"),
				apiChar("No Anime", "https://img/two.png", ""),
				apiChar("Good Two", "https://img/three.png", "Show D"),
			},
		},
	}}

	p := NewPool(src, 10, time.Hour, zerolog.Nop())
	if _, err := p.Random(context.Background()); err != nil {
		t.Fatalf("Random: %v", err)
	}
	if got := p.Size(); got != 2 {
		t.Fatalf("pool size = %d, want 2 (unusable characters filtered)", got)
	}
}

func TestPool_TruncatesToTargetSize(t *testing.T) {
	chars := make([]anilist.Character, 8)
	for i := range chars {
		chars[i] = apiChar(fmt.Sprintf("Char %d", i), fmt.Sprintf("https://img/%d.png", i), "Show")
	}
	src := &stubSource{pages: map[int]*anilist.CharacterPage{
		1: {PageInfo: anilist.PageInfo{HasNextPage: false}, Characters: chars},
	}}

	p := NewPool(src, 5, time.Hour, zerolog.Nop())
	if _, err := p.Random(context.Background()); err != nil {
		t.Fatalf("Random: %v", err)
	}
	if got := p.Size(); got != 5 {
		t.Fatalf("pool size = %d, want 5", got)
	}
}

func TestPool_PaginatesUntilFull(t *testing.T) {
	page := func(n int) *anilist.CharacterPage {
		chars := make([]anilist.Character, 3)
		for i := range chars {
			chars[i] = apiChar(fmt.Sprintf("P%dC%d", n, i), "https://img/x.png", "Show")
		}
		return &anilist.CharacterPage{
			PageInfo:   anilist.PageInfo{HasNextPage: true},
			Characters: chars,
		}
	}
	src := &stubSource{pages: map[int]*anilist.CharacterPage{1: page(1), 2: page(2), 3: page(3)}}

	p := NewPool(src, 6, time.Hour, zerolog.Nop())
	if _, err := p.Random(context.Background()); err != nil {
		t.Fatalf("Random: %v", err)
	}
	if got := p.Size(); got != 6 {
		t.Fatalf("pool size = %d, want 6", got)
	}
	if src.calls != 2 {
		t.Fatalf("source called %d times, want 2 (stop once full)", src.calls)
	}
}

func TestPool_EmptyUpstreamIsAnError(t *testing.T) {
	src := &stubSource{err: errors.New("anilist down")}
	p := NewPool(src, 10, time.Hour, zerolog.Nop())

	if _, err := p.Random(context.Background()); err == nil {
		t.Fatal("expected error from empty pool with failing source")
	}
}

func TestPool_ServesStalePoolWhenRefreshFails(t *testing.T) {
	src := &stubSource{pages: map[int]*anilist.CharacterPage{
		1: {
			PageInfo:   anilist.PageInfo{HasNextPage: false},
			Characters: []anilist.Character{apiChar("Keeper", "https://img/k.png", "Show")},
		},
	}}

	// TTL of zero forces a refresh attempt on every call.
	p := NewPool(src, 10, 0, zerolog.Nop())
	if _, err := p.Random(context.Background()); err != nil {
		t.Fatalf("first Random: %v", err)
	}

	// Source starts failing; the previous pool must keep serving.
	src.err = errors.New("anilist down")
	ch, err := p.Random(context.Background())
	if err != nil {
		t.Fatalf("Random with stale pool: %v", err)
	}
	if ch.Name != "Keeper" {
		t.Fatalf("got %q, want the previously pooled character", ch.Name)
	}
}
