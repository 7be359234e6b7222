package game

import (
	"context"

	"github.com/rs/zerolog"
)

// ImageSource tags which fallback tier produced a resolution.
type ImageSource string

const (
	SourceOriginal    ImageSource = "original"
	SourceSilhouette  ImageSource = "silhouette"
	SourcePlaceholder ImageSource = "placeholder"
)

// Resolution is the displayable outcome of the fallback chain.
type Resolution struct {
	ImageURL string
	Source   ImageSource
}

// SilhouetteStore is the slice of the silhouette package the resolver uses:
// existence checks on memoized artifacts plus on-demand generation from a
// source URL.
type SilhouetteStore interface {
	Exists(name string) bool
	URL(name string) string
	Ensure(ctx context.Context, name, sourceURL string) (string, error)
}

// strategy is one tier of the fallback chain: given a character name it
// either produces a resolution or passes.
type strategy struct {
	name string
	fn   func(ctx context.Context, name string) (Resolution, bool)
}

// Resolver turns a character name into something displayable. Resolve and
// ResolveSilhouette are total: every tier failure is logged and the next
// tier tried, with the static placeholder as the terminal catch-all, so no
// error ever reaches the HTTP layer from here.
type Resolver struct {
	cache       *NameCache
	src         CharacterSource
	silhouettes SilhouetteStore
	placeholder string
	log         zerolog.Logger

	normal     []strategy
	silhouette []strategy
}

// NewResolver wires the fallback chains. placeholderURL is the served path
// of the static mystery image, the tier that can never fail.
func NewResolver(cache *NameCache, src CharacterSource, sil SilhouetteStore, placeholderURL string, log zerolog.Logger) *Resolver {
	r := &Resolver{
		cache:       cache,
		src:         src,
		silhouettes: sil,
		placeholder: placeholderURL,
		log:         log,
	}
	r.normal = []strategy{
		{name: "cache", fn: r.fromCache},
		{name: "search", fn: r.fromSearch},
		{name: "silhouette-artifact", fn: r.fromArtifact},
		{name: "silhouette-generate", fn: r.fromGenerated},
	}
	r.silhouette = []strategy{
		{name: "silhouette-artifact", fn: r.fromArtifact},
		{name: "silhouette-generate", fn: r.fromGenerated},
	}
	return r
}

// Resolve returns a display image for ch, preferring the original
// portrait: cache hit, then live search, then an existing silhouette
// artifact, then a freshly generated silhouette, then the placeholder.
//
// A character drawn from the pool already carries its portrait URL; seed
// folds it into the cache first, so pooled characters resolve without a
// live search and keep resolving through an AniList outage.
func (r *Resolver) Resolve(ctx context.Context, ch Character) Resolution {
	r.seed(ch)
	return r.runChain(ctx, ch.Name, r.normal)
}

// ResolveSilhouette returns an obscured display image for ch: existing
// artifact, then generation from a known original URL, then the
// placeholder. Used by the silhouette game mode, which must never leak the
// original portrait.
func (r *Resolver) ResolveSilhouette(ctx context.Context, ch Character) Resolution {
	r.seed(ch)
	return r.runChain(ctx, ch.Name, r.silhouette)
}

// seed records the caller's known portrait URL so the cache and generate
// tiers can use it.
func (r *Resolver) seed(ch Character) {
	if ch.Name != "" && ch.ImageURL != "" {
		r.cache.Put(ch)
	}
}

func (r *Resolver) runChain(ctx context.Context, name string, chain []strategy) Resolution {
	for _, s := range chain {
		if res, ok := s.fn(ctx, name); ok {
			return res
		}
		r.log.Debug().Str("tier", s.name).Str("character", name).Msg("image tier passed")
	}
	return Resolution{ImageURL: r.placeholder, Source: SourcePlaceholder}
}

func (r *Resolver) fromCache(_ context.Context, name string) (Resolution, bool) {
	ch, ok := r.cache.Get(name)
	if !ok || ch.ImageURL == "" {
		return Resolution{}, false
	}
	return Resolution{ImageURL: ch.ImageURL, Source: SourceOriginal}, true
}

func (r *Resolver) fromSearch(ctx context.Context, name string) (Resolution, bool) {
	c, err := r.src.SearchCharacter(ctx, name)
	if err != nil {
		r.log.Warn().Err(err).Str("character", name).Msg("anilist search failed")
		return Resolution{}, false
	}
	if c == nil || !c.HasUsableImage() {
		return Resolution{}, false
	}
	ch := fromAniList(*c)
	r.cache.Put(ch)
	return Resolution{ImageURL: ch.ImageURL, Source: SourceOriginal}, true
}

func (r *Resolver) fromArtifact(_ context.Context, name string) (Resolution, bool) {
	if !r.silhouettes.Exists(name) {
		return Resolution{}, false
	}
	return Resolution{ImageURL: r.silhouettes.URL(name), Source: SourceSilhouette}, true
}

// fromGenerated renders a silhouette when an original URL is already known
// from the cache. Without a known URL the tier passes.
func (r *Resolver) fromGenerated(ctx context.Context, name string) (Resolution, bool) {
	ch, ok := r.cache.Get(name)
	if !ok || ch.ImageURL == "" {
		return Resolution{}, false
	}
	url, err := r.silhouettes.Ensure(ctx, name, ch.ImageURL)
	if err != nil {
		r.log.Warn().Err(err).Str("character", name).Msg("silhouette generation failed")
		return Resolution{}, false
	}
	return Resolution{ImageURL: url, Source: SourceSilhouette}, true
}
