package appstate

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/logger"
	"github.com/skillpocket/skillpocket/pkg/skills"
	"github.com/skillpocket/skillpocket/pkg/tags"
)

// Service errors.
var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrDraftNotFound = errors.New("draft not found")
	ErrScanInFlight  = errors.New("a scan is already in progress")
)

// Event notifies subscribers that the state changed.
type Event struct {
	Kind string // "skills", "tags", "drafts", "preferences", "import"
}

// Service owns the in-memory state, persists every mutation wholesale
// through its Store, and notifies subscribers after each write.
type Service struct {
	mu    sync.RWMutex
	store Store
	state State

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int

	scanMu   sync.Mutex
	scanning bool

	scanner    *skills.Scanner
	missPolicy skills.MissPolicy
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithScanner sets the scanner used by Rescan.
func WithScanner(scanner *skills.Scanner) ServiceOption {
	return func(s *Service) { s.scanner = scanner }
}

// WithMissPolicy sets the merge policy for skills missing from a rescan.
func WithMissPolicy(policy skills.MissPolicy) ServiceOption {
	return func(s *Service) { s.missPolicy = policy }
}

// NewService loads the persisted state and returns a ready service.
func NewService(ctx context.Context, store Store, opts ...ServiceOption) (*Service, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load application state")
	}

	s := &Service{
		store:      store,
		state:      state,
		subs:       make(map[int]chan Event),
		missPolicy: skills.MissPolicyDrop,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.scanner == nil {
		scanner, err := skills.NewScanner()
		if err != nil {
			return nil, err
		}
		s.scanner = scanner
	}

	return s, nil
}

// Close closes the underlying store and all subscriber channels.
func (s *Service) Close() error {
	s.subMu.Lock()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	s.subMu.Unlock()
	return s.store.Close()
}

// Subscribe registers a listener for state-change events. The returned
// cancel function must be called to release the subscription.
func (s *Service) Subscribe() (<-chan Event, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 8)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if ch, ok := s.subs[id]; ok {
			close(ch)
			delete(s.subs, id)
		}
	}
	return ch, cancel
}

func (s *Service) notify(kind string) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		// Drop rather than block on slow subscribers.
		select {
		case ch <- Event{Kind: kind}:
		default:
		}
	}
}

// State returns a snapshot of the current state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Skills returns the current skill collection.
func (s *Service) Skills() []skills.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]skills.Skill, len(s.state.Skills))
	copy(out, s.state.Skills)
	return out
}

// Skill returns one skill by id.
func (s *Service) Skill(id string) (skills.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, skill := range s.state.Skills {
		if skill.ID == id {
			return skill, nil
		}
	}
	return skills.Skill{}, errors.Wrapf(ErrSkillNotFound, "id %s", id)
}

// Tags returns the current tag taxonomy.
func (s *Service) Tags() []tags.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tags.Tag, len(s.state.Tags))
	copy(out, s.state.Tags)
	return out
}

// Drafts returns the current drafts.
func (s *Service) Drafts() []Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Draft, len(s.state.Drafts))
	copy(out, s.state.Drafts)
	return out
}

// Preferences returns the current preferences.
func (s *Service) Preferences() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Preferences
}

// persistLocked saves the current state and must be called with mu held.
func (s *Service) persistLocked(ctx context.Context) error {
	return s.store.Save(ctx, s.state)
}

// Rescan runs a full scan, merges the result with the persisted
// collection, and replaces it wholesale. Only one scan may be in flight at
// a time; a concurrent call fails with ErrScanInFlight rather than racing
// to write conflicting merge results.
func (s *Service) Rescan(ctx context.Context) (*skills.Result, error) {
	s.scanMu.Lock()
	if s.scanning {
		s.scanMu.Unlock()
		return nil, ErrScanInFlight
	}
	s.scanning = true
	s.scanMu.Unlock()

	defer func() {
		s.scanMu.Lock()
		s.scanning = false
		s.scanMu.Unlock()
	}()

	result, err := s.scanner.Scan(ctx)
	if err != nil {
		return result, err
	}

	if warn := result.WarningSummary(); warn != nil {
		logger.G(ctx).WithError(warn).Warn("scan completed with warnings")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Skills = skills.Merge(result.Skills, s.state.Skills, s.missPolicy)
	now := time.Now().UTC()
	s.state.LastScanAt = &now

	if err := s.persistLocked(ctx); err != nil {
		return result, err
	}

	s.notify("skills")
	return result, nil
}

// updateSkill applies fn to the skill with the given id and persists.
func (s *Service) updateSkill(ctx context.Context, id string, fn func(*skills.Skill)) (skills.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Skills {
		if s.state.Skills[i].ID != id {
			continue
		}
		fn(&s.state.Skills[i])
		if err := s.persistLocked(ctx); err != nil {
			return skills.Skill{}, err
		}
		s.notify("skills")
		return s.state.Skills[i], nil
	}
	return skills.Skill{}, errors.Wrapf(ErrSkillNotFound, "id %s", id)
}

// ToggleFavorite flips a skill's favorite flag and returns the new value.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	skill, err := s.updateSkill(ctx, id, func(sk *skills.Skill) {
		sk.IsFavorite = !sk.IsFavorite
	})
	if err != nil {
		return false, err
	}
	return skill.IsFavorite, nil
}

// RecordUse increments a skill's use count and stamps lastUsedAt.
func (s *Service) RecordUse(ctx context.Context, id string) error {
	_, err := s.updateSkill(ctx, id, func(sk *skills.Skill) {
		sk.UseCount++
		now := time.Now().UTC()
		sk.LastUsedAt = &now
	})
	return err
}

// SetSkillTags replaces a skill's tag list.
func (s *Service) SetSkillTags(ctx context.Context, id string, tagIDs []string) error {
	_, err := s.updateSkill(ctx, id, func(sk *skills.Skill) {
		sk.Tags = tagIDs
	})
	return err
}

// AssignTag adds a tag id to a skill if not already present.
func (s *Service) AssignTag(ctx context.Context, id, tagID string) error {
	_, err := s.updateSkill(ctx, id, func(sk *skills.Skill) {
		for _, t := range sk.Tags {
			if t == tagID {
				return
			}
		}
		sk.Tags = append(sk.Tags, tagID)
	})
	return err
}

// UnassignTag removes a tag id from a skill.
func (s *Service) UnassignTag(ctx context.Context, id, tagID string) error {
	_, err := s.updateSkill(ctx, id, func(sk *skills.Skill) {
		sk.Tags = tags.Strip(sk.Tags, []string{tagID})
	})
	return err
}

// RemoveSkill deletes a skill from the collection. The on-disk directory is
// untouched; a subsequent rescan will rediscover it.
func (s *Service) RemoveSkill(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]skills.Skill, 0, len(s.state.Skills))
	found := false
	for _, skill := range s.state.Skills {
		if skill.ID == id {
			found = true
			continue
		}
		kept = append(kept, skill)
	}
	if !found {
		return errors.Wrapf(ErrSkillNotFound, "id %s", id)
	}

	s.state.Skills = kept
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.notify("skills")
	return nil
}

// AddTag validates and appends a tag to the taxonomy.
func (s *Service) AddTag(ctx context.Context, tag tags.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := tags.Validate(s.state.Tags, tag); err != nil {
		return err
	}

	s.state.Tags = append(s.state.Tags, tag)
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.notify("tags")
	return nil
}

// RemoveTag deletes a tag, cascading to its children and stripping the
// removed ids from every skill's tag list.
func (s *Service) RemoveTag(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, removedIDs, err := tags.Remove(s.state.Tags, id)
	if err != nil {
		return err
	}

	s.state.Tags = remaining
	for i := range s.state.Skills {
		s.state.Skills[i].Tags = tags.Strip(s.state.Skills[i].Tags, removedIDs)
	}

	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.notify("tags")
	return nil
}

// AddDraft appends a draft.
func (s *Service) AddDraft(ctx context.Context, draft Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Drafts = append(s.state.Drafts, draft)
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.notify("drafts")
	return nil
}

// Draft returns one draft by id.
func (s *Service) Draft(id string) (Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.state.Drafts {
		if d.ID == id {
			return d, nil
		}
	}
	return Draft{}, errors.Wrapf(ErrDraftNotFound, "id %s", id)
}

// RemoveDraft deletes a draft.
func (s *Service) RemoveDraft(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Draft, 0, len(s.state.Drafts))
	found := false
	for _, d := range s.state.Drafts {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return errors.Wrapf(ErrDraftNotFound, "id %s", id)
	}

	s.state.Drafts = kept
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.notify("drafts")
	return nil
}

// SetPreferences replaces the user preferences.
func (s *Service) SetPreferences(ctx context.Context, prefs Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Preferences = prefs
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.notify("preferences")
	return nil
}
