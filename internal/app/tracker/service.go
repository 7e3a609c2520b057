// Package tracker is the orchestrator of the progression core. It owns the
// authoritative in-memory snapshot and runs every mutation as a pipeline:
// clone the snapshot, apply domain logic from the economy, progression, and
// buddy packages, swap the clone in, and hand it to the write-behind
// persister. Readers always see a complete, consistent snapshot.
package tracker

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trainquest/trainquest/internal/app/buddy"
	"github.com/trainquest/trainquest/internal/app/economy"
	"github.com/trainquest/trainquest/internal/app/progression"
	"github.com/trainquest/trainquest/internal/domain"
	"github.com/trainquest/trainquest/internal/infra/metrics"
)

// Saver receives each new snapshot after a successful mutation. Persistence
// is fire-and-forget: the tracker never waits for or observes the write.
type Saver interface {
	Save(*domain.Snapshot)
}

// Service is the progression tracker. All mutations and reads go through it.
type Service struct {
	mu    sync.RWMutex
	snap  *domain.Snapshot
	saver Saver

	gacha economy.GachaConfig
	now   func() time.Time
	rng   *rand.Rand
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand overrides the random source (tests).
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithGachaConfig overrides the shipped gacha tuning.
func WithGachaConfig(cfg economy.GachaConfig) Option {
	return func(s *Service) { s.gacha = cfg }
}

// New creates a tracker over the given snapshot. A nil snapshot starts a
// fresh seed state. A nil saver disables persistence (tests).
func New(snap *domain.Snapshot, saver Saver, opts ...Option) *Service {
	if snap == nil {
		snap = domain.NewSnapshot()
	}
	s := &Service{
		snap:  snap,
		saver: saver,
		gacha: economy.DefaultGachaConfig(),
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// commit swaps in the new snapshot and queues it for persistence.
// Callers hold s.mu for writing.
func (s *Service) commit(clone *domain.Snapshot) {
	clone.SavedAt = s.now()
	s.snap = clone
	if s.saver != nil {
		s.saver.Save(clone)
	}
}

// ─── Children ───────────────────────────────────────────────────────────────

// AddChild creates a child profile with its seed state: the starter quest
// map, a fresh buddy wearing the default study skin, and empty wallets.
func (s *Service) AddChild(name string) (domain.Child, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Child{}, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	child := domain.Child{
		ID:        s.newID(),
		Name:      name,
		Level:     1,
		CreatedAt: s.now(),
	}
	clone.Children = append(clone.Children, child)
	clone.MapNodes = append(clone.MapNodes, progression.StarterNodes(child.ID)...)
	clone.Buddies[child.ID] = buddy.New(child.ID, economy.DefaultSkin(domain.CategoryStudy))
	for _, cat := range domain.Categories() {
		clone.SetWallet(child.ID, cat, domain.Wallet{})
	}

	s.commit(clone)
	return child, nil
}

// ─── Sessions ───────────────────────────────────────────────────────────────

// LogInput is the request to record a training session.
type LogInput struct {
	ChildID         string
	ActivityID      string
	DurationMinutes int
	EffortLevel     int
	Note            string
	Tags            []string
	Planned         bool
	At              time.Time // zero means now
}

// LogTrainingSession records a session and, for completed ones, runs the
// full reward pipeline: base XP/coins, quest map advance with node bonuses,
// level ladder, streak, category counter and wallet credit, treasure
// progress, buddy sync, and achievement checks. Planned sessions are stored
// inert and grant nothing until completed.
func (s *Service) LogTrainingSession(in LogInput) (*domain.SessionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	if clone.ChildByID(in.ChildID) == nil {
		return nil, domain.ErrChildNotFound
	}
	activity := economy.ActivityByID(in.ActivityID)
	if activity == nil {
		return nil, domain.ErrActivityNotFound
	}

	at := in.At
	if at.IsZero() {
		at = s.now()
	}

	sess := domain.Session{
		ID:         s.newID(),
		ChildID:    in.ChildID,
		ActivityID: in.ActivityID,
		Date:       at,
		DateKey:    at.Format(domain.DateKeyFormat),
		Note:       in.Note,
		Tags:       append([]string(nil), in.Tags...),
		Status:     domain.SessionCompleted,
	}

	if in.Planned {
		sess.Status = domain.SessionPlanned
		clone.Sessions = append(clone.Sessions, sess)
		s.commit(clone)
		metrics.SessionsLogged.WithLabelValues(string(domain.SessionPlanned)).Inc()
		return &domain.SessionResult{Session: sess}, nil
	}

	sess.DurationMinutes = in.DurationMinutes
	sess.EffortLevel = in.EffortLevel
	sess.XPGained = economy.CalculateXP(in.DurationMinutes, in.EffortLevel)
	sess.CoinsGained = economy.CalculateCoins(in.DurationMinutes, in.EffortLevel)
	clone.Sessions = append(clone.Sessions, sess)

	result := s.applyCompleted(clone, &clone.Sessions[len(clone.Sessions)-1], *activity, at)
	s.commit(clone)
	return result, nil
}

// CompletePlannedSession turns a planned session into a completed one with
// the given duration and effort, then runs the same reward pipeline a direct
// log would. The completion date is now, not the planning date.
func (s *Service) CompletePlannedSession(sessionID string, durationMinutes, effortLevel int) (*domain.SessionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	sess := clone.SessionByID(sessionID)
	if sess == nil {
		return nil, domain.ErrSessionNotFound
	}
	if sess.Status != domain.SessionPlanned {
		return nil, domain.ErrSessionNotPlanned
	}
	activity := economy.ActivityByID(sess.ActivityID)
	if activity == nil {
		return nil, domain.ErrActivityNotFound
	}

	at := s.now()
	sess.Status = domain.SessionCompleted
	sess.Date = at
	sess.DateKey = at.Format(domain.DateKeyFormat)
	sess.DurationMinutes = durationMinutes
	sess.EffortLevel = effortLevel
	sess.XPGained = economy.CalculateXP(durationMinutes, effortLevel)
	sess.CoinsGained = economy.CalculateCoins(durationMinutes, effortLevel)

	result := s.applyCompleted(clone, sess, *activity, at)
	s.commit(clone)
	return result, nil
}

// applyCompleted runs the reward pipeline for a completed session already
// present in the clone with its base XP/coins computed. Callers hold s.mu.
func (s *Service) applyCompleted(clone *domain.Snapshot, sess *domain.Session, activity domain.Activity, at time.Time) *domain.SessionResult {
	child := clone.ChildByID(sess.ChildID)
	result := &domain.SessionResult{}

	// Quest map: one step of progress, one-time node bonuses on completion.
	totalXP := sess.XPGained
	totalCoins := sess.CoinsGained
	if done := progression.Advance(clone.MapNodes, child.ID); done != nil {
		totalXP += done.RewardXP
		totalCoins += done.RewardCoins
		result.CompletedNodes = append(result.CompletedNodes, *done)
		metrics.NodesCompleted.WithLabelValues(string(done.Type)).Inc()
	}

	// Level ladder over cumulative XP.
	result.LevelUps = economy.LevelUps(child.XP, totalXP)
	child.XP += totalXP
	child.Level = economy.LevelForXP(child.XP)
	child.Coins += totalCoins
	child.TotalMinutes += sess.DurationMinutes

	// Streak, recomputed from the full session list.
	streak := progression.ComputeStreak(clone.SessionsForChild(child.ID), at)
	clone.Streaks[child.ID] = streak
	child.CurrentStreak = streak.Current
	child.BestStreak = streak.Best

	// Category counter and wallet. Only the session's own coins land in the
	// category wallet; node bonuses go to the profile balance alone.
	cat := economy.CategoryForDomain(activity.Domain)
	clone.CategoryCounts[child.ID] = clone.CategoryCounts[child.ID].Inc(cat)
	clone.SetWallet(child.ID, cat, economy.CreditSession(clone.WalletFor(child.ID, cat), sess.CoinsGained))

	// Shared treasure cadence.
	clone.Treasure.Progress++

	// Buddy mirrors the child's progression.
	b, ok := clone.Buddies[child.ID]
	if !ok {
		b = buddy.New(child.ID, economy.DefaultSkin(domain.CategoryStudy))
	}
	skin := economy.SkinByID(b.SkinID)
	if skin == nil {
		def := economy.DefaultSkin(domain.CategoryStudy)
		skin = &def
	}
	clone.Buddies[child.ID] = buddy.SyncFromChild(b, *child, *skin)

	// Achievements: permanent unlocks against fresh stats.
	unlocked := make(map[string]bool)
	for _, a := range clone.AchievementsForChild(child.ID) {
		unlocked[a.AchievementID] = true
	}
	stats := progression.ComputeStats(clone, child.ID, at)
	for _, def := range progression.CheckUnlocks(stats, unlocked) {
		clone.Achievements = append(clone.Achievements, domain.ChildAchievement{
			ChildID:       child.ID,
			AchievementID: def.ID,
			UnlockedAt:    at,
		})
		result.UnlockedAchievements = append(result.UnlockedAchievements, def)
	}

	result.Session = *sess

	metrics.SessionsLogged.WithLabelValues(string(domain.SessionCompleted)).Inc()
	metrics.XPGranted.Add(float64(totalXP))
	metrics.CoinsGranted.Add(float64(totalCoins))
	metrics.LevelUps.Add(float64(result.LevelUps))
	metrics.AchievementsUnlocked.Add(float64(len(result.UnlockedAchievements)))
	return result
}

// EditSessionNote replaces a session's note. The only post-hoc edit a
// session record permits.
func (s *Service) EditSessionNote(sessionID, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	sess := clone.SessionByID(sessionID)
	if sess == nil {
		return domain.ErrSessionNotFound
	}
	sess.Note = note
	s.commit(clone)
	return nil
}

// ─── Gacha & Skins ──────────────────────────────────────────────────────────

// RollSkinGacha spends one of the child's tickets in the given category for
// a weighted skin draw. Expected shortfalls (no tickets, category level too
// low, gacha disabled) come back as typed outcomes, not errors.
func (s *Service) RollSkinGacha(childID string, cat domain.Category) (*domain.GachaResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	if clone.ChildByID(childID) == nil {
		return nil, domain.ErrChildNotFound
	}

	catLevel := economy.CategoryLevel(clone.CategoryCounts[childID].Count(cat)).Level
	pool := economy.EligiblePool(economy.Skins(), cat, catLevel)
	owned := clone.OwnedSet(childID)

	result, wallet := economy.RollGacha(s.gacha, clone.WalletFor(childID, cat), catLevel, pool, owned, s.rng)
	metrics.GachaRolls.WithLabelValues(string(result.Outcome)).Inc()
	if result.Outcome != domain.GachaOK {
		return &result, nil
	}

	clone.SetWallet(childID, cat, wallet)
	if result.IsNew {
		clone.OwnedSkins = append(clone.OwnedSkins, domain.OwnedSkin{
			ChildID:    childID,
			SkinID:     result.Skin.ID,
			AcquiredAt: s.now(),
		})
	}
	clone.MarkFormDiscovered(childID, result.Skin.ID)

	s.commit(clone)
	return &result, nil
}

// PurchaseSkin buys a shop skin with the category wallet's coins.
func (s *Service) PurchaseSkin(childID, skinID string) (*domain.PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	if clone.ChildByID(childID) == nil {
		return nil, domain.ErrChildNotFound
	}
	skin := economy.SkinByID(skinID)
	if skin == nil {
		return nil, domain.ErrSkinNotFound
	}

	if clone.OwnsSkin(childID, skinID, economy.Skins()) {
		return &domain.PurchaseResult{Outcome: domain.PurchaseAlreadyOwned, Skin: skin}, nil
	}
	catLevel := economy.CategoryLevel(clone.CategoryCounts[childID].Count(skin.Category)).Level
	if skin.UnlockMethod != domain.UnlockPurchase || catLevel < skin.MinLevel {
		return &domain.PurchaseResult{Outcome: domain.PurchaseLocked, Skin: skin}, nil
	}

	wallet := clone.WalletFor(childID, skin.Category)
	if wallet.Coins < skin.Price {
		return &domain.PurchaseResult{Outcome: domain.PurchaseNotEnoughCoins, Skin: skin}, nil
	}

	wallet.Coins -= skin.Price
	clone.SetWallet(childID, skin.Category, wallet)
	clone.OwnedSkins = append(clone.OwnedSkins, domain.OwnedSkin{
		ChildID:    childID,
		SkinID:     skinID,
		AcquiredAt: s.now(),
	})
	clone.MarkFormDiscovered(childID, skinID)

	s.commit(clone)
	return &domain.PurchaseResult{Outcome: domain.PurchaseOK, Skin: skin}, nil
}

// SetBuddySkin dresses the child's buddy in an owned skin.
func (s *Service) SetBuddySkin(childID, skinID string) (domain.Buddy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	if clone.ChildByID(childID) == nil {
		return domain.Buddy{}, domain.ErrChildNotFound
	}
	skin := economy.SkinByID(skinID)
	if skin == nil || !clone.OwnsSkin(childID, skinID, economy.Skins()) {
		return domain.Buddy{}, domain.ErrSkinNotFound
	}

	b := clone.Buddies[childID]
	b.ChildID = childID
	b.SkinID = skinID
	clone.Buddies[childID] = b

	s.commit(clone)
	return b, nil
}

// ─── Treasure ───────────────────────────────────────────────────────────────

// OpenTreasureChest opens the shared chest if it has filled and applies its
// rewards to the opening child: coins to the profile balance, tickets to the
// named category wallet, buddy XP to the child's buddy.
func (s *Service) OpenTreasureChest(childID string) (*domain.ChestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	child := clone.ChildByID(childID)
	if child == nil {
		return nil, domain.ErrChildNotFound
	}

	state, opening, outcome := economy.OpenChest(clone.Treasure, s.rng, s.now(), s.newID())
	if outcome != domain.ChestOpened {
		return &domain.ChestResult{Outcome: outcome}, nil
	}
	clone.Treasure = state

	for _, r := range opening.Rewards {
		switch r.Type {
		case domain.RewardCoins:
			child.Coins += r.Amount
		case domain.RewardTickets:
			w := clone.WalletFor(childID, r.Category)
			w.Tickets += int(r.Amount)
			clone.SetWallet(childID, r.Category, w)
		case domain.RewardBuddyXP:
			clone.Buddies[childID] = buddy.AddXP(clone.Buddies[childID], r.Amount)
		}
	}

	metrics.ChestsOpened.WithLabelValues(string(opening.Kind)).Inc()
	s.commit(clone)
	return &domain.ChestResult{Outcome: outcome, Opening: opening}, nil
}

// ─── Buddy Care ─────────────────────────────────────────────────────────────

// PetBuddy raises the buddy's mood. Free.
func (s *Service) PetBuddy(childID string) (*domain.CareResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	if clone.ChildByID(childID) == nil {
		return nil, domain.ErrChildNotFound
	}

	b := buddy.Pet(clone.Buddies[childID])
	b.ChildID = childID
	clone.Buddies[childID] = b

	s.commit(clone)
	return &domain.CareResult{Outcome: domain.CareOK, Buddy: b}, nil
}

// FeedBuddy feeds the buddy for a small profile-coin cost, raising mood and
// granting a little buddy XP. Insufficient coins is an outcome, not an error.
func (s *Service) FeedBuddy(childID string) (*domain.CareResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := s.snap.Clone()
	child := clone.ChildByID(childID)
	if child == nil {
		return nil, domain.ErrChildNotFound
	}
	if child.Coins < buddy.FeedCost {
		return &domain.CareResult{Outcome: domain.CareNotEnoughCoins, Buddy: clone.Buddies[childID]}, nil
	}

	child.Coins -= buddy.FeedCost
	b := buddy.Feed(clone.Buddies[childID])
	b.ChildID = childID
	clone.Buddies[childID] = b

	s.commit(clone)
	return &domain.CareResult{Outcome: domain.CareOK, Buddy: b}, nil
}
