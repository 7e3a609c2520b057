package tracker_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/trainquest/trainquest/internal/app/buddy"
	"github.com/trainquest/trainquest/internal/app/tracker"
	"github.com/trainquest/trainquest/internal/domain"
)

type spySaver struct {
	saves []*domain.Snapshot
}

func (s *spySaver) Save(snap *domain.Snapshot) {
	s.saves = append(s.saves, snap)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var day0 = time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

func newService(t *testing.T, opts ...tracker.Option) (*tracker.Service, *spySaver) {
	t.Helper()
	saver := &spySaver{}
	opts = append([]tracker.Option{
		tracker.WithClock(fixedClock(day0)),
		tracker.WithRand(rand.New(rand.NewSource(1))),
	}, opts...)
	return tracker.New(nil, saver, opts...), saver
}

func TestAddChildSeedsState(t *testing.T) {
	svc, saver := newService(t)

	child, err := svc.AddChild("Mika")
	if err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if child.ID == "" || child.Level != 1 || child.XP != 0 {
		t.Fatalf("unexpected child: %+v", child)
	}

	nodes, err := svc.MapNodes(child.ID)
	if err != nil {
		t.Fatalf("MapNodes: %v", err)
	}
	if len(nodes) != 10 {
		t.Fatalf("seeded %d nodes, want 10", len(nodes))
	}
	if nodes[0].RequiredSessions != 1 || nodes[0].Completed {
		t.Fatalf("unexpected first node: %+v", nodes[0])
	}

	b, err := svc.Buddy(child.ID)
	if err != nil {
		t.Fatalf("Buddy: %v", err)
	}
	if b.SkinID != "scholar_owl" || b.Level != 1 {
		t.Fatalf("unexpected buddy: %+v", b)
	}

	if len(saver.saves) != 1 {
		t.Fatalf("got %d saves, want 1", len(saver.saves))
	}
}

func TestAddChildRejectsEmptyName(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.AddChild("   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestLogTrainingSessionPipeline(t *testing.T) {
	svc, _ := newService(t)
	child, _ := svc.AddChild("Mika")

	res, err := svc.LogTrainingSession(tracker.LogInput{
		ChildID:         child.ID,
		ActivityID:      "math_drills",
		DurationMinutes: 20,
		EffortLevel:     2,
	})
	if err != nil {
		t.Fatalf("LogTrainingSession: %v", err)
	}

	// 20 min × 5 × effort 2 = 200 XP; 5 + floor(20/10)×2 = 9 coins.
	if res.Session.XPGained != 200 {
		t.Errorf("session XP = %d, want 200", res.Session.XPGained)
	}
	if res.Session.CoinsGained != 9 {
		t.Errorf("session coins = %d, want 9", res.Session.CoinsGained)
	}

	// First node needs one session: its 40 XP / 10 coin bonus lands too.
	if len(res.CompletedNodes) != 1 {
		t.Fatalf("completed %d nodes, want 1", len(res.CompletedNodes))
	}
	if res.LevelUps != 1 {
		t.Errorf("level ups = %d, want 1 (240 XP clears the 120 XP first level)", res.LevelUps)
	}

	got, _ := svc.Child(child.ID)
	if got.XP != 240 || got.Coins != 19 || got.Level != 2 {
		t.Errorf("child after session = XP %d coins %d level %d, want 240/19/2", got.XP, got.Coins, got.Level)
	}
	if got.CurrentStreak != 1 || got.BestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", got.CurrentStreak, got.BestStreak)
	}
	if got.TotalMinutes != 20 {
		t.Errorf("total minutes = %d, want 20", got.TotalMinutes)
	}

	// Only the session's own coins reach the category wallet.
	wallets, _ := svc.Wallets(child.ID)
	study := wallets[domain.CategoryStudy]
	if study.Coins != 9 || study.TicketProgress != 1 || study.Tickets != 0 {
		t.Errorf("study wallet = %+v, want coins 9, progress 1", study)
	}

	// Buddy mirrors the child.
	b, _ := svc.Buddy(child.ID)
	if b.Level != 2 || b.XP != 240 {
		t.Errorf("buddy = level %d XP %d, want 2/240", b.Level, b.XP)
	}

	// First session unlocks first_session.
	found := false
	for _, def := range res.UnlockedAchievements {
		if def.ID == "first_session" {
			found = true
		}
	}
	if !found {
		t.Errorf("first_session not in unlocked achievements: %+v", res.UnlockedAchievements)
	}

	// Shared treasure cadence ticked once.
	if ts := svc.Treasure(); ts.State.Progress != 1 {
		t.Errorf("treasure progress = %d, want 1", ts.State.Progress)
	}
}

func TestLogTrainingSessionNotFound(t *testing.T) {
	svc, _ := newService(t)
	child, _ := svc.AddChild("Mika")

	tests := []struct {
		name string
		in   tracker.LogInput
		want error
	}{
		{"unknown child", tracker.LogInput{ChildID: "nope", ActivityID: "reading", DurationMinutes: 10, EffortLevel: 1}, domain.ErrChildNotFound},
		{"unknown activity", tracker.LogInput{ChildID: child.ID, ActivityID: "nope", DurationMinutes: 10, EffortLevel: 1}, domain.ErrActivityNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.LogTrainingSession(tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlannedSessionLifecycle(t *testing.T) {
	svc, _ := newService(t)
	child, _ := svc.AddChild("Mika")

	res, err := svc.LogTrainingSession(tracker.LogInput{
		ChildID:    child.ID,
		ActivityID: "piano",
		Planned:    true,
	})
	if err != nil {
		t.Fatalf("plan session: %v", err)
	}
	if res.Session.Status != domain.SessionPlanned {
		t.Fatalf("status = %q, want planned", res.Session.Status)
	}

	// Planned sessions grant nothing.
	got, _ := svc.Child(child.ID)
	if got.XP != 0 || got.Coins != 0 {
		t.Fatalf("planned session granted rewards: %+v", got)
	}
	if ts := svc.Treasure(); ts.State.Progress != 0 {
		t.Fatalf("planned session advanced treasure: %d", ts.State.Progress)
	}

	// Completing runs the full pipeline.
	done, err := svc.CompletePlannedSession(res.Session.ID, 30, 1)
	if err != nil {
		t.Fatalf("CompletePlannedSession: %v", err)
	}
	if done.Session.Status != domain.SessionCompleted {
		t.Fatalf("status = %q, want completed", done.Session.Status)
	}
	if done.Session.XPGained != 150 {
		t.Fatalf("XP = %d, want 150", done.Session.XPGained)
	}

	// A completed session cannot be completed again.
	if _, err := svc.CompletePlannedSession(res.Session.ID, 30, 1); !errors.Is(err, domain.ErrSessionNotPlanned) {
		t.Fatalf("second completion err = %v, want ErrSessionNotPlanned", err)
	}
}

func TestCompletePlannedSessionNotFound(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.CompletePlannedSession("nope", 10, 1); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestEditSessionNote(t *testing.T) {
	svc, _ := newService(t)
	child, _ := svc.AddChild("Mika")
	res, _ := svc.LogTrainingSession(tracker.LogInput{
		ChildID: child.ID, ActivityID: "reading", DurationMinutes: 10, EffortLevel: 1,
	})

	if err := svc.EditSessionNote(res.Session.ID, "chapter two"); err != nil {
		t.Fatalf("EditSessionNote: %v", err)
	}
	sessions, _ := svc.Sessions(child.ID)
	if sessions[0].Note != "chapter two" {
		t.Fatalf("note = %q, want %q", sessions[0].Note, "chapter two")
	}

	if err := svc.EditSessionNote("nope", "x"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestStreakAcrossDays(t *testing.T) {
	now := day0
	svc := tracker.New(nil, nil, tracker.WithClock(func() time.Time { return now }))
	child, _ := svc.AddChild("Mika")

	for i := 0; i < 3; i++ {
		now = day0.AddDate(0, 0, i)
		if _, err := svc.LogTrainingSession(tracker.LogInput{
			ChildID: child.ID, ActivityID: "reading", DurationMinutes: 10, EffortLevel: 1,
		}); err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
	}

	got, _ := svc.Child(child.ID)
	if got.CurrentStreak != 3 || got.BestStreak != 3 {
		t.Fatalf("streak = %d/%d, want 3/3", got.CurrentStreak, got.BestStreak)
	}
}

func TestTicketRollover(t *testing.T) {
	svc, _ := newService(t)
	child, _ := svc.AddChild("Mika")

	// Three completed study sessions roll over into one ticket.
	for i := 0; i < 3; i++ {
		if _, err := svc.LogTrainingSession(tracker.LogInput{
			ChildID: child.ID, ActivityID: "homework", DurationMinutes: 10, EffortLevel: 1,
		}); err != nil {
			t.Fatal(err)
		}
	}

	wallets, _ := svc.Wallets(child.ID)
	study := wallets[domain.CategoryStudy]
	if study.Tickets != 1 || study.TicketProgress != 0 {
		t.Fatalf("study wallet = %+v, want 1 ticket, progress 0", study)
	}
	// Exercise wallet untouched.
	if ex := wallets[domain.CategoryExercise]; ex.Tickets != 0 || ex.Coins != 0 {
		t.Fatalf("exercise wallet leaked: %+v", ex)
	}
}

// seededSnapshot builds a snapshot with one child in a chosen economy state,
// bypassing the session grind.
func seededSnapshot(childID string, studyCount int, wallet domain.Wallet) *domain.Snapshot {
	snap := domain.NewSnapshot()
	snap.Children = append(snap.Children, domain.Child{ID: childID, Name: "Mika", Level: 1})
	snap.CategoryCounts[childID] = domain.CategoryCounts{Study: studyCount}
	snap.Wallets[childID] = map[domain.Category]domain.Wallet{domain.CategoryStudy: wallet}
	snap.Buddies[childID] = domain.Buddy{ChildID: childID, Level: 1, SkinID: "scholar_owl"}
	return snap
}

func TestRollSkinGacha(t *testing.T) {
	// Study count 3 puts the category at level 2, the gacha unlock line.
	snap := seededSnapshot("kid", 3, domain.Wallet{Tickets: 2})
	svc := tracker.New(snap, nil,
		tracker.WithClock(fixedClock(day0)),
		tracker.WithRand(rand.New(rand.NewSource(7))))

	res, err := svc.RollSkinGacha("kid", domain.CategoryStudy)
	if err != nil {
		t.Fatalf("RollSkinGacha: %v", err)
	}
	if res.Outcome != domain.GachaOK {
		t.Fatalf("outcome = %q, want ok", res.Outcome)
	}
	if res.Skin == nil || res.Skin.Category != domain.CategoryStudy {
		t.Fatalf("unexpected skin: %+v", res.Skin)
	}
	if !res.IsNew {
		t.Fatalf("first pull should be new")
	}

	wallets, _ := svc.Wallets("kid")
	if wallets[domain.CategoryStudy].Tickets != 1 {
		t.Fatalf("tickets = %d, want 1", wallets[domain.CategoryStudy].Tickets)
	}

	owned, _ := svc.OwnedSkins("kid")
	found := false
	for _, sk := range owned {
		if sk.ID == res.Skin.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("pulled skin %q not in owned set", res.Skin.ID)
	}
}

func TestRollSkinGachaOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		studyCount int
		wallet     domain.Wallet
		want       domain.GachaOutcome
	}{
		{"no tickets", 3, domain.Wallet{}, domain.GachaNotEnoughTickets},
		{"level too low", 0, domain.Wallet{Tickets: 5}, domain.GachaNotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := seededSnapshot("kid", tt.studyCount, tt.wallet)
			svc := tracker.New(snap, nil, tracker.WithClock(fixedClock(day0)))

			res, err := svc.RollSkinGacha("kid", domain.CategoryStudy)
			if err != nil {
				t.Fatalf("RollSkinGacha: %v", err)
			}
			if res.Outcome != tt.want {
				t.Fatalf("outcome = %q, want %q", res.Outcome, tt.want)
			}
			// Precondition failures leave the wallet untouched.
			wallets, _ := svc.Wallets("kid")
			if wallets[domain.CategoryStudy] != tt.wallet {
				t.Fatalf("wallet changed: %+v", wallets[domain.CategoryStudy])
			}
		})
	}
}

func TestPurchaseSkin(t *testing.T) {
	snap := seededSnapshot("kid", 3, domain.Wallet{Coins: 200})
	svc := tracker.New(snap, nil, tracker.WithClock(fixedClock(day0)))

	res, err := svc.PurchaseSkin("kid", "moon_cat")
	if err != nil {
		t.Fatalf("PurchaseSkin: %v", err)
	}
	if res.Outcome != domain.PurchaseOK {
		t.Fatalf("outcome = %q, want ok", res.Outcome)
	}

	wallets, _ := svc.Wallets("kid")
	if wallets[domain.CategoryStudy].Coins != 50 {
		t.Fatalf("coins = %d, want 50 after 150 coin purchase", wallets[domain.CategoryStudy].Coins)
	}

	// Buying again: already owned, coins untouched.
	res, _ = svc.PurchaseSkin("kid", "moon_cat")
	if res.Outcome != domain.PurchaseAlreadyOwned {
		t.Fatalf("repeat outcome = %q, want already_owned", res.Outcome)
	}
	wallets, _ = svc.Wallets("kid")
	if wallets[domain.CategoryStudy].Coins != 50 {
		t.Fatalf("repeat purchase charged coins: %d", wallets[domain.CategoryStudy].Coins)
	}
}

func TestPurchaseSkinOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		studyCount int
		wallet     domain.Wallet
		skinID     string
		want       domain.PurchaseOutcome
	}{
		{"not enough coins", 3, domain.Wallet{Coins: 10}, "moon_cat", domain.PurchaseNotEnoughCoins},
		{"level locked", 0, domain.Wallet{Coins: 500}, "moon_cat", domain.PurchaseLocked},
		{"gacha-only skin", 3, domain.Wallet{Coins: 500}, "sage_fox", domain.PurchaseLocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := seededSnapshot("kid", tt.studyCount, tt.wallet)
			svc := tracker.New(snap, nil, tracker.WithClock(fixedClock(day0)))

			res, err := svc.PurchaseSkin("kid", tt.skinID)
			if err != nil {
				t.Fatalf("PurchaseSkin: %v", err)
			}
			if res.Outcome != tt.want {
				t.Fatalf("outcome = %q, want %q", res.Outcome, tt.want)
			}
		})
	}
}

func TestPurchaseSkinUnknown(t *testing.T) {
	snap := seededSnapshot("kid", 0, domain.Wallet{})
	svc := tracker.New(snap, nil)
	if _, err := svc.PurchaseSkin("kid", "nope"); !errors.Is(err, domain.ErrSkinNotFound) {
		t.Fatalf("err = %v, want ErrSkinNotFound", err)
	}
}

func TestSetBuddySkin(t *testing.T) {
	snap := seededSnapshot("kid", 0, domain.Wallet{})
	snap.OwnedSkins = append(snap.OwnedSkins, domain.OwnedSkin{ChildID: "kid", SkinID: "sage_fox"})
	svc := tracker.New(snap, nil)

	b, err := svc.SetBuddySkin("kid", "sage_fox")
	if err != nil {
		t.Fatalf("SetBuddySkin: %v", err)
	}
	if b.SkinID != "sage_fox" {
		t.Fatalf("skin = %q, want sage_fox", b.SkinID)
	}

	// Unowned skins cannot be equipped.
	if _, err := svc.SetBuddySkin("kid", "comet_quill"); !errors.Is(err, domain.ErrSkinNotFound) {
		t.Fatalf("err = %v, want ErrSkinNotFound", err)
	}
}

func TestOpenTreasureChest(t *testing.T) {
	snap := seededSnapshot("kid", 0, domain.Wallet{})
	snap.Treasure.Progress = 4 // small chest target is 3, one session banked
	svc := tracker.New(snap, nil,
		tracker.WithClock(fixedClock(day0)),
		tracker.WithRand(rand.New(rand.NewSource(3))))

	res, err := svc.OpenTreasureChest("kid")
	if err != nil {
		t.Fatalf("OpenTreasureChest: %v", err)
	}
	if res.Outcome != domain.ChestOpened {
		t.Fatalf("outcome = %q, want opened", res.Outcome)
	}
	if res.Opening.Kind != domain.ChestSmall {
		t.Fatalf("kind = %q, want small", res.Opening.Kind)
	}

	ts := svc.Treasure()
	if ts.State.ChestIndex != 1 {
		t.Errorf("chest index = %d, want 1", ts.State.ChestIndex)
	}
	if ts.State.Progress != 1 {
		t.Errorf("progress = %d, want 1 carried over", ts.State.Progress)
	}
	if len(ts.State.History) != 1 {
		t.Errorf("history length = %d, want 1", len(ts.State.History))
	}

	// Small chest rewards are coins only; they land on the opener's profile.
	child, _ := svc.Child("kid")
	if child.Coins < 10 || child.Coins > 15 {
		t.Errorf("coins = %d, want within small chest range 10–15", child.Coins)
	}

	// Not refillable until enough sessions bank up again.
	res, _ = svc.OpenTreasureChest("kid")
	if res.Outcome != domain.ChestNotReady {
		t.Fatalf("second open outcome = %q, want not_ready", res.Outcome)
	}
}

func TestFeedBuddy(t *testing.T) {
	snap := seededSnapshot("kid", 0, domain.Wallet{})
	svc := tracker.New(snap, nil, tracker.WithClock(fixedClock(day0)))

	// Broke: feeding is refused as an outcome, not an error.
	res, err := svc.FeedBuddy("kid")
	if err != nil {
		t.Fatalf("FeedBuddy: %v", err)
	}
	if res.Outcome != domain.CareNotEnoughCoins {
		t.Fatalf("outcome = %q, want not_enough_coins", res.Outcome)
	}

	// Fund the profile and feed.
	snap2 := seededSnapshot("kid", 0, domain.Wallet{})
	snap2.Children[0].Coins = 12
	svc = tracker.New(snap2, nil, tracker.WithClock(fixedClock(day0)))

	res, err = svc.FeedBuddy("kid")
	if err != nil {
		t.Fatalf("FeedBuddy: %v", err)
	}
	if res.Outcome != domain.CareOK {
		t.Fatalf("outcome = %q, want ok", res.Outcome)
	}
	if res.Buddy.XP != buddy.FeedXP {
		t.Errorf("buddy XP = %d, want %d", res.Buddy.XP, buddy.FeedXP)
	}
	child, _ := svc.Child("kid")
	if child.Coins != 12-buddy.FeedCost {
		t.Errorf("coins = %d, want %d", child.Coins, 12-buddy.FeedCost)
	}
}

func TestPetBuddy(t *testing.T) {
	snap := seededSnapshot("kid", 0, domain.Wallet{})
	mood := snap.Buddies["kid"].Mood
	svc := tracker.New(snap, nil)

	res, err := svc.PetBuddy("kid")
	if err != nil {
		t.Fatalf("PetBuddy: %v", err)
	}
	if res.Buddy.Mood != mood+buddy.PetMood {
		t.Fatalf("mood = %d, want %d", res.Buddy.Mood, mood+buddy.PetMood)
	}
}

func TestMutationsPersistSnapshots(t *testing.T) {
	svc, saver := newService(t)

	child, _ := svc.AddChild("Mika")
	svc.LogTrainingSession(tracker.LogInput{
		ChildID: child.ID, ActivityID: "soccer", DurationMinutes: 15, EffortLevel: 3,
	})

	if len(saver.saves) != 2 {
		t.Fatalf("got %d saves, want 2", len(saver.saves))
	}
	last := saver.saves[len(saver.saves)-1]
	if len(last.Sessions) != 1 || last.Sessions[0].ChildID != child.ID {
		t.Fatalf("persisted snapshot missing session: %+v", last.Sessions)
	}
	// Earlier snapshots stay immutable.
	if len(saver.saves[0].Sessions) != 0 {
		t.Fatalf("earlier snapshot mutated: %+v", saver.saves[0].Sessions)
	}
}

func TestReadsOnUnknownChild(t *testing.T) {
	svc, _ := newService(t)

	if _, err := svc.Child("nope"); !errors.Is(err, domain.ErrChildNotFound) {
		t.Errorf("Child err = %v", err)
	}
	if _, err := svc.Summary("nope"); !errors.Is(err, domain.ErrChildNotFound) {
		t.Errorf("Summary err = %v", err)
	}
	if _, err := svc.MapNodes("nope"); !errors.Is(err, domain.ErrChildNotFound) {
		t.Errorf("MapNodes err = %v", err)
	}
}

func TestSummary(t *testing.T) {
	svc, _ := newService(t)
	child, _ := svc.AddChild("Mika")
	svc.LogTrainingSession(tracker.LogInput{
		ChildID: child.ID, ActivityID: "swimming", DurationMinutes: 30, EffortLevel: 2,
	})

	sum, err := svc.Summary(child.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Child.ID != child.ID {
		t.Errorf("summary child = %q", sum.Child.ID)
	}
	if sum.Counts.Exercise != 1 || sum.Counts.Study != 0 {
		t.Errorf("counts = %+v, want one exercise session", sum.Counts)
	}
	if sum.LevelInfo.Level != sum.Child.Level {
		t.Errorf("level info %d disagrees with child level %d", sum.LevelInfo.Level, sum.Child.Level)
	}
	if sum.CurrentNode == nil {
		t.Errorf("current node missing")
	}
	if sum.Streak.Current != 1 {
		t.Errorf("streak = %d, want 1", sum.Streak.Current)
	}
}
