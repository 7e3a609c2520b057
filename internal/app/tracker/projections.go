package tracker

import (
	"github.com/trainquest/trainquest/internal/app/economy"
	"github.com/trainquest/trainquest/internal/app/progression"
	"github.com/trainquest/trainquest/internal/domain"
)

// Read projections. Each takes the read lock only long enough to grab the
// current snapshot pointer; snapshots are immutable once committed, so the
// rest runs lock-free.

func (s *Service) current() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Snapshot returns the current state value (shutdown flush, debugging).
func (s *Service) Snapshot() *domain.Snapshot {
	return s.current()
}

// Children lists all child profiles.
func (s *Service) Children() []domain.Child {
	snap := s.current()
	return append([]domain.Child(nil), snap.Children...)
}

// Child returns one child profile.
func (s *Service) Child(childID string) (domain.Child, error) {
	if c := s.current().ChildByID(childID); c != nil {
		return *c, nil
	}
	return domain.Child{}, domain.ErrChildNotFound
}

// Sessions returns the child's session history, newest first.
func (s *Service) Sessions(childID string) ([]domain.Session, error) {
	snap := s.current()
	if snap.ChildByID(childID) == nil {
		return nil, domain.ErrChildNotFound
	}
	sessions := snap.SessionsForChild(childID)
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	return sessions, nil
}

// MapNodes returns the child's quest map in (stage, node) order.
func (s *Service) MapNodes(childID string) ([]domain.MapNode, error) {
	snap := s.current()
	if snap.ChildByID(childID) == nil {
		return nil, domain.ErrChildNotFound
	}
	return snap.NodesForChild(childID), nil
}

// CurrentMapNode returns the child's next incomplete node, nil when the map
// is cleared.
func (s *Service) CurrentMapNode(childID string) (*domain.MapNode, error) {
	snap := s.current()
	if snap.ChildByID(childID) == nil {
		return nil, domain.ErrChildNotFound
	}
	return progression.CurrentNode(snap.MapNodes, childID), nil
}

// Achievements returns the child's unlock records.
func (s *Service) Achievements(childID string) ([]domain.ChildAchievement, error) {
	snap := s.current()
	if snap.ChildByID(childID) == nil {
		return nil, domain.ErrChildNotFound
	}
	return snap.AchievementsForChild(childID), nil
}

// Buddy returns the child's companion.
func (s *Service) Buddy(childID string) (domain.Buddy, error) {
	snap := s.current()
	if snap.ChildByID(childID) == nil {
		return domain.Buddy{}, domain.ErrChildNotFound
	}
	return snap.Buddies[childID], nil
}

// Wallets returns the child's per-category wallets.
func (s *Service) Wallets(childID string) (map[domain.Category]domain.Wallet, error) {
	snap := s.current()
	if snap.ChildByID(childID) == nil {
		return nil, domain.ErrChildNotFound
	}
	out := make(map[domain.Category]domain.Wallet, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		out[cat] = snap.WalletFor(childID, cat)
	}
	return out, nil
}

// OwnedSkins returns the skins the child can dress the buddy in: the
// implicit defaults plus everything explicitly acquired.
func (s *Service) OwnedSkins(childID string) ([]domain.Skin, error) {
	snap := s.current()
	if snap.ChildByID(childID) == nil {
		return nil, domain.ErrChildNotFound
	}
	var out []domain.Skin
	for _, sk := range economy.Skins() {
		if snap.OwnsSkin(childID, sk.ID, economy.Skins()) {
			out = append(out, sk)
		}
	}
	return out, nil
}

// TreasureStatus describes the shared chest cadence for display.
type TreasureStatus struct {
	State    domain.TreasureState `json:"state"`
	Kind     domain.ChestKind     `json:"kind"`
	Target   int                  `json:"target"`
	Openable bool                 `json:"openable"`
}

// Treasure returns the shared chest state with derived display fields.
func (s *Service) Treasure() TreasureStatus {
	snap := s.current()
	return TreasureStatus{
		State:    snap.Treasure,
		Kind:     economy.ChestKindAt(snap.Treasure.ChestIndex),
		Target:   economy.CurrentTarget(snap.Treasure),
		Openable: economy.ChestOpenable(snap.Treasure),
	}
}

// Summary assembles the full dashboard projection for one child.
func (s *Service) Summary(childID string) (*domain.ChildSummary, error) {
	snap := s.current()
	child := snap.ChildByID(childID)
	if child == nil {
		return nil, domain.ErrChildNotFound
	}

	counts := snap.CategoryCounts[childID]
	wallets := make(map[domain.Category]domain.Wallet, len(domain.Categories()))
	catLevels := make(map[domain.Category]domain.CategoryLevelInfo, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		wallets[cat] = snap.WalletFor(childID, cat)
		catLevels[cat] = economy.CategoryLevel(counts.Count(cat))
	}

	return &domain.ChildSummary{
		Child:        *child,
		LevelInfo:    economy.LevelProgress(child.XP),
		Streak:       snap.Streaks[childID],
		Counts:       counts,
		Wallets:      wallets,
		CatLevels:    catLevels,
		Buddy:        snap.Buddies[childID],
		Achievements: len(snap.AchievementsForChild(childID)),
		CurrentNode:  progression.CurrentNode(snap.MapNodes, childID),
	}, nil
}
