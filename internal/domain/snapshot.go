package domain

import "time"

// SnapshotVersion is the persisted schema version. On mismatch the stored
// state is discarded and a fresh seed state is generated — no migrations.
const SnapshotVersion = 3

// Snapshot is the whole application state as one immutable value. Every
// mutation produces a new snapshot which replaces the current one wholesale;
// readers holding a previous snapshot never observe a torn state.
//
// Map keys are child IDs unless noted otherwise.
type Snapshot struct {
	Version  int       `json:"version"`
	SavedAt  time.Time `json:"saved_at"`
	Children []Child   `json:"children"`
	Sessions []Session `json:"sessions"`
	MapNodes []MapNode `json:"map_nodes"`

	Achievements []ChildAchievement `json:"achievements"`

	Streaks        map[string]Streak              `json:"streaks"`
	CategoryCounts map[string]CategoryCounts      `json:"category_counts"`
	Wallets        map[string]map[Category]Wallet `json:"wallets"`
	Buddies        map[string]Buddy               `json:"buddies"`

	OwnedSkins      []OwnedSkin         `json:"owned_skins"`
	DiscoveredForms map[string][]string `json:"discovered_forms"`

	Treasure TreasureState `json:"treasure"`
}

// NewSnapshot returns an empty seed state at the current schema version.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:         SnapshotVersion,
		Streaks:         make(map[string]Streak),
		CategoryCounts:  make(map[string]CategoryCounts),
		Wallets:         make(map[string]map[Category]Wallet),
		Buddies:         make(map[string]Buddy),
		DiscoveredForms: make(map[string][]string),
	}
}

// Clone returns a deep copy. Mutation pipelines clone first, mutate the
// clone, then swap it in — the original value is never touched.
func (s *Snapshot) Clone() *Snapshot {
	c := *s

	c.Children = append([]Child(nil), s.Children...)
	c.Sessions = make([]Session, len(s.Sessions))
	for i, sess := range s.Sessions {
		sess.Tags = append([]string(nil), sess.Tags...)
		c.Sessions[i] = sess
	}
	c.MapNodes = append([]MapNode(nil), s.MapNodes...)
	c.Achievements = append([]ChildAchievement(nil), s.Achievements...)
	c.OwnedSkins = append([]OwnedSkin(nil), s.OwnedSkins...)

	c.Streaks = make(map[string]Streak, len(s.Streaks))
	for k, v := range s.Streaks {
		c.Streaks[k] = v
	}
	c.CategoryCounts = make(map[string]CategoryCounts, len(s.CategoryCounts))
	for k, v := range s.CategoryCounts {
		c.CategoryCounts[k] = v
	}
	c.Wallets = make(map[string]map[Category]Wallet, len(s.Wallets))
	for k, byCat := range s.Wallets {
		inner := make(map[Category]Wallet, len(byCat))
		for cat, w := range byCat {
			inner[cat] = w
		}
		c.Wallets[k] = inner
	}
	c.Buddies = make(map[string]Buddy, len(s.Buddies))
	for k, v := range s.Buddies {
		c.Buddies[k] = v
	}
	c.DiscoveredForms = make(map[string][]string, len(s.DiscoveredForms))
	for k, v := range s.DiscoveredForms {
		c.DiscoveredForms[k] = append([]string(nil), v...)
	}

	c.Treasure.History = make([]ChestOpening, len(s.Treasure.History))
	for i, h := range s.Treasure.History {
		h.Rewards = append([]ChestReward(nil), h.Rewards...)
		c.Treasure.History[i] = h
	}

	return &c
}

// ─── Lookup Helpers ─────────────────────────────────────────────────────────

// ChildByID returns the child with the given ID, or nil.
func (s *Snapshot) ChildByID(id string) *Child {
	for i := range s.Children {
		if s.Children[i].ID == id {
			return &s.Children[i]
		}
	}
	return nil
}

// SessionByID returns the session with the given ID, or nil.
func (s *Snapshot) SessionByID(id string) *Session {
	for i := range s.Sessions {
		if s.Sessions[i].ID == id {
			return &s.Sessions[i]
		}
	}
	return nil
}

// SessionsForChild returns the child's sessions in insertion order.
func (s *Snapshot) SessionsForChild(childID string) []Session {
	var out []Session
	for _, sess := range s.Sessions {
		if sess.ChildID == childID {
			out = append(out, sess)
		}
	}
	return out
}

// NodesForChild returns the child's map nodes in (stage, node) order.
// The seed layout already stores them in that order.
func (s *Snapshot) NodesForChild(childID string) []MapNode {
	var out []MapNode
	for _, n := range s.MapNodes {
		if n.ChildID == childID {
			out = append(out, n)
		}
	}
	return out
}

// AchievementsForChild returns the child's unlock records.
func (s *Snapshot) AchievementsForChild(childID string) []ChildAchievement {
	var out []ChildAchievement
	for _, a := range s.Achievements {
		if a.ChildID == childID {
			out = append(out, a)
		}
	}
	return out
}

// WalletFor returns the child's wallet for a category (zero value if none).
func (s *Snapshot) WalletFor(childID string, cat Category) Wallet {
	if byCat, ok := s.Wallets[childID]; ok {
		return byCat[cat]
	}
	return Wallet{}
}

// SetWallet stores a wallet, allocating the inner map when needed.
func (s *Snapshot) SetWallet(childID string, cat Category, w Wallet) {
	byCat, ok := s.Wallets[childID]
	if !ok {
		byCat = make(map[Category]Wallet)
		s.Wallets[childID] = byCat
	}
	byCat[cat] = w
}

// OwnsSkin reports whether the child owns the given skin. Default skins are
// implicitly owned.
func (s *Snapshot) OwnsSkin(childID, skinID string, catalog []Skin) bool {
	for _, o := range s.OwnedSkins {
		if o.ChildID == childID && o.SkinID == skinID {
			return true
		}
	}
	for _, sk := range catalog {
		if sk.ID == skinID && sk.UnlockMethod == UnlockDefault {
			return true
		}
	}
	return false
}

// OwnedSet returns the set of skin IDs the child explicitly owns.
func (s *Snapshot) OwnedSet(childID string) map[string]bool {
	set := make(map[string]bool)
	for _, o := range s.OwnedSkins {
		if o.ChildID == childID {
			set[o.SkinID] = true
		}
	}
	return set
}

// MarkFormDiscovered records a skin form for the encyclopedia (idempotent).
func (s *Snapshot) MarkFormDiscovered(childID, skinID string) {
	for _, f := range s.DiscoveredForms[childID] {
		if f == skinID {
			return
		}
	}
	s.DiscoveredForms[childID] = append(s.DiscoveredForms[childID], skinID)
}
