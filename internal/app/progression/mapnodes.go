package progression

import "github.com/trainquest/trainquest/internal/domain"

// StarterNodes returns the fixed quest map layout seeded for a new child:
// stage 0 eases in with 1–2 session nodes and a 3-session boss, stage 1
// raises the requirements. Treasure nodes differ only in reward size.
func StarterNodes(childID string) []domain.MapNode {
	layout := []struct {
		stage, node, required int
		typ                   domain.NodeType
		xp, coins             int64
	}{
		{0, 0, 1, domain.NodeNormal, 40, 10},
		{0, 1, 2, domain.NodeNormal, 60, 15},
		{0, 2, 2, domain.NodeTreasure, 120, 40},
		{0, 3, 2, domain.NodeNormal, 60, 15},
		{0, 4, 3, domain.NodeBoss, 200, 60},

		{1, 0, 2, domain.NodeNormal, 80, 20},
		{1, 1, 3, domain.NodeNormal, 100, 25},
		{1, 2, 3, domain.NodeTreasure, 180, 60},
		{1, 3, 3, domain.NodeNormal, 100, 25},
		{1, 4, 4, domain.NodeBoss, 300, 90},
	}

	nodes := make([]domain.MapNode, len(layout))
	for i, l := range layout {
		nodes[i] = domain.MapNode{
			ChildID:          childID,
			StageIndex:       l.stage,
			NodeIndex:        l.node,
			Type:             l.typ,
			RequiredSessions: l.required,
			RewardXP:         l.xp,
			RewardCoins:      l.coins,
		}
	}
	return nodes
}

// CurrentNode returns the first incomplete node for the child in
// (stage, node) order, or nil when the whole map is cleared.
func CurrentNode(nodes []domain.MapNode, childID string) *domain.MapNode {
	idx := currentNodeIndex(nodes, childID)
	if idx < 0 {
		return nil
	}
	n := nodes[idx]
	return &n
}

// Advance increments the current node's progress by one completed session,
// capped at the requirement. If the node completes, it is marked and
// returned so its one-time bonus can be granted. When the map is already
// cleared, Advance is a no-op.
func Advance(nodes []domain.MapNode, childID string) *domain.MapNode {
	idx := currentNodeIndex(nodes, childID)
	if idx < 0 {
		return nil
	}

	n := &nodes[idx]
	if n.Progress < n.RequiredSessions {
		n.Progress++
	}
	if n.Progress >= n.RequiredSessions {
		n.Completed = true
		done := *n
		return &done
	}
	return nil
}

// CompletedCount returns how many of the child's nodes are complete.
func CompletedCount(nodes []domain.MapNode, childID string) int {
	count := 0
	for _, n := range nodes {
		if n.ChildID == childID && n.Completed {
			count++
		}
	}
	return count
}

// StageClear reports whether every node of the given stage is complete.
func StageClear(nodes []domain.MapNode, childID string, stage int) bool {
	found := false
	for _, n := range nodes {
		if n.ChildID != childID || n.StageIndex != stage {
			continue
		}
		found = true
		if !n.Completed {
			return false
		}
	}
	return found
}

// currentNodeIndex finds the first incomplete node in (stage, node) order.
func currentNodeIndex(nodes []domain.MapNode, childID string) int {
	best := -1
	for i, n := range nodes {
		if n.ChildID != childID || n.Completed {
			continue
		}
		if best < 0 || n.StageIndex < nodes[best].StageIndex ||
			(n.StageIndex == nodes[best].StageIndex && n.NodeIndex < nodes[best].NodeIndex) {
			best = i
		}
	}
	return best
}
